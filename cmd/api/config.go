package main

import (
	"github.com/xiam/to"

	"github.com/tealiumiq/webformtags/api"
	"github.com/tealiumiq/webformtags/cmd"
	"github.com/tealiumiq/webformtags/handler"
)

type config struct {
	Redis     cmd.RedisConfig          `yaml:"redis"`
	Logger    cmd.LoggerConfig         `yaml:"log"`
	API       apiConfig                `yaml:"api"`
	Webforms  webformsConfig           `yaml:"webforms"`
	Handlers  []handler.Config         `yaml:"handlers"`
	Senders   []map[string]interface{} `yaml:"senders"`
	Telemetry cmd.TelemetryConfig      `yaml:"telemetry"`
}

type apiConfig struct {
	// Api local network address. Default is ':8081' so api will be available at http://webformtags.company.com:8081/api.
	Listen string `yaml:"listen"`
	// If true, CORS for cross-domain requests will be enabled.
	EnableCORS bool `yaml:"enable_cors"`
	// Name of the cookie holding visitor session id.
	SessionCookie string `yaml:"session_cookie"`
}

type webformsConfig struct {
	// Time webform definitions are kept in memory after they were read from redis.
	CacheTTL string `yaml:"cache_ttl"`
}

func (config *apiConfig) getSettings() *api.Config {
	return &api.Config{
		EnableCORS:    config.EnableCORS,
		Listen:        config.Listen,
		SessionCookie: config.SessionCookie,
	}
}

// getSendersSettings converts senders settings decoded by yaml to maps with string keys
func getSendersSettings(senders []map[string]interface{}) []map[string]interface{} {
	settings := make([]map[string]interface{}, 0, len(senders))
	for _, sender := range senders {
		settings = append(settings, normalizeSettings(sender))
	}
	return settings
}

func normalizeSettings(settings map[string]interface{}) map[string]interface{} {
	normalized := make(map[string]interface{}, len(settings))
	for key, value := range settings {
		normalized[key] = normalizeValue(value)
	}
	return normalized
}

func normalizeValue(value interface{}) interface{} {
	switch typed := value.(type) {
	case map[interface{}]interface{}:
		normalized := make(map[string]interface{}, len(typed))
		for key, nested := range typed {
			normalized[to.String(key)] = normalizeValue(nested)
		}
		return normalized
	case []interface{}:
		normalized := make([]interface{}, 0, len(typed))
		for _, nested := range typed {
			normalized = append(normalized, normalizeValue(nested))
		}
		return normalized
	default:
		return value
	}
}

func getDefault() config {
	return config{
		Redis: cmd.RedisConfig{
			Addrs:       "localhost:6379",
			DialTimeout: "500ms",
			MaxRetries:  3,
		},
		Logger: cmd.LoggerConfig{
			LogFile:         "stdout",
			LogLevel:        "info",
			LogPrettyFormat: false,
		},
		API: apiConfig{
			Listen:        ":8081",
			EnableCORS:    false,
			SessionCookie: "webformtags_session",
		},
		Webforms: webformsConfig{
			CacheTTL: "1m",
		},
		Handlers: []handler.Config{
			{Type: handler.TealiumHandlerType, Enabled: true},
		},
		Senders: []map[string]interface{}{
			{"sender_type": "session", "ttl": "30m"},
		},
		Telemetry: cmd.TelemetryConfig{
			Listen: ":8091",
			Graphite: cmd.GraphiteConfig{
				Enabled:      false,
				RuntimeStats: false,
				URI:          "localhost:2003",
				Prefix:       "DevOps.webformtags",
				Interval:     "60s",
			},
			Prometheus: cmd.PrometheusConfig{
				Enabled:     true,
				MetricsPath: "/metrics",
			},
			Pprof: cmd.ProfilerConfig{Enabled: false},
		},
	}
}
