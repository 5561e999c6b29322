package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/xiam/to"
	"gopkg.in/yaml.v2"

	"github.com/tealiumiq/webformtags/database/redis"
	"github.com/tealiumiq/webformtags/metrics"
)

// RedisConfig is a redis config structure that initialises at the start of webformtags
// Redis configuration depends on fields specified in redis config section:
// 1. Use fields MasterName and Addrs to enable Redis Sentinel support
// 2. Specify two or more comma-separated Addrs to enable cluster support
// 3. Otherwise, standalone configuration is enabled
type RedisConfig struct {
	// Redis Sentinel master name
	MasterName string `yaml:"master_name"`
	// Redis address list, format: {host1_name:port},{ip:port}
	Addrs string `yaml:"addrs"`
	// Redis username
	Username string `yaml:"username"`
	// Redis password
	Password string `yaml:"password"`
	// Dial connection timeout. Default is 500ms.
	DialTimeout string `yaml:"dial_timeout"`
	// Read-operation timeout. Default is 3000ms.
	ReadTimeout string `yaml:"read_timeout"`
	// Write-operation timeout. Default is ReadTimeout seconds.
	WriteTimeout string `yaml:"write_timeout"`
	// MaxRetries count of retries.
	MaxRetries int `yaml:"max_retries"`
}

// GetSettings returns redis config parsed from config files
func (config *RedisConfig) GetSettings() redis.DatabaseConfig {
	return redis.DatabaseConfig{
		MasterName:   config.MasterName,
		Addrs:        strings.Split(config.Addrs, ","),
		Username:     config.Username,
		Password:     config.Password,
		MaxRetries:   config.MaxRetries,
		DialTimeout:  to.Duration(config.DialTimeout),
		ReadTimeout:  to.Duration(config.ReadTimeout),
		WriteTimeout: to.Duration(config.WriteTimeout),
	}
}

// GraphiteConfig is graphite metrics config structure that initialises at the start of webformtags
type GraphiteConfig struct {
	// If true, graphite sender will be enabled.
	Enabled bool `yaml:"enabled"`
	// If true, runtime stats will be captured and sent to graphite.
	RuntimeStats bool `yaml:"runtime_stats"`
	// Graphite relay URI, format: ip:port
	URI string `yaml:"uri"`
	// Metrics prefix. Use 'prefix: {hostname}' to use hostname autoresolver.
	Prefix string `yaml:"prefix"`
	// Metrics sending interval
	Interval string `yaml:"interval"`
}

// GetSettings returns graphite metrics config parsed from config files
func (graphiteConfig *GraphiteConfig) GetSettings() metrics.GraphiteRegistryConfig {
	return metrics.GraphiteRegistryConfig{
		Enabled:      graphiteConfig.Enabled,
		RuntimeStats: graphiteConfig.RuntimeStats,
		URI:          graphiteConfig.URI,
		Prefix:       graphiteConfig.Prefix,
		Interval:     to.Duration(graphiteConfig.Interval),
	}
}

// PrometheusConfig is prometheus metrics endpoint settings
type PrometheusConfig struct {
	Enabled     bool   `yaml:"enabled"`
	MetricsPath string `yaml:"metrics_path"`
}

// LoggerConfig is logger settings structure that initialises at the start of webformtags
type LoggerConfig struct {
	LogFile         string `yaml:"log_file"`
	LogLevel        string `yaml:"log_level"`
	LogPrettyFormat bool   `yaml:"log_pretty_format"`
}

// TelemetryConfig is settings for listener, pprof, graphite and prometheus
type TelemetryConfig struct {
	Listen     string           `yaml:"listen"`
	Pprof      ProfilerConfig   `yaml:"pprof"`
	Graphite   GraphiteConfig   `yaml:"graphite"`
	Prometheus PrometheusConfig `yaml:"prometheus"`
}

// ProfilerConfig is pprof settings structure that initialises at the start of webformtags
type ProfilerConfig struct {
	Enabled bool `yaml:"enabled"`
}

// ReadConfig parses config file by the given path into webformtags-used type
func ReadConfig(configFileName string, config interface{}) error {
	configYaml, err := os.ReadFile(configFileName)
	if err != nil {
		return fmt.Errorf("can't read file [%s] [%s]", configFileName, err.Error())
	}
	err = yaml.Unmarshal(configYaml, config)
	if err != nil {
		return fmt.Errorf("can't parse config file [%s] [%s]", configFileName, err.Error())
	}
	return nil
}

// PrintConfig prints config to stdout
func PrintConfig(config interface{}) {
	d, _ := yaml.Marshal(&config)
	fmt.Println(string(d))
}
