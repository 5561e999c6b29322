package collect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/xiam/to"

	"github.com/tealiumiq/webformtags"
)

const (
	// DefaultURL is the TealiumIQ Collect HTTP API endpoint
	DefaultURL = "https://collect.tealiumiq.com/event"

	defaultEvent   = "webform_submission"
	defaultTimeout = 30 * time.Second
)

var defaultAllowedCodes = []int{http.StatusOK, http.StatusNoContent}

// Structure that represents the Collect configuration in the YAML file.
type config struct {
	URL          string `mapstructure:"url"`
	Account      string `mapstructure:"account"`
	Profile      string `mapstructure:"profile"`
	DataSource   string `mapstructure:"datasource"`
	Event        string `mapstructure:"event"`
	Timeout      string `mapstructure:"timeout"`
	AllowedCodes []int  `mapstructure:"allowed_codes"`
}

// Sender delivers property sets to TealiumIQ Collect HTTP API
type Sender struct {
	url          string
	account      string
	profile      string
	dataSource   string
	event        string
	allowedCodes []int
	client       *http.Client
	logger       webformtags.Logger
}

// Init read yaml config
func (sender *Sender) Init(senderSettings map[string]interface{}, logger webformtags.Logger) error {
	var cfg config
	if err := mapstructure.Decode(senderSettings, &cfg); err != nil {
		return fmt.Errorf("failed to decode senderSettings to collect config: %w", err)
	}

	if cfg.Account == "" {
		return fmt.Errorf("can not read collect account from config")
	}
	if cfg.Profile == "" {
		return fmt.Errorf("can not read collect profile from config")
	}

	sender.url = cfg.URL
	if sender.url == "" {
		sender.url = DefaultURL
	}
	sender.event = cfg.Event
	if sender.event == "" {
		sender.event = defaultEvent
	}
	sender.account = cfg.Account
	sender.profile = cfg.Profile
	sender.dataSource = cfg.DataSource

	sender.allowedCodes = cfg.AllowedCodes
	if len(sender.allowedCodes) == 0 {
		sender.allowedCodes = defaultAllowedCodes
	}

	timeout := defaultTimeout
	if cfg.Timeout != "" {
		timeout = to.Duration(cfg.Timeout)
		if timeout <= 0 {
			return fmt.Errorf("can not read collect timeout from config: %s", cfg.Timeout)
		}
	}

	sender.logger = logger
	sender.client = &http.Client{Timeout: timeout, Transport: &http.Transport{DisableKeepAlives: true}}
	return nil
}

// SendProperties posts property set as a single Collect event
func (sender *Sender) SendProperties(ctx context.Context, properties webformtags.PropertySet) error {
	body, err := json.Marshal(sender.buildEvent(ctx, properties))
	if err != nil {
		return fmt.Errorf("failed to build request body: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, sender.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	sender.logger.Debug().
		String("url", sender.url).
		Int("properties_count", len(properties)).
		Msg("Created collect request")

	response, err := sender.client.Do(request)
	if err != nil {
		return fmt.Errorf("failed to perform request: %w", err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if !sender.isAllowedResponseCode(response.StatusCode) {
		return fmt.Errorf("invalid status code: %d, server response: %s", response.StatusCode, string(responseBody))
	}
	return nil
}

// buildEvent merges property set with Collect account attributes, account attributes win
func (sender *Sender) buildEvent(ctx context.Context, properties webformtags.PropertySet) map[string]string {
	event := make(map[string]string, len(properties)+5)
	for tag, value := range properties {
		event[tag] = value
	}

	event["tealium_account"] = sender.account
	event["tealium_profile"] = sender.profile
	if sender.dataSource != "" {
		event["tealium_datasource"] = sender.dataSource
	}
	if _, ok := event["tealium_event"]; !ok {
		event["tealium_event"] = sender.event
	}
	if sessionID := webformtags.SessionIDFromContext(ctx); sessionID != "" {
		event["tealium_visitor_id"] = sessionID
	}
	return event
}

func (sender *Sender) isAllowedResponseCode(responseCode int) bool {
	for _, allowedCode := range sender.allowedCodes {
		if allowedCode == responseCode {
			return true
		}
	}
	return false
}
