package delivery

import (
	"fmt"

	"github.com/tealiumiq/webformtags"
	"github.com/tealiumiq/webformtags/senders/collect"
	"github.com/tealiumiq/webformtags/senders/log"
	"github.com/tealiumiq/webformtags/senders/session"
)

const (
	collectSender = "collect"
	sessionSender = "session"
	logSender     = "log"
)

// RegisterSenders registers all configured senders
func (helper *Helper) RegisterSenders(sendersSettings []map[string]interface{}, connector webformtags.Database) error {
	var err error
	for _, senderSettings := range sendersSettings {
		switch senderSettings["sender_type"] {
		case collectSender:
			err = helper.RegisterSender(senderSettings, &collect.Sender{})
		case sessionSender:
			err = helper.RegisterSender(senderSettings, &session.Sender{Database: connector})
		case logSender:
			err = helper.RegisterSender(senderSettings, &log.Sender{})
		default:
			return fmt.Errorf("unknown sender type [%s]", senderSettings["sender_type"])
		}

		if err != nil {
			return err
		}
	}
	return nil
}

// HasSessionSender reports whether tags of non-ajax submissions reach the next page view
func (helper *Helper) HasSessionSender() bool {
	for _, senderType := range helper.SenderTypes() {
		if senderType == sessionSender {
			return true
		}
	}
	return false
}
