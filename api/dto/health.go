package dto

import "net/http"

const (
	ServiceStateOK    = "OK"
	ServiceStateERROR = "ERROR"
)

// ServiceState is the state of the api and its storage
type ServiceState struct {
	State   string `json:"state"`
	Message string `json:"message,omitempty"`
}

func (*ServiceState) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}
