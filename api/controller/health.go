package controller

import (
	"github.com/tealiumiq/webformtags/api/dto"
)

// Pinger checks storage connection
type Pinger interface {
	Ping() error
}

// GetServiceState returns state of the api storage
func GetServiceState(pinger Pinger) *dto.ServiceState {
	if err := pinger.Ping(); err != nil {
		return &dto.ServiceState{State: dto.ServiceStateERROR, Message: err.Error()}
	}
	return &dto.ServiceState{State: dto.ServiceStateOK}
}
