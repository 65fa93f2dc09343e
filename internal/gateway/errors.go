package gateway

import (
	"errors"
	"fmt"
)

// Kind classifies gateway failures.
type Kind int

// Failure kinds.
const (
	KindNotFound Kind = iota + 1
	KindAuth
	KindAPI
	KindNetwork
	KindRequestSetup
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAuth:
		return "auth"
	case KindAPI:
		return "api"
	case KindNetwork:
		return "network"
	case KindRequestSetup:
		return "request_setup"
	default:
		return "unknown"
	}
}

// Error is returned by every failed gateway call.
// Error() is the message shown to the user.
type Error struct {
	Kind Kind
	// City is the normalized city the request was made for.
	City string
	// Status is the HTTP status; zero when no response was received.
	Status int
	// Message is the server supplied message, if any.
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("City not found: %s. Please check the spelling and try again.", e.City)
	case KindAuth:
		return "API key error. Please check your API key."
	case KindAPI:
		msg := e.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return fmt.Sprintf("API Error (%d): %s", e.Status, msg)
	case KindNetwork:
		return "No response from weather service. Please check your internet connection."
	case KindRequestSetup:
		return fmt.Sprintf("Request error: %v", e.Err)
	default:
		return "Failed to fetch weather data: Unknown error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a gateway error of the given kind.
func IsKind(err error, kind Kind) bool {
	var gerr *Error
	if !errors.As(err, &gerr) {
		return false
	}

	return gerr.Kind == kind
}
