package arr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnavailable indicates the service could not be reached.
	ErrUnavailable = errors.New("service unavailable")

	// ErrUnauthorized indicates the API key was rejected.
	ErrUnauthorized = errors.New("unauthorized: invalid api key")
)

// ValidationFailure is one entry of the error array Radarr/Sonarr return on a rejected request.
type ValidationFailure struct {
	PropertyName   string `json:"propertyName"`
	ErrorMessage   string `json:"errorMessage"`
	ErrorCode      string `json:"errorCode"`
	AttemptedValue any    `json:"attemptedValue,omitempty"`
	Severity       string `json:"severity,omitempty"`
}

// RejectionError is returned for any non-2xx response other than 401.
type RejectionError struct {
	Service    string
	StatusCode int
	Failures   []ValidationFailure
	Message    string
}

func (e *RejectionError) Error() string {
	var msgs []string
	for _, f := range e.Failures {
		if f.ErrorMessage != "" {
			msgs = append(msgs, f.ErrorMessage)
		}
	}
	if len(msgs) == 0 && e.Message != "" {
		msgs = append(msgs, e.Message)
	}
	if len(msgs) == 0 {
		return fmt.Sprintf("%s: request rejected with status %d", e.Service, e.StatusCode)
	}
	return fmt.Sprintf("%s: request rejected with status %d: %s", e.Service, e.StatusCode, strings.Join(msgs, "; "))
}

// Codes returns the error codes of all validation failures.
func (e *RejectionError) Codes() []string {
	codes := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		if f.ErrorCode != "" {
			codes = append(codes, f.ErrorCode)
		}
	}
	return codes
}

// Messages returns every human-readable message carried by the rejection.
func (e *RejectionError) Messages() []string {
	msgs := make([]string, 0, len(e.Failures)+1)
	for _, f := range e.Failures {
		if f.ErrorMessage != "" {
			msgs = append(msgs, f.ErrorMessage)
		}
	}
	if e.Message != "" {
		msgs = append(msgs, e.Message)
	}
	return msgs
}

// newRejection decodes a rejection body. Radarr and Sonarr answer validation
// problems with an array of failures and other errors with {"message": ...}.
func newRejection(service string, status int, body []byte) *RejectionError {
	rej := &RejectionError{Service: service, StatusCode: status}

	trimmed := bytes.TrimSpace(body)
	switch {
	case len(trimmed) == 0:
	case trimmed[0] == '[':
		if err := json.Unmarshal(trimmed, &rej.Failures); err != nil {
			rej.Message = string(trimmed)
		}
	case trimmed[0] == '{':
		var obj struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			rej.Message = string(trimmed)
			break
		}
		rej.Message = obj.Message
		if rej.Message == "" {
			rej.Message = obj.Error
		}
	default:
		rej.Message = string(trimmed)
	}
	return rej
}
