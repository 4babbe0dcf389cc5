package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	appErrors "github.com/noah-isme/hr-portal/pkg/errors"
)

type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// decode unwraps a backend response into out. A non-2xx status or an
// explicit success:false is an error carrying the backend message. Bodies
// without an envelope are taken as the data itself.
func decode(status int, raw []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	env, wrapped := parseEnvelope(trimmed)

	if status < 200 || status > 299 {
		return StatusError(status, env.Message)
	}
	if wrapped && env.Success != nil && !*env.Success {
		return StatusError(http.StatusBadGateway, env.Message)
	}

	data := trimmed
	if wrapped {
		data = bytes.TrimSpace(env.Data)
	}
	if out == nil || len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrFetchFailed.Code, appErrors.ErrFetchFailed.Status, "unexpected response shape")
	}
	return nil
}

// parseEnvelope reports whether body is an object carrying success or data.
func parseEnvelope(body []byte) (envelope, bool) {
	if len(body) == 0 || body[0] != '{' {
		return envelope{}, false
	}
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(body, &keys); err != nil {
		return envelope{}, false
	}
	_, hasSuccess := keys["success"]
	_, hasData := keys["data"]
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return envelope{}, false
	}
	return env, hasSuccess || hasData
}

// StatusError maps a backend status and message to a portal error. An empty
// message falls back to the HTTP status text.
func StatusError(status int, message string) *appErrors.Error {
	if message == "" {
		message = http.StatusText(status)
	}
	if message == "" {
		message = "backend request failed"
	}

	base := appErrors.ErrFetchFailed
	switch status {
	case http.StatusNotFound:
		base = appErrors.ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		base = appErrors.ErrValidation
	case http.StatusUnauthorized:
		base = appErrors.ErrUnauthorized
	case http.StatusForbidden:
		base = appErrors.ErrForbidden
	case http.StatusConflict:
		base = appErrors.ErrConflict
	}
	return appErrors.Wrap(fmt.Errorf("backend status %d", status), base.Code, base.Status, message)
}
