package backend

import (
	"encoding/json"
	"fmt"
)

// APIError is an error response from the remote service. The server's own
// message is preserved so the UI can surface it verbatim.
type APIError struct {
	// Status is the HTTP status code.
	Status int

	// Code is the service's machine-readable error code, when present.
	Code string

	// Message is the human-readable message from the server.
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// errorBody covers the shapes the service uses across its auth and table
// routes: {code,msg}, {error,error_description}, and {message}.
type errorBody struct {
	Code             json.RawMessage `json:"code"`
	Msg              string          `json:"msg"`
	Message          string          `json:"message"`
	ErrorField       string          `json:"error"`
	ErrorDescription string          `json:"error_description"`
}

func parseAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return apiErr
	}

	// code is a string on table routes and a number on auth routes
	if len(eb.Code) > 0 {
		var s string
		if json.Unmarshal(eb.Code, &s) == nil {
			apiErr.Code = s
		} else {
			apiErr.Code = string(eb.Code)
		}
	}
	if apiErr.Code == "" {
		apiErr.Code = eb.ErrorField
	}

	switch {
	case eb.Msg != "":
		apiErr.Message = eb.Msg
	case eb.ErrorDescription != "":
		apiErr.Message = eb.ErrorDescription
	case eb.Message != "":
		apiErr.Message = eb.Message
	case eb.ErrorField != "":
		apiErr.Message = eb.ErrorField
	}

	return apiErr
}
