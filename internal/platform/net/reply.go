package net

import (
	"net/http"

	perr "voicejournal/internal/platform/errors"
)

// Wire is the response envelope every transport speaks
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func envelope(status int, reqID string) Wire {
	return Wire{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  reqID,
	}
}

// OK wraps data in a 200 envelope
func OK(data any, reqID string) (int, Wire) {
	w := envelope(http.StatusOK, reqID)
	w.Data = data
	return http.StatusOK, w
}

// Error maps err to its HTTP status and fills the error fields.
// A nil err degrades to OK
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return OK(nil, reqID)
	}
	status := perr.HTTPStatus(err)
	w := envelope(status, reqID)
	we := perr.WireFrom(err)
	w.Code = we.Code
	w.Error = we.Message
	return status, w
}
