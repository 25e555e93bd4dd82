package transport

import (
	"fmt"
	"net/http"
)

// Response represents response envelope
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
	Kind       Kind
	Request    *http.Request
}

// StatusError reports non-2xx response
type StatusError struct {
	Response *Response
}

func (e *StatusError) Error() string {
	if e.Response == nil {
		return "unexpected response status"
	}
	URL := ""
	method := ""
	if req := e.Response.Request; req != nil {
		method = req.Method
		if req.URL != nil {
			URL = req.URL.String()
		}
	}
	return fmt.Sprintf("%v %v: unexpected status %v", method, URL, e.Response.StatusCode)
}

// StatusCode returns response status code
func (e *StatusError) StatusCode() int {
	if e.Response == nil {
		return 0
	}
	return e.Response.StatusCode
}

// IsUnauthorized returns true for 401 response
func (e *StatusError) IsUnauthorized() bool {
	return e.StatusCode() == http.StatusUnauthorized
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
