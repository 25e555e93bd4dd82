package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/viant/reqgate/transport"
)

// Request represents request descriptor
type Request struct {
	URL    string
	Method string
	Header http.Header
	Query  url.Values
	// Body is sent as is for []byte, string and io.Reader, form encoded for url.Values, JSON encoded otherwise
	Body any
	// Parallel exempts request from key based cancellation
	Parallel bool
	Kind     transport.Kind
}

// KeyFunc computes request key
type KeyFunc func(request *Request) string

// DefaultKey returns URL + "-" + method, query and body are not part of the key
func DefaultKey(request *Request) string {
	return request.URL + "-" + request.Method
}

func (r *Request) normalize() (*Request, error) {
	if r == nil {
		return nil, fmt.Errorf("request was nil")
	}
	if r.URL == "" {
		return nil, fmt.Errorf("request URL was empty")
	}
	ret := *r
	ret.Method = strings.ToUpper(strings.TrimSpace(ret.Method))
	if ret.Method == "" {
		ret.Method = http.MethodGet
	}
	ret.Header = r.Header.Clone()
	if ret.Header == nil {
		ret.Header = http.Header{}
	}
	if ret.Kind == transport.KindJSON && ret.Header.Get("Accept") == "" {
		ret.Header.Set("Accept", "application/json, text/plain, */*")
	}
	return &ret, nil
}

func (r *Request) path() string {
	if len(r.Query) == 0 {
		return r.URL
	}
	separator := "?"
	if strings.Contains(r.URL, "?") {
		separator = "&"
	}
	return r.URL + separator + r.Query.Encode()
}

func (r *Request) body() (io.Reader, error) {
	switch actual := r.Body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return bytes.NewReader(actual), nil
	case string:
		return strings.NewReader(actual), nil
	case io.Reader:
		return actual, nil
	case url.Values:
		r.setContentType("application/x-www-form-urlencoded")
		return strings.NewReader(actual.Encode()), nil
	default:
		data, err := json.Marshal(actual)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %v body: %w", r.URL, err)
		}
		r.setContentType("application/json")
		return bytes.NewReader(data), nil
	}
}

func (r *Request) setContentType(contentType string) {
	if r.Header.Get("Content-Type") == "" {
		r.Header.Set("Content-Type", contentType)
	}
}
