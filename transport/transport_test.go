package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHTTP_Resolve(t *testing.T) {
	var testCases = []struct {
		description string
		baseURL     string
		path        string
		expect      string
		expectErr   bool
	}{
		{description: "relative path", baseURL: "http://localhost:8080/api", path: "/items", expect: "http://localhost:8080/api/items"},
		{description: "trailing base slash", baseURL: "http://localhost:8080/api/", path: "items", expect: "http://localhost:8080/api/items"},
		{description: "query preserved", baseURL: "http://localhost:8080", path: "/items?page=2", expect: "http://localhost:8080/items?page=2"},
		{description: "absolute path wins", baseURL: "http://localhost:8080", path: "https://example.com/x", expect: "https://example.com/x"},
		{description: "missing base", path: "/items", expectErr: true},
	}
	for _, testCase := range testCases {
		h, err := New(WithBaseURL(testCase.baseURL))
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		u, err := h.Resolve(testCase.path)
		if testCase.expectErr {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		assert.Nil(t, err, testCase.description)
		assert.Equal(t, testCase.expect, u.String(), testCase.description)
	}
}

func TestHTTP_Do(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":1}`))
		case "/unauthorized":
			http.Error(w, "denied", http.StatusUnauthorized)
		case "/missing":
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	h, err := New(WithBaseURL(server.URL))
	assert.Nil(t, err)
	assert.Equal(t, DefaultTimeout, h.Client().Timeout)

	ctx := WithKind(context.Background(), KindBinary)
	req, err := h.NewRequest(ctx, http.MethodGet, "/ok", nil)
	assert.Nil(t, err)
	resp, err := h.Do(req)
	assert.Nil(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `{"data":1}`, string(resp.Body))
	assert.Equal(t, KindBinary, resp.Kind)

	for path, code := range map[string]int{"/unauthorized": http.StatusUnauthorized, "/missing": http.StatusNotFound} {
		req, err = h.NewRequest(context.Background(), http.MethodGet, path, nil)
		assert.Nil(t, err)
		_, err = h.Do(req)
		var statusErr *StatusError
		if assert.True(t, errors.As(err, &statusErr), path) {
			assert.Equal(t, code, statusErr.StatusCode(), path)
			assert.Equal(t, code == http.StatusUnauthorized, statusErr.IsUnauthorized(), path)
			assert.Contains(t, statusErr.Error(), path)
		}
	}
}

func TestHTTP_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	h, err := New(WithBaseURL(server.URL), WithTimeout(50*time.Millisecond))
	assert.Nil(t, err)
	req, _ := h.NewRequest(context.Background(), http.MethodGet, "/slow", nil)
	_, err = h.Do(req)
	assert.NotNil(t, err)
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestHTTP_MaxBodySize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0123456789"))
	}))
	defer server.Close()

	h, _ := New(WithBaseURL(server.URL), WithMaxBodySize(4))
	req, _ := h.NewRequest(context.Background(), http.MethodGet, "/", nil)
	_, err := h.Do(req)
	assert.ErrorIs(t, err, ErrBodyTooLarge)
}

func TestHTTP_MiddlewaresAndCookieJar(t *testing.T) {
	var seenHeader, seenCookie string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenHeader = r.Header.Get("X-Test")
		if c, err := r.Cookie("token"); err == nil {
			seenCookie = c.Value
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "s1", Path: "/"})
	}))
	defer server.Close()

	jar, _ := cookiejar.New(nil)
	u, _ := url.Parse(server.URL)
	jar.SetCookies(u, []*http.Cookie{{Name: "token", Value: "abc", Path: "/"}})

	h, err := New(WithBaseURL(server.URL), WithCookieJar(jar), WithMiddlewares(nil, SetHeader("X-Test", "yes")))
	assert.Nil(t, err)
	req, _ := h.NewRequest(context.Background(), http.MethodGet, "/", nil)
	_, err = h.Do(req)
	assert.Nil(t, err)
	assert.Equal(t, "yes", seenHeader)
	assert.Equal(t, "abc", seenCookie)

	names := map[string]bool{}
	for _, c := range jar.Cookies(u) {
		names[c.Name] = true
	}
	assert.True(t, names["session"])
}

func TestCookies(t *testing.T) {
	jar, _ := cookiejar.New(nil)
	u, _ := url.Parse("http://localhost/api")
	jar.SetCookies(u, []*http.Cookie{{Name: "token", Value: "jar"}, {Name: "lang", Value: "en"}})

	var sent map[string]string
	base := RoundTripperFunc(func(r *http.Request) (*http.Response, error) {
		sent = map[string]string{}
		for _, c := range r.Cookies() {
			sent[c.Name] = c.Value
		}
		header := http.Header{}
		header.Add("Set-Cookie", "session=s2; Path=/")
		return &http.Response{StatusCode: http.StatusOK, Header: header, Body: http.NoBody, Request: r}, nil
	})
	rt := Chain(base, Cookies(jar))

	req, _ := http.NewRequest(http.MethodGet, u.String(), nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "explicit"})
	_, err := rt.RoundTrip(req)
	assert.Nil(t, err)
	assert.Equal(t, map[string]string{"token": "explicit", "lang": "en"}, sent)
	assert.Len(t, req.Cookies(), 1)

	stored := map[string]string{}
	for _, c := range jar.Cookies(u) {
		stored[c.Name] = c.Value
	}
	assert.Equal(t, "s2", stored["session"])

	_, err = Chain(base, Cookies(nil)).RoundTrip(req)
	assert.Nil(t, err)
	assert.Equal(t, map[string]string{"token": "explicit"}, sent)
}

func TestParseKind(t *testing.T) {
	for name, expect := range map[string]Kind{"": KindJSON, "json": KindJSON, "blob": KindBinary, "BINARY": KindBinary} {
		kind, err := ParseKind(name)
		assert.Nil(t, err, name)
		assert.Equal(t, expect, kind, name)
	}
	_, err := ParseKind("xml")
	assert.NotNil(t, err)
	assert.Equal(t, "binary", KindBinary.String())
}
