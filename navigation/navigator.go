package navigation

import (
	"context"
	"net/url"
)

const (
	// DefaultLoginPath is the login route
	DefaultLoginPath = "/ioa/login/login"
	// RedirectParam carries return path on login route
	RedirectParam = "redirect"
)

// Navigator redirects to the login route
type Navigator interface {
	RedirectToLogin(ctx context.Context, returnPath string) error
}

// Locator returns current location
type Locator interface {
	Location(ctx context.Context) string
}

// Listener is notified on route change
type Listener func(ctx context.Context, from, to string)

// LoginURL returns login route with return path as redirect query value
func LoginURL(loginPath, returnPath string) string {
	if loginPath == "" {
		loginPath = DefaultLoginPath
	}
	values := url.Values{}
	values.Set(RedirectParam, returnPath)
	return loginPath + "?" + values.Encode()
}

// ReturnPath extracts redirect query value from a login target
func ReturnPath(target string) string {
	u, err := url.Parse(target)
	if err != nil {
		return ""
	}
	return u.Query().Get(RedirectParam)
}
