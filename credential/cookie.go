package credential

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// DefaultCookieName is the cookie holding the token
const DefaultCookieName = "token"

// Cookie keeps token as a cookie in a jar
type Cookie struct {
	jar  http.CookieJar
	URL  *url.URL
	name string
}

func (c *Cookie) Lookup(ctx context.Context) (string, bool) {
	for _, cookie := range c.jar.Cookies(c.URL) {
		if cookie.Name != c.name || cookie.Value == "" {
			continue
		}
		return accessToken(NewToken(cookie.Value))
	}
	return "", false
}

func (c *Cookie) Set(ctx context.Context, token string) error {
	if token == "" {
		return c.Clear(ctx)
	}
	tkn := NewToken(token)
	c.jar.SetCookies(c.URL, []*http.Cookie{{
		Name:    c.name,
		Value:   token,
		Path:    "/",
		Expires: tkn.Expiry,
	}})
	return nil
}

func (c *Cookie) Clear(ctx context.Context) error {
	c.jar.SetCookies(c.URL, []*http.Cookie{{Name: c.name, Path: "/", MaxAge: -1}})
	return nil
}

// NewCookie creates a cookie store for URL, empty name uses DefaultCookieName
func NewCookie(jar http.CookieJar, URL string, name string) (*Cookie, error) {
	if jar == nil {
		return nil, fmt.Errorf("cookie jar was nil")
	}
	u, err := url.Parse(URL)
	if err != nil {
		return nil, fmt.Errorf("invalid cookie URL %q: %w", URL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("cookie URL %q has no host", URL)
	}
	if name == "" {
		name = DefaultCookieName
	}
	return &Cookie{jar: jar, URL: u, name: name}, nil
}
