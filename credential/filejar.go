package credential

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/viant/afs"
)

// FileJar is a cookiejar.Jar persisted as JSON at an afs URL.
// Every SetCookies rewrites the snapshot, NewFileJar rehydrates it.
type FileJar struct {
	mu    sync.Mutex
	inner *cookiejar.Jar
	URL   string
	fs    afs.Service
	index map[string]persistedCookie
}

type persistedCookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Domain   string    `json:"domain"`
	HostOnly bool      `json:"hostOnly,omitempty"`
	Path     string    `json:"path"`
	Expires  time.Time `json:"expires"`
	Secure   bool      `json:"secure"`
	HttpOnly bool      `json:"httpOnly"`
}

func (p *persistedCookie) key() string {
	return p.Domain + "|" + p.Path + "|" + p.Name
}

func (p *persistedCookie) expired(now time.Time) bool {
	return !p.Expires.IsZero() && now.After(p.Expires)
}

type cookieSnapshot struct {
	Cookies []persistedCookie `json:"cookies"`
}

func (j *FileJar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.inner.Cookies(u)
}

func (j *FileJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.inner.SetCookies(u, cookies)
	now := time.Now()
	for _, c := range cookies {
		pc := newPersistedCookie(u, c)
		if c.MaxAge < 0 || pc.expired(now) {
			delete(j.index, pc.key())
			continue
		}
		if c.MaxAge > 0 {
			pc.Expires = now.Add(time.Duration(c.MaxAge) * time.Second)
		}
		j.index[pc.key()] = pc
	}
	_ = j.save(context.Background())
}

func newPersistedCookie(u *url.URL, c *http.Cookie) persistedCookie {
	domain := strings.TrimPrefix(strings.TrimSpace(c.Domain), ".")
	hostOnly := domain == ""
	if hostOnly {
		domain = u.Host
		if host, _, err := net.SplitHostPort(domain); err == nil && host != "" {
			domain = host
		}
	}
	path := c.Path
	if strings.TrimSpace(path) == "" {
		path = "/"
	}
	return persistedCookie{
		Name:     c.Name,
		Value:    c.Value,
		Domain:   domain,
		HostOnly: hostOnly,
		Path:     path,
		Expires:  c.Expires,
		Secure:   c.Secure,
		HttpOnly: c.HttpOnly,
	}
}

func (j *FileJar) save(ctx context.Context) error {
	snap := cookieSnapshot{Cookies: make([]persistedCookie, 0, len(j.index))}
	for _, v := range j.index {
		snap.Cookies = append(snap.Cookies, v)
	}
	sort.Slice(snap.Cookies, func(i, k int) bool { return snap.Cookies[i].key() < snap.Cookies[k].key() })
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return j.fs.Upload(ctx, j.URL, tokenFileMode, bytes.NewReader(data))
}

func (j *FileJar) load(ctx context.Context) error {
	ok, err := j.fs.Exists(ctx, j.URL)
	if err != nil || !ok {
		return err
	}
	data, err := j.fs.DownloadWithURL(ctx, j.URL)
	if err != nil {
		return err
	}
	var snap cookieSnapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return err
	}
	now := time.Now()
	for _, pc := range snap.Cookies {
		if pc.expired(now) {
			continue
		}
		scheme := "http"
		if pc.Secure {
			scheme = "https"
		}
		cookie := &http.Cookie{
			Name:     pc.Name,
			Value:    pc.Value,
			Path:     pc.Path,
			Expires:  pc.Expires,
			Secure:   pc.Secure,
			HttpOnly: pc.HttpOnly,
		}
		if !pc.HostOnly {
			cookie.Domain = pc.Domain
		}
		j.inner.SetCookies(&url.URL{Scheme: scheme, Host: pc.Domain, Path: pc.Path}, []*http.Cookie{cookie})
		j.index[pc.key()] = pc
	}
	return nil
}

// NewFileJar creates a cookie jar persisted at URL, nil fs uses afs.New()
func NewFileJar(ctx context.Context, URL string, fs afs.Service) (*FileJar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	if fs == nil {
		fs = afs.New()
	}
	j := &FileJar{inner: inner, URL: URL, fs: fs, index: map[string]persistedCookie{}}
	if err = j.load(ctx); err != nil {
		return nil, err
	}
	return j, nil
}
