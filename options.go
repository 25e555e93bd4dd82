package reqgate

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/viant/afs"
	"github.com/viant/reqgate/auth"
	"github.com/viant/reqgate/navigation"
	"github.com/viant/reqgate/transport"
	"gopkg.in/yaml.v3"
)

// Options defines gateway options
type Options struct {
	BaseURL     string         `yaml:"baseURL,omitempty" json:"baseURL,omitempty"`
	Timeout     time.Duration  `yaml:"timeout,omitempty" json:"timeout,omitempty"`
	MaxBodySize int64          `yaml:"maxBodySize,omitempty" json:"maxBodySize,omitempty"`
	LoginPath   string         `yaml:"loginPath,omitempty" json:"loginPath,omitempty"`
	Location    string         `yaml:"location,omitempty" json:"location,omitempty"`
	TokenHeader string         `yaml:"tokenHeader,omitempty" json:"tokenHeader,omitempty"`
	Marker      *Marker        `yaml:"marker,omitempty" json:"marker,omitempty"`
	Credential  CredentialOpts `yaml:"credential,omitempty" json:"credential,omitempty"`
	// Headers are set on every outbound request
	Headers map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`

	// Middlewares wrap the transport after Headers
	Middlewares []transport.Middleware `yaml:"-" json:"-"`

	// Logger defaults to slog.Default()
	Logger *slog.Logger `yaml:"-" json:"-"`
}

// Marker defines header identifying gateway requests, empty Header disables it
type Marker struct {
	Header string `yaml:"header" json:"header"`
	Value  string `yaml:"value" json:"value"`
}

// CredentialOpts defines where the token is kept
type CredentialOpts struct {
	// CookieName defaults to "token"
	CookieName string `yaml:"cookieName,omitempty" json:"cookieName,omitempty"`
	// CookieURL is the URL the token cookie is scoped to, defaults to BaseURL
	CookieURL string `yaml:"cookieURL,omitempty" json:"cookieURL,omitempty"`
	// CookieJarURL persists cookies at afs URL, cookies are kept in memory when empty
	CookieJarURL string `yaml:"cookieJarURL,omitempty" json:"cookieJarURL,omitempty"`
	// PersistentURL keeps the token at afs URL across restarts
	PersistentURL string `yaml:"persistentURL,omitempty" json:"persistentURL,omitempty"`
	// EncryptionKey encrypts persistent token with scy key, e.g. blowfish://default
	EncryptionKey string `yaml:"encryptionKey,omitempty" json:"encryptionKey,omitempty"`
}

// Init sets defaults
func (o *Options) Init() {
	if o.Timeout == 0 {
		o.Timeout = transport.DefaultTimeout
	}
	if o.MaxBodySize == 0 {
		o.MaxBodySize = transport.DefaultMaxBodySize
	}
	if o.LoginPath == "" {
		o.LoginPath = navigation.DefaultLoginPath
	}
	if o.Location == "" {
		o.Location = "/"
	}
	if o.TokenHeader == "" {
		o.TokenHeader = auth.DefaultTokenHeader
	}
	if o.Marker == nil {
		o.Marker = &Marker{Header: auth.DefaultMarkerHeader, Value: auth.DefaultMarkerValue}
	}
	if o.Credential.CookieURL == "" {
		o.Credential.CookieURL = o.BaseURL
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
}

// middlewares returns header middlewares in name order followed by Middlewares
func (o *Options) middlewares() []transport.Middleware {
	names := make([]string, 0, len(o.Headers))
	for name := range o.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	ret := make([]transport.Middleware, 0, len(names)+len(o.Middlewares))
	for _, name := range names {
		ret = append(ret, transport.SetHeader(name, o.Headers[name]))
	}
	return append(ret, o.Middlewares...)
}

// Validate checks options
func (o *Options) Validate() error {
	if o.BaseURL == "" {
		return fmt.Errorf("baseURL was empty")
	}
	if o.Timeout < 0 {
		return fmt.Errorf("invalid timeout: %v", o.Timeout)
	}
	return nil
}

// LoadOptions loads YAML options from afs URL
func LoadOptions(ctx context.Context, URL string) (*Options, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load options %v: %w", URL, err)
	}
	ret := &Options{}
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("invalid options %v: %w", URL, err)
	}
	return ret, nil
}
