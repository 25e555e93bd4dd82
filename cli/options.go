package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/viant/reqgate"
	"github.com/viant/reqgate/gateway"
	"github.com/viant/reqgate/transport"
)

type Options struct {
	ConfigURL string   `short:"c" long:"config" description:"options file URL (yaml)"`
	BaseURL   string   `short:"b" long:"base" description:"base URL, overrides config"`
	URL       string   `short:"u" long:"url" description:"request URL, relative to base URL" required:"true"`
	Method    string   `short:"m" long:"method" description:"HTTP method" default:"GET"`
	Query     []string `short:"q" long:"query" description:"query parameter name=value"`
	Header    []string `short:"H" long:"header" description:"request header name:value"`
	Data      string   `short:"d" long:"data" description:"request body"`
	Kind      string   `short:"k" long:"kind" description:"response kind" choice:"json" choice:"binary" choice:"blob" default:"json"`
	Token     string   `short:"t" long:"token" description:"token stored before dispatch"`
	Session   bool     `short:"s" long:"session" description:"keep token for this invocation only"`
	Location  string   `short:"l" long:"location" description:"current location used as login redirect target"`
	Output    string   `short:"o" long:"out" description:"output URL for binary response, stdout when empty"`
	Debug     bool     `long:"debug" description:"enable debug logging"`
}

func (o *Options) clientOptions(ctx context.Context) (*reqgate.Options, error) {
	ret := &reqgate.Options{}
	if o.ConfigURL != "" {
		var err error
		if ret, err = reqgate.LoadOptions(ctx, o.ConfigURL); err != nil {
			return nil, err
		}
	}
	if o.BaseURL != "" {
		ret.BaseURL = o.BaseURL
	}
	if o.Location != "" {
		ret.Location = o.Location
	}
	level := slog.LevelInfo
	if o.Debug {
		level = slog.LevelDebug
	}
	ret.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return ret, nil
}

func (o *Options) request() (*gateway.Request, error) {
	kind, err := transport.ParseKind(o.Kind)
	if err != nil {
		return nil, err
	}
	ret := &gateway.Request{URL: o.URL, Method: o.Method, Kind: kind}
	if len(o.Query) > 0 {
		ret.Query = url.Values{}
		for _, pair := range o.Query {
			name, value, ok := strings.Cut(pair, "=")
			if !ok {
				return nil, fmt.Errorf("invalid query parameter: %v, expected name=value", pair)
			}
			ret.Query.Add(name, value)
		}
	}
	if len(o.Header) > 0 {
		ret.Header = http.Header{}
		for _, pair := range o.Header {
			name, value, ok := strings.Cut(pair, ":")
			if !ok {
				return nil, fmt.Errorf("invalid header: %v, expected name:value", pair)
			}
			ret.Header.Add(strings.TrimSpace(name), strings.TrimSpace(value))
		}
	}
	if o.Data != "" {
		ret.Body = o.Data
	}
	return ret, nil
}
