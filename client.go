package reqgate

import (
	"context"
	"net/http"
	"net/http/cookiejar"

	"github.com/viant/afs"
	"github.com/viant/reqgate/auth"
	"github.com/viant/reqgate/credential"
	"github.com/viant/reqgate/gateway"
	"github.com/viant/reqgate/navigation"
	"github.com/viant/reqgate/registry"
	"github.com/viant/reqgate/transport"
)

// Client is a configured gateway together with its collaborators
type Client struct {
	*gateway.Gateway
	Router      *navigation.Router
	Credentials *credential.Multi
	Transport   *transport.HTTP
	unsubscribe func()
}

// SetToken stores token in every credential store
func (c *Client) SetToken(ctx context.Context, token string) error {
	return c.Credentials.Set(ctx, token)
}

// SetSessionToken stores token for the current session only
func (c *Client) SetSessionToken(ctx context.Context, token string) error {
	return c.Credentials.SetScoped(ctx, token, credential.ScopeSession)
}

// Close stops cancelling requests on route change
func (c *Client) Close() error {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
	return nil
}

// New creates a client configured with options
func New(ctx context.Context, options *Options) (*Client, error) {
	options.Init()
	if err := options.Validate(); err != nil {
		return nil, err
	}
	fs := afs.New()
	jar, credentials, err := newCredentials(ctx, fs, options)
	if err != nil {
		return nil, err
	}

	httpTransport, err := transport.New(
		transport.WithBaseURL(options.BaseURL),
		transport.WithTimeout(options.Timeout),
		transport.WithMaxBodySize(options.MaxBodySize),
		transport.WithCookieJar(jar),
		transport.WithMiddlewares(options.middlewares()...),
	)
	if err != nil {
		return nil, err
	}
	router := navigation.NewRouter(
		navigation.WithLoginPath(options.LoginPath),
		navigation.WithInitialLocation(options.Location),
		navigation.WithLogger(options.Logger),
	)
	interceptor := auth.New(credentials,
		auth.WithNavigator(router),
		auth.WithTokenHeader(options.TokenHeader),
		auth.WithMarker(options.Marker.Header, options.Marker.Value),
		auth.WithLogger(options.Logger),
	)
	gw, err := gateway.New(
		gateway.WithTransport(httpTransport),
		gateway.WithInterceptor(interceptor),
		gateway.WithRegistry(registry.New(registry.WithLogger(options.Logger))),
		gateway.WithLogger(options.Logger),
	)
	if err != nil {
		return nil, err
	}
	ret := &Client{
		Gateway:     gw,
		Router:      router,
		Credentials: credentials,
		Transport:   httpTransport,
	}
	ret.unsubscribe = router.OnChange(func(ctx context.Context, from, to string) {
		gw.CancelAll()
	})
	return ret, nil
}

// newCredentials builds cookie -> session -> persistent lookup chain
func newCredentials(ctx context.Context, fs afs.Service, options *Options) (http.CookieJar, *credential.Multi, error) {
	var members []credential.Member
	opts := options.Credential

	var jar http.CookieJar
	cookieScope := credential.Session
	if opts.CookieJarURL != "" {
		fileJar, err := credential.NewFileJar(ctx, opts.CookieJarURL, fs)
		if err != nil {
			return nil, nil, err
		}
		jar = fileJar
		cookieScope = credential.Persistent
	} else {
		memJar, err := cookiejar.New(nil)
		if err != nil {
			return nil, nil, err
		}
		jar = memJar
	}
	cookie, err := credential.NewCookie(jar, opts.CookieURL, opts.CookieName)
	if err != nil {
		return nil, nil, err
	}
	members = append(members, cookieScope(cookie), credential.Session(credential.NewMemory()))

	switch {
	case opts.PersistentURL == "":
	case opts.EncryptionKey != "":
		members = append(members, credential.Persistent(credential.NewSecure(opts.PersistentURL, opts.EncryptionKey)))
	default:
		members = append(members, credential.Persistent(credential.NewFile(opts.PersistentURL, fs)))
	}
	return jar, credential.NewMulti(members...), nil
}
