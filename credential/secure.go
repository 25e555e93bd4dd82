package credential

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/scy"
	_ "github.com/viant/scy/kms/blowfish"
	"golang.org/x/oauth2"
)

// DefaultSecretKey is the scy key used when none is given
const DefaultSecretKey = "blowfish://default"

// Secure persists token encrypted with a scy key
type Secure struct {
	mu     sync.RWMutex
	URL    string
	key    string
	svc    *scy.Service
	fs     afs.Service
	token  *oauth2.Token
	loaded bool
}

func (s *Secure) Lookup(ctx context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		if err := s.load(ctx); err != nil {
			return "", false
		}
	}
	return accessToken(s.token)
}

func (s *Secure) Set(ctx context.Context, token string) error {
	if token == "" {
		return s.Clear(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = NewToken(token)
	s.loaded = true
	payload, err := json.Marshal(fileSnapshot{Token: s.token})
	if err != nil {
		return err
	}
	resource := scy.NewResource(nil, s.URL, s.key)
	if err = s.svc.Store(ctx, scy.NewSecret(payload, resource)); err != nil {
		return fmt.Errorf("failed to store secret %v: %w", s.URL, err)
	}
	return nil
}

func (s *Secure) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = nil
	s.loaded = true
	// scy has no delete, the secret is removed through afs
	ok, err := s.fs.Exists(ctx, s.URL)
	if err != nil || !ok {
		return nil
	}
	if err = s.fs.Delete(ctx, s.URL); err != nil {
		return fmt.Errorf("failed to delete secret %v: %w", s.URL, err)
	}
	return nil
}

func (s *Secure) load(ctx context.Context) error {
	s.token = nil
	ok, err := s.fs.Exists(ctx, s.URL)
	if err != nil {
		return err
	}
	if !ok {
		s.loaded = true
		return nil
	}
	secret, err := s.svc.Load(ctx, scy.NewResource(nil, s.URL, s.key))
	if err != nil {
		return fmt.Errorf("failed to load secret %v: %w", s.URL, err)
	}
	var snap fileSnapshot
	if err = json.Unmarshal([]byte(secret.String()), &snap); err != nil {
		return fmt.Errorf("invalid secret %v: %w", s.URL, err)
	}
	s.token = snap.Token
	s.loaded = true
	return nil
}

// NewSecure creates encrypted store at URL, empty key uses DefaultSecretKey
func NewSecure(URL, key string) *Secure {
	if key == "" {
		key = DefaultSecretKey
	}
	return &Secure{URL: URL, key: key, svc: scy.New(), fs: afs.New()}
}
