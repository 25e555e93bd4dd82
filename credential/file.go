package credential

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/viant/afs"
	"golang.org/x/oauth2"
)

const tokenFileMode = 0o600

// File persists token as JSON snapshot at afs URL, it survives process restarts.
type File struct {
	mu     sync.RWMutex
	URL    string
	fs     afs.Service
	token  *oauth2.Token
	loaded bool
}

type fileSnapshot struct {
	Token *oauth2.Token `json:"token"`
}

func (f *File) Lookup(ctx context.Context) (string, bool) {
	f.mu.RLock()
	if f.loaded {
		defer f.mu.RUnlock()
		return accessToken(f.token)
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.loaded {
		if err := f.load(ctx); err != nil {
			return "", false
		}
	}
	return accessToken(f.token)
}

func (f *File) Set(ctx context.Context, token string) error {
	if token == "" {
		return f.Clear(ctx)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = NewToken(token)
	f.loaded = true
	return f.save(ctx)
}

func (f *File) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = nil
	f.loaded = true
	ok, err := f.fs.Exists(ctx, f.URL)
	if err != nil || !ok {
		return nil
	}
	if err = f.fs.Delete(ctx, f.URL); err != nil {
		return fmt.Errorf("failed to delete token %v: %w", f.URL, err)
	}
	return nil
}

// Load reloads token from URL
func (f *File) Load(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load(ctx)
}

func (f *File) save(ctx context.Context) error {
	data, err := json.MarshalIndent(fileSnapshot{Token: f.token}, "", "  ")
	if err != nil {
		return err
	}
	if err = f.fs.Upload(ctx, f.URL, tokenFileMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to store token %v: %w", f.URL, err)
	}
	return nil
}

func (f *File) load(ctx context.Context) error {
	f.token = nil
	ok, err := f.fs.Exists(ctx, f.URL)
	if err != nil {
		return err
	}
	if !ok {
		f.loaded = true
		return nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return fmt.Errorf("failed to load token %v: %w", f.URL, err)
	}
	var snap fileSnapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("invalid token snapshot %v: %w", f.URL, err)
	}
	f.token = snap.Token
	f.loaded = true
	return nil
}

// NewFile creates a store persisting token at URL, nil fs uses afs.New()
func NewFile(URL string, fs afs.Service) *File {
	if fs == nil {
		fs = afs.New()
	}
	return &File{URL: URL, fs: fs}
}
