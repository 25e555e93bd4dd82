package credential

import (
	"context"
	"errors"
)

// Scope defines how long a member keeps a token
type Scope int

const (
	// ScopeSession members lose token with the process
	ScopeSession Scope = iota
	// ScopePersistent members keep token across restarts
	ScopePersistent
)

// Member represents multi store member
type Member struct {
	Store Store
	Scope Scope
}

// Session returns session scoped member
func Session(store Store) Member {
	return Member{Store: store, Scope: ScopeSession}
}

// Persistent returns persistent member
func Persistent(store Store) Member {
	return Member{Store: store, Scope: ScopePersistent}
}

// Multi replicates token across members, lookup follows member order
type Multi struct {
	members []Member
}

func (m *Multi) Lookup(ctx context.Context) (string, bool) {
	for _, member := range m.members {
		if token, ok := member.Store.Lookup(ctx); ok {
			return token, true
		}
	}
	return "", false
}

// Set writes token to every member
func (m *Multi) Set(ctx context.Context, token string) error {
	return m.SetScoped(ctx, token, ScopePersistent)
}

// SetScoped writes token to members within scope; ScopeSession also clears persistent members
// so that the token does not outlive the session
func (m *Multi) SetScoped(ctx context.Context, token string, scope Scope) error {
	var errs []error
	for _, member := range m.members {
		var err error
		if member.Scope <= scope {
			err = member.Store.Set(ctx, token)
		} else {
			err = member.Store.Clear(ctx)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Multi) Clear(ctx context.Context) error {
	var errs []error
	for _, member := range m.members {
		if err := member.Store.Clear(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Members returns members
func (m *Multi) Members() []Member {
	return m.members
}

// NewMulti creates multi store
func NewMulti(members ...Member) *Multi {
	ret := &Multi{}
	for _, member := range members {
		if member.Store == nil {
			continue
		}
		ret.members = append(ret.members, member)
	}
	return ret
}
