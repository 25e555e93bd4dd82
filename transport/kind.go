package transport

import (
	"fmt"
	"strings"
)

// Kind defines how response body is surfaced to a caller
type Kind int

const (
	// KindJSON resolves with decoded payload
	KindJSON Kind = iota
	// KindBinary resolves with the whole response envelope
	KindBinary
)

func (k Kind) String() string {
	switch k {
	case KindBinary:
		return "binary"
	default:
		return "json"
	}
}

// ParseKind parses kind name, blob is accepted as binary alias
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return KindJSON, nil
	case "binary", "blob":
		return KindBinary, nil
	}
	return KindJSON, fmt.Errorf("unsupported response kind: %v", name)
}
