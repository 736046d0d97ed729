package resource

import (
	"net/url"
	"strings"
)

// Key identifies a record on the server. Composite keys hold their components in path order.
type Key []string

// ParseKey splits a "/"-separated key, eg. "STU1/FEE2".
func ParseKey(s string) Key {
	s = strings.Trim(s, "/")
	if s == "" {
		return nil
	}
	return strings.Split(s, "/")
}

// Path renders the key as escaped URL path segments.
func (k Key) Path() string {
	segs := make([]string, len(k))
	for i, s := range k {
		segs[i] = url.PathEscape(s)
	}
	return strings.Join(segs, "/")
}

func (k Key) String() string {
	return strings.Join(k, "/")
}

// IsZero reports whether the key has no usable component.
func (k Key) IsZero() bool {
	for _, s := range k {
		if s != "" {
			return false
		}
	}
	return true
}

func (k Key) Equal(other Key) bool {
	if len(k) != len(other) {
		return false
	}
	for i := range k {
		if k[i] != other[i] {
			return false
		}
	}
	return true
}
