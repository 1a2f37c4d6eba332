package pronouns

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKey is returned by Guess for keys with more than KeyLen fields.
var ErrInvalidKey = errors.New("invalid pronoun key")

// wildcardSegment is the URL placeholder for "any word".
const wildcardSegment = "..."

// Word is one field of a lookup key: either an exact word or a wildcard.
// The zero Word is a wildcard.
type Word struct {
	text  string
	exact bool
}

// Exact returns a Word matching only s.
func Exact(s string) Word {
	return Word{text: s, exact: true}
}

// Any returns a Word matching every word at its position.
func Any() Word {
	return Word{}
}

// IsAny reports whether w is a wildcard.
func (w Word) IsAny() bool {
	return !w.exact
}

// Text returns the exact word and true, or "" and false for a wildcard.
func (w Word) Text() (string, bool) {
	return w.text, w.exact
}

func (w Word) String() string {
	if !w.exact {
		return wildcardSegment
	}
	return w.text
}

// Key is a partial lookup key. Field i constrains form i of a PronounSet
// (subject, object, dependent possessive, independent possessive,
// reflexive).
type Key []Word

// ParseKey splits a URL path such as "they/.../themselves" into a Key.
// The "..." placeholder and empty segments become wildcards; every other
// segment is normalized with NormalizeWord.
func ParseKey(path string) Key {
	path = strings.TrimPrefix(path, "/")
	segments := strings.Split(path, "/")
	key := make(Key, 0, len(segments))
	for _, seg := range segments {
		switch seg {
		case wildcardSegment, "":
			key = append(key, Any())
		default:
			key = append(key, Exact(NormalizeWord(seg)))
		}
	}
	return key
}

// HasWildcard reports whether any field of k is a wildcard.
func (k Key) HasWildcard() bool {
	for _, w := range k {
		if w.IsAny() {
			return true
		}
	}
	return false
}

// Padded extends k with trailing wildcards up to KeyLen, turning a concrete
// prefix like "she/her" into a prefix search. Keys of KeyLen fields or more
// are returned unchanged.
func (k Key) Padded() Key {
	if len(k) >= KeyLen {
		return k
	}
	out := make(Key, KeyLen)
	copy(out, k)
	return out
}

func (k Key) String() string {
	parts := make([]string, len(k))
	for i, w := range k {
		parts[i] = w.String()
	}
	return strings.Join(parts, "/")
}

// expand applies the wildcard padding rule. A short key containing a
// wildcard is widened to KeyLen by inserting extra wildcards in front of its
// first wildcard, so "they/.../themselves" pins the first and last forms.
// A short key with no wildcard is left short and can match nothing, except
// for the empty key, which stands for "everything".
func (k Key) expand() (Key, error) {
	switch {
	case len(k) > KeyLen:
		return nil, fmt.Errorf("%w: %d fields in %q, at most %d allowed", ErrInvalidKey, len(k), k.String(), KeyLen)
	case len(k) == 0:
		return make(Key, KeyLen), nil
	case len(k) == KeyLen:
		return k, nil
	}
	for i, w := range k {
		if !w.IsAny() {
			continue
		}
		out := make(Key, 0, KeyLen)
		out = append(out, k[:i]...)
		out = append(out, make(Key, KeyLen-len(k))...)
		return append(out, k[i:]...), nil
	}
	return k, nil
}
