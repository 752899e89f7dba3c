package bioapis

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindStrings(t *testing.T) {
	cases := []struct {
		kind ErrorKind
		want string
	}{
		{KindTransport, "transport"},
		{KindDecode, "decode"},
		{KindLocalIO, "local io"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("kind %d: expected %q, got %q", tc.kind, tc.want, got)
		}
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := Transport(fmt.Errorf("GET http://example.com: %w", inner))

	if !errors.Is(err, inner) {
		t.Error("expected the wrapped error to be reachable via errors.Is")
	}
}

func TestKindPredicates(t *testing.T) {
	// Predicates must see through fmt.Errorf wrapping, since service
	// packages add context to client errors.
	wrapped := fmt.Errorf("name lookup: %w", Decode(errors.New("unexpected JSON shape")))

	if !IsDecode(wrapped) {
		t.Error("expected IsDecode for a wrapped decode error")
	}
	if IsTransport(wrapped) {
		t.Error("IsTransport must not match a decode error")
	}
	if IsLocalIO(wrapped) {
		t.Error("IsLocalIO must not match a decode error")
	}

	if k, ok := KindOf(errors.New("plain")); ok {
		t.Errorf("KindOf on a plain error must report false, got kind %v", k)
	}
}
