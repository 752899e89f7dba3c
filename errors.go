package bioapis

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a request failure.
type ErrorKind int

const (
	// KindTransport covers connection, DNS, TLS, and timeout failures —
	// anything where no usable HTTP response was obtained.
	KindTransport ErrorKind = iota
	// KindDecode covers malformed or unexpected response payloads,
	// and failures encoding a request payload.
	KindDecode
	// KindLocalIO covers local failures: gzip decompression, oversized
	// responses, or an identifier too short to build a URL.
	KindLocalIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindLocalIO:
		return "local io"
	}
	return "unknown"
}

// Error is the failure type returned by all network operations in this
// module. It tags the underlying error with the cause category so callers
// can distinguish a flaky connection from a schema mismatch.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Transport wraps err as a transport-level failure.
func Transport(err error) *Error { return &Error{Kind: KindTransport, Err: err} }

// Decode wraps err as a payload encoding/decoding failure.
func Decode(err error) *Error { return &Error{Kind: KindDecode, Err: err} }

// LocalIO wraps err as a local I/O failure.
func LocalIO(err error) *Error { return &Error{Kind: KindLocalIO, Err: err} }

// KindOf reports the kind of err if it is (or wraps) an *Error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// IsTransport reports whether err is a transport-level failure.
func IsTransport(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindTransport
}

// IsDecode reports whether err is a payload decoding failure.
func IsDecode(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindDecode
}

// IsLocalIO reports whether err is a local I/O failure.
func IsLocalIO(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindLocalIO
}
