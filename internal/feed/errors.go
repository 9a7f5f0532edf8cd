package feed

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a fetch failed
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	// KindTransport covers connection failures and non-2xx responses
	KindTransport
	// KindDecode covers bodies that are not JSON or do not match the envelope
	KindDecode
	// KindServer covers envelopes whose status code is not the success sentinel
	KindServer
)

// String returns a short name for the kind
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// FetchError is returned by providers and the fetch worker
type FetchError struct {
	Kind     ErrorKind
	Provider string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s error: %v", e.Provider, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps a network failure
func NewTransportError(provider string, err error) error {
	return &FetchError{Kind: KindTransport, Provider: provider, Err: err}
}

// NewDecodeError wraps a malformed body
func NewDecodeError(provider string, err error) error {
	return &FetchError{Kind: KindDecode, Provider: provider, Err: err}
}

// NewServerError reports an envelope status that signals failure
func NewServerError(provider string, format string, args ...any) error {
	return &FetchError{Kind: KindServer, Provider: provider, Err: fmt.Errorf(format, args...)}
}

// KindOf extracts the ErrorKind from err, or KindUnknown
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}
