package api

// Kind classifies every way a remote call can fail. The set is closed:
// the command layer switches on it to pick a message label and an exit
// code, and anything the client returns is guaranteed to carry one of
// these kinds.
type Kind int

const (
	// KindNetwork covers connectivity, transport, and malformed
	// transport-level responses (including unexpected status codes).
	KindNetwork Kind = iota

	// KindValidation covers payload shape violations: 400 responses and
	// success bodies missing required fields.
	KindValidation

	// KindAuthentication means the API rejected the token (403).
	KindAuthentication

	// KindServer means the API failed internally (5xx).
	KindServer
)

// String returns the human label for a kind.
func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is a classified API failure. Exactly one Kind is active per
// failure; the client never retries or combines them.
type Error struct {
	Kind   Kind
	Detail string
	Cause  error
}

// Error returns the detail string.
func (e *Error) Error() string {
	return e.Detail
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func wrapError(kind Kind, detail string, cause error) *Error {
	return &Error{Kind: kind, Detail: detail, Cause: cause}
}
