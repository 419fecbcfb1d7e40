package operation

import "fmt"

// Kind identifies why a brightness change failed.
type Kind int

const (
	MissingArgument Kind = iota + 1
	InvalidBrightness
	RemoteCallFailed
)

func (k Kind) String() string {
	switch k {
	case MissingArgument:
		return "missing argument"
	case InvalidBrightness:
		return "invalid brightness"
	case RemoteCallFailed:
		return "remote call failed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is returned by every operation in this package. Err holds the
// underlying cause and is nil for MissingArgument.
type Error struct {
	Kind Kind
	Err  error
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrMissingArgument   = &Error{Kind: MissingArgument}
	ErrInvalidBrightness = &Error{Kind: InvalidBrightness}
	ErrRemoteCallFailed  = &Error{Kind: RemoteCallFailed}
)

func (e *Error) Error() string {
	switch e.Kind {
	case MissingArgument:
		return "Missing Brightness Argument. Usage: bright <u32>"
	case InvalidBrightness:
		return fmt.Sprintf("Invalid Brightness Value %v", e.Err)
	case RemoteCallFailed:
		return fmt.Sprintf("Dbus error: %v", e.Err)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Err == nil && t.Kind == e.Kind
}
