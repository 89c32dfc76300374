package taxonomy

import "fmt"

// ErrorKind classifies the failures the aliquot tool can report.
type ErrorKind int

// Error kind constants.
const (
	// InvalidArg is a malformed or missing command line argument.
	InvalidArg ErrorKind = iota + 1

	// InvalidRange is a range whose end lies before its start.
	InvalidRange

	// Conversion is a string that is not an unsigned integer of the
	// configured width.
	Conversion

	// Overflow is a divisor sum exceeding the width's maximum.
	Overflow
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidArg:
		return "Invalid argument"
	case InvalidRange:
		return "Invalid range"
	case Conversion:
		return "Conversion error"
	case Overflow:
		return "Overflow error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a value-carrying error: a kind plus a descriptive message.
type Error struct {
	Kind ErrorKind
	Msg  string
}

// Sentinels for errors.Is. Any *Error of the same kind matches.
var (
	ErrInvalidArg   = &Error{Kind: InvalidArg}
	ErrInvalidRange = &Error{Kind: InvalidRange}
	ErrConversion   = &Error{Kind: Conversion}
	ErrOverflow     = &Error{Kind: Overflow}
)

// Errorf builds an *Error of the given kind with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is matches sentinels (errors with an empty message) by kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Kind == e.Kind
}
