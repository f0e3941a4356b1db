package ccli

import "errors"

var (
	// ErrNilRoot is returned when a parse is attempted without a root command.
	ErrNilRoot = errors.New("root command is nil")
	// ErrNoProgramName is returned when the token list does not even hold the program name.
	ErrNoProgramName = errors.New("no tokens: expected at least the program name")
	// ErrNotParsed is returned by [Run] when [Parse] has not completed on the root command.
	ErrNotParsed = errors.New("command has not been parsed")
)

// NewError creates a new error with the given error code and error.
func NewError(code ErrorCode, err error) error {
	return &Error{code: code, err: err}
}

// ErrorCode represents an error code for a specific error type.
type ErrorCode int

const (
	// ErrPrecondition marks a malformed call, rejected before any state was changed.
	ErrPrecondition ErrorCode = iota + 1
	// ErrDuplicateName marks sibling commands or options sharing a name. Only reported in strict
	// mode.
	ErrDuplicateName
	// ErrDanglingOption marks a value-taking option given as the last token. Only reported in
	// strict mode.
	ErrDanglingOption
)

func (c ErrorCode) String() string {
	return convertErrorCode(c)
}

func convertErrorCode(code ErrorCode) string {
	switch code {
	case ErrPrecondition:
		return "precondition violated"
	case ErrDuplicateName:
		return "duplicate name"
	case ErrDanglingOption:
		return "dangling option"
	default:
		return "unknown error"
	}
}

// Error represents an error with an error code and an underlying error.
type Error struct {
	code ErrorCode
	err  error
}

// Code returns the error code.
func (e *Error) Code() ErrorCode {
	return e.code
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.err == nil {
		return convertErrorCode(e.code) + ": <nil>"
	}
	return convertErrorCode(e.code) + ": " + e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// IsCode reports whether any error in err's chain is an [*Error] with the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.code == code
}
