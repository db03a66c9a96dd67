package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an AppError so callers can react to the failure class
// without matching on message text.
type Kind int

const (
	// KindParse marks malformed or unrecognised user input. The model is never touched.
	KindParse Kind = iota + 1
	// KindCommand marks a failed precondition at execution time.
	KindCommand
	// KindDataConversion marks a persisted document that cannot be turned into a valid model.
	KindDataConversion
	// KindIO marks a file that could not be read or written.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindParse:
		return "parse"
	case KindCommand:
		return "command"
	case KindDataConversion:
		return "data_conversion"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

const MessageInvalidCommandFormat = "Invalid command format! \n%s"

type AppError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string, err error) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func Parse(message string) *AppError {
	return New(KindParse, message, nil)
}

// InvalidFormat is the parse error used when a recognised command has the
// wrong shape. The usage string is echoed back to the user.
func InvalidFormat(usage string, cause error) *AppError {
	return New(KindParse, fmt.Sprintf(MessageInvalidCommandFormat, usage), cause)
}

func Command(message string) *AppError {
	return New(KindCommand, message, nil)
}

func Commandf(format string, args ...any) *AppError {
	return New(KindCommand, fmt.Sprintf(format, args...), nil)
}

func DataConversion(message string, err error) *AppError {
	if err != nil {
		message = message + ": " + err.Error()
	}
	return New(KindDataConversion, message, err)
}

func IO(message string, err error) *AppError {
	if err != nil {
		message = message + ": " + err.Error()
	}
	return New(KindIO, message, err)
}

// HasKind reports whether any AppError in err's chain carries kind.
func HasKind(err error, kind Kind) bool {
	for err != nil {
		var appErr *AppError
		if !errors.As(err, &appErr) {
			return false
		}
		if appErr.Kind == kind {
			return true
		}
		err = appErr.Err
	}
	return false
}

// KindOf returns the kind of the outermost AppError in err's chain, or 0.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return 0
}

func IsParse(err error) bool          { return HasKind(err, KindParse) }
func IsCommand(err error) bool        { return HasKind(err, KindCommand) }
func IsDataConversion(err error) bool { return HasKind(err, KindDataConversion) }
func IsIO(err error) bool             { return HasKind(err, KindIO) }
