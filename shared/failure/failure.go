package failure

import (
	"errors"
)

const (
	CodeInternal      = 1
	CodeInvalidData   = 2
	CodeInvalidConfig = 3
)

// Failure is a categorized error whose code doubles as the process exit status.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ErrMissingColumn = &Failure{Code: CodeInvalidData, Message: "missing required column"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// InvalidData returns a new Failure for input rows that cannot be converted or validated.
func InvalidData(err error) error {
	if err != nil {
		return &Failure{
			Code:    CodeInvalidData,
			Message: err.Error(),
		}
	}

	return nil
}

// InvalidDataFromString returns a new Failure for invalid input with message set from string.
func InvalidDataFromString(msg string) error {
	return &Failure{
		Code:    CodeInvalidData,
		Message: msg,
	}
}

// InvalidConfig returns a new Failure for unusable configuration.
func InvalidConfig(msg string) error {
	return &Failure{
		Code:    CodeInvalidConfig,
		Message: msg,
	}
}

// Internal returns a new Failure with the generic code and message derived from an error interface.
func Internal(err error) error {
	if err != nil {
		return &Failure{
			Code:    CodeInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// GetCode returns the failure code of an error, or CodeInternal when it carries none.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return CodeInternal
}

// ExitCode maps an error to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	return GetCode(err)
}
