package patternerr

import "fmt"

// ErrorType defines the category of the error.
type ErrorType string

const (
	TypeUsage ErrorType = "UsageError"
)

// PatternError is the interface for all pattern-matching errors.
type PatternError interface {
	error
	Type() ErrorType
}

// BaseError provides common fields for pattern errors.
type BaseError struct {
	Msg     string
	ErrType ErrorType
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

func (e *BaseError) Type() ErrorType {
	return e.ErrType
}

// RepeatedVariableError reports a pattern that uses the same Variable
// instance at more than one site. It is detected before any structural
// comparison is attempted.
type RepeatedVariableError struct {
	BaseError
	VariableID int
}

func (e *RepeatedVariableError) Error() string {
	return fmt.Sprintf("[%s] variable %d is used more than once in one pattern", e.ErrType, e.VariableID)
}

// NewRepeatedVariableError creates a new RepeatedVariableError.
func NewRepeatedVariableError(variableID int) *RepeatedVariableError {
	return &RepeatedVariableError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf("variable %d repeated", variableID),
			ErrType: TypeUsage,
		},
		VariableID: variableID,
	}
}
