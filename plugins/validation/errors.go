package validation

import "fmt"

// UnknownValidatorError is returned when a validator tag has no entry in the
// schema's validator table.
type UnknownValidatorError struct {
	Name string
}

func (e *UnknownValidatorError) Error() string {
	return fmt.Sprintf("validation: no validator registered under %q", e.Name)
}
