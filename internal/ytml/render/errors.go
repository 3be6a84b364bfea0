package render

import "fmt"

// ValidationError reports a document that violates the input contract: a
// malformed element descriptor, an unsupported value type, content inside a
// void tag, or an unknown template directive. Any ValidationError aborts the
// whole conversion; no partial output is valid.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
