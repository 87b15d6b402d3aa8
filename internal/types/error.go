package types

import "fmt"

// CustomError carries an HTTP status code and a machine-readable type
// alongside the message so the central error handler can map it.
type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewCustomError builds a CustomError with a formatted message.
func NewCustomError(code int, errType string, format string, args ...interface{}) *CustomError {
	return &CustomError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Type:    errType,
	}
}
