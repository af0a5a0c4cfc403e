package errors

import "net/http"

// CorruptCredentialError reports a stored password hash that cannot be parsed.
// It is an integrity failure of a single record: log it for an operator, never
// echo it to the client and never treat it as a wrong password.
type CorruptCredentialError struct {
	Reason string
}

// NewCorruptCredentialError builds the error with a short, hash-free reason.
func NewCorruptCredentialError(reason string) *CorruptCredentialError {
	return &CorruptCredentialError{Reason: reason}
}

func (e *CorruptCredentialError) Error() string {
	return "corrupt stored credential: " + e.Reason
}

func (e *CorruptCredentialError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *CorruptCredentialError) ErrorCode() string {
	return "CORRUPT_CREDENTIAL"
}

func (e *CorruptCredentialError) Message() string {
	return ErrInternalError.Message()
}

func (e *CorruptCredentialError) Details() string {
	return ""
}
