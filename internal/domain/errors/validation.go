package errors

import (
	"net/http"
	"sort"
	"strings"
)

// Form field names shared by the usecases and the HTML forms.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldVerify   = "verify"
	FieldEmail    = "email"
	FieldSubject  = "subject"
	FieldContent  = "content"
	FieldForm     = "form"
)

// ErrorKind classifies a user-correctable input error.
type ErrorKind int

const (
	// KindShape is a value that does not match the field's format rules.
	KindShape ErrorKind = iota + 1
	// KindMismatch is a password confirmation that differs from the password.
	KindMismatch
	// KindConflict is a value that collides with an existing record.
	KindConflict
	// KindCredentials is a failed login.
	KindCredentials
)

func (k ErrorKind) String() string {
	switch k {
	case KindShape:
		return "shape"
	case KindMismatch:
		return "mismatch"
	case KindConflict:
		return "conflict"
	case KindCredentials:
		return "credentials"
	default:
		return "unknown"
	}
}

// FieldError is one message bound to one form field.
type FieldError struct {
	Field   string
	Kind    ErrorKind
	Message string
}

// ValidationErrors maps a form field to its error. Checks add to it
// independently so every failing field is reported in a single response.
type ValidationErrors map[string]FieldError

// NewValidationErrors returns an empty, writable set.
func NewValidationErrors() ValidationErrors {
	return make(ValidationErrors)
}

// Add records an error for field unless one is already present.
func (v ValidationErrors) Add(field string, kind ErrorKind, message string) {
	if _, exists := v[field]; exists {
		return
	}
	v[field] = FieldError{Field: field, Kind: kind, Message: message}
}

// Has reports whether field failed.
func (v ValidationErrors) Has(field string) bool {
	_, ok := v[field]

	return ok
}

// HasKind reports whether field failed with the given kind.
func (v ValidationErrors) HasKind(field string, kind ErrorKind) bool {
	fe, ok := v[field]

	return ok && fe.Kind == kind
}

// Messages flattens the set for template rendering.
func (v ValidationErrors) Messages() map[string]string {
	out := make(map[string]string, len(v))
	for field, fe := range v {
		out[field] = fe.Message
	}

	return out
}

// Err returns v as an error, or nil when nothing failed.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}

	return v
}

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field].Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) HTTPCode() int {
	return http.StatusBadRequest
}

func (v ValidationErrors) ErrorCode() string {
	return "VALIDATION_FAILED"
}

func (v ValidationErrors) Message() string {
	return "Please correct the highlighted fields."
}

func (v ValidationErrors) Details() string {
	return v.Error()
}
