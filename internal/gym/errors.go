package gym

import "errors"

// Failure taxonomy shared by the store and the operation boundary.
var (
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrInvalidFormat       = errors.New("invalid format")
	ErrNotFound            = errors.New("not found")
	ErrStore               = errors.New("store error")
)

// Code returns a stable machine-readable code for err, suitable for API
// responses and metric labels.
func Code(err error) string {
	switch {
	case err == nil:
		return "OK"
	case errors.Is(err, ErrDuplicateKey):
		return "DUPLICATE_KEY"
	case errors.Is(err, ErrForeignKeyViolation):
		return "FOREIGN_KEY_VIOLATION"
	case errors.Is(err, ErrInvalidFormat):
		return "INVALID_FORMAT"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	default:
		return "STORE_ERROR"
	}
}

// Describe turns err into the message shown to an operator.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDuplicateKey):
		return "member ID already exists"
	case errors.Is(err, ErrForeignKeyViolation):
		return "member ID does not exist"
	case errors.Is(err, ErrInvalidFormat), errors.Is(err, ErrNotFound):
		return err.Error()
	default:
		return "an error occurred: " + err.Error()
	}
}
