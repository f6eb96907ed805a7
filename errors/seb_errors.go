// errors/seb_errors.go
package errors

import "errors"

var (
	ErrNoKeyProvided      = errors.New("At least one key must be provided")
	ErrInvalidRequestData = errors.New("invalid validation request data")
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrPolicyConflict     = errors.New("quiz exam policy conflict")
	ErrInvalidPolicyData  = errors.New("invalid quiz exam policy data")
	ErrDatabaseOperation  = errors.New("database operation failed")
	ErrInternalServer     = errors.New("internal server error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidPagination  = errors.New("invalid pagination parameters")
)
