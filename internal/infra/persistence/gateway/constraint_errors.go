package gateway

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// violation names the constraint class of a failed write, for error details and logs.
func violation(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return "unique_violation"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return "foreign_key_violation"
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return "check_violation"
	case isNotNullViolation(err):
		return "not_null_violation"
	default:
		return ""
	}
}

// isNotNullViolation matches driver messages; not every dialector translates this class.
func isNotNullViolation(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "null value") ||
		strings.Contains(msg, "not null") ||
		strings.Contains(msg, "cannot be null") ||
		strings.Contains(msg, "23502")
}
