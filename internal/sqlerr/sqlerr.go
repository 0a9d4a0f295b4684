// Package sqlerr classifies constraint violations raised by postgres (pgx)
// and sqlite (go-sqlite3) into one set of codes, so services can tell a
// duplicate email from a failed CHECK without knowing the engine.
package sqlerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	CheckViolation
	NotNullViolation
)

func (c Code) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case CheckViolation:
		return "check_violation"
	case NotNullViolation:
		return "not_null_violation"
	default:
		return "other"
	}
}

// SQLSTATE codes of class 23 (integrity constraint violation).
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

// Error is a storage error with whatever metadata the engine reported.
// Sqlite only names the constraint (CHECK) or table.column (UNIQUE, NOT NULL).
type Error struct {
	Code       Code
	Table      string
	Column     string
	Constraint string
	Message    string

	driverErr error
}

func (e *Error) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s (%s): %s", e.Code, e.Constraint, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// Classify returns the constraint error carried by err, or nil when err
// did not come from a recognised driver.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var converted *Error
	if errors.As(err, &converted) {
		return converted
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fromPg(pgErr)
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return fromSQLite(liteErr)
	}

	return nil
}

// ErrCode reports the Code of err, Other when it is not a constraint error.
func ErrCode(err error) Code {
	if e := Classify(err); e != nil {
		return e.Code
	}
	return Other
}

func fromPg(src *pgconn.PgError) *Error {
	code := Other
	switch src.Code {
	case pgUniqueViolation:
		code = UniqueViolation
	case pgForeignKeyViolation:
		code = ForeignKeyViolation
	case pgCheckViolation:
		code = CheckViolation
	case pgNotNullViolation:
		code = NotNullViolation
	}

	column := src.ColumnName
	if column == "" && code == UniqueViolation {
		column = keyColumn(src.Detail)
	}

	return &Error{
		Code:       code,
		Table:      src.TableName,
		Column:     column,
		Constraint: src.ConstraintName,
		Message:    src.Message,
		driverErr:  src,
	}
}

// keyColumn pulls "email" out of `Key (email)=(a@b.c) already exists.`.
// Composite keys yield "".
func keyColumn(detail string) string {
	rest, ok := strings.CutPrefix(detail, "Key (")
	if !ok {
		return ""
	}
	column, _, ok := strings.Cut(rest, ")=")
	if !ok || strings.Contains(column, ",") {
		return ""
	}
	return column
}

func fromSQLite(src sqlite3.Error) *Error {
	out := &Error{Code: Other, Message: src.Error(), driverErr: src}
	if src.Code != sqlite3.ErrConstraint {
		return out
	}

	switch src.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		out.Code = UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		out.Code = ForeignKeyViolation
	case sqlite3.ErrConstraintCheck:
		out.Code = CheckViolation
	case sqlite3.ErrConstraintNotNull:
		out.Code = NotNullViolation
	}

	// "CHECK constraint failed: weight_range"
	// "UNIQUE constraint failed: users.email"
	_, detail, found := strings.Cut(out.Message, "failed: ")
	if !found {
		return out
	}
	detail = strings.TrimSpace(detail)
	if table, column, ok := strings.Cut(detail, "."); ok && out.Code != CheckViolation {
		out.Table = table
		out.Column = column
		return out
	}
	out.Constraint = detail
	return out
}

// UserMessage phrases the violation for API clients without leaking SQL.
func UserMessage(e *Error) string {
	subject := humanize(e.Column)
	if subject == "" {
		subject = humanize(strings.TrimSuffix(e.Constraint, "_range"))
	}

	switch e.Code {
	case UniqueViolation:
		if subject != "" {
			return fmt.Sprintf("A record with this %s already exists", subject)
		}
		return "A record with this identifier already exists"
	case ForeignKeyViolation:
		return "The referenced record does not exist"
	case CheckViolation:
		if subject != "" {
			return fmt.Sprintf("The %s value is not allowed", subject)
		}
		return "One or more values are not allowed"
	case NotNullViolation:
		if subject != "" {
			return fmt.Sprintf("The %s is required", subject)
		}
		return "A required value is missing"
	default:
		return "An error occurred while processing your request"
	}
}

func humanize(s string) string {
	s = strings.TrimPrefix(s, "valid_")
	return strings.ReplaceAll(s, "_", " ")
}
