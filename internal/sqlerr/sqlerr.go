// Package sqlerr translates database driver errors into categorized
// *errs.Error values.
//
// It understands SQLite extended result codes (mattn/go-sqlite3) and
// Postgres SQLSTATE codes (pgx), and fills table/column details where the
// driver exposes them so messages can name the offending field.
package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/Leganyst/restaurant-staff/internal/errs"
)

// Postgres SQLSTATE codes for integrity violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

// Translate converts err raised while working on table into an *errs.Error.
// nil stays nil and an existing *errs.Error is returned unchanged.
func Translate(table string, err error) error {
	if err == nil {
		return nil
	}

	var appErr *errs.Error
	if errors.As(err, &appErr) {
		return err
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return fromSQLite(table, liteErr)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fromPostgres(table, pgErr)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
		return &errs.Error{
			Kind:    errs.KindNotFound,
			Table:   table,
			Message: fmt.Sprintf("%s not found", entityName(table, "")),
			Err:     err,
		}
	}

	return &errs.Error{Kind: errs.KindOperational, Table: table, Message: "query failed", Err: err}
}

func fromSQLite(table string, src sqlite3.Error) *errs.Error {
	out := &errs.Error{Kind: errs.KindOperational, Table: table, Err: src}

	if src.Code != sqlite3.ErrConstraint {
		out.Message = "query failed"
		return out
	}

	// "UNIQUE constraint failed: roles.nazwa"
	if t, col := constraintTarget(src.Error()); col != "" {
		out.Column = col
		if t != "" {
			out.Table = t
		}
	}

	switch src.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		out.Kind = errs.KindUniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		out.Kind = errs.KindForeignKeyViolation
	case sqlite3.ErrConstraintNotNull:
		out.Kind = errs.KindNotNullViolation
	case sqlite3.ErrConstraintCheck:
		out.Kind = errs.KindCheckViolation
	default:
		out.Kind = errs.KindOperational
	}
	out.Message = friendlyMessage(out)
	return out
}

func fromPostgres(table string, src *pgconn.PgError) *errs.Error {
	out := &errs.Error{
		Kind:   errs.KindOperational,
		Table:  table,
		Column: src.ColumnName,
		Err:    src,
	}
	if src.TableName != "" {
		out.Table = src.TableName
	}

	switch src.Code {
	case pgUniqueViolation:
		out.Kind = errs.KindUniqueViolation
		if out.Column == "" {
			out.Column = columnFromConstraint(src.ConstraintName)
		}
	case pgForeignKeyViolation:
		out.Kind = errs.KindForeignKeyViolation
	case pgNotNullViolation:
		out.Kind = errs.KindNotNullViolation
	case pgCheckViolation:
		out.Kind = errs.KindCheckViolation
	default:
		out.Message = "query failed"
		return out
	}
	out.Message = friendlyMessage(out)
	return out
}

// constraintTarget extracts "table", "column" from SQLite constraint
// messages of the form "<KIND> constraint failed: table.column".
func constraintTarget(msg string) (string, string) {
	_, target, ok := strings.Cut(msg, "constraint failed: ")
	if !ok {
		return "", ""
	}
	// composite constraints list several columns; report the first one
	target, _, _ = strings.Cut(target, ",")
	table, column, ok := strings.Cut(strings.TrimSpace(target), ".")
	if !ok {
		return "", ""
	}
	return table, column
}

// columnFromConstraint handles the Postgres default naming "<table>_<column>_key".
func columnFromConstraint(name string) string {
	name = strings.TrimSuffix(name, "_key")
	if i := strings.LastIndex(name, "_"); i >= 0 {
		return name[i+1:]
	}
	return ""
}

func friendlyMessage(e *errs.Error) string {
	entity := entityName(e.Table, e.Column)

	switch e.Kind {
	case errs.KindUniqueViolation:
		field := humanize(e.Column)
		if field == "" {
			field = "identifier"
		}
		return fmt.Sprintf("a %s with this %s already exists", entity, field)
	case errs.KindForeignKeyViolation:
		// SQLite does not name the column for foreign key failures
		if e.Column == "" {
			return "a referenced record does not exist"
		}
		return fmt.Sprintf("the referenced %s does not exist", entity)
	case errs.KindNotNullViolation:
		field := humanize(e.Column)
		if field == "" {
			field = "field"
		}
		return fmt.Sprintf("%s is required", field)
	case errs.KindCheckViolation:
		return "one or more values do not meet required conditions"
	default:
		return "query failed"
	}
}

// entityName prefers the referenced entity of a "*_id" column, then the
// singular table name.
func entityName(table, column string) string {
	if strings.HasSuffix(strings.ToLower(column), "_id") {
		return humanize(strings.TrimSuffix(strings.ToLower(column), "_id"))
	}
	if table != "" {
		return humanize(strings.TrimSuffix(table, "s"))
	}
	return "record"
}

func humanize(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}
