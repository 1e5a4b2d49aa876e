package repository

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Leganyst/restaurant-staff/internal/errs"
	"github.com/Leganyst/restaurant-staff/internal/model"
)

// Predicate is a conjunction of column = value tests.
type Predicate map[string]any

// Fields maps columns to their new values in an update.
type Fields map[string]any

// Identifiers are only interpolated after they were found in the schema
// registry; values always travel as bind parameters.

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func lookupTable(name string) (model.Table, error) {
	t, ok := model.LookupTable(name)
	if !ok {
		return model.Table{}, errs.InvalidArgument(name, errs.ErrUnknownTable, fmt.Sprintf("unknown table %q", name))
	}
	return t, nil
}

// sortedColumns validates keys against t and returns them sorted so the
// generated SQL text is stable across calls.
func sortedColumns(t model.Table, m map[string]any) ([]string, error) {
	cols := make([]string, 0, len(m))
	var unknown []string
	for c := range m {
		if !t.HasColumn(c) {
			unknown = append(unknown, c)
			continue
		}
		cols = append(cols, c)
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, errs.InvalidArgument(t.Name, errs.ErrUnknownColumn,
			fmt.Sprintf("unknown column %s", strings.Join(unknown, ", ")), unknown...)
	}
	sort.Strings(cols)
	return cols, nil
}

// whereClause builds `"a" = ? AND "b" = ?` and its arguments.
func whereClause(t model.Table, where Predicate) (string, []any, error) {
	if len(where) == 0 {
		return "", nil, errs.InvalidArgument(t.Name, errs.ErrEmptyPredicate, "empty predicate")
	}

	cols, err := sortedColumns(t, where)
	if err != nil {
		return "", nil, err
	}

	parts := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols))
	for _, c := range cols {
		parts = append(parts, quoteIdent(c)+" = ?")
		args = append(args, where[c])
	}
	return strings.Join(parts, " AND "), args, nil
}

func selectAllSQL(t model.Table) string {
	return "SELECT * FROM " + quoteIdent(t.Name)
}

func selectWhereSQL(t model.Table, where Predicate) (string, []any, error) {
	cond, args, err := whereClause(t, where)
	if err != nil {
		return "", nil, err
	}
	return selectAllSQL(t) + " WHERE " + cond, args, nil
}

// updateSQL builds `UPDATE "t" SET "a" = ?, "b" = ? WHERE "id" = ?`; the
// id is the last argument.
func updateSQL(t model.Table, id int64, fields Fields) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, errs.InvalidArgument(t.Name, errs.ErrNoFields, "nothing to update")
	}
	if _, ok := fields[model.ColumnID]; ok {
		return "", nil, errs.InvalidArgument(t.Name, nil, "id cannot be updated", model.ColumnID)
	}

	cols, err := sortedColumns(t, fields)
	if err != nil {
		return "", nil, err
	}

	sets := make([]string, 0, len(cols))
	args := make([]any, 0, len(cols)+1)
	for _, c := range cols {
		sets = append(sets, quoteIdent(c)+" = ?")
		args = append(args, fields[c])
	}
	args = append(args, id)

	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?",
		quoteIdent(t.Name), strings.Join(sets, ", "), quoteIdent(model.ColumnID))
	return stmt, args, nil
}

func deleteWhereSQL(t model.Table, where Predicate) (string, []any, error) {
	cond, args, err := whereClause(t, where)
	if err != nil {
		return "", nil, err
	}
	return deleteAllSQL(t) + " WHERE " + cond, args, nil
}

func deleteAllSQL(t model.Table) string {
	return "DELETE FROM " + quoteIdent(t.Name)
}
