package repository

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"github.com/Leganyst/restaurant-staff/internal/sqlerr"
)

// Row is one result tuple, values in Result.Columns order.
type Row []any

// Result holds the rows of a generic select.
type Result struct {
	Columns []string
	Rows    []Row
}

// Len returns the number of rows.
func (r *Result) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Rows)
}

// Value returns the value of column in row i.
func (r *Result) Value(i int, column string) (any, bool) {
	if r == nil || i < 0 || i >= len(r.Rows) {
		return nil, false
	}
	for j, c := range r.Columns {
		if c == column {
			return r.Rows[i][j], true
		}
	}
	return nil, false
}

// CrudRepository is table-agnostic CRUD over the registered schema. Table and
// column names are checked against the registry before SQL is built.
type CrudRepository interface {
	// Выполнить DDL (CREATE TABLE IF NOT EXISTS ...).
	ExecuteDDL(ctx context.Context, stmt string) error
	// Все строки таблицы, порядок не гарантирован.
	SelectAll(ctx context.Context, table string) (*Result, error)
	// Строки, где все колонки предиката равны значениям.
	SelectBy(ctx context.Context, table string, where Predicate) (*Result, error)
	// Обновить колонки строки по id; возвращает число изменённых строк.
	Update(ctx context.Context, table string, id int64, fields Fields) (int64, error)
	// Удалить строки по предикату.
	DeleteWhere(ctx context.Context, table string, where Predicate) (int64, error)
	// Удалить все строки.
	DeleteAll(ctx context.Context, table string) (int64, error)
}

type GormCrudRepository struct {
	db *gorm.DB
}

func NewGormCrudRepository(db *gorm.DB) *GormCrudRepository {
	return &GormCrudRepository{db: db}
}

func (r *GormCrudRepository) ExecuteDDL(ctx context.Context, stmt string) error {
	if err := r.db.WithContext(ctx).Exec(stmt).Error; err != nil {
		return sqlerr.Translate("", err)
	}
	return nil
}

func (r *GormCrudRepository) SelectAll(ctx context.Context, table string) (*Result, error) {
	t, err := lookupTable(table)
	if err != nil {
		return nil, err
	}
	return r.query(ctx, t.Name, selectAllSQL(t))
}

func (r *GormCrudRepository) SelectBy(ctx context.Context, table string, where Predicate) (*Result, error) {
	t, err := lookupTable(table)
	if err != nil {
		return nil, err
	}
	stmt, args, err := selectWhereSQL(t, where)
	if err != nil {
		return nil, err
	}
	return r.query(ctx, t.Name, stmt, args...)
}

// Update does not treat zero affected rows as an error: updating a missing
// id returns 0, nil.
func (r *GormCrudRepository) Update(ctx context.Context, table string, id int64, fields Fields) (int64, error) {
	t, err := lookupTable(table)
	if err != nil {
		return 0, err
	}
	stmt, args, err := updateSQL(t, id, fields)
	if err != nil {
		return 0, err
	}
	return r.exec(ctx, t.Name, stmt, args...)
}

func (r *GormCrudRepository) DeleteWhere(ctx context.Context, table string, where Predicate) (int64, error) {
	t, err := lookupTable(table)
	if err != nil {
		return 0, err
	}
	stmt, args, err := deleteWhereSQL(t, where)
	if err != nil {
		return 0, err
	}
	return r.exec(ctx, t.Name, stmt, args...)
}

func (r *GormCrudRepository) DeleteAll(ctx context.Context, table string) (int64, error) {
	t, err := lookupTable(table)
	if err != nil {
		return 0, err
	}
	return r.exec(ctx, t.Name, deleteAllSQL(t))
}

func (r *GormCrudRepository) exec(ctx context.Context, table, stmt string, args ...any) (int64, error) {
	res := r.db.WithContext(ctx).Exec(stmt, args...)
	if res.Error != nil {
		return 0, sqlerr.Translate(table, res.Error)
	}
	return res.RowsAffected, nil
}

func (r *GormCrudRepository) query(ctx context.Context, table, stmt string, args ...any) (*Result, error) {
	rows, err := r.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, sqlerr.Translate(table, err)
	}
	defer rows.Close()

	res, err := scanRows(rows)
	if err != nil {
		return nil, sqlerr.Translate(table, err)
	}
	return res, nil
}

func scanRows(rows *sql.Rows) (*Result, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	res := &Result{Columns: cols, Rows: []Row{}}
	for rows.Next() {
		row := make(Row, len(cols))
		ptrs := make([]any, len(cols))
		for i := range row {
			ptrs[i] = &row[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		for i, v := range row {
			// some drivers hand TEXT back as []byte
			if b, ok := v.([]byte); ok {
				row[i] = string(b)
			}
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
