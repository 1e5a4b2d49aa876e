package model

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// CreateSchema создаёт таблицы реестра, если их ещё нет.
// Statements use CREATE TABLE IF NOT EXISTS, so running it again is a no-op.
func CreateSchema(ctx context.Context, db *gorm.DB, dialect string) error {
	for _, t := range Tables {
		stmt, ok := t.DDL(dialect)
		if !ok {
			return fmt.Errorf("create schema: no %s DDL for table %s", dialect, t.Name)
		}
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("create table %s: %w", t.Name, err)
		}
	}
	return nil
}

// DialectOf returns the registry dialect matching db's gorm dialector.
func DialectOf(db *gorm.DB) string {
	if db.Dialector.Name() == DialectPostgres {
		return DialectPostgres
	}
	return DialectSQLite
}
