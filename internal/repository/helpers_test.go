package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/Leganyst/restaurant-staff/internal/db"
	"github.com/Leganyst/restaurant-staff/internal/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := db.Open(filepath.Join(t.TempDir(), "restaurant.db"), zerolog.Nop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(gormDB); err != nil {
			t.Errorf("close sqlite: %v", err)
		}
	})

	if err := model.CreateSchema(context.Background(), gormDB, model.DialectSQLite); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return gormDB
}

func mustRole(t *testing.T, repos *Repositories, name string) int64 {
	t.Helper()
	role := &model.Role{Name: name, Description: name + " description"}
	if err := repos.Roles.Create(context.Background(), role); err != nil {
		t.Fatalf("seed role %q: %v", name, err)
	}
	return role.ID
}

func mustCook(t *testing.T, repos *Repositories, roleID int64, first, last, birth string) int64 {
	t.Helper()
	cook := &model.Cook{RoleID: roleID, FirstName: first, LastName: last, BirthDate: birth}
	if err := repos.Cooks.Create(context.Background(), cook); err != nil {
		t.Fatalf("seed cook %s %s: %v", first, last, err)
	}
	return cook.ID
}

func countRows(t *testing.T, repos *Repositories, table string) int {
	t.Helper()
	res, err := repos.Crud.SelectAll(context.Background(), table)
	if err != nil {
		t.Fatalf("select all %s: %v", table, err)
	}
	return res.Len()
}

func columnValues(t *testing.T, res *Result, column string) []any {
	t.Helper()
	out := make([]any, 0, res.Len())
	for i := 0; i < res.Len(); i++ {
		v, ok := res.Value(i, column)
		if !ok {
			t.Fatalf("column %q missing from result %v", column, res.Columns)
		}
		out = append(out, v)
	}
	return out
}
