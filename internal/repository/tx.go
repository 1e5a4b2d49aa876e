package repository

import (
	"context"

	"gorm.io/gorm"
)

// WithTx runs fn inside one transaction. It commits when fn returns nil and
// rolls back when fn returns an error or panics. Repositories built from tx
// inside fn take part in the transaction.
func WithTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}

// Repositories bundles the repositories bound to one handle or transaction.
type Repositories struct {
	Crud  CrudRepository
	Roles RoleRepository
	Cooks CookRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Crud:  NewGormCrudRepository(db),
		Roles: NewGormRoleRepository(db),
		Cooks: NewGormCookRepository(db),
	}
}
