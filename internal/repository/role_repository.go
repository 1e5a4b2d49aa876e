package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/restaurant-staff/internal/model"
	"github.com/Leganyst/restaurant-staff/internal/sqlerr"
)

type RoleRepository interface {
	// Создать роль; при дубликате имени errs.KindUniqueViolation и ID == 0.
	Create(ctx context.Context, role *model.Role) error
	GetByID(ctx context.Context, id int64) (*model.Role, error)
	// Роли с точным совпадением имени (0 или 1 из-за UNIQUE).
	FindByName(ctx context.Context, name string) ([]model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
}

type GormRoleRepository struct {
	db *gorm.DB
}

func NewGormRoleRepository(db *gorm.DB) *GormRoleRepository {
	return &GormRoleRepository{db: db}
}

func (r *GormRoleRepository) Create(ctx context.Context, role *model.Role) error {
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		role.ID = 0
		return sqlerr.Translate(model.TableRoles, err)
	}
	return nil
}

func (r *GormRoleRepository) GetByID(ctx context.Context, id int64) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).First(&role, "id = ?", id).Error; err != nil {
		return nil, sqlerr.Translate(model.TableRoles, err)
	}
	return &role, nil
}

func (r *GormRoleRepository) FindByName(ctx context.Context, name string) ([]model.Role, error) {
	var roles []model.Role
	if err := r.db.WithContext(ctx).Where("nazwa = ?", name).Find(&roles).Error; err != nil {
		return nil, sqlerr.Translate(model.TableRoles, err)
	}
	return roles, nil
}

func (r *GormRoleRepository) List(ctx context.Context) ([]model.Role, error) {
	var roles []model.Role
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error; err != nil {
		return nil, sqlerr.Translate(model.TableRoles, err)
	}
	return roles, nil
}
