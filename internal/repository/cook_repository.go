package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/restaurant-staff/internal/model"
	"github.com/Leganyst/restaurant-staff/internal/sqlerr"
)

type CookRepository interface {
	// Создать повара; для несуществующей роли errs.KindForeignKeyViolation.
	Create(ctx context.Context, cook *model.Cook) error
	GetByID(ctx context.Context, id int64) (*model.Cook, error)
	// Все повара с данной ролью.
	ListByRole(ctx context.Context, roleID int64) ([]model.Cook, error)
	// Список с пагинацией и общим количеством.
	List(ctx context.Context, limit, offset int) ([]model.Cook, int64, error)
}

type GormCookRepository struct {
	db *gorm.DB
}

func NewGormCookRepository(db *gorm.DB) *GormCookRepository {
	return &GormCookRepository{db: db}
}

func (r *GormCookRepository) Create(ctx context.Context, cook *model.Cook) error {
	// Omit the association so a nil or stale Role is never upserted.
	if err := r.db.WithContext(ctx).Omit("Role").Create(cook).Error; err != nil {
		cook.ID = 0
		return sqlerr.Translate(model.TableCooks, err)
	}
	return nil
}

func (r *GormCookRepository) GetByID(ctx context.Context, id int64) (*model.Cook, error) {
	var c model.Cook
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, sqlerr.Translate(model.TableCooks, err)
	}
	return &c, nil
}

func (r *GormCookRepository) ListByRole(ctx context.Context, roleID int64) ([]model.Cook, error) {
	var cooks []model.Cook
	err := r.db.WithContext(ctx).
		Where("role_id = ?", roleID).
		Order("id ASC").
		Find(&cooks).Error
	if err != nil {
		return nil, sqlerr.Translate(model.TableCooks, err)
	}
	return cooks, nil
}

func (r *GormCookRepository) List(ctx context.Context, limit, offset int) ([]model.Cook, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Cook{}).Count(&total).Error; err != nil {
		return nil, 0, sqlerr.Translate(model.TableCooks, err)
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var cooks []model.Cook
	if err := r.db.WithContext(ctx).Order("id ASC").Limit(limit).Offset(offset).Find(&cooks).Error; err != nil {
		return nil, 0, sqlerr.Translate(model.TableCooks, err)
	}
	return cooks, total, nil
}
