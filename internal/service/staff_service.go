package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/restaurant-staff/internal/model"
	"github.com/Leganyst/restaurant-staff/internal/repository"
	"github.com/Leganyst/restaurant-staff/internal/validation"
)

// StaffService управляет ролями и поварами кухни.
type StaffService struct {
	db *gorm.DB

	roleRepo repository.RoleRepository
	cookRepo repository.CookRepository
}

func NewStaffService(
	db *gorm.DB,
	roleRepo repository.RoleRepository,
	cookRepo repository.CookRepository,
) *StaffService {
	return &StaffService{
		db:       db,
		roleRepo: roleRepo,
		cookRepo: cookRepo,
	}
}

// AddRole inserts a role and returns its id. On any error the id is 0 and
// must not be used; a taken name yields errs.KindUniqueViolation.
func (s *StaffService) AddRole(ctx context.Context, name, description string) (int64, error) {
	role := &model.Role{Name: name, Description: description}
	if err := validation.Struct(model.TableRoles, role); err != nil {
		return 0, err
	}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return 0, err
	}
	return role.ID, nil
}

// AddCook inserts one cook and returns its id.
func (s *StaffService) AddCook(ctx context.Context, roleID int64, firstName, lastName, birthDate string) (int64, error) {
	cook := &model.Cook{
		RoleID:    roleID,
		FirstName: firstName,
		LastName:  lastName,
		BirthDate: birthDate,
	}
	if err := validation.Struct(model.TableCooks, cook); err != nil {
		return 0, err
	}
	if err := s.cookRepo.Create(ctx, cook); err != nil {
		return 0, err
	}
	return cook.ID, nil
}

// HireCooks inserts cooks as one unit of work: either all of them are
// committed or none. IDs are filled in on success.
func (s *StaffService) HireCooks(ctx context.Context, cooks []*model.Cook) error {
	for _, c := range cooks {
		if err := validation.Struct(model.TableCooks, c); err != nil {
			return err
		}
	}

	err := repository.WithTx(ctx, s.db, func(tx *gorm.DB) error {
		cookRepo := repository.NewGormCookRepository(tx)
		for _, c := range cooks {
			if err := cookRepo.Create(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// rolled back: ids handed out inside the transaction are void
		for _, c := range cooks {
			c.ID = 0
		}
		return err
	}
	return nil
}

// RoleByName returns the roles named exactly name.
func (s *StaffService) RoleByName(ctx context.Context, name string) ([]model.Role, error) {
	return s.roleRepo.FindByName(ctx, name)
}

// CooksWithRole returns the cooks assigned to roleID.
func (s *StaffService) CooksWithRole(ctx context.Context, roleID int64) ([]model.Cook, error) {
	return s.cookRepo.ListByRole(ctx, roleID)
}
