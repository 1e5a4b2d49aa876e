package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Leganyst/restaurant-staff/internal/errs"
	"github.com/Leganyst/restaurant-staff/internal/model"
)

func TestGormRoleRepository_Create_AssignsID(t *testing.T) {
	repos := NewRepositories(openTestDB(t))

	role := &model.Role{Name: "Head Chef", Description: "Jeden nad wszystkimi"}
	if err := repos.Roles.Create(context.Background(), role); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if role.ID <= 0 {
		t.Fatalf("id = %d, want positive", role.ID)
	}
}

func TestGormRoleRepository_Create_DuplicateName(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(openTestDB(t))

	firstID := mustRole(t, repos, "Head Chef")
	before := countRows(t, repos, model.TableRoles)

	dup := &model.Role{Name: "Head Chef", Description: "impostor"}
	err := repos.Roles.Create(ctx, dup)
	if !errs.IsKind(err, errs.KindUniqueViolation) {
		t.Fatalf("err = %v, want unique violation", err)
	}
	if dup.ID != 0 {
		t.Fatalf("id = %d, want 0 after failed insert", dup.ID)
	}
	if after := countRows(t, repos, model.TableRoles); after != before {
		t.Fatalf("roles = %d, want %d", after, before)
	}

	stored, err := repos.Roles.GetByID(ctx, firstID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Description != "Head Chef description" {
		t.Fatalf("description = %q, existing row must be untouched", stored.Description)
	}
}

func TestGormRoleRepository_Create_DuplicateName_Column(t *testing.T) {
	repos := NewRepositories(openTestDB(t))
	mustRole(t, repos, "Noob")

	err := repos.Roles.Create(context.Background(), &model.Role{Name: "Noob"})

	var appErr *errs.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("err = %v, want *errs.Error", err)
	}
	if appErr.Table != model.TableRoles || appErr.Column != "nazwa" {
		t.Fatalf("table/column = %q/%q, want roles/nazwa", appErr.Table, appErr.Column)
	}
}

func TestGormRoleRepository_FindByName(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(openTestDB(t))

	id := mustRole(t, repos, "Head Chef")
	mustRole(t, repos, "Sous Chef")

	roles, err := repos.Roles.FindByName(ctx, "Head Chef")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if len(roles) != 1 || roles[0].ID != id {
		t.Fatalf("roles = %+v, want one role with id %d", roles, id)
	}

	none, err := repos.Roles.FindByName(ctx, "head chef")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("match must be exact, got %+v", none)
	}

	// generic path returns the same role
	res, err := repos.Crud.SelectBy(ctx, model.TableRoles, Predicate{"nazwa": "Head Chef"})
	if err != nil {
		t.Fatalf("SelectBy: %v", err)
	}
	if v, _ := res.Value(0, "id"); v != id {
		t.Fatalf("id = %v, want %d", v, id)
	}
}

func TestGormRoleRepository_GetByID_NotFound(t *testing.T) {
	repos := NewRepositories(openTestDB(t))

	_, err := repos.Roles.GetByID(context.Background(), 99)
	if !errs.IsKind(err, errs.KindNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}

func TestGormRoleRepository_List(t *testing.T) {
	repos := NewRepositories(openTestDB(t))

	mustRole(t, repos, "Head Chef")
	mustRole(t, repos, "Sous Chef")
	mustRole(t, repos, "Noob")

	roles, err := repos.Roles.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(roles) != 3 {
		t.Fatalf("len = %d, want 3", len(roles))
	}
	if roles[0].Name != "Head Chef" || roles[2].Name != "Noob" {
		t.Fatalf("unexpected order: %+v", roles)
	}
}
