package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Leganyst/restaurant-staff/internal/config"
	"github.com/Leganyst/restaurant-staff/internal/db"
	"github.com/Leganyst/restaurant-staff/internal/errs"
	"github.com/Leganyst/restaurant-staff/internal/logger"
	"github.com/Leganyst/restaurant-staff/internal/model"
	"github.com/Leganyst/restaurant-staff/internal/repository"
	"github.com/Leganyst/restaurant-staff/internal/service"
)

func main() {
	// Демо всегда завершается с кодом 0: ошибки только логируются.
	run(context.Background())
}

func run(ctx context.Context) {
	// 1. Конфиг из env (RESTAURANT_*), с дефолтами.
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		boot.Error().Err(err).Msg("load config")
		return
	}

	log := logger.New(cfg.Logging).With().Str("run_id", uuid.NewString()).Logger()

	// 2. Подключаемся к БД.
	gormDB, err := db.NewGormDB(cfg, log)
	if err != nil {
		report(log, "open database", err)
		return
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			report(log, "close database", err)
		}
	}()

	// 3. Репозитории и сервис.
	repos := repository.NewRepositories(gormDB)
	staff := service.NewStaffService(gormDB, repos.Roles, repos.Cooks)

	// 4. Схема: CREATE TABLE IF NOT EXISTS для каждой таблицы реестра.
	dialect := model.DialectOf(gormDB)
	for _, t := range model.Tables {
		stmt, _ := t.DDL(dialect)
		if err := repos.Crud.ExecuteDDL(ctx, stmt); err != nil {
			report(log, "create table "+t.Name, err)
		}
	}

	// 5. Роли.
	roles := []struct{ name, description string }{
		{"Head Chef", "Jeden nad wszystkimi"},
		{"Sous Chef", "Drugi nad wszystkimi"},
		{"Noob", "Nowy ziomek na zimnej"},
	}
	for _, r := range roles {
		id, err := staff.AddRole(ctx, r.name, r.description)
		if err != nil {
			report(log, "add role", err)
			continue
		}
		log.Info().Int64("id", id).Str("name", r.name).Msg("role added")
	}

	// 6. Повара одной транзакцией.
	cooks := []*model.Cook{
		{RoleID: 1, FirstName: "Jan", LastName: "Jankowski", BirthDate: "1990-05-13"},
		{RoleID: 2, FirstName: "Michał", LastName: "Czeski", BirthDate: "1990-08-13"},
		{RoleID: 3, FirstName: "Stanisław", LastName: "Wielki", BirthDate: "1999-12-21"},
	}
	if err := staff.HireCooks(ctx, cooks); err != nil {
		report(log, "hire cooks", err)
	} else {
		for _, c := range cooks {
			log.Info().Int64("id", c.ID).Str("imie", c.FirstName).Str("nazwisko", c.LastName).Msg("cook added")
		}
	}

	// 7. Запросы.
	if found, err := staff.RoleByName(ctx, "Head Chef"); err != nil {
		report(log, "select role by name", err)
	} else {
		log.Info().Interface("rows", found).Msg("role by name")
	}

	for _, table := range []string{model.TableRoles, model.TableCooks} {
		res, err := repos.Crud.SelectAll(ctx, table)
		if err != nil {
			report(log, "select all "+table, err)
			continue
		}
		printResult(log, table, res)
	}

	if page, err := staff.CooksPage(ctx, 1, 2); err != nil {
		report(log, "list cooks", err)
	} else {
		log.Info().
			Int("page", page.Page).
			Int64("total", page.Total).
			Bool("has_next", page.HasNext).
			Interface("items", page.Items).
			Msg("cooks page")
	}

	byLastName := repository.Predicate{"nazwisko": "Wielki"}
	res, err := repos.Crud.SelectBy(ctx, model.TableCooks, byLastName)
	if err != nil {
		report(log, "select cooks", err)
	} else {
		printResult(log, model.TableCooks, res)
	}

	// 8. Обновление: переименовываем найденных поваров.
	for i := 0; i < res.Len(); i++ {
		v, _ := res.Value(i, model.ColumnID)
		id, ok := asInt64(v)
		if !ok {
			continue
		}
		n, err := repos.Crud.Update(ctx, model.TableCooks, id, repository.Fields{"imie": "Alfred"})
		if err != nil {
			report(log, "update cook", err)
			continue
		}
		log.Info().Int64("id", id).Int64("rows", n).Msg("updated")
	}

	if res, err := repos.Crud.SelectBy(ctx, model.TableCooks, byLastName); err != nil {
		report(log, "select cooks", err)
	} else {
		printResult(log, model.TableCooks, res)
	}

	// 9. Удаление.
	if n, err := repos.Crud.DeleteWhere(ctx, model.TableCooks, repository.Predicate{"imie": "Stanisław"}); err != nil {
		report(log, "delete cooks", err)
	} else {
		log.Info().Str("table", model.TableCooks).Int64("rows", n).Msg("deleted Stanisław")
	}

	if n, err := repos.Crud.DeleteAll(ctx, model.TableCooks); err != nil {
		report(log, "delete all cooks", err)
	} else {
		log.Info().Str("table", model.TableCooks).Int64("rows", n).Msg("deleted all")
	}
}

// report logs a failed step; the demo carries on with the next one.
func report(log zerolog.Logger, op string, err error) {
	kind := errs.KindOf(err)
	ev := log.Error().Err(err).Str("op", op)
	if kind != "" {
		ev = ev.Str("kind", string(kind))
	}
	if kind == errs.KindUniqueViolation {
		ev.Msg("duplicate entry, row skipped")
		return
	}
	ev.Msg("operation failed")
}

func printResult(log zerolog.Logger, table string, res *repository.Result) {
	log.Info().
		Str("table", table).
		Strs("columns", res.Columns).
		Interface("rows", res.Rows).
		Int("count", res.Len()).
		Msg("rows")
}

// asInt64 accepts the integer widths drivers return for id columns.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}
