package model

import "slices"

const (
	TableRoles = "roles"
	TableCooks = "cooks"

	// ColumnID is the integer primary key every registered table has.
	ColumnID = "id"
)

// Dialects supported by the DDL in the registry.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// Table describes one registered table: its columns in declaration order
// and its CREATE statement per dialect. Generic CRUD only accepts tables
// and columns listed here.
type Table struct {
	Name    string
	Columns []string
	ddl     map[string]string
}

// HasColumn reports whether column belongs to the table.
func (t Table) HasColumn(column string) bool {
	return slices.Contains(t.Columns, column)
}

// DDL returns the idempotent CREATE TABLE statement for dialect.
func (t Table) DDL(dialect string) (string, bool) {
	stmt, ok := t.ddl[dialect]
	return stmt, ok
}

var rolesTable = Table{
	Name:    TableRoles,
	Columns: []string{"id", "nazwa", "opis"},
	ddl: map[string]string{
		DialectSQLite: `CREATE TABLE IF NOT EXISTS roles (
			id INTEGER PRIMARY KEY,
			nazwa VARCHAR(250) NOT NULL UNIQUE,
			opis TEXT
		)`,
		DialectPostgres: `CREATE TABLE IF NOT EXISTS roles (
			id SERIAL PRIMARY KEY,
			nazwa VARCHAR(250) NOT NULL UNIQUE,
			opis TEXT
		)`,
	},
}

var cooksTable = Table{
	Name:    TableCooks,
	Columns: []string{"id", "imie", "nazwisko", "data_urodzenia", "role_id"},
	ddl: map[string]string{
		DialectSQLite: `CREATE TABLE IF NOT EXISTS cooks (
			id INTEGER PRIMARY KEY,
			imie TEXT NOT NULL,
			nazwisko TEXT NOT NULL,
			data_urodzenia TEXT NOT NULL,
			role_id INTEGER NOT NULL,
			FOREIGN KEY (role_id) REFERENCES roles (id)
		)`,
		DialectPostgres: `CREATE TABLE IF NOT EXISTS cooks (
			id SERIAL PRIMARY KEY,
			imie TEXT NOT NULL,
			nazwisko TEXT NOT NULL,
			data_urodzenia TEXT NOT NULL,
			role_id INTEGER NOT NULL,
			FOREIGN KEY (role_id) REFERENCES roles (id)
		)`,
	},
}

// Tables lists the registered tables in creation order: referenced tables
// come before the tables pointing at them.
var Tables = []Table{rolesTable, cooksTable}

// LookupTable returns the registered table called name.
func LookupTable(name string) (Table, bool) {
	for _, t := range Tables {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}
