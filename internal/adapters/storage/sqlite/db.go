package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite" // driver sqlite puro Go
)

const schema = `
CREATE TABLE IF NOT EXISTS owner (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT
);

CREATE TABLE IF NOT EXISTS horse (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	description TEXT,
	date_of_birth TEXT NOT NULL,
	sex TEXT NOT NULL,
	owner_id INTEGER,
	mother_id INTEGER,
	father_id INTEGER
);
`

// Sin constraints de FK a propósito: la integridad referencial la valida el
// core en cada escritura, así el comportamiento es portable entre backends.

// Open abre (o crea) la base embebida y bootstrapea el esquema.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = "horse-registry.db"
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// el driver es embebido: una sola conexión de escritura evita SQLITE_BUSY
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// Seed carga el mismo set de fixtures que memory.SeedFixtures, con INSERT OR
// IGNORE para que reiniciar el proceso no duplique filas.
func Seed(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`INSERT OR IGNORE INTO owner (id, first_name, last_name, email) VALUES (-1, 'Anna', 'Berger', NULL)`,
		`INSERT OR IGNORE INTO owner (id, first_name, last_name, email) VALUES (-2, 'Max', 'Huber', 'max.huber@example.com')`,
		`INSERT OR IGNORE INTO horse (id, name, description, date_of_birth, sex, owner_id, mother_id, father_id)
			VALUES (-1, 'Wendy', 'The famous one!', '2012-12-12', 'FEMALE', -1, NULL, NULL)`,
		`INSERT OR IGNORE INTO horse (id, name, description, date_of_birth, sex, owner_id, mother_id, father_id)
			VALUES (-2, 'Hugo', NULL, '2010-03-05', 'MALE', NULL, NULL, NULL)`,
		`INSERT OR IGNORE INTO horse (id, name, description, date_of_birth, sex, owner_id, mother_id, father_id)
			VALUES (-3, 'Carlo', 'Description 2', '2016-04-14', 'MALE', NULL, -1, -2)`,
		`INSERT OR IGNORE INTO horse (id, name, description, date_of_birth, sex, owner_id, mother_id, father_id)
			VALUES (-4, 'Luna', NULL, '2018-06-01', 'FEMALE', -2, -1, -2)`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
