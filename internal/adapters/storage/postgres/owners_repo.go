package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/domain/owners"
)

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) GetByID(ctx context.Context, id int64) (owners.Owner, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email FROM owner WHERE id = $1
	`, id)

	o, err := scanOwner(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return owners.Owner{}, &apperr.NotFound{Entity: "Owner", ID: id}
		}
		return owners.Owner{}, err
	}
	return o, nil
}

func (r *OwnersRepo) GetAllByID(ctx context.Context, ids []int64) ([]owners.Owner, error) {
	if len(ids) == 0 {
		return []owners.Owner{}, nil
	}

	placeholders := make([]string, 0, len(ids))
	args := make([]any, 0, len(ids))
	for i, id := range ids {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, id)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, first_name, last_name, email FROM owner WHERE id IN (`+strings.Join(placeholders, ",")+`)
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOwners(rows)
}

func (r *OwnersRepo) Search(ctx context.Context, f owners.SearchFilter) ([]owners.Owner, error) {
	query := `SELECT id, first_name, last_name, email FROM owner`
	var args []any

	if f.Name != "" {
		args = append(args, f.Name)
		query += ` WHERE UPPER(first_name || ' ' || last_name) LIKE UPPER('%' || $1 || '%')`
	}
	query += ` ORDER BY id`
	if f.MaxAmount != nil {
		args = append(args, *f.MaxAmount)
		query += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOwners(rows)
}

func (r *OwnersRepo) Create(ctx context.Context, in owners.CreateInput) (owners.Owner, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO owner (first_name, last_name, email) VALUES ($1, $2, $3)
		RETURNING id
	`, in.FirstName, in.LastName, toNullString(in.Email)).Scan(&id)
	if err != nil {
		return owners.Owner{}, err
	}
	return owners.Owner{ID: id, FirstName: in.FirstName, LastName: in.LastName, Email: in.Email}, nil
}

func scanOwner(s scanner) (owners.Owner, error) {
	var (
		o     owners.Owner
		email sql.NullString
	)
	if err := s.Scan(&o.ID, &o.FirstName, &o.LastName, &email); err != nil {
		return owners.Owner{}, err
	}
	if email.Valid {
		o.Email = &email.String
	}
	return o, nil
}

func collectOwners(rows *sql.Rows) ([]owners.Owner, error) {
	out := make([]owners.Owner, 0)
	for rows.Next() {
		o, err := scanOwner(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
