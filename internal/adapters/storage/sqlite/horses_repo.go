package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"horse-registry/internal/domain/apperr"
	"horse-registry/internal/domain/horses"
)

const dateLayout = "2006-01-02"

const horseColumns = `h.id, h.name, h.description, h.date_of_birth, h.sex, h.owner_id, h.mother_id, h.father_id`

type HorsesRepo struct {
	db *sql.DB
}

func NewHorsesRepo(db *sql.DB) *HorsesRepo {
	return &HorsesRepo{db: db}
}

func (r *HorsesRepo) GetAll(ctx context.Context) ([]horses.Horse, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+horseColumns+` FROM horse h ORDER BY h.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHorses(rows)
}

func (r *HorsesRepo) GetByID(ctx context.Context, id int64) (horses.Horse, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+horseColumns+` FROM horse h WHERE h.id = ?`, id)

	h, err := scanHorse(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return horses.Horse{}, &apperr.NotFound{Entity: "Horse", ID: id}
		}
		return horses.Horse{}, err
	}
	return h, nil
}

func (r *HorsesRepo) Search(ctx context.Context, f horses.SearchFilter) ([]horses.Horse, error) {
	query := `SELECT ` + horseColumns + ` FROM horse h`

	var (
		where []string
		args  []any
	)

	if f.OwnerName != "" {
		query += ` JOIN owner o ON h.owner_id = o.id`
		where = append(where, `UPPER(o.first_name || ' ' || o.last_name) LIKE UPPER('%' || ? || '%')`)
		args = append(args, f.OwnerName)
	}
	if f.Name != "" {
		where = append(where, `UPPER(h.name) LIKE UPPER('%' || ? || '%')`)
		args = append(args, f.Name)
	}
	if f.Description != "" {
		where = append(where, `UPPER(h.description) LIKE UPPER('%' || ? || '%')`)
		args = append(args, f.Description)
	}
	if f.BornBefore != nil {
		where = append(where, `h.date_of_birth < ?`)
		args = append(args, f.BornBefore.Format(dateLayout))
	}
	if f.Sex != "" {
		where = append(where, `h.sex = ?`)
		args = append(args, string(f.Sex))
	}

	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY h.id`
	if f.Limit != nil {
		query += ` LIMIT ?`
		args = append(args, *f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHorses(rows)
}

func (r *HorsesRepo) Create(ctx context.Context, h horses.Horse) (horses.Horse, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO horse (name, description, date_of_birth, sex, owner_id, mother_id, father_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		h.Name,
		toNullString(h.Description),
		h.DateOfBirth.Format(dateLayout),
		string(h.Sex),
		toNullInt64(h.OwnerID),
		toNullInt64(h.MotherID),
		toNullInt64(h.FatherID),
	)
	if err != nil {
		return horses.Horse{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return horses.Horse{}, err
	}
	h.ID = id
	return h, nil
}

func (r *HorsesRepo) Update(ctx context.Context, h horses.Horse) (horses.Horse, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE horse
		SET name = ?, description = ?, date_of_birth = ?, sex = ?, owner_id = ?, mother_id = ?, father_id = ?
		WHERE id = ?
	`,
		h.Name,
		toNullString(h.Description),
		h.DateOfBirth.Format(dateLayout),
		string(h.Sex),
		toNullInt64(h.OwnerID),
		toNullInt64(h.MotherID),
		toNullInt64(h.FatherID),
		h.ID,
	)
	if err != nil {
		return horses.Horse{}, err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return horses.Horse{}, &apperr.NotFound{Entity: "Horse", ID: h.ID}
	}
	return h, nil
}

func (r *HorsesRepo) Delete(ctx context.Context, id int64) (horses.Horse, error) {
	h, err := r.GetByID(ctx, id)
	if err != nil {
		return horses.Horse{}, err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM horse WHERE id = ?`, id)
	if err != nil {
		return horses.Horse{}, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return horses.Horse{}, &apperr.NotFound{Entity: "Horse", ID: id}
	}
	return h, nil
}

func (r *HorsesRepo) GetChildren(ctx context.Context, id int64) ([]horses.Horse, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+horseColumns+` FROM horse h
		WHERE h.mother_id = ? OR h.father_id = ?
		ORDER BY h.id
	`, id, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectHorses(rows)
}

type scanner interface {
	Scan(dest ...any) error
}

// date_of_birth se guarda como TEXT YYYY-MM-DD; se parsea al leer.
func scanHorse(s scanner) (horses.Horse, error) {
	var (
		h           horses.Horse
		description sql.NullString
		dob         string
		sex         string
		ownerID     sql.NullInt64
		motherID    sql.NullInt64
		fatherID    sql.NullInt64
	)

	if err := s.Scan(&h.ID, &h.Name, &description, &dob, &sex, &ownerID, &motherID, &fatherID); err != nil {
		return horses.Horse{}, err
	}

	t, err := time.Parse(dateLayout, dob)
	if err != nil {
		return horses.Horse{}, err
	}
	h.DateOfBirth = &t
	h.Sex = horses.Sex(sex)

	if description.Valid {
		h.Description = &description.String
	}
	h.OwnerID = fromNullInt64(ownerID)
	h.MotherID = fromNullInt64(motherID)
	h.FatherID = fromNullInt64(fatherID)

	return h, nil
}

func collectHorses(rows *sql.Rows) ([]horses.Horse, error) {
	out := make([]horses.Horse, 0)
	for rows.Next() {
		h, err := scanHorse(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func toNullInt64(n *int64) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *n, Valid: true}
}

func fromNullInt64(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
