package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/userconsole/internal/common"
	"github.com/dmitrijs2005/userconsole/internal/dbx"
	"github.com/dmitrijs2005/userconsole/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectUser = `SELECT id, name, email, dob, phone, password_hash, created_at FROM users`

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (id, name, email, dob, phone, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Name, user.Email, nullDate(user), user.Phone, user.PasswordHash).Scan(&user.CreatedAt)
	if err != nil {
		return nil, mapError(err)
	}

	return user, nil
}

func (r *PostgresRepository) Update(ctx context.Context, user *models.User) error {
	query :=
		`UPDATE users SET name = $2, email = $3, dob = $4, phone = $5
		 WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, user.ID, user.Name, user.Email, nullDate(user), user.Phone)
	if err != nil {
		return mapError(err)
	}
	return requireRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return requireRow(res)
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, selectUser+` WHERE id = $1`, id)
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, selectUser+` WHERE lower(email) = lower($1)`, email)
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUser+` ORDER BY created_at, id`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, mapError(err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return users, nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		return nil, mapError(err)
	}
	return u, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*models.User, error) {
	u := &models.User{}
	var dob sql.NullTime
	if err := s.Scan(&u.ID, &u.Name, &u.Email, &dob, &u.Phone, &u.PasswordHash, &u.CreatedAt); err != nil {
		return nil, err
	}
	if dob.Valid {
		d := dob.Time
		u.DOB = &d
	}
	return u, nil
}

func nullDate(u *models.User) sql.NullTime {
	if u.DOB == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *u.DOB, Valid: true}
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

// mapError turns driver errors into the common sentinels. An id that is
// not a UUID cannot name a row, so it reads as not found.
func mapError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return fmt.Errorf("%w: %s", common.ErrAlreadyExists, pgErr.ConstraintName)
		case pgerrcode.InvalidTextRepresentation:
			return common.ErrNotFound
		}
	}
	return fmt.Errorf("db error: %w", err)
}
