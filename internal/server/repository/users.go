package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/errors"
)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create сохраняет нового пользователя и возвращает заполненный Account.
//
// Уникальность email обеспечивается constraint'ом в базе:
// unique_violation транслируется в ErrAlreadyExists.
func (r *UsersRepository) Create(ctx context.Context, email, passwordHash, name string) (models.Account, error) {
	acc := models.Account{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
	}

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash, name)
		 VALUES ($1,$2,$3)
		 RETURNING id, created_at`,
		email, passwordHash, name,
	).Scan(&acc.ID, &acc.CreatedAt)

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return models.Account{}, serr.ErrAlreadyExists
			}
		}
		return models.Account{}, serr.ErrInternal
	}

	return acc, nil
}

// GetByEmail ищет пользователя по email.
//
// Сравнение строгое (case-sensitive), как email хранится — так и ищется.
func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (models.Account, error) {
	var acc models.Account

	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name, created_at FROM users WHERE email=$1`,
		email,
	).Scan(&acc.ID, &acc.Email, &acc.PasswordHash, &acc.Name, &acc.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Account{}, serr.ErrNotFound
		}
		return models.Account{}, serr.ErrInternal
	}

	return acc, nil
}

// GetByID ищет пользователя по идентификатору.
func (r *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (models.Account, error) {
	var acc models.Account

	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name, created_at FROM users WHERE id=$1`,
		id,
	).Scan(&acc.ID, &acc.Email, &acc.PasswordHash, &acc.Name, &acc.CreatedAt)

	if err != nil {
		if err == sql.ErrNoRows {
			return models.Account{}, serr.ErrNotFound
		}
		return models.Account{}, serr.ErrInternal
	}

	return acc, nil
}
