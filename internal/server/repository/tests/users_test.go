package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/repository"
	serr "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/errors"
)

// Успех
func TestUsersRepository_Create_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("test@mail.com", "hash", "Test User").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id, now),
		)

	acc, err := repo.Create(context.Background(), "test@mail.com", "hash", "Test User")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.ID != id {
		t.Fatalf("expected %v, got %v", id, acc.ID)
	}
	if acc.Email != "test@mail.com" || acc.Name != "Test User" {
		t.Fatalf("unexpected account: %+v", acc)
	}
}

// Такой пользователь уже есть
func TestUsersRepository_Create_AlreadyExists(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	pgErr := &pgconn.PgError{
		Code: "23505", // unique_violation
	}

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(pgErr)

	_, err := repo.Create(context.Background(), "test@mail.com", "hash", "Test User")

	if err != serr.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

// Ошибка сервера
func TestUsersRepository_Create_InternalError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WillReturnError(sql.ErrConnDone)

	_, err := repo.Create(context.Background(), "test@mail.com", "hash", "Test User")

	if err != serr.ErrInternal {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

// поиск по email
func TestUsersRepository_GetByEmail_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT id, email, password_hash, name, created_at FROM users`).
		WithArgs("test@mail.com").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "created_at"}).
				AddRow(id, "test@mail.com", "hash", "Test User", now),
		)

	acc, err := repo.GetByEmail(context.Background(), "test@mail.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.ID != id || acc.PasswordHash != "hash" {
		t.Fatalf("unexpected result: %+v", acc)
	}
}

// не найден по email
func TestUsersRepository_GetByEmail_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	mock.ExpectQuery(`SELECT id, email, password_hash, name, created_at FROM users`).
		WithArgs("test@mail.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "test@mail.com")

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// поиск по id
func TestUsersRepository_GetByID_OK(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	id := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT id, email, password_hash, name, created_at FROM users`).
		WithArgs(id).
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "email", "password_hash", "name", "created_at"}).
				AddRow(id, "test@mail.com", "hash", "Test User", now),
		)

	acc, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if acc.Email != "test@mail.com" {
		t.Fatalf("unexpected result: %+v", acc)
	}
}

// не найден по id
func TestUsersRepository_GetByID_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := repository.NewUsersRepository(db)

	id := uuid.New()

	mock.ExpectQuery(`SELECT id, email, password_hash, name, created_at FROM users`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), id)

	if err != serr.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
