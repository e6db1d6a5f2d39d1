package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/errors"
)

// UsersService отдаёт данные пользователей защищённым эндпоинтам.
type UsersService struct {
	users UsersRepo
}

// NewUsersService создаёт новый UsersService.
func NewUsersService(users UsersRepo) *UsersService {
	return &UsersService{users: users}
}

// GetByID возвращает пользователя по строковому UUID.
//
// Ошибки:
//   - ErrInvalidInput — id не парсится как UUID;
//   - ErrNotFound — пользователя нет.
//
// PasswordHash наружу не уходит — в Account он помечен json:"-".
func (s *UsersService) GetByID(ctx context.Context, id string) (models.Account, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return models.Account{}, serr.ErrInvalidInput
	}
	return s.users.GetByID(ctx, uid)
}
