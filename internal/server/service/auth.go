package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/config"
	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/errors"
)

// Проверки формата email и сложности пароля.
// Go (RE2) не поддерживает lookahead, поэтому пароль проверяется
// несколькими простыми регулярками вместо одной.
var (
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)
	digitRegexp = regexp.MustCompile(`[0-9]`)
	lowerRegexp = regexp.MustCompile(`[a-z]`)
	upperRegexp = regexp.MustCompile(`[A-Z]`)
)

// AuthService реализует бизнес-логику аутентификации.
//
// Ответственность:
//   - регистрация пользователей (signup)
//   - аутентификация и выдача auth-токена (login)
//
// Проверка токена живёт в middleware.JWTVerifier: токен самодостаточен,
// серверного состояния по сессиям нет, инвалидация — только по exp.
type AuthService struct {
	users UsersRepo

	pass crypto.BcryptParams
	jwt  crypto.JWTConfig
}

// NewAuthService создаёт AuthService с зависимостями и настройками из конфига.
func NewAuthService(users UsersRepo, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,

		pass: crypto.BcryptParams{
			Cost: cfg.Password.Bcrypt.Cost,
		},
		jwt: crypto.JWTConfig{
			Issuer:     cfg.Auth.Issuer,
			Audience:   cfg.Auth.Audience,
			SigningKey: cfg.Auth.JWT.SigningKey,
			TokenTTL:   cfg.Auth.TokenTTL,
		},
	}
}

// Signup регистрирует нового пользователя.
//
// Валидация выполняется строго по порядку, первая ошибка выигрывает:
//  1. все три поля непустые — иначе ErrMissingField;
//  2. email формата local@domain.tld — иначе ErrInvalidEmail;
//  3. пароль >= 6 символов, есть цифра, строчная и заглавная буквы —
//     иначе ErrWeakPassword.
//
// Email сравнивается и хранится как есть (case-sensitive), как в
// исходном API. Возможно, это стоит поменять на case-insensitive,
// но сейчас "A@b.com" и "a@b.com" — разные аккаунты.
//
// Возвращает созданный Account или ErrUserExists, если email уже занят.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (models.Account, error) {
	if email == "" || password == "" || name == "" {
		return models.Account{}, serr.ErrMissingField
	}

	if !emailRegexp.MatchString(email) {
		return models.Account{}, serr.ErrInvalidEmail
	}

	if len(password) < 6 ||
		!digitRegexp.MatchString(password) ||
		!lowerRegexp.MatchString(password) ||
		!upperRegexp.MatchString(password) {
		return models.Account{}, serr.ErrWeakPassword
	}

	// сначала явная проверка на дубликат, чтобы отдать контрактное сообщение
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return models.Account{}, serr.ErrUserExists
	}
	if !errors.Is(err, serr.ErrNotFound) {
		return models.Account{}, err
	}

	hash, err := crypto.HashPassword(password, s.pass)
	if err != nil {
		return models.Account{}, serr.ErrInternal
	}

	acc, err := s.users.Create(ctx, email, hash, name)
	if err != nil {
		// гонка между GetByEmail и Create: unique constraint решает
		if errors.Is(err, serr.ErrAlreadyExists) {
			return models.Account{}, serr.ErrUserExists
		}
		return models.Account{}, err
	}
	return acc, nil
}

// Login аутентифицирует пользователя и выдаёт auth-токен.
//
// Поведение (контракт API):
//   - пустой email или пароль — ErrMissingCredentials;
//   - email не найден — ErrUserNotFound;
//   - пароль не совпал — ErrBadCredentials;
//   - успех — подписанный JWT c claims {_id, email, name}.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", serr.ErrMissingCredentials
	}

	acc, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return "", serr.ErrUserNotFound
		}
		return "", err
	}

	if !crypto.VerifyPassword(password, acc.PasswordHash) {
		return "", serr.ErrBadCredentials
	}

	token, err := crypto.NewAuthToken(acc.ID.String(), acc.Email, acc.Name, s.jwt)
	if err != nil {
		return "", serr.ErrInternal
	}
	return token, nil
}
