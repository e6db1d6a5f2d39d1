package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/api"
	crypt "github.com/IvanChernomyrdin/go-cohort-tools/internal/server/crypto"
	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/errors"
)

// Успешная регистрация: 201 и user без пароля в любом виде
func TestSignup_Created(t *testing.T) {
	env := newTestEnv(t)

	id := uuid.New()

	env.users.EXPECT().
		GetByEmail(gomock.Any(), "test@mail.com").
		Return(models.Account{}, serr.ErrNotFound)
	env.users.EXPECT().
		Create(gomock.Any(), "test@mail.com", gomock.Any(), "Test User").
		DoAndReturn(func(_ context.Context, email, hash, name string) (models.Account, error) {
			return models.Account{ID: id, Email: email, PasswordHash: hash, Name: name}, nil
		})

	rec := env.do(t, http.MethodPost, "/auth/signup",
		`{"email":"test@mail.com","password":"Password1","name":"Test User"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp api.SignupResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "test@mail.com", resp.User.Email)
	require.Equal(t, "Test User", resp.User.Name)
	require.Equal(t, id.String(), resp.User.ID)

	// ни пароль, ни хэш не должны просочиться в ответ
	require.NotContains(t, rec.Body.String(), "Password1")
	require.NotContains(t, rec.Body.String(), "password")
	require.NotContains(t, rec.Body.String(), "hash")
}

// Битый JSON
func TestSignup_BadJSON(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/signup", `{"email":`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// Пропущенные поля
func TestSignup_MissingField(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/signup",
		`{"email":"test@mail.com","password":"Password1"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "A required field is missing", apiError(t, rec))
}

// Плохой email
func TestSignup_InvalidEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/signup",
		`{"email":"not-an-email","password":"Password1","name":"Name"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Provide a valid email address.", apiError(t, rec))
}

// Слабый пароль
func TestSignup_WeakPassword(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/signup",
		`{"email":"test@mail.com","password":"weak","name":"Name"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t,
		"Password must have at least 6 characters and contain at least one number, one lowercase and one uppercase letter.",
		apiError(t, rec))
}

// Email уже занят
func TestSignup_UserExists(t *testing.T) {
	env := newTestEnv(t)

	env.users.EXPECT().
		GetByEmail(gomock.Any(), "taken@mail.com").
		Return(models.Account{ID: uuid.New(), Email: "taken@mail.com"}, nil)

	rec := env.do(t, http.MethodPost, "/auth/signup",
		`{"email":"taken@mail.com","password":"Password1","name":"Name"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "User already exists", apiError(t, rec))
}

// Успешный вход: токен из ответа проходит /auth/verify
func TestLogin_OK_ThenVerify(t *testing.T) {
	env := newTestEnv(t)

	id := uuid.New()
	hash, err := crypt.HashPassword("Password1", crypt.BcryptParams{Cost: 4})
	require.NoError(t, err)

	env.users.EXPECT().
		GetByEmail(gomock.Any(), "test@mail.com").
		Return(models.Account{
			ID:           id,
			Email:        "test@mail.com",
			PasswordHash: hash,
			Name:         "Test User",
		}, nil)

	rec := env.do(t, http.MethodPost, "/auth/login",
		`{"email":"test@mail.com","password":"Password1"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AuthToken)

	// выданный токен принимается guard'ом и возвращает identity-claims
	rec = env.do(t, http.MethodGet, "/auth/verify", "", resp.AuthToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var claims crypt.Claims
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &claims))
	require.Equal(t, id.String(), claims.UserID)
	require.Equal(t, "test@mail.com", claims.Email)
	require.Equal(t, "Test User", claims.Name)
}

// Логин без пароля
func TestLogin_MissingCredentials(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/auth/login", `{"email":"test@mail.com"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Provide email and password", apiError(t, rec))
}

// Email не зарегистрирован
func TestLogin_UnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	env.users.EXPECT().
		GetByEmail(gomock.Any(), "ghost@mail.com").
		Return(models.Account{}, serr.ErrNotFound)

	rec := env.do(t, http.MethodPost, "/auth/login",
		`{"email":"ghost@mail.com","password":"Password1"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "User not found", apiError(t, rec))
}

// Неверный пароль
func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)

	hash, err := crypt.HashPassword("Correct-password1", crypt.BcryptParams{Cost: 4})
	require.NoError(t, err)

	env.users.EXPECT().
		GetByEmail(gomock.Any(), "test@mail.com").
		Return(models.Account{ID: uuid.New(), PasswordHash: hash}, nil)

	rec := env.do(t, http.MethodPost, "/auth/login",
		`{"email":"test@mail.com","password":"Wrong-password1"}`, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Unable to authenticate", apiError(t, rec))
}

// Verify без токена
func TestVerify_NoToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/auth/verify", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "token not provided or invalid", apiError(t, rec))
}

// Verify с мусорным токеном
func TestVerify_GarbageToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/auth/verify", "", "not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "token not provided or invalid", apiError(t, rec))
}
