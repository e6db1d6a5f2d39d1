// HTTP-хендлеры регистрации, логина и проверки токена
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	serr "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/errors"

	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/middleware"
)

// SignupRequest описывает тело запроса регистрации пользователя.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// UserPayload — публичное представление пользователя (без хэша пароля).
type UserPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	ID    string `json:"id"`
}

// SignupResponse описывает успешный ответ регистрации.
type SignupResponse struct {
	User UserPayload `json:"user"`
}

// LoginRequest описывает тело запроса входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse описывает успешный ответ входа: подписанный auth-токен.
type LoginResponse struct {
	AuthToken string `json:"authToken"`
}

// Signup обрабатывает регистрацию пользователя.
//
// Пароль принимается только в теле запроса и нигде не логируется;
// в ответе его нет ни в каком виде.
//
// Ответы:
//   - 201 Created: регистрация успешна;
//   - 400 Bad Request: неверный JSON, пропущенные поля, плохой email,
//     слабый пароль или занятый email;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Sign up
// @Description  Registers a new user with email, password and name.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Signup request"
// @Success      201 {object} SignupResponse
// @Failure      400 {object} ErrorResponse "Validation failed or user exists"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /auth/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	acc, err := h.Svc.Auth.Signup(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrMissingField),
			errors.Is(err, serr.ErrInvalidEmail),
			errors.Is(err, serr.ErrWeakPassword),
			errors.Is(err, serr.ErrUserExists):
			WriteError(w, http.StatusBadRequest, err)
		default:
			h.Log.Logger.Sugar().Error("signup failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, SignupResponse{
		User: UserPayload{
			Email: acc.Email,
			Name:  acc.Name,
			ID:    acc.ID.String(),
		},
	})
}

// Login обрабатывает вход пользователя и выдачу auth-токена.
//
// Ответы:
//   - 200 OK: успешный вход, в теле {"authToken": "..."};
//   - 400 Bad Request: неверный JSON или не переданы email/пароль;
//   - 401 Unauthorized: пользователь не найден или пароль не совпал;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Log in
// @Description  Authenticates a user and returns a signed auth token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} LoginResponse
// @Failure      400 {object} ErrorResponse "Missing credentials or bad JSON"
// @Failure      401 {object} ErrorResponse "Unknown user or wrong password"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	token, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrMissingCredentials):
			WriteError(w, http.StatusBadRequest, err)
		case errors.Is(err, serr.ErrUserNotFound),
			errors.Is(err, serr.ErrBadCredentials):
			WriteError(w, http.StatusUnauthorized, err)
		default:
			h.Log.Logger.Sugar().Error("login failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, LoginResponse{AuthToken: token})
}

// Verify возвращает claims токена, под которым пришёл запрос.
//
// До хендлера запрос доходит только через AuthMiddleware, так что
// отсутствие claims в контексте — внутренняя ошибка, а не 401.
//
// @Summary      Verify token
// @Description  Returns the decoded claims of the presented auth token.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} crypto.Claims
// @Failure      401 {object} ErrorResponse "Token not provided or invalid"
// @Router       /auth/verify [get]
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.Log.Logger.Sugar().Error("verify: claims missing in context")
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, claims)
}
