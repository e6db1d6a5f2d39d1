// HTTP-хендлер защищённого просмотра пользователя
package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	serr "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/errors"
)

// GetUser возвращает данные пользователя по идентификатору.
//
// Маршрут защищён JWT. Контракт требует одно и то же сообщение
// "User not found" и для логина (401), и здесь (404) — различается
// только статус.
//
// @Summary      Get user
// @Description  Returns a user by id. Requires a valid auth token.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId path string true "User ID (UUID)"
// @Success      200 {object} models.Account
// @Failure      400 {object} ErrorResponse "Malformed user id"
// @Failure      401 {object} ErrorResponse "Token not provided or invalid"
// @Failure      404 {object} ErrorResponse "User not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/users/{userId} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "userId")

	acc, err := h.Svc.Users.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrNotFound):
			WriteError(w, http.StatusNotFound, serr.ErrUserNotFound)
		default:
			h.Log.Logger.Sugar().Error("get user failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusOK, acc)
}
