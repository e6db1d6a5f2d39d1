// HTTP-хендлеры CRUD когорт
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	serr "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/errors"
	shmodels "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/models"
)

// CreateCohort создаёт новую когорту.
//
// @Summary      Create cohort
// @Description  Creates a new cohort. cohortSlug and cohortName are required.
// @Tags         cohorts
// @Accept       json
// @Produce      json
// @Param        request body models.CreateCohortRequest true "Create cohort request"
// @Success      201 {object} models.Cohort
// @Failure      400 {object} ErrorResponse "Invalid input, bad JSON or slug already taken"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/cohorts [post]
func (h *Handler) CreateCohort(w http.ResponseWriter, r *http.Request) {
	var req shmodels.CreateCohortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	c, err := h.Svc.Cohorts.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidInput):
			WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
		case errors.Is(err, serr.ErrAlreadyExists):
			// дубликат slug — ошибка валидации, как и дубликат email при регистрации
			WriteError(w, http.StatusBadRequest, serr.ErrAlreadyExists)
		default:
			h.Log.Logger.Sugar().Error("create cohort failed")
			WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		}
		return
	}

	WriteJSON(w, http.StatusCreated, c)
}

// ListCohorts возвращает все когорты.
//
// @Summary      List cohorts
// @Description  Returns all cohorts.
// @Tags         cohorts
// @Produce      json
// @Success      200 {array} models.Cohort
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/cohorts [get]
func (h *Handler) ListCohorts(w http.ResponseWriter, r *http.Request) {
	cohorts, err := h.Svc.Cohorts.List(r.Context())
	if err != nil {
		h.Log.Logger.Sugar().Error("list cohorts failed")
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, cohorts)
}

// GetCohort возвращает когорту по идентификатору.
//
// @Summary      Get cohort
// @Description  Returns a cohort by id.
// @Tags         cohorts
// @Produce      json
// @Param        cohortId path string true "Cohort ID (UUID)"
// @Success      200 {object} models.Cohort
// @Failure      400 {object} ErrorResponse "Malformed cohort id"
// @Failure      404 {object} ErrorResponse "Cohort not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/cohorts/{cohortId} [get]
func (h *Handler) GetCohort(w http.ResponseWriter, r *http.Request) {
	c, err := h.Svc.Cohorts.GetByID(r.Context(), chi.URLParam(r, "cohortId"))
	if err != nil {
		h.writeCohortError(w, err, "get cohort failed")
		return
	}

	WriteJSON(w, http.StatusOK, c)
}

// UpdateCohort частично обновляет когорту и возвращает обновлённый документ.
//
// @Summary      Update cohort
// @Description  Partially updates a cohort. Omitted fields keep their values.
// @Tags         cohorts
// @Accept       json
// @Produce      json
// @Param        cohortId path string true "Cohort ID (UUID)"
// @Param        request body models.UpdateCohortRequest true "Update cohort request"
// @Success      200 {object} models.Cohort
// @Failure      400 {object} ErrorResponse "Malformed id, bad JSON or slug already taken"
// @Failure      404 {object} ErrorResponse "Cohort not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/cohorts/{cohortId} [put]
func (h *Handler) UpdateCohort(w http.ResponseWriter, r *http.Request) {
	var req shmodels.UpdateCohortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	c, err := h.Svc.Cohorts.Update(r.Context(), chi.URLParam(r, "cohortId"), req)
	if err != nil {
		if errors.Is(err, serr.ErrAlreadyExists) {
			WriteError(w, http.StatusBadRequest, serr.ErrAlreadyExists)
			return
		}
		h.writeCohortError(w, err, "update cohort failed")
		return
	}

	WriteJSON(w, http.StatusOK, c)
}

// DeleteCohort удаляет когорту. Студенты когорты при этом отвязываются.
//
// @Summary      Delete cohort
// @Description  Deletes a cohort. Its students are detached, not deleted.
// @Tags         cohorts
// @Param        cohortId path string true "Cohort ID (UUID)"
// @Success      204 "No Content"
// @Failure      400 {object} ErrorResponse "Malformed cohort id"
// @Failure      404 {object} ErrorResponse "Cohort not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/cohorts/{cohortId} [delete]
func (h *Handler) DeleteCohort(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Cohorts.Delete(r.Context(), chi.URLParam(r, "cohortId")); err != nil {
		h.writeCohortError(w, err, "delete cohort failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeCohortError — общий маппинг ошибок когортных хендлеров.
func (h *Handler) writeCohortError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, serr.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, serr.ErrInvalidInput)
	case errors.Is(err, serr.ErrNotFound):
		WriteError(w, http.StatusNotFound, serr.ErrNotFound)
	default:
		h.Log.Logger.Sugar().Error(logMsg)
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
	}
}
