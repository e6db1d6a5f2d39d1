// HTTP-хендлеры CRUD студентов
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	serr "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/errors"
	shmodels "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/models"
)

// CreateStudent создаёт нового студента.
//
// @Summary      Create student
// @Description  Creates a new student. firstName, lastName and email are required.
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request body models.CreateStudentRequest true "Create student request"
// @Success      201 {object} models.Student
// @Failure      400 {object} ErrorResponse "Invalid input, unknown cohort or bad JSON"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/students [post]
func (h *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req shmodels.CreateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	st, err := h.Svc.Students.Create(r.Context(), req)
	if err != nil {
		h.writeStudentError(w, err, "create student failed")
		return
	}

	WriteJSON(w, http.StatusCreated, st)
}

// ListStudents возвращает всех студентов с вложенной когортой.
//
// @Summary      List students
// @Description  Returns all students with their cohort populated.
// @Tags         students
// @Produce      json
// @Success      200 {array} models.Student
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/students [get]
func (h *Handler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.Svc.Students.List(r.Context())
	if err != nil {
		h.Log.Logger.Sugar().Error("list students failed")
		WriteError(w, http.StatusInternalServerError, serr.ErrInternal)
		return
	}

	WriteJSON(w, http.StatusOK, students)
}

// ListStudentsByCohort возвращает студентов одной когорты.
//
// @Summary      List students of a cohort
// @Description  Returns students of the given cohort with the cohort populated.
// @Tags         students
// @Produce      json
// @Param        cohortId path string true "Cohort ID (UUID)"
// @Success      200 {array} models.Student
// @Failure      400 {object} ErrorResponse "Malformed cohort id"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/students/cohort/{cohortId} [get]
func (h *Handler) ListStudentsByCohort(w http.ResponseWriter, r *http.Request) {
	students, err := h.Svc.Students.ListByCohort(r.Context(), chi.URLParam(r, "cohortId"))
	if err != nil {
		h.writeStudentError(w, err, "list students by cohort failed")
		return
	}

	WriteJSON(w, http.StatusOK, students)
}

// GetStudent возвращает студента по идентификатору.
//
// @Summary      Get student
// @Description  Returns a student by id with the cohort populated.
// @Tags         students
// @Produce      json
// @Param        studentId path string true "Student ID (UUID)"
// @Success      200 {object} models.Student
// @Failure      400 {object} ErrorResponse "Malformed student id"
// @Failure      404 {object} ErrorResponse "Student not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/students/{studentId} [get]
func (h *Handler) GetStudent(w http.ResponseWriter, r *http.Request) {
	st, err := h.Svc.Students.GetByID(r.Context(), chi.URLParam(r, "studentId"))
	if err != nil {
		h.writeStudentError(w, err, "get student failed")
		return
	}

	WriteJSON(w, http.StatusOK, st)
}

// UpdateStudent частично обновляет студента и возвращает обновлённый документ.
//
// @Summary      Update student
// @Description  Partially updates a student. Omitted fields keep their values; cohort "" detaches.
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        studentId path string true "Student ID (UUID)"
// @Param        request body models.UpdateStudentRequest true "Update student request"
// @Success      200 {object} models.Student
// @Failure      400 {object} ErrorResponse "Malformed id, unknown cohort or bad JSON"
// @Failure      404 {object} ErrorResponse "Student not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/students/{studentId} [put]
func (h *Handler) UpdateStudent(w http.ResponseWriter, r *http.Request) {
	var req shmodels.UpdateStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, serr.ErrBadJSON)
		return
	}

	st, err := h.Svc.Students.Update(r.Context(), chi.URLParam(r, "studentId"), req)
	if err != nil {
		h.writeStudentError(w, err, "update student failed")
		return
	}

	WriteJSON(w, http.StatusOK, st)
}

// DeleteStudent удаляет студента по идентификатору.
//
// @Summary      Delete student
// @Description  Deletes a student by id.
// @Tags         students
// @Param        studentId path string true "Student ID (UUID)"
// @Success      204 "No Content"
// @Failure      400 {object} ErrorResponse "Malformed student id"
// @Failure      404 {object} ErrorResponse "Student not found"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/students/{studentId} [delete]
func (h *Handler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.Students.Delete(r.Context(), chi.URLParam(r, "studentId")); err != nil {
		h.writeStudentError(w, err, "delete student failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeStudentError — общий маппинг ошибок студенческих хендлеров.
func (h *Handler) writeStudentError(w http.ResponseWriter, err error, logMsg string) {
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
