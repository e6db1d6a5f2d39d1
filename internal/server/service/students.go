package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/errors"
	shmodels "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/models"
)

// StudentsService реализует бизнес-логику работы со студентами.
//
// CohortsRepo нужен, чтобы перед записью проверить, что переданная
// когорта существует: база отловила бы это FK-констрейнтом, но тогда
// клиент получил бы 500 вместо внятной ошибки валидации.
type StudentsService struct {
	students StudentsRepo
	cohorts  CohortsRepo
}

// NewStudentsService создаёт новый StudentsService.
func NewStudentsService(students StudentsRepo, cohorts CohortsRepo) *StudentsService {
	return &StudentsService{students: students, cohorts: cohorts}
}

// resolveCohort парсит строковый UUID когорты и проверяет её существование.
// Пустая строка трактуется как «без когорты» (nil).
func (s *StudentsService) resolveCohort(ctx context.Context, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	cid, err := uuid.Parse(raw)
	if err != nil {
		return nil, serr.ErrInvalidInput
	}

	if _, err := s.cohorts.GetByID(ctx, cid); err != nil {
		if errors.Is(err, serr.ErrNotFound) {
			return nil, serr.ErrInvalidInput
		}
		return nil, err
	}
	return &cid, nil
}

// Create валидирует запрос, сохраняет студента и возвращает его
// с populated когортой.
//
// FirstName, LastName и Email обязательны.
func (s *StudentsService) Create(ctx context.Context, req shmodels.CreateStudentRequest) (shmodels.Student, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return shmodels.Student{}, serr.ErrInvalidInput
	}

	cohortID, err := s.resolveCohort(ctx, req.Cohort)
	if err != nil {
		return shmodels.Student{}, err
	}

	id, err := s.students.Create(ctx, StudentCreate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		LinkedinURL: req.LinkedinURL,
		Languages:   req.Languages,
		Program:     req.Program,
		Background:  req.Background,
		Image:       req.Image,
		Projects:    req.Projects,
		CohortID:    cohortID,
	})
	if err != nil {
		return shmodels.Student{}, err
	}

	// перечитываем, чтобы отдать клиенту документ с вложенной когортой
	return s.students.GetByID(ctx, id)
}

// List возвращает всех студентов.
func (s *StudentsService) List(ctx context.Context) ([]shmodels.Student, error) {
	return s.students.List(ctx)
}

// ListByCohort возвращает студентов указанной когорты.
func (s *StudentsService) ListByCohort(ctx context.Context, cohortID string) ([]shmodels.Student, error) {
	cid, err := uuid.Parse(cohortID)
	if err != nil {
		return nil, serr.ErrInvalidInput
	}
	return s.students.ListByCohort(ctx, cid)
}

// GetByID возвращает студента по строковому UUID.
func (s *StudentsService) GetByID(ctx context.Context, id string) (shmodels.Student, error) {
	sid, err := uuid.Parse(id)
	if err != nil {
		return shmodels.Student{}, serr.ErrInvalidInput
	}
	return s.students.GetByID(ctx, sid)
}

// Update частично обновляет студента и возвращает обновлённый документ.
//
// Поле Cohort: отсутствует — привязка не меняется, пустая строка —
// студент отвязывается от когорты, UUID — привязывается к новой.
func (s *StudentsService) Update(ctx context.Context, id string, req shmodels.UpdateStudentRequest) (shmodels.Student, error) {
	sid, err := uuid.Parse(id)
	if err != nil {
		return shmodels.Student{}, serr.ErrInvalidInput
	}

	upd := StudentUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		LinkedinURL: req.LinkedinURL,
		Languages:   req.Languages,
		Program:     req.Program,
		Background:  req.Background,
		Image:       req.Image,
		Projects:    req.Projects,
	}
	if req.Cohort != nil {
		upd.SetCohort = true
		cohortID, err := s.resolveCohort(ctx, *req.Cohort)
		if err != nil {
			return shmodels.Student{}, err
		}
		upd.CohortID = cohortID
	}

	if err := s.students.Update(ctx, sid, upd); err != nil {
		return shmodels.Student{}, err
	}
	return s.students.GetByID(ctx, sid)
}

// Delete удаляет студента по строковому UUID.
func (s *StudentsService) Delete(ctx context.Context, id string) error {
	sid, err := uuid.Parse(id)
	if err != nil {
		return serr.ErrInvalidInput
	}
	return s.students.Delete(ctx, sid)
}
