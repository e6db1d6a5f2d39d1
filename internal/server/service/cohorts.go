package service

import (
	"context"

	"github.com/google/uuid"

	serr "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/errors"
	shmodels "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/models"
)

// CohortsService реализует бизнес-логику работы с когортами.
type CohortsService struct {
	cohorts CohortsRepo
}

// NewCohortsService создаёт новый CohortsService.
func NewCohortsService(cohorts CohortsRepo) *CohortsService {
	return &CohortsService{cohorts: cohorts}
}

// Create валидирует запрос и сохраняет новую когорту.
// CohortSlug и CohortName обязательны.
func (s *CohortsService) Create(ctx context.Context, req shmodels.CreateCohortRequest) (shmodels.Cohort, error) {
	if req.CohortSlug == "" || req.CohortName == "" {
		return shmodels.Cohort{}, serr.ErrInvalidInput
	}

	return s.cohorts.Create(ctx, CohortCreate{
		CohortSlug:     req.CohortSlug,
		CohortName:     req.CohortName,
		Program:        req.Program,
		Format:         req.Format,
		Campus:         req.Campus,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		InProgress:     req.InProgress,
		ProgramManager: req.ProgramManager,
		LeadTeacher:    req.LeadTeacher,
		TotalHours:     req.TotalHours,
	})
}

// List возвращает все когорты.
func (s *CohortsService) List(ctx context.Context) ([]shmodels.Cohort, error) {
	return s.cohorts.List(ctx)
}

// GetByID возвращает когорту по строковому UUID.
func (s *CohortsService) GetByID(ctx context.Context, id string) (shmodels.Cohort, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return shmodels.Cohort{}, serr.ErrInvalidInput
	}
	return s.cohorts.GetByID(ctx, cid)
}

// Update частично обновляет когорту и возвращает обновлённый документ.
func (s *CohortsService) Update(ctx context.Context, id string, req shmodels.UpdateCohortRequest) (shmodels.Cohort, error) {
	cid, err := uuid.Parse(id)
	if err != nil {
		return shmodels.Cohort{}, serr.ErrInvalidInput
	}

	return s.cohorts.Update(ctx, cid, CohortUpdate{
		CohortSlug:     req.CohortSlug,
		CohortName:     req.CohortName,
		Program:        req.Program,
		Format:         req.Format,
		Campus:         req.Campus,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		InProgress:     req.InProgress,
		ProgramManager: req.ProgramManager,
		LeadTeacher:    req.LeadTeacher,
		TotalHours:     req.TotalHours,
	})
}

// Delete удаляет когорту. Привязанные студенты остаются без когорты.
func (s *CohortsService) Delete(ctx context.Context, id string) error {
	cid, err := uuid.Parse(id)
	if err != nil {
		return serr.ErrInvalidInput
	}
	return s.cohorts.Delete(ctx, cid)
}
