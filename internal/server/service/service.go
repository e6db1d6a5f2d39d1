// Package service содержит бизнес-логику приложения (cohort-tools).
// Это прослойка между HTTP-обработчиками (api) и хранилищем данных (repository).
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/config"
	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/models"
	shmodels "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/models"
)

// Repositories — набор интерфейсов, которые сервисный слой ожидает от слоя repository.
type Repositories struct {
	Users    UsersRepo
	Cohorts  CohortsRepo
	Students StudentsRepo
}

// Services — агрегатор всех сервисов приложения.
type Services struct {
	Auth     *AuthService
	Users    *UsersService
	Cohorts  *CohortsService
	Students *StudentsService
}

// NewServices собирает все сервисы приложения.
// cfg нужен AuthService (параметры хэширования пароля и подписи токена).
func NewServices(repos Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:     NewAuthService(repos.Users, cfg),
		Users:    NewUsersService(repos.Users),
		Cohorts:  NewCohortsService(repos.Cohorts),
		Students: NewStudentsService(repos.Students, repos.Cohorts),
	}
}

// UsersRepo — репозиторий пользователей (нужен для auth/signup/login и /api/users).
type UsersRepo interface {
	Create(ctx context.Context, email, passwordHash, name string) (models.Account, error)
	GetByEmail(ctx context.Context, email string) (models.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (models.Account, error)
}

// CohortsRepo — репозиторий когорт (CRUD).
type CohortsRepo interface {
	Create(ctx context.Context, c CohortCreate) (shmodels.Cohort, error)
	List(ctx context.Context) ([]shmodels.Cohort, error)
	GetByID(ctx context.Context, id uuid.UUID) (shmodels.Cohort, error)
	Update(ctx context.Context, id uuid.UUID, upd CohortUpdate) (shmodels.Cohort, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// StudentsRepo — репозиторий студентов (CRUD + populate когорты).
type StudentsRepo interface {
	Create(ctx context.Context, s StudentCreate) (uuid.UUID, error)
	List(ctx context.Context) ([]shmodels.Student, error)
	ListByCohort(ctx context.Context, cohortID uuid.UUID) ([]shmodels.Student, error)
	GetByID(ctx context.Context, id uuid.UUID) (shmodels.Student, error)
	Update(ctx context.Context, id uuid.UUID, upd StudentUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CohortCreate — провалидированные данные для вставки когорты.
type CohortCreate struct {
	CohortSlug     string
	CohortName     string
	Program        string
	Format         string
	Campus         string
	StartDate      string
	EndDate        string
	InProgress     bool
	ProgramManager string
	LeadTeacher    string
	TotalHours     int
}

// CohortUpdate — разобранный PUT-запрос когорты: nil-поля не трогаются.
type CohortUpdate struct {
	CohortSlug     *string
	CohortName     *string
	Program        *string
	Format         *string
	Campus         *string
	StartDate      *string
	EndDate        *string
	InProgress     *bool
	ProgramManager *string
	LeadTeacher    *string
	TotalHours     *int
}

// StudentCreate — провалидированные данные для вставки студента.
// CohortID уже распарсен и проверен на существование.
type StudentCreate struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	LinkedinURL string
	Languages   []string
	Program     string
	Background  string
	Image       string
	Projects    []string
	CohortID    *uuid.UUID
}

// StudentUpdate — разобранный PUT-запрос студента: nil-поля не трогаются.
//
// SetCohort отличает «когорту не меняем» (false) от «меняем на CohortID,
// в том числе на NULL» (true).
type StudentUpdate struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Phone       *string
	LinkedinURL *string
	Languages   *[]string
	Program     *string
	Background  *string
	Image       *string
	Projects    *[]string
	SetCohort   bool
	CohortID    *uuid.UUID
}
