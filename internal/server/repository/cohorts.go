package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/errors"
	shmodels "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/models"
)

// CohortsRepository реализует доступ к хранилищу когорт (PostgreSQL).
// Отвечает исключительно за сохранение и извлечение данных без бизнес-логики.
type CohortsRepository struct {
	db *sql.DB
}

// NewCohortsRepository создаёт новый экземпляр CohortsRepository.
func NewCohortsRepository(db *sql.DB) *CohortsRepository {
	return &CohortsRepository{db: db}
}

const cohortColumns = `id, cohort_slug, cohort_name, program, format, campus,
	start_date, end_date, in_progress, program_manager, lead_teacher, total_hours`

// scanCohort вычитывает одну строку когорты в DTO.
func scanCohort(row interface{ Scan(dest ...any) error }) (shmodels.Cohort, error) {
	var (
		c  shmodels.Cohort
		id uuid.UUID
	)
	err := row.Scan(
		&id, &c.CohortSlug, &c.CohortName, &c.Program, &c.Format, &c.Campus,
		&c.StartDate, &c.EndDate, &c.InProgress, &c.ProgramManager, &c.LeadTeacher, &c.TotalHours,
	)
	if err != nil {
		return shmodels.Cohort{}, err
	}
	c.ID = id.String()
	return c, nil
}

// Create сохраняет новую когорту.
//
// Ошибки:
//   - ErrAlreadyExists — slug уже занят (unique_violation)
//   - ErrInternal — прочие ошибки базы данных
func (r *CohortsRepository) Create(ctx context.Context, in service.CohortCreate) (shmodels.Cohort, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO cohorts (cohort_slug, cohort_name, program, format, campus,
			start_date, end_date, in_progress, program_manager, lead_teacher, total_hours)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING `+cohortColumns,
		in.CohortSlug, in.CohortName, in.Program, in.Format, in.Campus,
		in.StartDate, in.EndDate, in.InProgress, in.ProgramManager, in.LeadTeacher, in.TotalHours,
	)

	c, err := scanCohort(row)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" { // unique_violation
				return shmodels.Cohort{}, serr.ErrAlreadyExists
			}
		}
		return shmodels.Cohort{}, serr.ErrInternal
	}
	return c, nil
}

// List возвращает все когорты в порядке создания.
func (r *CohortsRepository) List(ctx context.Context) ([]shmodels.Cohort, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+cohortColumns+` FROM cohorts ORDER BY created_at, id`)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	cohorts := make([]shmodels.Cohort, 0)
	for rows.Next() {
		c, err := scanCohort(rows)
		if err != nil {
			return nil, serr.ErrInternal
		}
		cohorts = append(cohorts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return cohorts, nil
}

// GetByID возвращает когорту по идентификатору.
func (r *CohortsRepository) GetByID(ctx context.Context, id uuid.UUID) (shmodels.Cohort, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+cohortColumns+` FROM cohorts WHERE id=$1`, id)

	c, err := scanCohort(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return shmodels.Cohort{}, serr.ErrNotFound
		}
		return shmodels.Cohort{}, serr.ErrInternal
	}
	return c, nil
}

// Update частично обновляет когорту: nil-поля сохраняют текущее значение
// (COALESCE на стороне базы). Возвращает обновлённый документ.
func (r *CohortsRepository) Update(ctx context.Context, id uuid.UUID, upd service.CohortUpdate) (shmodels.Cohort, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE cohorts SET
			cohort_slug     = COALESCE($2,  cohort_slug),
			cohort_name     = COALESCE($3,  cohort_name),
			program         = COALESCE($4,  program),
			format          = COALESCE($5,  format),
			campus          = COALESCE($6,  campus),
			start_date      = COALESCE($7,  start_date),
			end_date        = COALESCE($8,  end_date),
			in_progress     = COALESCE($9,  in_progress),
			program_manager = COALESCE($10, program_manager),
			lead_teacher    = COALESCE($11, lead_teacher),
			total_hours     = COALESCE($12, total_hours)
		WHERE id = $1
		RETURNING `+cohortColumns,
		id,
		upd.CohortSlug, upd.CohortName, upd.Program, upd.Format, upd.Campus,
		upd.StartDate, upd.EndDate, upd.InProgress, upd.ProgramManager, upd.LeadTeacher, upd.TotalHours,
	)

	c, err := scanCohort(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return shmodels.Cohort{}, serr.ErrNotFound
		}
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" {
				return shmodels.Cohort{}, serr.ErrAlreadyExists
			}
		}
		return shmodels.Cohort{}, serr.ErrInternal
	}
	return c, nil
}

// Delete удаляет когорту по идентификатору.
//
// Студенты, привязанные к когорте, остаются: cohort_id у них
// обнуляется constraint'ом ON DELETE SET NULL.
func (r *CohortsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cohorts WHERE id=$1`, id)
	if err != nil {
		return serr.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		return serr.ErrInternal
	}
	if n == 0 {
		return serr.ErrNotFound
	}
	return nil
}
