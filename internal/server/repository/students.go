package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/errors"
	shmodels "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/models"
)

// StudentsRepository реализует доступ к хранилищу студентов (PostgreSQL).
//
// Списковые поля (languages, projects) хранятся как jsonb.
// «Populate» когорты делается одним LEFT JOIN, отдельного запроса
// на каждую когорту нет.
type StudentsRepository struct {
	db *sql.DB
}

// NewStudentsRepository создаёт новый экземпляр StudentsRepository.
func NewStudentsRepository(db *sql.DB) *StudentsRepository {
	return &StudentsRepository{db: db}
}

const studentSelect = `
	SELECT s.id, s.first_name, s.last_name, s.email, s.phone, s.linkedin_url,
	       s.languages, s.program, s.background, s.image, s.projects,
	       c.id, c.cohort_slug, c.cohort_name, c.program, c.format, c.campus,
	       c.start_date, c.end_date, c.in_progress, c.program_manager, c.lead_teacher, c.total_hours
	FROM students s
	LEFT JOIN cohorts c ON c.id = s.cohort_id`

// marshalStrings кодирует список строк в jsonb-представление.
// nil превращается в пустой список, чтобы в базе не появлялся json null.
func marshalStrings(s []string) ([]byte, error) {
	if s == nil {
		s = []string{}
	}
	return json.Marshal(s)
}

// scanStudent вычитывает строку студента вместе с опциональной когортой.
func scanStudent(row interface{ Scan(dest ...any) error }) (shmodels.Student, error) {
	var (
		st                   shmodels.Student
		id                   uuid.UUID
		languages, projects  []byte
		cohortID             uuid.NullUUID
		slug, name           sql.NullString
		program, format      sql.NullString
		campus, start, end   sql.NullString
		manager, teacher     sql.NullString
		inProgress           sql.NullBool
		totalHours           sql.NullInt64
	)

	err := row.Scan(
		&id, &st.FirstName, &st.LastName, &st.Email, &st.Phone, &st.LinkedinURL,
		&languages, &st.Program, &st.Background, &st.Image, &projects,
		&cohortID, &slug, &name, &program, &format, &campus,
		&start, &end, &inProgress, &manager, &teacher, &totalHours,
	)
	if err != nil {
		return shmodels.Student{}, err
	}

	st.ID = id.String()
	if err := json.Unmarshal(languages, &st.Languages); err != nil {
		return shmodels.Student{}, err
	}
	if err := json.Unmarshal(projects, &st.Projects); err != nil {
		return shmodels.Student{}, err
	}

	if cohortID.Valid {
		st.Cohort = &shmodels.Cohort{
			ID:             cohortID.UUID.String(),
			CohortSlug:     slug.String,
			CohortName:     name.String,
			Program:        program.String,
			Format:         format.String,
			Campus:         campus.String,
			StartDate:      start.String,
			EndDate:        end.String,
			InProgress:     inProgress.Bool,
			ProgramManager: manager.String,
			LeadTeacher:    teacher.String,
			TotalHours:     int(totalHours.Int64),
		}
	}
	return st, nil
}

// Create сохраняет нового студента и возвращает его идентификатор.
func (r *StudentsRepository) Create(ctx context.Context, in service.StudentCreate) (uuid.UUID, error) {
	languages, err := marshalStrings(in.Languages)
	if err != nil {
		return uuid.Nil, serr.ErrInternal
	}
	projects, err := marshalStrings(in.Projects)
	if err != nil {
		return uuid.Nil, serr.ErrInternal
	}

	var id uuid.UUID
	err = r.db.QueryRowContext(ctx, `
		INSERT INTO students (first_name, last_name, email, phone, linkedin_url,
			languages, program, background, image, projects, cohort_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id`,
		in.FirstName, in.LastName, in.Email, in.Phone, in.LinkedinURL,
		languages, in.Program, in.Background, in.Image, projects, in.CohortID,
	).Scan(&id)

	if err != nil {
		return uuid.Nil, serr.ErrInternal
	}
	return id, nil
}

// List возвращает всех студентов с populated когортой.
func (r *StudentsRepository) List(ctx context.Context) ([]shmodels.Student, error) {
	rows, err := r.db.QueryContext(ctx, studentSelect+` ORDER BY s.created_at, s.id`)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	return collectStudents(rows)
}

// ListByCohort возвращает студентов одной когорты с populated когортой.
func (r *StudentsRepository) ListByCohort(ctx context.Context, cohortID uuid.UUID) ([]shmodels.Student, error) {
	rows, err := r.db.QueryContext(ctx,
		studentSelect+` WHERE s.cohort_id = $1 ORDER BY s.created_at, s.id`, cohortID)
	if err != nil {
		return nil, serr.ErrInternal
	}
	defer rows.Close()

	return collectStudents(rows)
}

func collectStudents(rows *sql.Rows) ([]shmodels.Student, error) {
	students := make([]shmodels.Student, 0)
	for rows.Next() {
		st, err := scanStudent(rows)
		if err != nil {
			return nil, serr.ErrInternal
		}
		students = append(students, st)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.ErrInternal
	}
	return students, nil
}

// GetByID возвращает студента по идентификатору с populated когортой.
func (r *StudentsRepository) GetByID(ctx context.Context, id uuid.UUID) (shmodels.Student, error) {
	row := r.db.QueryRowContext(ctx, studentSelect+` WHERE s.id = $1`, id)

	st, err := scanStudent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return shmodels.Student{}, serr.ErrNotFound
		}
		return shmodels.Student{}, serr.ErrInternal
	}
	return st, nil
}

// Update частично обновляет студента.
//
// nil-поля сохраняют текущее значение (COALESCE). Привязка к когорте
// меняется только при upd.SetCohort=true; CohortID=nil при этом
// отвязывает студента.
func (r *StudentsRepository) Update(ctx context.Context, id uuid.UUID, upd service.StudentUpdate) error {
	var languages, projects []byte
	var err error

	if upd.Languages != nil {
		if languages, err = marshalStrings(*upd.Languages); err != nil {
			return serr.ErrInternal
		}
	}
	if upd.Projects != nil {
		if projects, err = marshalStrings(*upd.Projects); err != nil {
			return serr.ErrInternal
		}
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE students SET
			first_name   = COALESCE($2,  first_name),
			last_name    = COALESCE($3,  last_name),
			email        = COALESCE($4,  email),
			phone        = COALESCE($5,  phone),
			linkedin_url = COALESCE($6,  linkedin_url),
			languages    = COALESCE($7,  languages),
			program      = COALESCE($8,  program),
			background   = COALESCE($9,  background),
			image        = COALESCE($10, image),
			projects     = COALESCE($11, projects),
			cohort_id    = CASE WHEN $12 THEN $13 ELSE cohort_id END
		WHERE id = $1`,
		id,
		upd.FirstName, upd.LastName, upd.Email, upd.Phone, upd.LinkedinURL,
		languages, upd.Program, upd.Background, upd.Image, projects,
		upd.SetCohort, upd.CohortID,
	)
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

// Delete удаляет студента по идентификатору.
func (r *StudentsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id=$1`, id)
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
