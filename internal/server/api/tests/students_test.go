package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/errors"
	shmodels "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/models"
)

// Создание с когортой: ответ содержит populated cohort
func TestCreateStudent_Created(t *testing.T) {
	env := newTestEnv(t)

	cohortID := uuid.New()
	studentID := uuid.New()

	env.cohorts.EXPECT().
		GetByID(gomock.Any(), cohortID).
		Return(shmodels.Cohort{ID: cohortID.String(), CohortSlug: "ft-2026"}, nil)
	env.students.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in service.StudentCreate) (uuid.UUID, error) {
			require.Equal(t, "Ada", in.FirstName)
			require.NotNil(t, in.CohortID)
			return studentID, nil
		})
	env.students.EXPECT().
		GetByID(gomock.Any(), studentID).
		Return(shmodels.Student{
			ID:        studentID.String(),
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Cohort:    &shmodels.Cohort{ID: cohortID.String(), CohortSlug: "ft-2026"},
		}, nil)

	rec := env.do(t, http.MethodPost, "/api/students",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","cohort":"`+cohortID.String()+`"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var st shmodels.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	require.Equal(t, studentID.String(), st.ID)
	require.NotNil(t, st.Cohort)
	require.Equal(t, "ft-2026", st.Cohort.CohortSlug)
}

// Создание без обязательных полей
func TestCreateStudent_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/students", `{"firstName":"Ada"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// Несуществующая когорта в запросе
func TestCreateStudent_UnknownCohort(t *testing.T) {
	env := newTestEnv(t)

	cohortID := uuid.New()
	env.cohorts.EXPECT().
		GetByID(gomock.Any(), cohortID).
		Return(shmodels.Cohort{}, serr.ErrNotFound)

	rec := env.do(t, http.MethodPost, "/api/students",
		`{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","cohort":"`+cohortID.String()+`"}`, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// Список
func TestListStudents_OK(t *testing.T) {
	env := newTestEnv(t)

	env.students.EXPECT().
		List(gomock.Any()).
		Return([]shmodels.Student{
			{ID: uuid.NewString(), FirstName: "Ada"},
			{ID: uuid.NewString(), FirstName: "Grace"},
		}, nil)

	rec := env.do(t, http.MethodGet, "/api/students", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []shmodels.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
}

// Фильтр по когорте
func TestListStudentsByCohort_OK(t *testing.T) {
	env := newTestEnv(t)

	cohortID := uuid.New()
	env.students.EXPECT().
		ListByCohort(gomock.Any(), cohortID).
		Return([]shmodels.Student{{ID: uuid.NewString(), FirstName: "Ada"}}, nil)

	rec := env.do(t, http.MethodGet, "/api/students/cohort/"+cohortID.String(), "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var list []shmodels.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
}

// Фильтр по кривому UUID когорты
func TestListStudentsByCohort_MalformedID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/students/cohort/not-a-uuid", "", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// Не найден
func TestGetStudent_NotFound(t *testing.T) {
	env := newTestEnv(t)

	id := uuid.New()
	env.students.EXPECT().
		GetByID(gomock.Any(), id).
		Return(shmodels.Student{}, serr.ErrNotFound)

	rec := env.do(t, http.MethodGet, "/api/students/"+id.String(), "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

// Частичное обновление: отвязка когорты пустой строкой
func TestUpdateStudent_DetachCohort(t *testing.T) {
	env := newTestEnv(t)

	id := uuid.New()
	env.students.EXPECT().
		Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, upd service.StudentUpdate) error {
			require.True(t, upd.SetCohort)
			require.Nil(t, upd.CohortID)
			return nil
		})
	env.students.EXPECT().
		GetByID(gomock.Any(), id).
		Return(shmodels.Student{ID: id.String(), FirstName: "Ada"}, nil)

	rec := env.do(t, http.MethodPut, "/api/students/"+id.String(), `{"cohort":""}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var st shmodels.Student
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	require.Nil(t, st.Cohort)
}

// Удаление: 204 без тела
func TestDeleteStudent_NoContent(t *testing.T) {
	env := newTestEnv(t)

	id := uuid.New()
	env.students.EXPECT().Delete(gomock.Any(), id).Return(nil)

	rec := env.do(t, http.MethodDelete, "/api/students/"+id.String(), "", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

// Удаление несуществующего студента
func TestDeleteStudent_NotFound(t *testing.T) {
	env := newTestEnv(t)

	id := uuid.New()
	env.students.EXPECT().Delete(gomock.Any(), id).Return(serr.ErrNotFound)

	rec := env.do(t, http.MethodDelete, "/api/students/"+id.String(), "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}
