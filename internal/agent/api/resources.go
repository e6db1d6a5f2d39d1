// В этом файле описаны методы клиента для работы с ресурсами API:
// когортами и студентами. Типы запросов/ответов общие с сервером
// (internal/shared/models).
package api

import (
	"fmt"

	shmodels "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/models"
)

// CreateCohort создаёт новую когорту.
func (c *Client) CreateCohort(req shmodels.CreateCohortRequest) (shmodels.Cohort, error) {
	var resp shmodels.Cohort
	err := c.PostJSON("/api/cohorts", req, &resp, "")
	return resp, err
}

// ListCohorts возвращает все когорты.
func (c *Client) ListCohorts() ([]shmodels.Cohort, error) {
	var resp []shmodels.Cohort
	err := c.GetJSON("/api/cohorts", &resp, "")
	return resp, err
}

// GetCohort возвращает когорту по идентификатору.
func (c *Client) GetCohort(id string) (shmodels.Cohort, error) {
	var resp shmodels.Cohort
	err := c.GetJSON("/api/cohorts/"+id, &resp, "")
	return resp, err
}

// UpdateCohort частично обновляет когорту.
func (c *Client) UpdateCohort(id string, req shmodels.UpdateCohortRequest) (shmodels.Cohort, error) {
	var resp shmodels.Cohort
	err := c.PutJSON("/api/cohorts/"+id, req, &resp, "")
	return resp, err
}

// DeleteCohort удаляет когорту по идентификатору.
func (c *Client) DeleteCohort(id string) error {
	return c.DeleteJSON("/api/cohorts/"+id, nil, "")
}

// CreateStudent создаёт нового студента.
func (c *Client) CreateStudent(req shmodels.CreateStudentRequest) (shmodels.Student, error) {
	var resp shmodels.Student
	err := c.PostJSON("/api/students", req, &resp, "")
	return resp, err
}

// ListStudents возвращает всех студентов.
func (c *Client) ListStudents() ([]shmodels.Student, error) {
	var resp []shmodels.Student
	err := c.GetJSON("/api/students", &resp, "")
	return resp, err
}

// ListStudentsByCohort возвращает студентов одной когорты.
func (c *Client) ListStudentsByCohort(cohortID string) ([]shmodels.Student, error) {
	var resp []shmodels.Student
	err := c.GetJSON("/api/students/cohort/"+cohortID, &resp, "")
	return resp, err
}

// GetStudent возвращает студента по идентификатору.
func (c *Client) GetStudent(id string) (shmodels.Student, error) {
	var resp shmodels.Student
	err := c.GetJSON("/api/students/"+id, &resp, "")
	return resp, err
}

// UpdateStudent частично обновляет студента.
func (c *Client) UpdateStudent(id string, req shmodels.UpdateStudentRequest) (shmodels.Student, error) {
	var resp shmodels.Student
	err := c.PutJSON("/api/students/"+id, req, &resp, "")
	return resp, err
}

// DeleteStudent удаляет студента по идентификатору.
func (c *Client) DeleteStudent(id string) error {
	return c.DeleteJSON("/api/students/"+id, nil, "")
}

// GetUser возвращает пользователя по идентификатору (защищённый эндпоинт).
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// GetUser запрашивает пользователя по id, используя authToken для авторизации.
func (c *Client) GetUser(id, authToken string) (UserResponse, error) {
	var resp UserResponse
	err := c.GetJSON(fmt.Sprintf("/api/users/%s", id), &resp, authToken)
	return resp, err
}
