package models

// Cohort — плоская модель когорты, используемая в HTTP API.
//
// Поля повторяют контракт API (camelCase), идентификатор — UUID в виде строки.
//
// Поля:
//   - ID: уникальный идентификатор когорты
//   - CohortSlug: короткое уникальное имя (например "ft-wd-paris-2023")
//   - CohortName: человекочитаемое название
//   - Program: программа обучения (Web Dev / UX/UI / Data Analytics ...)
//   - Format: формат (Full Time / Part Time)
//   - Campus: город кампуса
//   - StartDate/EndDate: даты начала и конца (RFC 3339)
//   - InProgress: идёт ли набор/обучение прямо сейчас
//   - ProgramManager/LeadTeacher: ответственные
//   - TotalHours: объём программы в часах
type Cohort struct {
	ID             string `json:"id"`
	CohortSlug     string `json:"cohortSlug"`
	CohortName     string `json:"cohortName"`
	Program        string `json:"program"`
	Format         string `json:"format"`
	Campus         string `json:"campus"`
	StartDate      string `json:"startDate,omitempty"`
	EndDate        string `json:"endDate,omitempty"`
	InProgress     bool   `json:"inProgress"`
	ProgramManager string `json:"programManager,omitempty"`
	LeadTeacher    string `json:"leadTeacher,omitempty"`
	TotalHours     int    `json:"totalHours,omitempty"`
}

// Student — плоская модель студента, используемая в HTTP API.
//
// Поле Cohort заполняется сервером («populate»): вместо сырого id когорты
// в ответ вкладывается сам объект когорты. Если студент не привязан к когорте,
// поле опускается.
type Student struct {
	ID          string   `json:"id"`
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone,omitempty"`
	LinkedinURL string   `json:"linkedinUrl,omitempty"`
	Languages   []string `json:"languages,omitempty"`
	Program     string   `json:"program,omitempty"`
	Background  string   `json:"background,omitempty"`
	Image       string   `json:"image,omitempty"`
	Projects    []string `json:"projects,omitempty"`
	Cohort      *Cohort  `json:"cohort,omitempty"`
}

// CreateCohortRequest — запрос на создание когорты.
//
// Используется в:
//
//	POST /api/cohorts
//
// CohortSlug и CohortName обязательны, остальные поля опциональны.
type CreateCohortRequest struct {
	CohortSlug     string `json:"cohortSlug"`
	CohortName     string `json:"cohortName"`
	Program        string `json:"program"`
	Format         string `json:"format"`
	Campus         string `json:"campus"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	InProgress     bool   `json:"inProgress"`
	ProgramManager string `json:"programManager"`
	LeadTeacher    string `json:"leadTeacher"`
	TotalHours     int    `json:"totalHours"`
}

// UpdateCohortRequest — запрос на частичное обновление когорты по ID.
//
// Используется в:
//
//	PUT /api/cohorts/{cohortId}
//
// Все поля — указатели, чтобы можно было передавать только изменяемые поля.
type UpdateCohortRequest struct {
	CohortSlug     *string `json:"cohortSlug,omitempty"`
	CohortName     *string `json:"cohortName,omitempty"`
	Program        *string `json:"program,omitempty"`
	Format         *string `json:"format,omitempty"`
	Campus         *string `json:"campus,omitempty"`
	StartDate      *string `json:"startDate,omitempty"`
	EndDate        *string `json:"endDate,omitempty"`
	InProgress     *bool   `json:"inProgress,omitempty"`
	ProgramManager *string `json:"programManager,omitempty"`
	LeadTeacher    *string `json:"leadTeacher,omitempty"`
	TotalHours     *int    `json:"totalHours,omitempty"`
}

// CreateStudentRequest — запрос на создание студента.
//
// Используется в:
//
//	POST /api/students
//
// FirstName, LastName и Email обязательны.
// Cohort — строковый UUID существующей когорты, опционален.
type CreateStudentRequest struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	LinkedinURL string   `json:"linkedinUrl"`
	Languages   []string `json:"languages"`
	Program     string   `json:"program"`
	Background  string   `json:"background"`
	Image       string   `json:"image"`
	Projects    []string `json:"projects"`
	Cohort      string   `json:"cohort"`
}

// UpdateStudentRequest — запрос на частичное обновление студента по ID.
//
// Используется в:
//
//	PUT /api/students/{studentId}
//
// Указатели позволяют отличать «поле не передано» от «поле очищено».
// Cohort принимает UUID новой когорты; пустая строка отвязывает студента.
type UpdateStudentRequest struct {
	FirstName   *string   `json:"firstName,omitempty"`
	LastName    *string   `json:"lastName,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	LinkedinURL *string   `json:"linkedinUrl,omitempty"`
	Languages   *[]string `json:"languages,omitempty"`
	Program     *string   `json:"program,omitempty"`
	Background  *string   `json:"background,omitempty"`
	Image       *string   `json:"image,omitempty"`
	Projects    *[]string `json:"projects,omitempty"`
	Cohort      *string   `json:"cohort,omitempty"`
}
