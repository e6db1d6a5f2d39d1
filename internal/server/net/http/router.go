// Package http реализует маршрутизацию HTTP-слоя сервера cohort-tools.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - единый 404-ответ для незарегистрированных путей и методов.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/api"
	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/middleware"
)

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - middleware логирования для всех запросов;
//   - корневой маршрут и swagger-документацию;
//   - публичные эндпоинты аутентификации под префиксом /auth;
//   - публичный CRUD когорт и студентов под префиксом /api;
//   - защищённый JWT просмотр пользователей /api/users/{userId};
//   - фолбэк 404 для любого неизвестного пути или метода.
func NewRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов тем же логгером, что и у хендлера
	r.Use(middleware.LoggerMiddleware(h.Log))

	// любой незарегистрированный путь или метод — один и тот же 404
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.NotFound)

	r.Get("/", h.Welcome)
	// добавляем swagger
	r.Get("/docs/*", httpSwagger.WrapHandler)

	// Публичные пути аутентификации
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		// verify требует валидный токен
		r.With(h.Verifier.AuthMiddleware()).Get("/verify", h.Verify)
	})

	r.Route("/api", func(r chi.Router) {
		// CRUD когорт и студентов открыт: токен нужен только auth-маршрутам
		r.Route("/cohorts", func(r chi.Router) {
			r.Post("/", h.CreateCohort)
			r.Get("/", h.ListCohorts)
			r.Get("/{cohortId}", h.GetCohort)
			r.Put("/{cohortId}", h.UpdateCohort)
			r.Delete("/{cohortId}", h.DeleteCohort)
		})
		r.Route("/students", func(r chi.Router) {
			r.Post("/", h.CreateStudent)
			r.Get("/", h.ListStudents)
			r.Get("/cohort/{cohortId}", h.ListStudentsByCohort)
			r.Get("/{studentId}", h.GetStudent)
			r.Put("/{studentId}", h.UpdateStudent)
			r.Delete("/{studentId}", h.DeleteStudent)
		})
		// защищённый просмотр пользователя
		r.Group(func(r chi.Router) {
			r.Use(h.Verifier.AuthMiddleware())
			r.Get("/users/{userId}", h.GetUser)
		})
	})

	return r
}
