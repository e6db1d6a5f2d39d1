// Package api реализует HTTP-слой сервера cohort-tools.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения;
//   - контрактный формат ошибки {"error": "..."} для всех неуспешных ответов.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/service"
	serr "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/logger"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: компонент проверки JWT и middleware авторизации.
//
// Методы Handler используются роутером для обработки HTTP-запросов.
type Handler struct {
	Svc      *service.Services
	Log      *logger.HTTPLogger
	Verifier *middleware.JWTVerifier
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc — набор сервисов приложения,
// log — логгер,
// verifier — JWT-проверка и middleware авторизации.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier) *Handler {
	return &Handler{
		Svc:      svc,
		Log:      log,
		Verifier: verifier,
	}
}

// ErrorResponse стандартный формат ошибки API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Вспомогательная функция вывода ошибки
func WriteError(w http.ResponseWriter, status int, err error) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: err.Error(),
	})
}

// WriteJSON сериализует ответ и выставляет статус.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Welcome отвечает на корневой маршрут приветственным сообщением.
//
// @Summary      Welcome
// @Description  Returns a welcome message to confirm the API is up.
// @Tags         root
// @Produce      json
// @Success      200 {object} WelcomeResponse
// @Router       / [get]
func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, WelcomeResponse{
		Message: "Welcome to the Cohort Tools API!",
	})
}

// WelcomeResponse — ответ корневого маршрута.
type WelcomeResponse struct {
	Message string `json:"message"`
}

// NotFound — общий обработчик незарегистрированных маршрутов.
// Подключается и на NotFound, и на MethodNotAllowed роутера,
// чтобы любой неизвестный путь/метод получал один и тот же ответ.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, http.StatusNotFound, serr.ErrRouteNotFound)
}
