// Логирование HTTP-запросов
package middleware

import (
	"net/http"
	"time"

	"github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/logger"
)

// statusWriter перехватывает статус и размер ответа.
// Если хендлер пишет тело без явного WriteHeader, статус считается 200.
type statusWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// LoggerMiddleware логирует каждый запрос через переданный логгер:
// метод, URI, статус, размер ответа и длительность в миллисекундах.
// Тела запросов и заголовки (включая Authorization) в лог не попадают.
func LoggerMiddleware(l *logger.HTTPLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}
			next.ServeHTTP(sw, r)

			l.LogRequest(r.Method, r.RequestURI, sw.status, sw.size, time.Since(start).Seconds()*1000)
		})
	}
}
