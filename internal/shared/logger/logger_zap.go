// Package logger содержит общий логгер для server и agent.
//
// Логи пишутся в файл runtime/logs/http.log с ротацией через lumberjack.
// Уровень и формат (console/json) задаются конфигом сервера.
package logger

import (
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// HTTPLogger — обёртка над zap.Logger для логирования HTTP-событий.
// Встраивание *zap.Logger даёт доступ ко всем методам zap напрямую.
type HTTPLogger struct {
	*zap.Logger
}

// NewHTTPLogger создаёт логгер с настройками по умолчанию (info, console).
// Используется до загрузки конфига и в тестах.
func NewHTTPLogger() *HTTPLogger {
	return New("info", "console")
}

// New создаёт файловый zap-логгер с заданным уровнем и форматом.
//
// level — debug|info|warn|error (непонятное значение трактуется как info).
// format — json или console.
//
// В лог никогда не попадают пароли, хэши и токены — ни одно поле
// LogRequest их не содержит.
func New(level, format string) *HTTPLogger {
	logDir := filepath.Join("runtime", "logs")
	_ = os.MkdirAll(logDir, 0o755)

	// ротация: 100 MB на файл, 10 архивов, 30 дней хранения
	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, "http.log"),
		MaxSize:    100,
		MaxBackups: 10,
		MaxAge:     30,
		Compress:   true,
	})

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("15:04:05 02.01.2006"))
	}

	var enc zapcore.Encoder
	if format == "json" {
		enc = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(enc, writer, lvl)

	return &HTTPLogger{Logger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
}

// LogRequest записывает структурированную запись об HTTP-запросе:
// метод, URI, статус ответа, размер ответа в байтах и длительность в мс.
func (logger *HTTPLogger) LogRequest(method, uri string, status, responseSize int, duration float64) {
	logger.Info("HTTP request",
		zap.String("method", method),
		zap.String("uri", uri),
		zap.Int("status", status),
		zap.Int("response_size", responseSize),
		zap.Float64("duration_ms", duration),
	)
}
