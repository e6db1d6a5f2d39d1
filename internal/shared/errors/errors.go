// Package errors содержит общие доменные ошибки приложения
// и утилиты для error wrapping.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import "errors"

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Неавторизован
	ErrUnauthorized = errors.New("unauthorized")
	// Ресурс уже существует (например email или slug уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
)

// Ошибки auth-флоу. Текст фиксирован контрактом API и уходит клиенту как есть,
// поэтому формулировки менять нельзя.
var (
	// не заполнено одно из обязательных полей регистрации
	ErrMissingField = errors.New("A required field is missing")
	// email не проходит проверку формата
	ErrInvalidEmail = errors.New("Provide a valid email address.")
	// пароль не проходит проверку сложности
	ErrWeakPassword = errors.New("Password must have at least 6 characters and contain at least one number, one lowercase and one uppercase letter.")
	// пользователь с таким email уже зарегистрирован
	ErrUserExists = errors.New("User already exists")
	// логин без email или пароля
	ErrMissingCredentials = errors.New("Provide email and password")
	// пользователь по email/id не найден
	ErrUserNotFound = errors.New("User not found")
	// пароль не совпал с хэшем
	ErrBadCredentials = errors.New("Unable to authenticate")
	// отсутствует/битый/просроченный bearer токен
	ErrInvalidToken = errors.New("token not provided or invalid")
	// запрошенный маршрут не зарегистрирован
	ErrRouteNotFound = errors.New("This route does not exist, check the URL")
)
