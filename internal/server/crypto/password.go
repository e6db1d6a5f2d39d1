// Хэширование паролей
package crypto

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// BcryptParams задаёт стоимость хэширования bcrypt.
//
// Cost фиксируется конфигом на старте (по умолчанию 10) и
// зашивается в сам digest, поэтому VerifyPassword параметров не требует.
type BcryptParams struct {
	Cost int
}

// HashPassword возвращает bcrypt-digest пароля.
//
// Соль генерируется внутри bcrypt, два вызова для одного пароля
// дают разные строки. Пустой пароль — ошибка.
func HashPassword(password string, p BcryptParams) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("empty password")
	}

	cost := p.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword сверяет пароль с digest.
//
// Возвращает false на любое несовпадение, включая битый формат digest —
// проверка пароля никогда не «роняет» вызывающий код ошибкой.
func VerifyPassword(password, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
}
