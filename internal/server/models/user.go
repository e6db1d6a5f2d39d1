// Серверная модель пользователя
package models

import (
	"time"

	"github.com/google/uuid"
)

// Account — зарегистрированный пользователь API.
//
// PasswordHash никогда не сериализуется наружу (json:"-").
// ID назначается при создании и не меняется.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"createdAt"`
}
