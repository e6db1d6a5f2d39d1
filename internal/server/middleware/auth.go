// Package middleware содержит HTTP middleware сервера.
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/IvanChernomyrdin/go-cohort-tools/internal/server/crypto"
	serr "github.com/IvanChernomyrdin/go-cohort-tools/internal/shared/errors"
	"github.com/golang-jwt/jwt/v5"
)

// ctxKey используется как тип ключа для хранения значений в context.Context.
// Отдельный тип предотвращает коллизии ключей между пакетами.
type ctxKey string

// claimsKey — ключ контекста, под которым хранятся claims аутентифицированного пользователя.
const claimsKey ctxKey = "auth_claims"

// JWTVerifier инкапсулирует параметры проверки JWT auth-токенов.
//
// Используется в HTTP middleware для:
//   - проверки подписи токена
//   - валидации issuer и audience
//   - извлечения claims идентичности (_id, email, name)
type JWTVerifier struct {
	SigningKey string // симметричный ключ для подписи (HS256)
	Issuer     string // ожидаемый issuer (опционально)
	Audience   string // ожидаемая audience (опционально)
}

// NewJWTVerifier создаёт новый JWTVerifier с заданными параметрами.
func NewJWTVerifier(signingKey, issuer, audience string) *JWTVerifier {
	return &JWTVerifier{SigningKey: signingKey, Issuer: issuer, Audience: audience}
}

// ClaimsFromContext извлекает claims аутентифицированного пользователя из контекста.
//
// Возвращает:
//   - claims токена
//   - false, если пользователь не аутентифицирован
func ClaimsFromContext(ctx context.Context) (*crypto.Claims, bool) {
	v := ctx.Value(claimsKey)
	c, ok := v.(*crypto.Claims)
	return c, ok
}

// Verify проверяет подпись, структуру и срок жизни токена.
//
// Payload токена считается доверенным только после успешной проверки
// подписи и exp; повторного похода в базу нет — claims возвращаются
// ровно такими, какими были выданы.
//
// Возвращает serr.ErrInvalidToken на любую причину отказа.
func (v *JWTVerifier) Verify(tokenStr string) (*crypto.Claims, error) {
	if strings.TrimSpace(tokenStr) == "" {
		return nil, serr.ErrInvalidToken
	}

	claims := &crypto.Claims{}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	_, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return []byte(v.SigningKey), nil
	})
	if err != nil {
		return nil, serr.ErrInvalidToken
	}

	if v.Issuer != "" && claims.Issuer != v.Issuer {
		return nil, serr.ErrInvalidToken
	}

	if v.Audience != "" {
		ok := false
		for _, aud := range claims.Audience {
			if aud == v.Audience {
				ok = true
				break
			}
		}
		if !ok {
			return nil, serr.ErrInvalidToken
		}
	}

	if strings.TrimSpace(claims.UserID) == "" {
		return nil, serr.ErrInvalidToken
	}

	return claims, nil
}

// AuthMiddleware возвращает HTTP middleware для проверки JWT auth-токенов.
//
// Middleware:
//   - ожидает заголовок Authorization: Bearer <token>
//   - валидирует подпись и claims токена
//   - сохраняет claims в context.Context
//
// Любой отказ (нет заголовка, битый формат, неверная подпись, истёкший срок)
// даёт единый ответ 401 {"error":"token not provided or invalid"},
// downstream-хендлер при этом не вызывается.
func (v *JWTVerifier) AuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractBearer(r.Header.Get("Authorization"))

			claims, err := v.Verify(tokenStr)
			if err != nil {
				writeUnauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractBearer извлекает JWT из заголовка Authorization.
//
// Ожидаемый формат:
//
//	Authorization: Bearer <token>
//
// Возвращает пустую строку, если формат некорректен.
func ExtractBearer(h string) string {
	h = strings.TrimSpace(h)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// writeUnauthorized пишет единый JSON-ответ 401 для всех отказов guard'а.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: serr.ErrInvalidToken.Error()})
}
