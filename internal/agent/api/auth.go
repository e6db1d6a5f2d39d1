// В этом файле описаны методы клиента для работы
// с эндпоинтами аутентификации: регистрация, вход и проверка токена.
package api

// SignupRequest описывает тело запроса регистрации пользователя.
//
// Email, Password и Name передаются в JSON формате в эндпоинт /auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SignupUser описывает созданного пользователя в ответе регистрации.
type SignupUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	ID    string `json:"id"`
}

// SignupResponse описывает ответ сервера при успешной регистрации.
type SignupResponse struct {
	User SignupUser `json:"user"`
}

// LoginRequest описывает тело запроса входа пользователя.
//
// Email и Password передаются в JSON формате в эндпоинт /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse описывает ответ сервера при успешном входе.
//
// AuthToken используется для авторизации запросов к защищённым эндпоинтам.
type LoginResponse struct {
	AuthToken string `json:"authToken"`
}

// VerifyResponse описывает ответ /auth/verify: claims токена.
type VerifyResponse struct {
	UserID string `json:"_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Signup выполняет регистрацию пользователя на сервере.
//
// Метод отправляет POST запрос на /auth/signup и возвращает SignupResponse.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Signup(email, password, name string) (SignupResponse, error) {
	var resp SignupResponse
	err := c.PostJSON("/auth/signup", SignupRequest{Email: email, Password: password, Name: name}, &resp, "")
	return resp, err
}

// Login выполняет вход пользователя и получает auth-токен.
//
// Метод отправляет POST запрос на /auth/login и возвращает LoginResponse
// с AuthToken. В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Login(email, password string) (LoginResponse, error) {
	var resp LoginResponse
	err := c.PostJSON("/auth/login", LoginRequest{Email: email, Password: password}, &resp, "")
	return resp, err
}

// Verify проверяет auth-токен на сервере и возвращает его claims.
//
// Метод отправляет GET запрос на /auth/verify с переданным токеном.
// В случае ошибки возвращает непустую ошибку и пустой ответ.
func (c *Client) Verify(authToken string) (VerifyResponse, error) {
	var resp VerifyResponse
	err := c.GetJSON("/auth/verify", &resp, authToken)
	return resp, err
}
