// Package api содержит HTTP-клиент CLI для сервера cohort-tools.
//
// Клиент знает базовый URL сервера и умеет отправлять JSON-запросы
// (POST/GET/PUT/DELETE) с опциональным Bearer токеном. Ошибочные ответы
// сервера всегда имеют вид {"error": "..."} — клиент достаёт сообщение
// и возвращает его как текст ошибки, чтобы CLI печатал пользователю
// ровно то, что сказал сервер.
//
// ВНИМАНИЕ: NewClient включает InsecureSkipVerify=true (сертификат сервера
// не проверяется). Это допустимо только для локальной разработки; в
// production нужен доверенный сертификат.
package api

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client — HTTP-клиент для общения с сервером cohort-tools.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient создаёт клиент для сервера baseURL
// (например "http://127.0.0.1:5005"); завершающие "/" обрезаются.
// Таймаут запросов — 10 секунд.
func NewClient(baseURL string) *Client {
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, // только для dev
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: tr,
		},
	}
}

// do выполняет запрос method path с опциональным JSON-телом req и
// (если resp != nil) декодирует JSON-ответ в resp.
//
// Заголовки: Accept ставится всегда, Content-Type — только при наличии тела,
// Authorization: Bearer — только при непустом authToken.
// 204 No Content и пустое тело ответа считаются успехом.
func (c *Client) do(method, path string, req any, resp any, authToken string) error {
	var buf bytes.Buffer
	if req != nil {
		if err := json.NewEncoder(&buf).Encode(req); err != nil {
			return err
		}
	}

	r, err := http.NewRequest(method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	r.Header.Set("Accept", "application/json")
	if req != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		r.Header.Set("Authorization", "Bearer "+authToken)
	}

	res, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return errorFromResponse(res)
	}
	if res.StatusCode == http.StatusNoContent || resp == nil {
		return nil
	}

	if err := json.NewDecoder(res.Body).Decode(resp); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// errorFromResponse превращает не-2xx ответ сервера в error.
//
// Порядок: сообщение из {"error": "..."}, иначе непустое тело как есть
// (с обрезанными пробелами), иначе res.Status.
func errorFromResponse(res *http.Response) error {
	raw, _ := io.ReadAll(res.Body)

	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error != "" {
		return errors.New(apiErr.Error)
	}

	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		msg = res.Status
	}
	return errors.New(msg)
}

// PostJSON отправляет POST с JSON-телом req; если req == nil, тело пустое.
// resp и authToken опциональны.
func (c *Client) PostJSON(path string, req any, resp any, authToken string) error {
	return c.do(http.MethodPost, path, req, resp, authToken)
}

// GetJSON отправляет GET и (опционально) декодирует JSON-ответ в resp.
func (c *Client) GetJSON(path string, resp any, authToken string) error {
	return c.do(http.MethodGet, path, nil, resp, authToken)
}

// PutJSON отправляет PUT с JSON-телом req.
func (c *Client) PutJSON(path string, req any, resp any, authToken string) error {
	return c.do(http.MethodPut, path, req, resp, authToken)
}

// DeleteJSON отправляет DELETE; 204 No Content — успех.
func (c *Client) DeleteJSON(path string, resp any, authToken string) error {
	return c.do(http.MethodDelete, path, nil, resp, authToken)
}
