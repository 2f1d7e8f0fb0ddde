// Package api HTTP-клиент CLI к бэкенду Corexus.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrUnauthorized неверные учётные данные или недействительный токен.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrConflict email уже зарегистрирован.
	ErrConflict = errors.New("email already registered")
	// ErrInactiveUser учётная запись отключена.
	ErrInactiveUser = errors.New("inactive user")
)

const defaultTimeout = 10 * time.Second

// Client обращается к JSON API сервера.
type Client struct {
	http *resty.Client
}

// NewClient создаёт клиента для baseURL вида http://host:port.
func NewClient(baseURL string) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json")
	return &Client{http: c}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// User профиль из /api/user/me.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Status ответ /api/status.
type Status struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Login возвращает токен доступа.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	return c.token(ctx, "/api/user/login", credentials{Email: email, Password: password})
}

// Register регистрирует пользователя и возвращает токен доступа.
func (c *Client) Register(ctx context.Context, email, password, fullName string) (string, error) {
	return c.token(ctx, "/api/user/register", credentials{Email: email, Password: password, FullName: fullName})
}

func (c *Client) token(ctx context.Context, path string, body credentials) (string, error) {
	var out tokenResponse
	var apiErr errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		SetError(&apiErr).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("POST %s: %w", path, err)
	}
	if err := statusError(resp.StatusCode(), apiErr.Detail); err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("POST %s: empty access token", path)
	}
	return out.AccessToken, nil
}

// Me возвращает текущего пользователя по токену.
func (c *Client) Me(ctx context.Context, token string) (*User, error) {
	var out User
	var apiErr errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&out).
		SetError(&apiErr).
		Get("/api/user/me")
	if err != nil {
		return nil, fmt.Errorf("GET /api/user/me: %w", err)
	}
	if err := statusError(resp.StatusCode(), apiErr.Detail); err != nil {
		return nil, err
	}
	return &out, nil
}

// Status проверяет доступность сервера.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	var out Status
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/status")
	if err != nil {
		return nil, fmt.Errorf("GET /api/status: %w", err)
	}
	if err := statusError(resp.StatusCode(), strings.TrimSpace(resp.String())); err != nil {
		return nil, err
	}
	return &out, nil
}

func statusError(code int, detail string) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code == http.StatusConflict:
		return ErrConflict
	case code == http.StatusBadRequest && detail == "Inactive user":
		return ErrInactiveUser
	case detail != "":
		return fmt.Errorf("server status %d: %s", code, detail)
	default:
		return fmt.Errorf("server status %d", code)
	}
}
