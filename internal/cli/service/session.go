package service

import (
	"context"
	"errors"
	"fmt"

	"Corexus/internal/cli/api"
	"Corexus/internal/frontend"
)

// ErrNotLoggedIn в локальном хранилище нет токена.
var ErrNotLoggedIn = errors.New("not logged in")

// ErrSessionExpired сервер отверг сохранённый токен, токен удалён.
var ErrSessionExpired = errors.New("session expired, please login again")

// AuthAPI часть HTTP-клиента, нужная сессии.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password, fullName string) (string, error)
	Me(ctx context.Context, token string) (*api.User, error)
}

// Session юзкейс-уровень аутентификации CLI поверх локального хранилища.
type Session struct {
	api   AuthAPI
	store frontend.Storage
}

// NewSession создаёт сессию.
func NewSession(client AuthAPI, store frontend.Storage) *Session {
	return &Session{api: client, store: store}
}

// Store локальное хранилище сессии.
func (s *Session) Store() frontend.Storage { return s.store }

// Login получает токен и сохраняет его под ключом accessToken.
func (s *Session) Login(ctx context.Context, email, password string) error {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return s.save(token)
}

// Register создаёт учётную запись и сразу сохраняет токен.
func (s *Session) Register(ctx context.Context, email, password, fullName string) error {
	token, err := s.api.Register(ctx, email, password, fullName)
	if err != nil {
		return err
	}
	return s.save(token)
}

// CurrentUser запрашивает профиль по сохранённому токену.
// Отвергнутый сервером токен удаляется из хранилища.
func (s *Session) CurrentUser(ctx context.Context) (*api.User, error) {
	token, ok := s.store.GetItem(frontend.TokenKey)
	if !ok || token == "" {
		return nil, ErrNotLoggedIn
	}
	user, err := s.api.Me(ctx, token)
	if errors.Is(err, api.ErrUnauthorized) {
		if rmErr := s.store.RemoveItem(frontend.TokenKey); rmErr != nil {
			return nil, fmt.Errorf("remove stale token: %w", rmErr)
		}
		return nil, ErrSessionExpired
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Session) save(token string) error {
	if err := s.store.SetItem(frontend.TokenKey, token); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	return nil
}
