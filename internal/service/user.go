package service

import (
	"Corexus/internal/model"
	"Corexus/internal/repo"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrLoginTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("inactive user")
	ErrUserNotFound       = errors.New("user not found")
	ErrPasswordTooLong    = errors.New("password longer than 72 bytes")
)

// MaxPasswordBytes предел bcrypt на длину пароля.
const MaxPasswordBytes = 72

// dummyHash: с ним сравнивается пароль неизвестного email, время ответа не зависит от наличия учётной записи.
var dummyHash = sync.OnceValue(func() []byte {
	h, _ := bcrypt.GenerateFromPassword([]byte("corexus-no-such-user"), bcrypt.DefaultCost)
	return h
})

// UserService регистрация, вход и получение текущего пользователя.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя с bcrypt-хешем пароля.
func (s *UserService) Register(ctx context.Context, email, password, fullName string) (*model.User, error) {
	if len(password) > MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	email = normalizeEmail(email)
	existing, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrLoginTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, &model.User{
		Email:    email,
		Password: string(hash),
		FullName: strings.TrimSpace(fullName),
		IsActive: true,
	})
	// параллельная регистрация могла занять email между проверкой и вставкой
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrLoginTaken
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login проверяет пароль. Неизвестный email и неверный пароль неразличимы для клиента.
// Неактивному пользователю вход запрещён.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.findByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}
	return user, nil
}

// ActiveUser возвращает пользователя по id из токена; неактивный: ErrInactiveUser.
func (s *UserService) ActiveUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}
	return user, nil
}

// findByEmail возвращает (nil, nil), если пользователя нет.
func (s *UserService) findByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
