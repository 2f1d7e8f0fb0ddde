package web

import (
	"net/http"
	"time"

	"Corexus/internal/frontend"
)

// CookieStorage frontend.Storage поверх cookie одного запроса.
// Записи сразу уходят в Set-Cookie ответа и видны последующим чтениям в этом же запросе.
type CookieStorage struct {
	r       *http.Request
	w       http.ResponseWriter
	ttl     time.Duration
	secure  bool
	changed map[string]*string // nil: ключ удалён
}

var _ frontend.Storage = (*CookieStorage)(nil)

// NewCookieStorage создаёт хранилище. ttl задаёт Max-Age новых cookie, 0: сессионная cookie.
func NewCookieStorage(w http.ResponseWriter, r *http.Request, ttl time.Duration, secure bool) *CookieStorage {
	return &CookieStorage{r: r, w: w, ttl: ttl, secure: secure, changed: map[string]*string{}}
}

func (s *CookieStorage) GetItem(key string) (string, bool) {
	if v, ok := s.changed[key]; ok {
		if v == nil {
			return "", false
		}
		return *v, true
	}
	c, err := s.r.Cookie(key)
	if err != nil {
		return "", false
	}
	return c.Value, true
}

func (s *CookieStorage) SetItem(key, value string) error {
	c := s.cookie(key, value)
	if s.ttl > 0 {
		c.MaxAge = int(s.ttl / time.Second)
		c.Expires = time.Now().Add(s.ttl)
	}
	http.SetCookie(s.w, c)
	s.changed[key] = &value
	return nil
}

func (s *CookieStorage) RemoveItem(key string) error {
	c := s.cookie(key, "")
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	http.SetCookie(s.w, c)
	s.changed[key] = nil
	return nil
}

func (s *CookieStorage) cookie(key, value string) *http.Cookie {
	return &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
