package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Corexus/internal/frontend"
)

func authCookie(t *testing.T, userID int64, secret string, ttl time.Duration) *http.Cookie {
	t.Helper()
	tok, err := NewToken(userID, "user@corexus.net", secret, ttl)
	if err != nil {
		t.Fatalf("new token: %v", err)
	}
	return &http.Cookie{Name: frontend.TokenKey, Value: tok}
}

// Тест: валидный токен в cookie: user_id попадает в контекст
func TestWithAuth_ValidCookieSetsUserID(t *testing.T) {
	const secret = "test-secret"

	var got int64
	h := WithAuth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, ok := GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		got = uid
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(authCookie(t, 77, secret, time.Minute))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK || got != 77 {
		t.Fatalf("expected 200 and uid 77 with valid cookie, got %d uid=%d", rr.Code, got)
	}
}

// Тест: токен в заголовке Authorization: Bearer
func TestWithAuth_BearerHeader(t *testing.T) {
	const secret = "test-secret"
	tok, _ := NewToken(5, "a@b.c", secret, time.Minute)

	h := WithAuth(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if uid, ok := GetUserIDFromContext(r.Context()); !ok || uid != 5 {
			t.Fatalf("user id expected from bearer token, got %d", uid)
		}
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	h.ServeHTTP(httptest.NewRecorder(), req)
}

// Тест: отсутствие cookie: user_id не устанавливается
func TestWithAuth_NoCookieLeavesAnonymous(t *testing.T) {
	h := WithAuth("any-secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetUserIDFromContext(r.Context()); ok {
			t.Fatalf("user id must not be set without cookie")
		}
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

// Тест: невалидный или просроченный токен: user_id не устанавливается
func TestWithAuth_InvalidToken(t *testing.T) {
	cases := map[string]*http.Cookie{
		"wrong secret": authCookie(t, 5, "secret-A", time.Minute),
		"expired":      authCookie(t, 5, "secret-B", -time.Minute),
		"garbage":      {Name: frontend.TokenKey, Value: "not-a-jwt"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			h := WithAuth("secret-B")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if _, ok := GetUserIDFromContext(r.Context()); ok {
					t.Fatalf("user id must not be set with invalid token")
				}
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.AddCookie(c)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rr.Code)
			}
		})
	}
}

func TestParseToken_Claims(t *testing.T) {
	tok, err := NewToken(9, "bob@corexus.net", "s", 30*time.Minute)
	if err != nil {
		t.Fatalf("new token: %v", err)
	}
	claims, err := ParseToken(tok, "s")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 9 || claims.Subject != "bob@corexus.net" || claims.ID == "" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if d := time.Until(claims.ExpiresAt.Time); d < 29*time.Minute || d > 30*time.Minute {
		t.Fatalf("unexpected expiry in %s", d)
	}
}
