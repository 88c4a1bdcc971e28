package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "secreto-de-test"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("no se pudo firmar el token: %v", err)
	}
	return s
}

func TestJWTAuth(t *testing.T) {
	var gotUserID int
	var gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
		gotRole, _ = r.Context().Value(CtxUserRole).(string)
		w.WriteHeader(http.StatusOK)
	})
	mw := JWTAuth(testSecret)(next)

	t.Run("sin header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, httptest.NewRequest("GET", "/me/ratings", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, esperaba 401", rec.Code)
		}
	})

	t.Run("token inválido", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me/ratings", nil)
		req.Header.Set("Authorization", "Bearer no-es-un-jwt")
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, esperaba 401", rec.Code)
		}
	})

	t.Run("firmado con otro secreto", func(t *testing.T) {
		token := signToken(t, "otro-secreto", jwt.MapClaims{
			"sub": 3, "role": "user", "exp": time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/me/ratings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, esperaba 401", rec.Code)
		}
	})

	t.Run("token expirado", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": 3, "role": "user", "exp": time.Now().Add(-time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/me/ratings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, esperaba 401", rec.Code)
		}
	})

	t.Run("token válido mete claims en contexto", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": 42, "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/me/ratings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, esperaba 200", rec.Code)
		}
		if gotUserID != 42 {
			t.Errorf("userId en contexto = %d, esperaba 42", gotUserID)
		}
		if gotRole != "admin" {
			t.Errorf("role en contexto = %q, esperaba admin", gotRole)
		}
	})
}

func TestAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	chain := JWTAuth(testSecret)(AdminOnly()(next))

	t.Run("role user queda afuera", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": 3, "role": "user", "exp": time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		chain.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, esperaba 403", rec.Code)
		}
	})

	t.Run("role admin pasa", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{
			"sub": 1, "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest("GET", "/users", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		chain.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, esperaba 200", rec.Code)
		}
	})
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Health(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, esperaba 200", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q, esperaba ok", rec.Body.String())
	}
}
