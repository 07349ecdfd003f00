package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dosada05/league-management/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		jwtClaimUserID:   float64(3),
		jwtClaimUsername: "magic.johnson",
		jwtClaimRole:     string(models.RolePlayer),
		"exp":            time.Now().Add(time.Hour).Unix(),
	}
}

func TestAuthenticate(t *testing.T) {
	var caller models.Caller
	handler := Authenticate(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		caller, err = CallerFromContext(r.Context())
		require.NoError(t, err)
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, validClaims()))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.Caller{UserID: 3, Username: "magic.johnson", Role: models.RolePlayer}, caller)
}

func TestAuthenticateRejects(t *testing.T) {
	handler := Authenticate(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for rejected requests")
	}))

	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + signToken(t, []byte("other-secret"), validClaims())},
		{"expired token", "Bearer " + signToken(t, testSecret, expired)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestCallerFromContextRequiresClaims(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := CallerFromContext(req.Context())
	assert.Error(t, err)
}

func TestGetUserIDFromContextValidation(t *testing.T) {
	run := func(claims jwt.MapClaims) (int, error) {
		var got int
		var gotErr error
		handler := Authenticate(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, gotErr = GetUserIDFromContext(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, claims))
		handler.ServeHTTP(httptest.NewRecorder(), req)
		return got, gotErr
	}

	id, err := run(validClaims())
	require.NoError(t, err)
	assert.Equal(t, 3, id)

	bad := validClaims()
	bad[jwtClaimUserID] = float64(-1)
	_, err = run(bad)
	assert.Error(t, err)

	fractional := validClaims()
	fractional[jwtClaimUserID] = 3.5
	_, err = run(fractional)
	assert.Error(t, err)
}
