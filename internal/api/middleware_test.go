package api

import (
	"bytes"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"

	"github.com/avelichko/chequeroom/internal/config"
	"github.com/avelichko/chequeroom/internal/database"
	"github.com/avelichko/chequeroom/internal/stats"
	"github.com/avelichko/chequeroom/internal/testutil"
)

var testSigningKey = []byte("test-signing-key")

// newTestApp creates a ChequeApp wired to the given mocks for handler
// tests.
func newTestApp(t *testing.T, db database.Repository, su *stats.MockStatsUpdater) *ChequeApp {
	return NewChequeApp(http.NewServeMux(), testutil.TestLogger(t), db, su, &config.Config{
		SigningKey: testSigningKey,
	})
}

// signTestToken builds a token the way the server does, with an
// arbitrary expiry so expired tokens can be constructed.
func signTestToken(t *testing.T, email string, exp time.Time, key []byte) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   exp.Unix(),
	}).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return token
}

func TestErrorHandler_PanicRecovery(t *testing.T) {
	buf := &bytes.Buffer{}
	app := &ChequeApp{
		log: testutil.TestLogger(t),
	}

	app.log.SetOutput(buf)

	// handler that panics
	panicHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(errors.New("test panic"))
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	handler := app.errorHandler(panicHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "close", rr.Header().Get("Connection"))
	assert.Contains(t, buf.String(), "panic: test panic")
}

func Test_errorHandler_NoPanic(t *testing.T) {
	app := &ChequeApp{}

	called := false
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	handler := app.errorHandler(okHandler)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
	assert.True(t, called, "expected handler to be called")
}

func Test_authMiddleware(t *testing.T) {
	user := database.User{Id: 1, Name: "test", Email: "test@example.com"}

	echoUser := func(w http.ResponseWriter, r *http.Request) {
		u, ok := UserFrom(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(u.Email))
	}

	t.Run("valid token", func(t *testing.T) {
		db := &database.MockRepository{}
		defer db.AssertExpectations(t)
		db.On("GetAccountByEmail", user.Email).Return(user, nil).Once()

		app := newTestApp(t, db, &stats.MockStatsUpdater{})

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(tokenHeader, signTestToken(t, user.Email, time.Now().Add(time.Hour), testSigningKey))

		app.authMiddleware(echoUser)(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, user.Email, rr.Body.String(), "expected resolved user in context")
		assert.Equal(t, "no-store, no-cache, must-revalidate, private", rr.Header().Get("Cache-Control"))
	})

	t.Run("missing token header", func(t *testing.T) {
		app := newTestApp(t, &database.MockRepository{}, &stats.MockStatsUpdater{})
		buf := &bytes.Buffer{}
		app.log.SetOutput(buf)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		app.authMiddleware(echoUser)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "authentication failed")
		assert.Contains(t, buf.String(), "missing "+tokenHeader)
	})

	t.Run("malformed token", func(t *testing.T) {
		app := newTestApp(t, &database.MockRepository{}, &stats.MockStatsUpdater{})
		buf := &bytes.Buffer{}
		app.log.SetOutput(buf)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(tokenHeader, "invalid-token")

		app.authMiddleware(echoUser)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "authentication failed")
		assert.Contains(t, buf.String(), "verify token")
	})

	t.Run("expired token", func(t *testing.T) {
		app := newTestApp(t, &database.MockRepository{}, &stats.MockStatsUpdater{})

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(tokenHeader, signTestToken(t, user.Email, time.Now().Add(-time.Hour), testSigningKey))

		app.authMiddleware(echoUser)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "authentication failed")
	})

	t.Run("token signed with wrong key", func(t *testing.T) {
		app := newTestApp(t, &database.MockRepository{}, &stats.MockStatsUpdater{})

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(tokenHeader, signTestToken(t, user.Email, time.Now().Add(time.Hour), []byte("other-key")))

		app.authMiddleware(echoUser)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "authentication failed")
	})

	t.Run("account deleted after issue", func(t *testing.T) {
		db := &database.MockRepository{}
		defer db.AssertExpectations(t)
		db.On("GetAccountByEmail", user.Email).Return(database.User{}, sql.ErrNoRows).Once()

		app := newTestApp(t, db, &stats.MockStatsUpdater{})
		buf := &bytes.Buffer{}
		app.log.SetOutput(buf)

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(tokenHeader, signTestToken(t, user.Email, time.Now().Add(time.Hour), testSigningKey))

		app.authMiddleware(echoUser)(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "authentication failed")
		assert.Contains(t, buf.String(), "no account for verified identity")
	})

	t.Run("db error resolving account", func(t *testing.T) {
		db := &database.MockRepository{}
		defer db.AssertExpectations(t)
		db.On("GetAccountByEmail", user.Email).Return(database.User{}, errors.New("db error")).Once()

		app := newTestApp(t, db, &stats.MockStatsUpdater{})

		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(tokenHeader, signTestToken(t, user.Email, time.Now().Add(time.Hour), testSigningKey))

		app.authMiddleware(echoUser)(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func Test_requireFields(t *testing.T) {
	app := newTestApp(t, &database.MockRepository{}, &stats.MockStatsUpdater{})

	tcases := []struct {
		name         string
		body         string
		fields       []string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "all fields present",
			body:         `{"email":"a@b.c","password":"abc12345"}`,
			fields:       []string{"email", "password"},
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing field",
			body:         `{"email":"a@b.c"}`,
			fields:       []string{"email", "password"},
			expectedCode: http.StatusBadRequest,
			expectedBody: "invalid fields",
		},
		{
			name:         "field present but null",
			body:         `{"email":null}`,
			fields:       []string{"email"},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid json",
			body:         `{"email":`,
			fields:       []string{"email"},
			expectedCode: http.StatusBadRequest,
			expectedBody: "bad request",
		},
		{
			name:         "empty body",
			body:         ``,
			fields:       []string{"email"},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			var gotBody string
			next := func(w http.ResponseWriter, r *http.Request) {
				b := new(bytes.Buffer)
				b.ReadFrom(r.Body)
				gotBody = b.String()
				w.WriteHeader(http.StatusOK)
			}

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			app.requireFields(next, tc.fields...)(rr, req)

			assert.Equal(t, tc.expectedCode, rr.Code, "expected status code to match")
			if tc.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tc.expectedBody)
			}
			if tc.expectedCode == http.StatusOK {
				// the guard must hand the handler an intact body
				assert.Equal(t, tc.body, gotBody, "expected body to be restored for the handler")
			}
		})
	}
}
