package api

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/teris-io/shortid"
	"github.com/valyala/fastjson"
)

// tokenHeader carries the bearer token out-of-band on every protected
// endpoint.
const tokenHeader = "x-access-token"

func (a *ChequeApp) errorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				var panicError error
				switch e := err.(type) {
				case error:
					panicError = e
				default:
					panicError = fmt.Errorf("%v", e)
				}
				a.log.Printf("panic: %v", panicError)
				errResp := NewInternalServerError(panicError)
				w.Header().Set("Connection", "close")
				a.writeJson(w, errResp.StatusCode, errResp)
				return
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (a *ChequeApp) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := shortid.Generate()
		if err != nil {
			id = "-"
		}

		a.log.Printf("[%s] %s %s %s", id, r.Method, r.URL.RequestURI(), r.RemoteAddr)
		next.ServeHTTP(w, r)
	})
}

// authMiddleware verifies the x-access-token header and resolves the
// embedded email to a live account, which it places in the request
// context. Each failure mode is logged separately but the client sees a
// single generic authentication error.
func (a *ChequeApp) authMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString := r.Header.Get(tokenHeader)
		if tokenString == "" {
			a.log.Printf("auth: missing %s header", tokenHeader)
			errResp := NewAuthenticationError()
			a.writeJson(w, errResp.StatusCode, errResp)
			return
		}

		email, err := a.tokens.Verify(tokenString)
		if err != nil {
			a.log.Printf("auth: verify token: %v", err)
			errResp := NewAuthenticationError()
			a.writeJson(w, errResp.StatusCode, errResp)
			return
		}

		// The account may have been deleted after the token was issued;
		// an unresolvable identity is an auth failure, not a signature
		// failure.
		user, err := a.db.GetAccountByEmail(email)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				a.log.Printf("auth: no account for verified identity %s", email)
				errResp := NewAuthenticationError()
				a.writeJson(w, errResp.StatusCode, errResp)
				return
			}
			errResp := NewInternalServerError(err)
			a.writeJson(w, errResp.StatusCode, errResp)
			return
		}

		ctx := WithUser(r.Context(), user)
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")

		next(w, r.WithContext(ctx))
	}
}

// requireFields rejects the request unless the JSON body contains every
// named field. Presence only; types and ranges are the handler's
// problem. The body is restored for the wrapped handler.
func (a *ChequeApp) requireFields(next http.HandlerFunc, fields ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			errResp := NewBadRequestError()
			a.writeJson(w, errResp.StatusCode, errResp)
			return
		}

		if err := fastjson.ValidateBytes(body); err != nil {
			errResp := NewBadRequestError()
			a.writeJson(w, errResp.StatusCode, errResp)
			return
		}

		for _, field := range fields {
			if !fastjson.Exists(body, field) {
				a.log.Printf("validation: missing field %q on %s", field, r.URL.Path)
				errResp := NewValidationError("invalid fields")
				a.writeJson(w, errResp.StatusCode, errResp)
				return
			}
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		next(w, r)
	}
}
