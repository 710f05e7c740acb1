package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/avelichko/chequeroom/internal/auth"
	"github.com/avelichko/chequeroom/internal/database"
	"github.com/avelichko/chequeroom/internal/service"
	"github.com/avelichko/chequeroom/internal/stats"
)

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	PhotoUrl string `json:"photoUrl"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Id    int    `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// MsgResponse is the uniform success envelope: a message or a list of
// views, plus the created id where one exists.
type MsgResponse struct {
	Msg any `json:"msg"`
	Id  int `json:"id,omitempty"`
}

func (a *ChequeApp) writeJson(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if v == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Printf("json encode: %v", err)
	}
}

// domainError translates service sentinels into client responses.
func domainError(err error) *ApiError {
	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		return NewNotFoundError("room not found")
	case errors.Is(err, service.ErrChequeNotFound):
		return NewNotFoundError("cheque not found")
	case errors.Is(err, service.ErrProductNotFound):
		return NewNotFoundError("product not found")
	case errors.Is(err, service.ErrNotOwner):
		return NewOwnershipError("not the owner")
	case errors.Is(err, service.ErrAlreadyMember):
		return NewDuplicateError("already joined")
	case errors.Is(err, service.ErrNotMember):
		return NewStateError("not joined")
	default:
		return NewInternalServerError(err)
	}
}

func (a *ChequeApp) healthCheck(w http.ResponseWriter, _ *http.Request) {
	if err := a.db.Ping(); err != nil {
		a.log.Println("health check:", err)
		errResp := NewInternalServerError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (a *ChequeApp) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := auth.ValidatePassword(req.Password); err != nil {
		errResp := NewValidationError(err.Error())
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	pwdHash, err := auth.HashPassword(req.Password)
	if err != nil {
		errResp := NewInternalServerError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	params := database.CreateAccountParams{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: pwdHash,
		PhotoUrl:     req.PhotoUrl,
	}

	if _, err := a.db.CreateAccount(params); err != nil {
		var errResp *ApiError
		if errors.Is(err, database.ErrAlreadyExists) {
			errResp = NewDuplicateError("email already registered")
		} else {
			errResp = NewInternalServerError(err)
		}
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.stats.Incr(stats.UsersRegistered)
	a.writeJson(w, http.StatusCreated, MsgResponse{Msg: "user created"})
}

func (a *ChequeApp) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	user, err := a.db.GetAccountByEmail(req.Email)
	if err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError("unknown email")
		} else {
			errResp = NewInternalServerError(err)
		}
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		errResp := NewUnauthorizedError("wrong password")
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	token, err := a.tokens.Issue(user.Email)
	if err != nil {
		errResp := NewInternalServerError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.writeJson(w, http.StatusOK, LoginResponse{
		Token: token,
		Id:    user.Id,
		Email: user.Email,
		Name:  user.Name,
	})
}

func (a *ChequeApp) checkAuth(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		errResp := NewAuthenticationError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.writeJson(w, http.StatusOK, MsgResponse{
		Msg: fmt.Sprintf("access granted for %s", user.Email),
	})
}

func (a *ChequeApp) deleteUser(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		errResp := NewAuthenticationError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := a.db.DeleteAccount(user.Id); err != nil {
		var errResp *ApiError
		if errors.Is(err, sql.ErrNoRows) {
			errResp = NewNotFoundError("user not found")
		} else {
			errResp = NewInternalServerError(err)
		}
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.stats.Incr(stats.UsersDeleted)
	a.writeJson(w, http.StatusOK, MsgResponse{
		Msg: fmt.Sprintf("user deleted - %s", user.Email),
	})
}
