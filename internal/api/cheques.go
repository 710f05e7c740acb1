package api

import (
	"encoding/json"
	"net/http"

	"github.com/avelichko/chequeroom/internal/stats"
)

type CreateChequeRequest struct {
	RoomId int    `json:"room_id"`
	Name   string `json:"name"`
}

type JoinChequeRequest struct {
	Id     int `json:"id"`
	RoomId int `json:"room_id"`
}

func (a *ChequeApp) addCheque(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		errResp := NewAuthenticationError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req CreateChequeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	cheque, err := a.svc.AddCheque(req.RoomId, user.Id, req.Name)
	if err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.stats.Incr(stats.ChequesCreated)
	a.writeJson(w, http.StatusCreated, MsgResponse{Msg: "cheque created", Id: cheque.Id})
}

func (a *ChequeApp) getCheques(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		errResp := NewAuthenticationError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req IdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	views, err := a.svc.ChequesInRoom(req.Id, user.Id)
	if err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.writeJson(w, http.StatusOK, MsgResponse{Msg: views})
}

func (a *ChequeApp) getChequesAdmin(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		errResp := NewAuthenticationError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req IdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	views, err := a.svc.ChequesOwnedBy(req.Id, user.Id)
	if err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.writeJson(w, http.StatusOK, MsgResponse{Msg: views})
}

func (a *ChequeApp) getChequesMember(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		errResp := NewAuthenticationError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req IdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	views, err := a.svc.ChequesJoinedBy(req.Id, user.Id)
	if err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.writeJson(w, http.StatusOK, MsgResponse{Msg: views})
}

func (a *ChequeApp) deleteCheque(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		errResp := NewAuthenticationError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req IdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := a.svc.DeleteCheque(req.Id, user.Id); err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.stats.Incr(stats.ChequesDeleted)
	a.writeJson(w, http.StatusOK, MsgResponse{Msg: "cheque deleted"})
}

func (a *ChequeApp) joinCheque(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		errResp := NewAuthenticationError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req JoinChequeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := a.svc.JoinCheque(req.Id, req.RoomId, user.Id); err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.writeJson(w, http.StatusOK, MsgResponse{Msg: "joined cheque"})
}

func (a *ChequeApp) leaveCheque(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		errResp := NewAuthenticationError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req IdRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := a.svc.LeaveCheque(req.Id, user.Id); err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.writeJson(w, http.StatusOK, MsgResponse{Msg: "left cheque"})
}
