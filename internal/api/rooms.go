package api

import (
	"encoding/json"
	"net/http"

	"github.com/avelichko/chequeroom/internal/stats"
)

type CreateRoomRequest struct {
	Name string `json:"name"`
}

type IdRequest struct {
	Id int `json:"id"`
}

type RemoveMemberRequest struct {
	RoomId int `json:"room_id"`
	UserId int `json:"user_id"`
}

func (a *ChequeApp) addRoom(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		errResp := NewAuthenticationError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	room, err := a.svc.AddRoom(user.Id, req.Name)
	if err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.stats.Incr(stats.RoomsCreated)
	a.writeJson(w, http.StatusCreated, MsgResponse{Msg: "room created", Id: room.Id})
}

func (a *ChequeApp) deleteRoom(w http.ResponseWriter, r *http.Request) {
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

	if err := a.svc.DeleteRoom(req.Id, user.Id); err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.stats.Incr(stats.RoomsDeleted)
	a.writeJson(w, http.StatusOK, MsgResponse{Msg: "room deleted"})
}

func (a *ChequeApp) getRooms(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		errResp := NewAuthenticationError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	views, err := a.svc.AllRooms(user.Id)
	if err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.writeJson(w, http.StatusOK, MsgResponse{Msg: views})
}

func (a *ChequeApp) getRoomsAdmin(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		errResp := NewAuthenticationError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	views, err := a.svc.RoomsOwnedBy(user.Id)
	if err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.writeJson(w, http.StatusOK, MsgResponse{Msg: views})
}

func (a *ChequeApp) getRoomsMember(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		errResp := NewAuthenticationError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	views, err := a.svc.RoomsJoinedBy(user.Id)
	if err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.writeJson(w, http.StatusOK, MsgResponse{Msg: views})
}

func (a *ChequeApp) joinRoom(w http.ResponseWriter, r *http.Request) {
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

	if err := a.svc.JoinRoom(req.Id, user.Id); err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.stats.Incr(stats.RoomsJoined)
	a.writeJson(w, http.StatusOK, MsgResponse{Msg: "joined room"})
}

func (a *ChequeApp) leaveRoom(w http.ResponseWriter, r *http.Request) {
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

	if err := a.svc.LeaveRoom(req.Id, user.Id); err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.writeJson(w, http.StatusOK, MsgResponse{Msg: "left room"})
}

func (a *ChequeApp) deleteMember(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		errResp := NewAuthenticationError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req RemoveMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := a.svc.RemoveMember(req.RoomId, user.Id, req.UserId); err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.writeJson(w, http.StatusOK, MsgResponse{Msg: "member removed"})
}
