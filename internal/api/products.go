package api

import (
	"encoding/json"
	"net/http"

	"github.com/avelichko/chequeroom/internal/stats"
)

type CreateProductRequest struct {
	ChequeId int    `json:"cheque_id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Count    int    `json:"count"`
}

type JoinProductRequest struct {
	Id       int `json:"id"`
	ChequeId int `json:"cheque_id"`
}

func (a *ChequeApp) addProduct(w http.ResponseWriter, r *http.Request) {
	if _, ok := UserFrom(r.Context()); !ok {
		errResp := NewAuthenticationError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	product, err := a.svc.AddProduct(req.ChequeId, req.Name, req.Price, req.Count)
	if err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.stats.Incr(stats.ProductsCreated)
	a.writeJson(w, http.StatusCreated, MsgResponse{Msg: "product created", Id: product.Id})
}

func (a *ChequeApp) getProducts(w http.ResponseWriter, r *http.Request) {
	if _, ok := UserFrom(r.Context()); !ok {
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

	views, err := a.svc.ProductsInCheque(req.Id)
	if err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.writeJson(w, http.StatusOK, MsgResponse{Msg: views})
}

func (a *ChequeApp) deleteProduct(w http.ResponseWriter, r *http.Request) {
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

	if err := a.svc.DeleteProduct(req.Id, user.Id); err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.writeJson(w, http.StatusOK, MsgResponse{Msg: "product deleted"})
}

func (a *ChequeApp) joinProduct(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		errResp := NewAuthenticationError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	var req JoinProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errResp := NewBadRequestError()
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	if err := a.svc.JoinProduct(req.Id, req.ChequeId, user.Id); err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.writeJson(w, http.StatusOK, MsgResponse{Msg: "joined product"})
}

func (a *ChequeApp) leaveProduct(w http.ResponseWriter, r *http.Request) {
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

	if err := a.svc.LeaveProduct(req.Id, user.Id); err != nil {
		errResp := domainError(err)
		a.writeJson(w, errResp.StatusCode, errResp)
		return
	}

	a.writeJson(w, http.StatusOK, MsgResponse{Msg: "left product"})
}
