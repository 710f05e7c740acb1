// Package service holds the ownership and membership rules for rooms,
// cheques and products, and assembles the nested views returned by the
// read endpoints. It is the only place role decisions are made; the HTTP
// layer just translates its errors.
package service

import (
	"errors"

	"github.com/avelichko/chequeroom/internal/database"
)

var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrChequeNotFound  = errors.New("cheque not found")
	ErrProductNotFound = errors.New("product not found")
	// ErrNotOwner means the requester lacks the owner role required for a
	// destructive action.
	ErrNotOwner = errors.New("not the owner")
	// ErrAlreadyMember covers both an existing membership row and the
	// owner trying to join their own entity; owner and member are
	// disjoint roles.
	ErrAlreadyMember = errors.New("already a member")
	ErrNotMember     = errors.New("not a member")
)

type Service struct {
	db database.Repository
}

func NewService(db database.Repository) *Service {
	return &Service{db: db}
}
