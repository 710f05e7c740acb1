package service

import (
	"github.com/avelichko/chequeroom/internal/database"
	"github.com/avelichko/chequeroom/internal/types"
)

func publicUser(u database.User) types.User {
	return types.User{
		Id:    u.Id,
		Name:  u.Name,
		Email: u.Email,
	}
}

func publicUsers(users []database.User) []types.User {
	members := make([]types.User, 0, len(users))
	for _, u := range users {
		members = append(members, publicUser(u))
	}
	return members
}

// RoomView assembles the nested presentation of a room. The admin flag is
// asserted by the caller: listings iterate either the owned or the joined
// relationship and label the result accordingly, it is not re-derived
// here.
func (s *Service) RoomView(room database.Room, asAdmin bool) (types.RoomView, error) {
	owner, err := s.db.GetAccountById(room.OwnerId)
	if err != nil {
		return types.RoomView{}, err
	}

	members, err := s.db.ListRoomMembers(room.Id)
	if err != nil {
		return types.RoomView{}, err
	}

	// every cheque in the room counts, not just the viewer's
	count, err := s.db.CountCheques(room.Id)
	if err != nil {
		return types.RoomView{}, err
	}

	return types.RoomView{
		Id:          room.Id,
		Name:        room.Name,
		Owner:       publicUser(owner),
		ChequeCount: count,
		Members:     publicUsers(members),
		Admin:       asAdmin,
	}, nil
}

// ChequeView assembles the nested presentation of a cheque. It returns
// nil when the cheque does not actually live in the requested room, so a
// cheque id confused across rooms never leaks into a response.
func (s *Service) ChequeView(cheque database.Cheque, roomId int, asAdmin bool) (*types.ChequeView, error) {
	if cheque.RoomId != roomId {
		return nil, nil
	}

	owner, err := s.db.GetAccountById(cheque.OwnerId)
	if err != nil {
		return nil, err
	}

	members, err := s.db.ListChequeMembers(cheque.Id)
	if err != nil {
		return nil, err
	}

	return &types.ChequeView{
		Id:      cheque.Id,
		Name:    cheque.Name,
		Owner:   publicUser(owner),
		RoomId:  cheque.RoomId,
		Sum:     0,
		Members: publicUsers(members),
		Admin:   asAdmin,
	}, nil
}

func (s *Service) ProductView(product database.Product) (types.ProductView, error) {
	members, err := s.db.ListProductMembers(product.Id)
	if err != nil {
		return types.ProductView{}, err
	}

	return types.ProductView{
		Id:       product.Id,
		Name:     product.Name,
		Price:    product.Price,
		Count:    product.Count,
		ChequeId: product.ChequeId,
		Members:  publicUsers(members),
	}, nil
}
