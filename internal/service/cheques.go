package service

import (
	"database/sql"
	"errors"

	"github.com/avelichko/chequeroom/internal/database"
	"github.com/avelichko/chequeroom/internal/types"
)

// AddCheque creates a cheque scoped to the room, owned by the creator
// (who need not own the room). The room must exist.
func (s *Service) AddCheque(roomId, ownerId int, name string) (database.Cheque, error) {
	room, err := s.db.GetRoomById(roomId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return database.Cheque{}, ErrRoomNotFound
		}
		return database.Cheque{}, err
	}

	return s.db.CreateCheque(name, room.Id, ownerId)
}

func (s *Service) DeleteCheque(chequeId, requesterId int) error {
	cheque, err := s.db.GetChequeById(chequeId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrChequeNotFound
		}
		return err
	}

	if cheque.OwnerId != requesterId {
		return ErrNotOwner
	}

	return s.db.DeleteCheque(cheque.Id)
}

// JoinCheque adds the caller to a cheque's member set. The cheque must
// live in the given room; a cheque id from another room reads as not
// found.
func (s *Service) JoinCheque(chequeId, roomId, userId int) error {
	cheque, err := s.db.GetChequeById(chequeId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrChequeNotFound
		}
		return err
	}
	if cheque.RoomId != roomId {
		return ErrChequeNotFound
	}

	if cheque.OwnerId == userId {
		return ErrAlreadyMember
	}

	if err := s.db.CreateChequeMember(userId, cheque.Id); err != nil {
		if errors.Is(err, database.ErrAlreadyExists) {
			return ErrAlreadyMember
		}
		return err
	}

	return nil
}

func (s *Service) LeaveCheque(chequeId, userId int) error {
	if _, err := s.db.GetChequeById(chequeId); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrChequeNotFound
		}
		return err
	}

	if err := s.db.DeleteChequeMember(userId, chequeId); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotMember
		}
		return err
	}

	return nil
}

// ChequesInRoom lists every cheque in the room, each labeled admin for
// the viewer only if the viewer owns that cheque.
func (s *Service) ChequesInRoom(roomId, viewerId int) ([]types.ChequeView, error) {
	if _, err := s.db.GetRoomById(roomId); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	cheques, err := s.db.ListCheques(roomId)
	if err != nil {
		return nil, err
	}

	views := make([]types.ChequeView, 0, len(cheques))
	for _, cheque := range cheques {
		view, err := s.ChequeView(cheque, roomId, cheque.OwnerId == viewerId)
		if err != nil {
			return nil, err
		}
		if view != nil {
			views = append(views, *view)
		}
	}

	return views, nil
}

func (s *Service) ChequesOwnedBy(roomId, userId int) ([]types.ChequeView, error) {
	if _, err := s.db.GetRoomById(roomId); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	cheques, err := s.db.ListChequesByOwner(roomId, userId)
	if err != nil {
		return nil, err
	}

	return s.chequeViews(cheques, roomId, true)
}

func (s *Service) ChequesJoinedBy(roomId, userId int) ([]types.ChequeView, error) {
	if _, err := s.db.GetRoomById(roomId); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	cheques, err := s.db.ListChequesJoined(roomId, userId)
	if err != nil {
		return nil, err
	}

	return s.chequeViews(cheques, roomId, false)
}

func (s *Service) chequeViews(cheques []database.Cheque, roomId int, asAdmin bool) ([]types.ChequeView, error) {
	views := make([]types.ChequeView, 0, len(cheques))
	for _, cheque := range cheques {
		view, err := s.ChequeView(cheque, roomId, asAdmin)
		if err != nil {
			return nil, err
		}
		if view != nil {
			views = append(views, *view)
		}
	}

	return views, nil
}
