package service

import (
	"database/sql"
	"errors"

	"github.com/avelichko/chequeroom/internal/database"
	"github.com/avelichko/chequeroom/internal/types"
)

// AddRoom creates a room owned by the caller. No membership row is
// written for the owner: owner and member are disjoint roles.
func (s *Service) AddRoom(ownerId int, name string) (database.Room, error) {
	return s.db.CreateRoom(name, ownerId)
}

func (s *Service) DeleteRoom(roomId, requesterId int) error {
	room, err := s.db.GetRoomById(roomId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRoomNotFound
		}
		return err
	}

	if room.OwnerId != requesterId {
		return ErrNotOwner
	}

	return s.db.DeleteRoom(room.Id)
}

func (s *Service) JoinRoom(roomId, userId int) error {
	room, err := s.db.GetRoomById(roomId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRoomNotFound
		}
		return err
	}

	if room.OwnerId == userId {
		return ErrAlreadyMember
	}

	if err := s.db.CreateRoomMember(userId, room.Id); err != nil {
		if errors.Is(err, database.ErrAlreadyExists) {
			return ErrAlreadyMember
		}
		return err
	}

	return nil
}

// LeaveRoom removes the caller's membership row. The owner has no row to
// remove and so cannot leave; owners delete the room instead.
func (s *Service) LeaveRoom(roomId, userId int) error {
	if _, err := s.db.GetRoomById(roomId); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRoomNotFound
		}
		return err
	}

	if err := s.db.DeleteRoomMember(userId, roomId); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotMember
		}
		return err
	}

	return nil
}

// RemoveMember lets the room owner evict a member.
func (s *Service) RemoveMember(roomId, requesterId, memberId int) error {
	room, err := s.db.GetRoomById(roomId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRoomNotFound
		}
		return err
	}

	if room.OwnerId != requesterId {
		return ErrNotOwner
	}

	if err := s.db.DeleteRoomMember(memberId, room.Id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotMember
		}
		return err
	}

	return nil
}

func (s *Service) RoomsOwnedBy(userId int) ([]types.RoomView, error) {
	rooms, err := s.db.ListRoomsByOwner(userId)
	if err != nil {
		return nil, err
	}

	return s.roomViews(rooms, true)
}

func (s *Service) RoomsJoinedBy(userId int) ([]types.RoomView, error) {
	rooms, err := s.db.ListRoomsJoined(userId)
	if err != nil {
		return nil, err
	}

	return s.roomViews(rooms, false)
}

// AllRooms is the union of owned and joined views. The owner-join guard
// keeps the two sets disjoint, so no dedup is needed.
func (s *Service) AllRooms(userId int) ([]types.RoomView, error) {
	owned, err := s.RoomsOwnedBy(userId)
	if err != nil {
		return nil, err
	}

	joined, err := s.RoomsJoinedBy(userId)
	if err != nil {
		return nil, err
	}

	return append(owned, joined...), nil
}

func (s *Service) roomViews(rooms []database.Room, asAdmin bool) ([]types.RoomView, error) {
	views := make([]types.RoomView, 0, len(rooms))
	for _, room := range rooms {
		view, err := s.RoomView(room, asAdmin)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}
