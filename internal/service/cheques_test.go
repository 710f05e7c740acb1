package service

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avelichko/chequeroom/internal/database"
)

func TestAddCheque(t *testing.T) {
	room := database.Room{Id: 7, Name: "trip", OwnerId: 1}

	t.Run("any member may create a cheque", func(t *testing.T) {
		db := &database.MockRepository{}
		defer db.AssertExpectations(t)
		db.On("GetRoomById", room.Id).Return(room, nil).Once()
		db.On("CreateCheque", "dinner", room.Id, 2).
			Return(database.Cheque{Id: 11, Name: "dinner", RoomId: room.Id, OwnerId: 2}, nil).Once()

		svc := NewService(db)
		cheque, err := svc.AddCheque(room.Id, 2, "dinner")
		assert.NoError(t, err, "expected no error creating cheque")
		assert.Equal(t, 11, cheque.Id)
		assert.Equal(t, 2, cheque.OwnerId, "expected the creator to own the cheque")
	})

	t.Run("room must exist", func(t *testing.T) {
		db := &database.MockRepository{}
		defer db.AssertExpectations(t)
		db.On("GetRoomById", 99).Return(database.Room{}, sql.ErrNoRows).Once()

		svc := NewService(db)
		_, err := svc.AddCheque(99, 2, "dinner")
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})
}

func TestJoinCheque(t *testing.T) {
	cheque := database.Cheque{Id: 11, Name: "dinner", RoomId: 7, OwnerId: 2}

	tcases := []struct {
		name        string
		roomId      int
		userId      int
		getErr      error
		createErr   error
		expectedErr error
	}{
		{
			name:   "member joins",
			roomId: cheque.RoomId,
			userId: 3,
		},
		{
			name:        "wrong room reads as not found",
			roomId:      99,
			userId:      3,
			expectedErr: ErrChequeNotFound,
		},
		{
			name:        "owner cannot join own cheque",
			roomId:      cheque.RoomId,
			userId:      cheque.OwnerId,
			expectedErr: ErrAlreadyMember,
		},
		{
			name:        "duplicate join",
			roomId:      cheque.RoomId,
			userId:      3,
			createErr:   database.ErrAlreadyExists,
			expectedErr: ErrAlreadyMember,
		},
		{
			name:        "cheque missing",
			roomId:      cheque.RoomId,
			userId:      3,
			getErr:      sql.ErrNoRows,
			expectedErr: ErrChequeNotFound,
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			db := &database.MockRepository{}
			defer db.AssertExpectations(t)

			if tc.getErr != nil {
				db.On("GetChequeById", cheque.Id).Return(database.Cheque{}, tc.getErr).Once()
			} else {
				db.On("GetChequeById", cheque.Id).Return(cheque, nil).Once()
				if tc.roomId == cheque.RoomId && tc.userId != cheque.OwnerId {
					db.On("CreateChequeMember", tc.userId, cheque.Id).Return(tc.createErr).Once()
				}
			}

			svc := NewService(db)
			err := svc.JoinCheque(cheque.Id, tc.roomId, tc.userId)
			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr, "expected %v, got %v", tc.expectedErr, err)
			} else {
				assert.NoError(t, err, "expected join to succeed")
			}
		})
	}
}

func TestChequesInRoom(t *testing.T) {
	viewer := database.User{Id: 2, Name: "viewer", Email: "viewer@example.com"}
	other := database.User{Id: 3, Name: "other", Email: "other@example.com"}
	room := database.Room{Id: 7, Name: "trip", OwnerId: 1}

	mine := database.Cheque{Id: 11, Name: "dinner", RoomId: room.Id, OwnerId: viewer.Id}
	theirs := database.Cheque{Id: 12, Name: "taxi", RoomId: room.Id, OwnerId: other.Id}

	db := &database.MockRepository{}
	defer db.AssertExpectations(t)
	db.On("GetRoomById", room.Id).Return(room, nil).Once()
	db.On("ListCheques", room.Id).Return([]database.Cheque{mine, theirs}, nil).Once()

	db.On("GetAccountById", viewer.Id).Return(viewer, nil).Once()
	db.On("ListChequeMembers", mine.Id).Return([]database.User{}, nil).Once()

	db.On("GetAccountById", other.Id).Return(other, nil).Once()
	db.On("ListChequeMembers", theirs.Id).Return([]database.User{viewer}, nil).Once()

	svc := NewService(db)
	views, err := svc.ChequesInRoom(room.Id, viewer.Id)
	assert.NoError(t, err, "expected no error listing cheques")
	assert.Len(t, views, 2)

	assert.True(t, views[0].Admin, "expected the viewer's cheque to be flagged admin")
	assert.False(t, views[1].Admin, "expected another member's cheque to not be flagged admin")
}

func TestLeaveCheque(t *testing.T) {
	cheque := database.Cheque{Id: 11, Name: "dinner", RoomId: 7, OwnerId: 2}

	t.Run("member leaves", func(t *testing.T) {
		db := &database.MockRepository{}
		defer db.AssertExpectations(t)
		db.On("GetChequeById", cheque.Id).Return(cheque, nil).Once()
		db.On("DeleteChequeMember", 3, cheque.Id).Return(nil).Once()

		svc := NewService(db)
		assert.NoError(t, svc.LeaveCheque(cheque.Id, 3))
	})

	t.Run("non-member cannot leave", func(t *testing.T) {
		db := &database.MockRepository{}
		defer db.AssertExpectations(t)
		db.On("GetChequeById", cheque.Id).Return(cheque, nil).Once()
		db.On("DeleteChequeMember", 3, cheque.Id).Return(sql.ErrNoRows).Once()

		svc := NewService(db)
		err := svc.LeaveCheque(cheque.Id, 3)
		assert.ErrorIs(t, err, ErrNotMember)
	})
}

func TestDeleteCheque(t *testing.T) {
	cheque := database.Cheque{Id: 11, Name: "dinner", RoomId: 7, OwnerId: 2}

	t.Run("owner deletes", func(t *testing.T) {
		db := &database.MockRepository{}
		defer db.AssertExpectations(t)
		db.On("GetChequeById", cheque.Id).Return(cheque, nil).Once()
		db.On("DeleteCheque", cheque.Id).Return(nil).Once()

		svc := NewService(db)
		assert.NoError(t, svc.DeleteCheque(cheque.Id, cheque.OwnerId))
	})

	t.Run("room owner does not override cheque ownership", func(t *testing.T) {
		db := &database.MockRepository{}
		defer db.AssertExpectations(t)
		db.On("GetChequeById", cheque.Id).Return(cheque, nil).Once()

		svc := NewService(db)
		err := svc.DeleteCheque(cheque.Id, 1)
		assert.ErrorIs(t, err, ErrNotOwner)
	})
}
