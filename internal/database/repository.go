package database

import "errors"

// ErrAlreadyExists is returned when an insert violates a unique
// constraint: a second account with the same email, or a second
// membership row for the same (member, entity) pair. Concurrent inserts
// race safely on the underlying unique index; the loser observes this
// error.
var ErrAlreadyExists = errors.New("row already exists")

// Repository is the persistence seam for the whole application. Lookups
// that miss return sql.ErrNoRows; deletes cascade atomically to dependent
// rows.
type Repository interface {
	Ping() error

	CreateAccount(params CreateAccountParams) (User, error)
	GetAccountById(id int) (User, error)
	GetAccountByEmail(email string) (User, error)
	DeleteAccount(id int) error

	CreateRoom(name string, ownerId int) (Room, error)
	GetRoomById(id int) (Room, error)
	DeleteRoom(id int) error
	ListRoomsByOwner(ownerId int) ([]Room, error)
	ListRoomsJoined(memberId int) ([]Room, error)
	CountCheques(roomId int) (int, error)

	CreateRoomMember(memberId, roomId int) error
	DeleteRoomMember(memberId, roomId int) error
	ListRoomMembers(roomId int) ([]User, error)

	CreateCheque(name string, roomId, ownerId int) (Cheque, error)
	GetChequeById(id int) (Cheque, error)
	DeleteCheque(id int) error
	ListCheques(roomId int) ([]Cheque, error)
	ListChequesByOwner(roomId, ownerId int) ([]Cheque, error)
	ListChequesJoined(roomId, memberId int) ([]Cheque, error)

	CreateChequeMember(memberId, chequeId int) error
	DeleteChequeMember(memberId, chequeId int) error
	ListChequeMembers(chequeId int) ([]User, error)

	CreateProduct(name string, price, count, chequeId int) (Product, error)
	GetProductById(id int) (Product, error)
	DeleteProduct(id int) error
	ListProducts(chequeId int) ([]Product, error)

	CreateProductMember(memberId, productId int) error
	DeleteProductMember(memberId, productId int) error
	ListProductMembers(productId int) ([]User, error)
}
