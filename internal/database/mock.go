package database

import (
	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Ping() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockRepository) CreateAccount(params CreateAccountParams) (User, error) {
	args := m.Called(params)
	return args.Get(0).(User), args.Error(1)
}
func (m *MockRepository) GetAccountById(id int) (User, error) {
	args := m.Called(id)
	return args.Get(0).(User), args.Error(1)
}
func (m *MockRepository) GetAccountByEmail(email string) (User, error) {
	args := m.Called(email)
	return args.Get(0).(User), args.Error(1)
}
func (m *MockRepository) DeleteAccount(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockRepository) CreateRoom(name string, ownerId int) (Room, error) {
	args := m.Called(name, ownerId)
	return args.Get(0).(Room), args.Error(1)
}
func (m *MockRepository) GetRoomById(id int) (Room, error) {
	args := m.Called(id)
	return args.Get(0).(Room), args.Error(1)
}
func (m *MockRepository) DeleteRoom(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockRepository) ListRoomsByOwner(ownerId int) ([]Room, error) {
	args := m.Called(ownerId)
	return args.Get(0).([]Room), args.Error(1)
}
func (m *MockRepository) ListRoomsJoined(memberId int) ([]Room, error) {
	args := m.Called(memberId)
	return args.Get(0).([]Room), args.Error(1)
}
func (m *MockRepository) CountCheques(roomId int) (int, error) {
	args := m.Called(roomId)
	return args.Int(0), args.Error(1)
}
func (m *MockRepository) CreateRoomMember(memberId, roomId int) error {
	args := m.Called(memberId, roomId)
	return args.Error(0)
}
func (m *MockRepository) DeleteRoomMember(memberId, roomId int) error {
	args := m.Called(memberId, roomId)
	return args.Error(0)
}
func (m *MockRepository) ListRoomMembers(roomId int) ([]User, error) {
	args := m.Called(roomId)
	return args.Get(0).([]User), args.Error(1)
}
func (m *MockRepository) CreateCheque(name string, roomId, ownerId int) (Cheque, error) {
	args := m.Called(name, roomId, ownerId)
	return args.Get(0).(Cheque), args.Error(1)
}
func (m *MockRepository) GetChequeById(id int) (Cheque, error) {
	args := m.Called(id)
	return args.Get(0).(Cheque), args.Error(1)
}
func (m *MockRepository) DeleteCheque(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockRepository) ListCheques(roomId int) ([]Cheque, error) {
	args := m.Called(roomId)
	return args.Get(0).([]Cheque), args.Error(1)
}
func (m *MockRepository) ListChequesByOwner(roomId, ownerId int) ([]Cheque, error) {
	args := m.Called(roomId, ownerId)
	return args.Get(0).([]Cheque), args.Error(1)
}
func (m *MockRepository) ListChequesJoined(roomId, memberId int) ([]Cheque, error) {
	args := m.Called(roomId, memberId)
	return args.Get(0).([]Cheque), args.Error(1)
}
func (m *MockRepository) CreateChequeMember(memberId, chequeId int) error {
	args := m.Called(memberId, chequeId)
	return args.Error(0)
}
func (m *MockRepository) DeleteChequeMember(memberId, chequeId int) error {
	args := m.Called(memberId, chequeId)
	return args.Error(0)
}
func (m *MockRepository) ListChequeMembers(chequeId int) ([]User, error) {
	args := m.Called(chequeId)
	return args.Get(0).([]User), args.Error(1)
}
func (m *MockRepository) CreateProduct(name string, price, count, chequeId int) (Product, error) {
	args := m.Called(name, price, count, chequeId)
	return args.Get(0).(Product), args.Error(1)
}
func (m *MockRepository) GetProductById(id int) (Product, error) {
	args := m.Called(id)
	return args.Get(0).(Product), args.Error(1)
}
func (m *MockRepository) DeleteProduct(id int) error {
	args := m.Called(id)
	return args.Error(0)
}
func (m *MockRepository) ListProducts(chequeId int) ([]Product, error) {
	args := m.Called(chequeId)
	return args.Get(0).([]Product), args.Error(1)
}
func (m *MockRepository) CreateProductMember(memberId, productId int) error {
	args := m.Called(memberId, productId)
	return args.Error(0)
}
func (m *MockRepository) DeleteProductMember(memberId, productId int) error {
	args := m.Called(memberId, productId)
	return args.Error(0)
}
func (m *MockRepository) ListProductMembers(productId int) ([]User, error) {
	args := m.Called(productId)
	return args.Get(0).([]User), args.Error(1)
}
