package database

import "database/sql"

type User struct {
	Id           int
	Name         string
	Email        string
	PasswordHash string
	PhotoUrl     sql.NullString
}

type Room struct {
	Id      int
	Name    string
	OwnerId int
}

type Cheque struct {
	Id      int
	Name    string
	RoomId  int
	OwnerId int
}

type Product struct {
	Id       int
	Name     string
	Price    int
	Count    int
	ChequeId int
}

type CreateAccountParams struct {
	Name         string
	Email        string
	PasswordHash string
	PhotoUrl     string
}
