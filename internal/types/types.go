package types

// User is the public projection of an account. The password hash and
// photo url never leave the server through views.
type User struct {
	Id    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RoomView struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Owner       User   `json:"owner"`
	ChequeCount int    `json:"chequeCount"`
	Members     []User `json:"members"`
	Admin       bool   `json:"admin"`
}

// ChequeView is the nested presentation of a cheque. Sum is a placeholder
// kept for response compatibility; settlement math is not computed here.
type ChequeView struct {
	Id      int    `json:"id"`
	Name    string `json:"name"`
	Owner   User   `json:"owner"`
	RoomId  int    `json:"roomId"`
	Sum     int    `json:"sum"`
	Members []User `json:"members"`
	Admin   bool   `json:"admin"`
}

type ProductView struct {
	Id       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Count    int    `json:"count"`
	ChequeId int    `json:"chequeId"`
	Members  []User `json:"members"`
}
