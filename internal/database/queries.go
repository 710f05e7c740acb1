package database

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// unique_violation, https://www.postgresql.org/docs/current/errcodes-appendix.html
const uniqueViolation = "23505"

func translateError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrAlreadyExists
	}
	return err
}

func (db *PgRepository) CreateAccount(params CreateAccountParams) (User, error) {
	res := db.conn.QueryRow(
		"INSERT INTO users (name, email, password_hash, photo_url) "+
			"VALUES ($1, $2, $3, NULLIF($4, '')) RETURNING id, name, email",
		params.Name,
		params.Email,
		params.PasswordHash,
		params.PhotoUrl,
	)

	var u User
	err := res.Scan(
		&u.Id,
		&u.Name,
		&u.Email,
	)

	return u, translateError(err)
}

func (db *PgRepository) GetAccountById(id int) (User, error) {
	row := db.conn.QueryRow(
		"SELECT id, name, email, password_hash, photo_url FROM users "+
			"WHERE id = $1 LIMIT 1",
		id,
	)

	var u User
	err := row.Scan(
		&u.Id,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.PhotoUrl,
	)

	return u, err
}

func (db *PgRepository) GetAccountByEmail(email string) (User, error) {
	row := db.conn.QueryRow(
		"SELECT id, name, email, password_hash, photo_url FROM users "+
			"WHERE email = $1 LIMIT 1",
		email,
	)

	var u User
	err := row.Scan(
		&u.Id,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.PhotoUrl,
	)

	return u, err
}

// DeleteAccount removes the user together with every room it owns, every
// cheque it owns and every membership row referencing it. The schema's
// ON DELETE CASCADE constraints make the whole cascade one atomic
// statement.
func (db *PgRepository) DeleteAccount(id int) error {
	res, err := db.conn.Exec("DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (db *PgRepository) CreateRoom(name string, ownerId int) (Room, error) {
	res := db.conn.QueryRow(
		"INSERT INTO rooms (name, owner_id) VALUES ($1, $2) "+
			"RETURNING id, name, owner_id",
		name,
		ownerId,
	)

	var room Room
	err := res.Scan(
		&room.Id,
		&room.Name,
		&room.OwnerId,
	)

	return room, err
}

func (db *PgRepository) GetRoomById(id int) (Room, error) {
	row := db.conn.QueryRow(
		"SELECT id, name, owner_id FROM rooms WHERE id = $1 LIMIT 1",
		id,
	)

	var room Room
	err := row.Scan(
		&room.Id,
		&room.Name,
		&room.OwnerId,
	)

	return room, err
}

// DeleteRoom cascades to the room's cheques, those cheques' products and
// every membership row underneath, in one atomic statement.
func (db *PgRepository) DeleteRoom(id int) error {
	res, err := db.conn.Exec("DELETE FROM rooms WHERE id = $1", id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (db *PgRepository) ListRoomsByOwner(ownerId int) ([]Room, error) {
	rows, err := db.conn.Query(
		"SELECT id, name, owner_id FROM rooms WHERE owner_id = $1 ORDER BY id",
		ownerId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRooms(rows)
}

func (db *PgRepository) ListRoomsJoined(memberId int) ([]Room, error) {
	rows, err := db.conn.Query(
		"SELECT r.id, r.name, r.owner_id FROM room_members m "+
			"JOIN rooms r ON r.id = m.room_id WHERE m.member_id = $1 ORDER BY r.id",
		memberId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRooms(rows)
}

func scanRooms(rows *sql.Rows) ([]Room, error) {
	rooms := make([]Room, 0)
	for rows.Next() {
		var room Room
		if err := rows.Scan(&room.Id, &room.Name, &room.OwnerId); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (db *PgRepository) CountCheques(roomId int) (int, error) {
	row := db.conn.QueryRow(
		"SELECT COUNT(*) FROM cheques WHERE room_id = $1",
		roomId,
	)

	var count int
	err := row.Scan(&count)

	return count, err
}

func (db *PgRepository) CreateRoomMember(memberId, roomId int) error {
	_, err := db.conn.Exec(
		"INSERT INTO room_members (member_id, room_id) VALUES ($1, $2)",
		memberId,
		roomId,
	)

	return translateError(err)
}

func (db *PgRepository) DeleteRoomMember(memberId, roomId int) error {
	res, err := db.conn.Exec(
		"DELETE FROM room_members WHERE member_id = $1 AND room_id = $2",
		memberId,
		roomId,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (db *PgRepository) ListRoomMembers(roomId int) ([]User, error) {
	rows, err := db.conn.Query(
		"SELECT u.id, u.name, u.email FROM room_members m "+
			"JOIN users u ON u.id = m.member_id WHERE m.room_id = $1 ORDER BY u.id",
		roomId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMembers(rows)
}

func scanMembers(rows *sql.Rows) ([]User, error) {
	members := make([]User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.Id, &u.Name, &u.Email); err != nil {
			return nil, err
		}
		members = append(members, u)
	}

	return members, rows.Err()
}

func (db *PgRepository) CreateCheque(name string, roomId, ownerId int) (Cheque, error) {
	res := db.conn.QueryRow(
		"INSERT INTO cheques (name, room_id, owner_id) VALUES ($1, $2, $3) "+
			"RETURNING id, name, room_id, owner_id",
		name,
		roomId,
		ownerId,
	)

	var cheque Cheque
	err := res.Scan(
		&cheque.Id,
		&cheque.Name,
		&cheque.RoomId,
		&cheque.OwnerId,
	)

	return cheque, err
}

func (db *PgRepository) GetChequeById(id int) (Cheque, error) {
	row := db.conn.QueryRow(
		"SELECT id, name, room_id, owner_id FROM cheques WHERE id = $1 LIMIT 1",
		id,
	)

	var cheque Cheque
	err := row.Scan(
		&cheque.Id,
		&cheque.Name,
		&cheque.RoomId,
		&cheque.OwnerId,
	)

	return cheque, err
}

func (db *PgRepository) DeleteCheque(id int) error {
	res, err := db.conn.Exec("DELETE FROM cheques WHERE id = $1", id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (db *PgRepository) ListCheques(roomId int) ([]Cheque, error) {
	rows, err := db.conn.Query(
		"SELECT id, name, room_id, owner_id FROM cheques WHERE room_id = $1 ORDER BY id",
		roomId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCheques(rows)
}

func (db *PgRepository) ListChequesByOwner(roomId, ownerId int) ([]Cheque, error) {
	rows, err := db.conn.Query(
		"SELECT id, name, room_id, owner_id FROM cheques "+
			"WHERE room_id = $1 AND owner_id = $2 ORDER BY id",
		roomId,
		ownerId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCheques(rows)
}

func (db *PgRepository) ListChequesJoined(roomId, memberId int) ([]Cheque, error) {
	rows, err := db.conn.Query(
		"SELECT c.id, c.name, c.room_id, c.owner_id FROM cheque_members m "+
			"JOIN cheques c ON c.id = m.cheque_id "+
			"WHERE c.room_id = $1 AND m.member_id = $2 ORDER BY c.id",
		roomId,
		memberId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCheques(rows)
}

func scanCheques(rows *sql.Rows) ([]Cheque, error) {
	cheques := make([]Cheque, 0)
	for rows.Next() {
		var cheque Cheque
		if err := rows.Scan(&cheque.Id, &cheque.Name, &cheque.RoomId, &cheque.OwnerId); err != nil {
			return nil, err
		}
		cheques = append(cheques, cheque)
	}

	return cheques, rows.Err()
}

func (db *PgRepository) CreateChequeMember(memberId, chequeId int) error {
	_, err := db.conn.Exec(
		"INSERT INTO cheque_members (member_id, cheque_id) VALUES ($1, $2)",
		memberId,
		chequeId,
	)

	return translateError(err)
}

func (db *PgRepository) DeleteChequeMember(memberId, chequeId int) error {
	res, err := db.conn.Exec(
		"DELETE FROM cheque_members WHERE member_id = $1 AND cheque_id = $2",
		memberId,
		chequeId,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (db *PgRepository) ListChequeMembers(chequeId int) ([]User, error) {
	rows, err := db.conn.Query(
		"SELECT u.id, u.name, u.email FROM cheque_members m "+
			"JOIN users u ON u.id = m.member_id WHERE m.cheque_id = $1 ORDER BY u.id",
		chequeId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMembers(rows)
}

func (db *PgRepository) CreateProduct(name string, price, count, chequeId int) (Product, error) {
	res := db.conn.QueryRow(
		"INSERT INTO products (name, price, count, cheque_id) VALUES ($1, $2, $3, $4) "+
			"RETURNING id, name, price, count, cheque_id",
		name,
		price,
		count,
		chequeId,
	)

	var product Product
	err := res.Scan(
		&product.Id,
		&product.Name,
		&product.Price,
		&product.Count,
		&product.ChequeId,
	)

	return product, err
}

func (db *PgRepository) GetProductById(id int) (Product, error) {
	row := db.conn.QueryRow(
		"SELECT id, name, price, count, cheque_id FROM products WHERE id = $1 LIMIT 1",
		id,
	)

	var product Product
	err := row.Scan(
		&product.Id,
		&product.Name,
		&product.Price,
		&product.Count,
		&product.ChequeId,
	)

	return product, err
}

func (db *PgRepository) DeleteProduct(id int) error {
	res, err := db.conn.Exec("DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (db *PgRepository) ListProducts(chequeId int) ([]Product, error) {
	rows, err := db.conn.Query(
		"SELECT id, name, price, count, cheque_id FROM products "+
			"WHERE cheque_id = $1 ORDER BY id",
		chequeId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		var product Product
		if err := rows.Scan(&product.Id, &product.Name, &product.Price, &product.Count, &product.ChequeId); err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

func (db *PgRepository) CreateProductMember(memberId, productId int) error {
	_, err := db.conn.Exec(
		"INSERT INTO product_members (member_id, product_id) VALUES ($1, $2)",
		memberId,
		productId,
	)

	return translateError(err)
}

func (db *PgRepository) DeleteProductMember(memberId, productId int) error {
	res, err := db.conn.Exec(
		"DELETE FROM product_members WHERE member_id = $1 AND product_id = $2",
		memberId,
		productId,
	)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (db *PgRepository) ListProductMembers(productId int) ([]User, error) {
	rows, err := db.conn.Query(
		"SELECT u.id, u.name, u.email FROM product_members m "+
			"JOIN users u ON u.id = m.member_id WHERE m.product_id = $1 ORDER BY u.id",
		productId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMembers(rows)
}
