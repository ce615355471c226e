package database

import (
	"database/sql"
	"fmt"
	"time"
)

func (db *PgCurrentlyRepository) CreateAccount(accountParams CreateAccountParams) (Account, error) {
	res := db.conn.QueryRow(
		"INSERT INTO accounts (username, email, password_hash, created_at, updated_at) "+
			"VALUES ($1, $2, $3, $4, $4) RETURNING id, username, email, created_at, updated_at",
		accountParams.Username,
		accountParams.EmailAddress,
		accountParams.PasswordHash,
		time.Now().UTC(),
	)

	var a Account
	err := res.Scan(
		&a.Id,
		&a.Username,
		&a.EmailAddress,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	return a, err
}

func (db *PgCurrentlyRepository) GetAccountByEmail(email string) (Account, error) {
	row := db.conn.QueryRow(
		"SELECT id, username, email, password_hash, created_at, updated_at FROM accounts "+
			"WHERE email = $1 LIMIT 1",
		email,
	)

	var a Account
	err := row.Scan(
		&a.Id,
		&a.Username,
		&a.EmailAddress,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	return a, err
}

func (db *PgCurrentlyRepository) AccountExistsByEmail(email string) (bool, error) {
	var exists bool
	err := db.conn.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM accounts WHERE email = $1)",
		email,
	).Scan(&exists)

	return exists, err
}

func (db *PgCurrentlyRepository) AccountExistsByUsername(username string) (bool, error) {
	var exists bool
	err := db.conn.QueryRow(
		"SELECT EXISTS (SELECT 1 FROM accounts WHERE username = $1)",
		username,
	).Scan(&exists)

	return exists, err
}

func (db *PgCurrentlyRepository) CreateRoom(params CreateRoomParams) (Room, error) {
	res := db.conn.QueryRow(
		"INSERT INTO rooms (external_id, account_id, name, floor_label, type, created_at, updated_at) "+
			"VALUES ($1, $2, $3, $4, $5, $6, $6) "+
			"RETURNING id, external_id, account_id, name, floor_label, type, created_at, updated_at",
		params.ExternalId,
		params.AccountId,
		params.Name,
		params.FloorLabel,
		params.Type,
		time.Now().UTC(),
	)

	return scanRoom(res)
}

func (db *PgCurrentlyRepository) GetRoomByExternalId(externalId string) (Room, error) {
	row := db.conn.QueryRow(
		"SELECT id, external_id, account_id, name, floor_label, type, created_at, updated_at "+
			"FROM rooms WHERE external_id = $1 LIMIT 1",
		externalId,
	)

	return scanRoom(row)
}

func (db *PgCurrentlyRepository) UpdateRoom(params UpdateRoomParams) (Room, error) {
	res := db.conn.QueryRow(
		"UPDATE rooms SET name = $2, floor_label = $3, type = $4, updated_at = $5 "+
			"WHERE id = $1 "+
			"RETURNING id, external_id, account_id, name, floor_label, type, created_at, updated_at",
		params.RoomId,
		params.Name,
		params.FloorLabel,
		params.Type,
		time.Now().UTC(),
	)

	return scanRoom(res)
}

// DeleteRoom removes a room and detaches any appliances assigned to it
// in a single transaction. The appliances themselves survive.
func (db *PgCurrentlyRepository) DeleteRoom(id int) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.Exec(
		"UPDATE user_appliances SET room_id = NULL, updated_at = $2 WHERE room_id = $1",
		id,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	_, err = tx.Exec("DELETE FROM rooms WHERE id = $1", id)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (db *PgCurrentlyRepository) ListRooms(accountId int) ([]Room, error) {
	rows, err := db.conn.Query(
		"SELECT id, external_id, account_id, name, floor_label, type, created_at, updated_at "+
			"FROM rooms WHERE account_id = $1 ORDER BY floor_label ASC, name ASC",
		accountId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms = make([]Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		rooms = append(rooms, room)
	}

	return rooms, rows.Err()
}

func (db *PgCurrentlyRepository) CreateUserAppliance(params CreateUserApplianceParams) (UserAppliance, error) {
	res := db.conn.QueryRow(
		"INSERT INTO user_appliances "+
			"(external_id, account_id, room_id, appliance_name, custom_name, usage_kind, hours_per_day, uses_per_day, created_at, updated_at) "+
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9) "+
			"RETURNING id, external_id, account_id, room_id, appliance_name, custom_name, usage_kind, hours_per_day, uses_per_day, created_at, updated_at",
		params.ExternalId,
		params.AccountId,
		nullableRoomId(params.RoomId),
		params.ApplianceName,
		params.CustomName,
		string(params.UsageKind),
		params.HoursPerDay,
		params.UsesPerDay,
		time.Now().UTC(),
	)

	return scanUserAppliance(res)
}

func (db *PgCurrentlyRepository) GetUserApplianceByExternalId(externalId string) (UserAppliance, error) {
	row := db.conn.QueryRow(
		"SELECT ua.id, ua.external_id, ua.account_id, ua.room_id, ua.appliance_name, ua.custom_name, "+
			"ua.usage_kind, ua.hours_per_day, ua.uses_per_day, ua.created_at, ua.updated_at, "+
			"r.external_id, r.name "+
			"FROM user_appliances ua LEFT JOIN rooms r ON ua.room_id = r.id "+
			"WHERE ua.external_id = $1 LIMIT 1",
		externalId,
	)

	return scanUserApplianceWithRoom(row)
}

func (db *PgCurrentlyRepository) UpdateUserAppliance(params UpdateUserApplianceParams) (UserAppliance, error) {
	res := db.conn.QueryRow(
		"UPDATE user_appliances SET room_id = $2, custom_name = $3, hours_per_day = $4, uses_per_day = $5, updated_at = $6 "+
			"WHERE id = $1 "+
			"RETURNING id, external_id, account_id, room_id, appliance_name, custom_name, usage_kind, hours_per_day, uses_per_day, created_at, updated_at",
		params.UserApplianceId,
		nullableRoomId(params.RoomId),
		params.CustomName,
		params.HoursPerDay,
		params.UsesPerDay,
		time.Now().UTC(),
	)

	return scanUserAppliance(res)
}

func (db *PgCurrentlyRepository) DeleteUserAppliance(id int) error {
	_, err := db.conn.Exec("DELETE FROM user_appliances WHERE id = $1", id)
	return err
}

func (db *PgCurrentlyRepository) ListUserAppliances(accountId int) ([]UserAppliance, error) {
	rows, err := db.conn.Query(
		"SELECT ua.id, ua.external_id, ua.account_id, ua.room_id, ua.appliance_name, ua.custom_name, "+
			"ua.usage_kind, ua.hours_per_day, ua.uses_per_day, ua.created_at, ua.updated_at, "+
			"r.external_id, r.name "+
			"FROM user_appliances ua LEFT JOIN rooms r ON ua.room_id = r.id "+
			"WHERE ua.account_id = $1 ORDER BY ua.created_at ASC",
		accountId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appliances = make([]UserAppliance, 0)
	for rows.Next() {
		ua, err := scanUserApplianceWithRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		appliances = append(appliances, ua)
	}

	return appliances, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRoom(row scanner) (Room, error) {
	var room Room
	err := row.Scan(
		&room.Id,
		&room.ExternalId,
		&room.AccountId,
		&room.Name,
		&room.FloorLabel,
		&room.Type,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	return room, err
}

func scanUserAppliance(row scanner) (UserAppliance, error) {
	var (
		ua     UserAppliance
		roomId sql.NullInt64
	)
	err := row.Scan(
		&ua.Id,
		&ua.ExternalId,
		&ua.AccountId,
		&roomId,
		&ua.ApplianceName,
		&ua.CustomName,
		&ua.UsageKind,
		&ua.HoursPerDay,
		&ua.UsesPerDay,
		&ua.CreatedAt,
		&ua.UpdatedAt,
	)
	if err != nil {
		return UserAppliance{}, err
	}

	ua.RoomId = int(roomId.Int64)
	return ua, nil
}

func scanUserApplianceWithRoom(row scanner) (UserAppliance, error) {
	var (
		ua             UserAppliance
		roomId         sql.NullInt64
		roomExternalId sql.NullString
		roomName       sql.NullString
	)
	err := row.Scan(
		&ua.Id,
		&ua.ExternalId,
		&ua.AccountId,
		&roomId,
		&ua.ApplianceName,
		&ua.CustomName,
		&ua.UsageKind,
		&ua.HoursPerDay,
		&ua.UsesPerDay,
		&ua.CreatedAt,
		&ua.UpdatedAt,
		&roomExternalId,
		&roomName,
	)
	if err != nil {
		return UserAppliance{}, err
	}

	ua.RoomId = int(roomId.Int64)
	ua.RoomExternalId = roomExternalId.String
	ua.RoomName = roomName.String

	return ua, nil
}

func nullableRoomId(roomId int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(roomId), Valid: roomId != 0}
}
