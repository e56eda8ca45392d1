package db

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"auth-api/internal/domain/entity"
)

const timeLayout = "2006-01-02 15:04:05"

const userColumns = "id, username, email, full_name, password_hash, created_at, updated_at"

type SQLCUserGateway struct {
	DB *sql.DB
}

var _ UserGateway = (*SQLCUserGateway)(nil)

func NewSQLCUserGateway(db *sql.DB) *SQLCUserGateway {
	return &SQLCUserGateway{DB: db}
}

func (gateway *SQLCUserGateway) FindAll(offset int, limit int) (_ []entity.User, err error) {
	rows, err := gateway.DB.Query(`
		SELECT `+userColumns+`
		FROM users
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2`, offset, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return scanUsers(rows)
}

func (gateway *SQLCUserGateway) FindByUsernamePart(usernamePart string, offset int, limit int) (_ []entity.User, err error) {
	rows, err := gateway.DB.Query(`
		SELECT `+userColumns+`
		FROM users
		WHERE username ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3`, usernamePart, offset, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return scanUsers(rows)
}

func (gateway *SQLCUserGateway) FindByID(id string) (*entity.User, error) {
	return gateway.findOne(`
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1`, id)
}

func (gateway *SQLCUserGateway) FindByUsername(username string) (*entity.User, error) {
	return gateway.findOne(`
		SELECT `+userColumns+`
		FROM users
		WHERE username = $1`, username)
}

func (gateway *SQLCUserGateway) FindByEmail(email string) (*entity.User, error) {
	return gateway.findOne(`
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1`, email)
}

func (gateway *SQLCUserGateway) Create(user entity.User) (*entity.User, error) {
	user.ID = uuid.New().String()
	now := time.Now().UTC().Format(timeLayout)
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := gateway.DB.Exec(`
		INSERT INTO users (id, username, email, full_name, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.Email, user.FullName, user.PasswordHash,
		user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (gateway *SQLCUserGateway) UpdateByID(id string, updated entity.User) (*entity.User, error) {
	updated.UpdatedAt = time.Now().UTC().Format(timeLayout)

	_, err := gateway.DB.Exec(`
		UPDATE users
		SET username = $1, email = $2, full_name = $3, password_hash = $4, updated_at = $5
		WHERE id = $6`,
		updated.Username, updated.Email, updated.FullName, updated.PasswordHash,
		updated.UpdatedAt, id)
	if err != nil {
		return nil, err
	}

	updated.ID = id
	return &updated, nil
}

func (gateway *SQLCUserGateway) DeleteByID(id string) error {
	_, err := gateway.DB.Exec(`DELETE FROM users WHERE id = $1`, id)
	return err
}

// CountAll returns the total count of users
func (gateway *SQLCUserGateway) CountAll() (int64, error) {
	var count int64
	err := gateway.DB.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}

// CountByUsernamePart returns the count of users whose username contains the part
func (gateway *SQLCUserGateway) CountByUsernamePart(usernamePart string) (int64, error) {
	var count int64
	err := gateway.DB.QueryRow(`
		SELECT COUNT(*)
		FROM users
		WHERE username ILIKE '%' || $1 || '%'`, usernamePart).Scan(&count)
	return count, err
}

func (gateway *SQLCUserGateway) findOne(query string, arg any) (*entity.User, error) {
	var u entity.User
	err := gateway.DB.QueryRow(query, arg).
		Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func scanUsers(rows *sql.Rows) ([]entity.User, error) {
	results := make([]entity.User, 0)
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		results = append(results, u)
	}
	return results, rows.Err()
}
