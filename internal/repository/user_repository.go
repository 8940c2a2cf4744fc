package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"newsly/internal/model"

	"github.com/lib/pq"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	ErrNotFound   = errors.New("user not found")
)

const uniqueViolation = "23505"

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Ping() error {
	return r.db.Ping()
}

// Create inserts the user in a single statement and relies on the UNIQUE
// constraint on email, so concurrent signups with the same address cannot
// both succeed.
func (r *UserRepository) Create(user *model.User) error {
	prefs, err := json.Marshal(user.Preferences)
	if err != nil {
		return err
	}

	err = r.db.QueryRow(`
		INSERT INTO users(name, email, password, preferences)
		VALUES($1, $2, $3, $4)
		RETURNING id, created_at
	`, user.Name, user.Email, user.PasswordHash, string(prefs)).Scan(&user.ID, &user.CreatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrEmailTaken
	}

	return err
}

func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var u model.User
	var prefs sql.NullString
	err := r.db.QueryRow(`
		SELECT id, name, email, password, preferences, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &prefs, &u.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	u.Preferences = decodePreferences(prefs)
	return &u, nil
}

func (r *UserRepository) GetPreferences(userID int64) ([]string, error) {
	var prefs sql.NullString
	err := r.db.QueryRow(`
		SELECT preferences FROM users WHERE id = $1
	`, userID).Scan(&prefs)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return decodePreferences(prefs), nil
}

// UpdatePreferences overwrites the full preference set.
func (r *UserRepository) UpdatePreferences(userID int64, preferences []string) error {
	prefs, err := json.Marshal(preferences)
	if err != nil {
		return err
	}

	res, err := r.db.Exec(`
		UPDATE users SET preferences = $1 WHERE id = $2
	`, string(prefs), userID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// decodePreferences tolerates null and malformed stored data by falling
// back to the empty set.
func decodePreferences(raw sql.NullString) []string {
	if !raw.Valid || raw.String == "" {
		return []string{}
	}

	var prefs []string
	if err := json.Unmarshal([]byte(raw.String), &prefs); err != nil {
		return []string{}
	}

	if prefs == nil {
		return []string{}
	}

	return prefs
}
