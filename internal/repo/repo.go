package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

type DesignRecord struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	SaveDesign(ctx context.Context, userID int, name string, input, result json.RawMessage) (int, error)
	ListDesigns(ctx context.Context, userID int) ([]DesignRecord, error)
}

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (r *PostgresStore) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresStore) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresStore) SaveDesign(ctx context.Context, userID int, name string, input, result json.RawMessage) (int, error) {
	var id int
	query := "INSERT INTO designs (user_id, name, input, result) VALUES ($1, $2, $3, $4) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, userID, name, input, result).Scan(&id)
	return id, err
}

func (r *PostgresStore) ListDesigns(ctx context.Context, userID int) ([]DesignRecord, error) {
	query := "SELECT id, name, input, result, created_at FROM designs WHERE user_id=$1 ORDER BY created_at DESC"
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []DesignRecord
	for rows.Next() {
		var rec DesignRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Input, &rec.Result, &rec.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
