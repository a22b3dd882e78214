package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-movie-ledger/internal/logger"
	"github.com/sbilibin2017/gw-movie-ledger/internal/models"
)

// pgUniqueViolation is the PostgreSQL error code for duplicate keys.
const pgUniqueViolation = "23505"

// ErrEmailTaken is returned when a user with the same email already exists.
var ErrEmailTaken = errors.New("email already registered")

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil when there is none.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, senha_hash, criado_em
		FROM usuarios
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", user.UserID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a user and returns its id. Duplicate emails yield ErrEmailTaken.
func (r *UserWriteRepository) Save(ctx context.Context, email, passwordHash string) (uuid.UUID, error) {
	const query = `
		INSERT INTO usuarios (id, email, senha_hash, criado_em)
		VALUES ($1, $2, $3, NOW())
	`
	userID := uuid.New()

	res, err := r.db.ExecContext(ctx, query, userID, email, passwordHash)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// The hash stays out of the log line.
	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, email},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, err
	}

	return userID, nil
}
