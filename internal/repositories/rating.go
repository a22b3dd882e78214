package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-movie-ledger/internal/logger"
	"github.com/sbilibin2017/gw-movie-ledger/internal/models"
)

const ratingColumns = `id, usuario_id, titulo, ano, assistido_em, poster_url, nota, classificacao`

// RatingWriteRepository handles rating write operations
type RatingWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewRatingWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *RatingWriteRepository {
	return &RatingWriteRepository{db: db, txGetter: txGetter}
}

// Upsert stores a rating keyed by (user, title, year). An existing row has its
// watched year, poster, score and label replaced; otherwise a new row is inserted.
// Lookup and write share one transaction: the request transaction when the
// context carries one, a private one otherwise.
func (r *RatingWriteRepository) Upsert(ctx context.Context, rating models.RatingDB) (*models.RatingDB, error) {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return r.upsert(ctx, tx, rating)
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	saved, err := r.upsert(ctx, tx, rating)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *RatingWriteRepository) upsert(ctx context.Context, tx *sqlx.Tx, rating models.RatingDB) (*models.RatingDB, error) {
	const selectQuery = `
		SELECT id
		FROM filmes
		WHERE usuario_id = $1 AND titulo = $2 AND ano IS NOT DISTINCT FROM $3::INTEGER
		LIMIT 1
		FOR UPDATE
	`
	const updateQuery = `
		UPDATE filmes
		SET assistido_em = $1, poster_url = $2, nota = $3, classificacao = $4
		WHERE id = $5 AND usuario_id = $6
		RETURNING ` + ratingColumns
	const insertQuery = `
		INSERT INTO filmes (id, usuario_id, titulo, ano, assistido_em, poster_url, nota, classificacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + ratingColumns

	var existingID uuid.UUID
	err := sqlx.GetContext(ctx, tx, &existingID, selectQuery, rating.UserID, rating.Title, rating.Year)

	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(selectQuery), " "),
		"args", []any{rating.UserID, rating.Title, rating.Year},
		"result", existingID,
		"error", err,
	)

	var (
		saved models.RatingDB
		query string
		args  []any
	)
	switch {
	case err == nil:
		query = updateQuery
		args = []any{rating.WatchedYear, rating.PosterURL, rating.Score, rating.Label, existingID, rating.UserID}
	case errors.Is(err, sql.ErrNoRows):
		query = insertQuery
		args = []any{uuid.New(), rating.UserID, rating.Title, rating.Year, rating.WatchedYear, rating.PosterURL, rating.Score, rating.Label}
	default:
		return nil, err
	}

	err = sqlx.GetContext(ctx, tx, &saved, query, args...)

	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", saved.RatingID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// Delete removes a rating owned by userID and reports whether a row was removed.
func (r *RatingWriteRepository) Delete(ctx context.Context, userID, ratingID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM filmes
		WHERE id = $1 AND usuario_id = $2
	`

	var executor sqlx.ExecerContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, ratingID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ratingID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// RatingReadRepository handles rating read operations
type RatingReadRepository struct {
	db *sqlx.DB
}

func NewRatingReadRepository(db *sqlx.DB) *RatingReadRepository {
	return &RatingReadRepository{db: db}
}

// List returns the user's ratings matching every set filter, newest watched year first.
func (r *RatingReadRepository) List(ctx context.Context, userID uuid.UUID, filter models.RatingFilter) ([]models.RatingDB, error) {
	where := []string{"usuario_id = ?"}
	args := []any{userID}

	if filter.WatchedYear != nil {
		where = append(where, "assistido_em = ?")
		args = append(args, *filter.WatchedYear)
	}
	if len(filter.Labels) > 0 {
		where = append(where, "classificacao IN (?)")
		args = append(args, filter.Labels)
	}
	where = append(where, "nota BETWEEN ? AND ?")
	args = append(args, filter.ScoreMin, filter.ScoreMax)

	query, args, err := sqlx.In(
		"SELECT "+ratingColumns+" FROM filmes WHERE "+strings.Join(where, " AND ")+" ORDER BY assistido_em DESC, titulo",
		args...,
	)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	ratings := []models.RatingDB{}
	err = r.db.SelectContext(ctx, &ratings, query, args...)

	logger.Log.Infow(
		"db query",
		"query", query,
		"args", args,
		"result", len(ratings),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// Exists reports whether the user already rated the (title, year) pair.
func (r *RatingReadRepository) Exists(ctx context.Context, userID uuid.UUID, title string, year *int) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM filmes
			WHERE usuario_id = $1 AND titulo = $2 AND ano IS NOT DISTINCT FROM $3::INTEGER
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, title, year)

	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, title, year},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// WatchedYears returns the distinct watched years of the user's ratings, newest first.
func (r *RatingReadRepository) WatchedYears(ctx context.Context, userID uuid.UUID) ([]int, error) {
	const query = `
		SELECT DISTINCT assistido_em
		FROM filmes
		WHERE usuario_id = $1
		ORDER BY assistido_em DESC
	`

	years := []int{}
	err := r.db.SelectContext(ctx, &years, query, userID)

	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", years,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return years, nil
}

// Summary returns the number of ratings and their mean score (0 when there are none).
func (r *RatingReadRepository) Summary(ctx context.Context, userID uuid.UUID) (models.RatingSummary, error) {
	const query = `
		SELECT COUNT(*) AS total, COALESCE(AVG(nota), 0) AS media
		FROM filmes
		WHERE usuario_id = $1
	`

	var summary models.RatingSummary
	err := r.db.GetContext(ctx, &summary, query, userID)

	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", summary,
		"error", err,
	)

	return summary, err
}

// CountByLabel returns the number of ratings per label present for the user.
func (r *RatingReadRepository) CountByLabel(ctx context.Context, userID uuid.UUID) ([]models.LabelCount, error) {
	const query = `
		SELECT classificacao, COUNT(*) AS qtd
		FROM filmes
		WHERE usuario_id = $1
		GROUP BY classificacao
	`

	counts := []models.LabelCount{}
	err := r.db.SelectContext(ctx, &counts, query, userID)

	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", counts,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return counts, nil
}

// Top returns the user's highest scored ratings.
func (r *RatingReadRepository) Top(ctx context.Context, userID uuid.UUID, limit int) ([]models.RatingDB, error) {
	const query = `
		SELECT ` + ratingColumns + `
		FROM filmes
		WHERE usuario_id = $1
		ORDER BY nota DESC, titulo
		LIMIT $2
	`

	ratings := []models.RatingDB{}
	err := r.db.SelectContext(ctx, &ratings, query, userID, limit)

	logger.Log.Infow(
		"db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(ratings),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return ratings, nil
}
