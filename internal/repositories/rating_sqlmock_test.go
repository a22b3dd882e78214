package repositories

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-movie-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "pgx"), mock
}

var ratingRowColumns = []string{"id", "usuario_id", "titulo", "ano", "assistido_em", "poster_url", "nota", "classificacao"}

func TestRatingWriteRepository_Upsert_UpdatesExistingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingWriteRepository(db, nil)

	userID, ratingID := uuid.New(), uuid.New()
	year := 2021

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM filmes")).
		WithArgs(userID, "Dune", &year).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(ratingID.String()))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE filmes SET assistido_em = $1")).
		WithArgs(2024, "url", 8.0, models.LabelGood, ratingID, userID).
		WillReturnRows(sqlmock.NewRows(ratingRowColumns).
			AddRow(ratingID.String(), userID.String(), "Dune", 2021, 2024, "url", 8.0, models.LabelGood))
	mock.ExpectCommit()

	saved, err := repo.Upsert(context.Background(), models.RatingDB{
		UserID: userID, Title: "Dune", Year: &year, WatchedYear: 2024, PosterURL: "url", Score: 8, Label: models.LabelGood,
	})
	require.NoError(t, err)
	assert.Equal(t, ratingID, saved.RatingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingWriteRepository_Upsert_InsertsMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingWriteRepository(db, nil)

	userID, ratingID := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM filmes")).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO filmes")).
		WithArgs(sqlmock.AnyArg(), userID, "Alien", nil, 2019, "", 10.0, models.LabelMasterpiece).
		WillReturnRows(sqlmock.NewRows(ratingRowColumns).
			AddRow(ratingID.String(), userID.String(), "Alien", nil, 2019, "", 10.0, models.LabelMasterpiece))
	mock.ExpectCommit()

	saved, err := repo.Upsert(context.Background(), models.RatingDB{
		UserID: userID, Title: "Alien", WatchedYear: 2019, Score: 10, Label: models.LabelMasterpiece,
	})
	require.NoError(t, err)
	assert.Equal(t, ratingID, saved.RatingID)
	assert.Nil(t, saved.Year)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingWriteRepository_Upsert_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingWriteRepository(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM filmes")).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	saved, err := repo.Upsert(context.Background(), models.RatingDB{UserID: uuid.New(), Title: "Dune"})
	assert.Error(t, err)
	assert.Nil(t, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingReadRepository_List_BuildsFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingReadRepository(db)

	userID := uuid.New()
	year := 2021

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, usuario_id, titulo, ano, assistido_em, poster_url, nota, classificacao FROM filmes " +
			"WHERE usuario_id = $1 AND assistido_em = $2 AND classificacao IN ($3, $4) AND nota BETWEEN $5 AND $6 " +
			"ORDER BY assistido_em DESC, titulo",
	)).
		WithArgs(userID.String(), 2021, models.LabelPoor, models.LabelGood, 1.0, 9.0).
		WillReturnRows(sqlmock.NewRows(ratingRowColumns))

	got, err := repo.List(context.Background(), userID, models.RatingFilter{
		WatchedYear: &year,
		Labels:      []string{models.LabelPoor, models.LabelGood},
		ScoreMin:    1,
		ScoreMax:    9,
	})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRatingReadRepository_List_WithoutOptionalFilters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRatingReadRepository(db)

	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE usuario_id = $1 AND nota BETWEEN $2 AND $3")).
		WithArgs(userID.String(), 0.0, 10.0).
		WillReturnError(errors.New("boom"))

	got, err := repo.List(context.Background(), userID, models.RatingFilter{ScoreMin: 0, ScoreMax: 10})
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}
