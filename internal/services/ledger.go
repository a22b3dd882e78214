package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-ledger/internal/logger"
	"github.com/sbilibin2017/gw-movie-ledger/internal/models"
	"github.com/sbilibin2017/gw-movie-ledger/internal/rating"
	"github.com/segmentio/kafka-go"
)

// ErrLedgerUnavailable is the only error the ledger surfaces; details go to the log.
var ErrLedgerUnavailable = errors.New("ledger: save/load failed")

// DefaultTopN is the number of ratings returned in Stats.Top.
const DefaultTopN = 5

// RatingWriter defines rating write operations.
type RatingWriter interface {
	Upsert(ctx context.Context, rating models.RatingDB) (*models.RatingDB, error)
	Delete(ctx context.Context, userID, ratingID uuid.UUID) (bool, error)
}

// RatingReader defines rating read operations.
type RatingReader interface {
	List(ctx context.Context, userID uuid.UUID, filter models.RatingFilter) ([]models.RatingDB, error)
	Exists(ctx context.Context, userID uuid.UUID, title string, year *int) (bool, error)
	WatchedYears(ctx context.Context, userID uuid.UUID) ([]int, error)
	Summary(ctx context.Context, userID uuid.UUID) (models.RatingSummary, error)
	CountByLabel(ctx context.Context, userID uuid.UUID) ([]models.LabelCount, error)
	Top(ctx context.Context, userID uuid.UUID, limit int) ([]models.RatingDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// LedgerService stores and queries a user's movie ratings.
type LedgerService struct {
	writer      RatingWriter
	reader      RatingReader
	kafkaWriter KafkaWriter
	topN        int
	afterCommit func(ctx context.Context, fn func(ctx context.Context))
}

// LedgerOpt configures a LedgerService.
type LedgerOpt func(*LedgerService)

// WithAfterCommit sets the scheduler used to publish events once the
// surrounding transaction has committed.
func WithAfterCommit(afterCommit func(ctx context.Context, fn func(ctx context.Context))) LedgerOpt {
	return func(s *LedgerService) {
		s.afterCommit = afterCommit
	}
}

// NewLedgerService creates a new LedgerService. kafkaWriter may be nil.
func NewLedgerService(writer RatingWriter, reader RatingReader, kafkaWriter KafkaWriter, topN int, opts ...LedgerOpt) *LedgerService {
	if topN <= 0 {
		topN = DefaultTopN
	}
	s := &LedgerService{
		writer:      writer,
		reader:      reader,
		kafkaWriter: kafkaWriter,
		topN:        topN,
		afterCommit: func(ctx context.Context, fn func(ctx context.Context)) { fn(ctx) },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// publishEvent publishes a rating event to Kafka after the write is committed.
func (s *LedgerService) publishEvent(ctx context.Context, event models.RatingEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "rating_id", event.RatingID)
		return
	}
	s.afterCommit(ctx, func(ctx context.Context) {
		s.writeEvent(ctx, event)
	})
}

func (s *LedgerService) writeEvent(ctx context.Context, event models.RatingEvent) {

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal rating event for Kafka", "rating_id", event.RatingID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish rating event to Kafka", "rating_id", event.RatingID, "error", err)
	} else {
		logger.Log.Infow("Rating event published to Kafka", "rating_id", event.RatingID, "event_type", event.EventType)
	}
}

// Upsert labels the score and stores the rating for (userID, title, year).
func (s *LedgerService) Upsert(
	ctx context.Context,
	userID uuid.UUID,
	title string,
	year *int,
	watchedYear int,
	posterURL string,
	score float64,
) (*models.RatingDB, error) {
	label := rating.Classify(score)

	saved, err := s.writer.Upsert(ctx, models.RatingDB{
		UserID:      userID,
		Title:       title,
		Year:        year,
		WatchedYear: watchedYear,
		PosterURL:   posterURL,
		Score:       score,
		Label:       label,
	})
	if err != nil {
		logger.Log.Errorw("failed to save rating", "userID", userID, "title", title, "year", year, "score", score, "error", err)
		return nil, ErrLedgerUnavailable
	}

	s.publishEvent(ctx, models.RatingEvent{
		EventType: models.RatingEventTypePut,
		RatingID:  saved.RatingID.String(),
		UserID:    userID.String(),
		Title:     saved.Title,
		Year:      saved.Year,
		Score:     saved.Score,
		Label:     saved.Label,
		Timestamp: time.Now().UTC(),
	})

	return saved, nil
}

// List returns the user's ratings matching filter.
func (s *LedgerService) List(ctx context.Context, userID uuid.UUID, filter models.RatingFilter) ([]models.RatingDB, error) {
	ratings, err := s.reader.List(ctx, userID, filter)
	if err != nil {
		logger.Log.Errorw("failed to list ratings", "userID", userID, "filter", filter, "error", err)
		return nil, ErrLedgerUnavailable
	}
	return ratings, nil
}

// Delete removes the user's rating. Missing or foreign ids report false without error.
func (s *LedgerService) Delete(ctx context.Context, userID, ratingID uuid.UUID) (bool, error) {
	deleted, err := s.writer.Delete(ctx, userID, ratingID)
	if err != nil {
		logger.Log.Errorw("failed to delete rating", "userID", userID, "ratingID", ratingID, "error", err)
		return false, ErrLedgerUnavailable
	}

	if deleted {
		s.publishEvent(ctx, models.RatingEvent{
			EventType: models.RatingEventTypeDelete,
			RatingID:  ratingID.String(),
			UserID:    userID.String(),
			Timestamp: time.Now().UTC(),
		})
	}

	return deleted, nil
}

// Exists reports whether the user already rated (title, year).
func (s *LedgerService) Exists(ctx context.Context, userID uuid.UUID, title string, year *int) (bool, error) {
	exists, err := s.reader.Exists(ctx, userID, title, year)
	if err != nil {
		logger.Log.Errorw("failed to check rating", "userID", userID, "title", title, "year", year, "error", err)
		return false, ErrLedgerUnavailable
	}
	return exists, nil
}

// WatchedYears returns the distinct years in which the user watched rated movies.
func (s *LedgerService) WatchedYears(ctx context.Context, userID uuid.UUID) ([]int, error) {
	years, err := s.reader.WatchedYears(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list watched years", "userID", userID, "error", err)
		return nil, ErrLedgerUnavailable
	}
	return years, nil
}

// Stats aggregates the user's ratings.
func (s *LedgerService) Stats(ctx context.Context, userID uuid.UUID) (*models.Stats, error) {
	summary, err := s.reader.Summary(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to summarize ratings", "userID", userID, "error", err)
		return nil, ErrLedgerUnavailable
	}

	stats := &models.Stats{
		Total:          summary.Total,
		LabelBreakdown: map[string]float64{},
		Top:            []models.RatingDB{},
	}
	if summary.Total == 0 {
		return stats, nil
	}
	stats.AverageScore = summary.AverageScore

	counts, err := s.reader.CountByLabel(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count ratings by label", "userID", userID, "error", err)
		return nil, ErrLedgerUnavailable
	}
	// Percentages use the counted total, which may differ from summary.Total under concurrent writes.
	var counted int
	for _, c := range counts {
		counted += c.Count
	}
	for _, c := range counts {
		if counted > 0 {
			stats.LabelBreakdown[c.Label] = float64(c.Count) / float64(counted) * 100
		}
	}

	top, err := s.reader.Top(ctx, userID, s.topN)
	if err != nil {
		logger.Log.Errorw("failed to get top ratings", "userID", userID, "error", err)
		return nil, ErrLedgerUnavailable
	}
	stats.Top = top

	return stats, nil
}
