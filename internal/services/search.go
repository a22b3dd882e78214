package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-ledger/internal/models"
)

// Catalog searches the remote movie catalog. Failures yield an empty slice.
type Catalog interface {
	Search(ctx context.Context, query string) []models.CandidateMovie
}

// RatedChecker reports whether a user already rated a movie.
type RatedChecker interface {
	Exists(ctx context.Context, userID uuid.UUID, title string, year *int) (bool, error)
}

// SearchService looks up candidates and flags the ones the user already rated.
type SearchService struct {
	catalog Catalog
	rated   RatedChecker
}

// NewSearchService creates a new SearchService.
func NewSearchService(catalog Catalog, rated RatedChecker) *SearchService {
	return &SearchService{catalog: catalog, rated: rated}
}

// Search returns catalog candidates for query with AlreadyRated filled in for userID.
func (s *SearchService) Search(ctx context.Context, userID uuid.UUID, query string) []models.CandidateMovie {
	candidates := s.catalog.Search(ctx, query)
	for i := range candidates {
		// A failed check leaves the flag unset; the ledger already logged it.
		rated, err := s.rated.Exists(ctx, userID, candidates[i].Title, candidates[i].Year)
		candidates[i].AlreadyRated = err == nil && rated
	}
	return candidates
}
