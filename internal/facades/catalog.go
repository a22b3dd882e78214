package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-movie-ledger/internal/logger"
	"github.com/sbilibin2017/gw-movie-ledger/internal/models"
)

// Catalog defaults, matching the public TMDb endpoints.
const (
	DefaultCatalogBaseURL      = "https://api.themoviedb.org/3"
	DefaultCatalogImageBaseURL = "https://image.tmdb.org/t/p/w500"
	DefaultCatalogLanguage     = "pt-BR"
	DefaultCatalogTimeout      = 5 * time.Second
	DefaultCatalogMaxResults   = 5
)

// CatalogHTTPFacade searches the TMDb movie catalog over HTTP.
type CatalogHTTPFacade struct {
	baseURL      *url.URL
	apiKey       string
	imageBaseURL string
	language     string
	maxResults   int
	client       *http.Client
}

// CatalogOpt configures a CatalogHTTPFacade.
type CatalogOpt func(*CatalogHTTPFacade)

// WithImageBaseURL sets the prefix joined with poster paths.
func WithImageBaseURL(imageBaseURL string) CatalogOpt {
	return func(f *CatalogHTTPFacade) {
		if imageBaseURL != "" {
			f.imageBaseURL = strings.TrimRight(imageBaseURL, "/")
		}
	}
}

// WithLanguage sets the language of titles returned by the catalog.
func WithLanguage(language string) CatalogOpt {
	return func(f *CatalogHTTPFacade) {
		if language != "" {
			f.language = language
		}
	}
}

// WithMaxResults caps the number of candidates returned per search.
func WithMaxResults(n int) CatalogOpt {
	return func(f *CatalogHTTPFacade) {
		if n > 0 {
			f.maxResults = n
		}
	}
}

// WithTimeout bounds every catalog request.
func WithTimeout(timeout time.Duration) CatalogOpt {
	return func(f *CatalogHTTPFacade) {
		if timeout > 0 {
			f.client = newHTTPClient(timeout)
		}
	}
}

// NewCatalogHTTPFacade creates a catalog facade for the API rooted at baseURL.
func NewCatalogHTTPFacade(baseURL, apiKey string, opts ...CatalogOpt) (*CatalogHTTPFacade, error) {
	if baseURL == "" {
		baseURL = DefaultCatalogBaseURL
	}
	// Keep the trailing slash so relative references resolve under the version prefix.
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}

	f := &CatalogHTTPFacade{
		baseURL:      parsed,
		apiKey:       apiKey,
		imageBaseURL: DefaultCatalogImageBaseURL,
		language:     DefaultCatalogLanguage,
		maxResults:   DefaultCatalogMaxResults,
		client:       newHTTPClient(DefaultCatalogTimeout),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   timeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   timeout,
			ResponseHeaderTimeout: timeout,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}

// Search returns up to maxResults candidates matching query.
// Blank queries and every upstream failure yield an empty slice.
func (f *CatalogHTTPFacade) Search(ctx context.Context, query string) []models.CandidateMovie {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.CandidateMovie{}
	}

	rel := &url.URL{Path: "search/movie"}
	q := rel.Query()
	q.Set("api_key", f.apiKey)
	q.Set("query", query)
	q.Set("language", f.language)
	rel.RawQuery = q.Encode()
	endpoint := f.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		logger.Log.Errorw("failed to build catalog request", "query", query, "error", err)
		return []models.CandidateMovie{}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("catalog request failed", "query", query, "error", err)
		return []models.CandidateMovie{}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Errorw("catalog returned unexpected status", "query", query, "status", resp.StatusCode)
		return []models.CandidateMovie{}
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Log.Errorw("failed to decode catalog response", "query", query, "error", err)
		return []models.CandidateMovie{}
	}

	candidates := f.convertToCandidates(payload)
	logger.Log.Debugw("catalog search", "query", query, "results", len(candidates))
	return candidates
}

type searchResponse struct {
	Results []movieResult `json:"results"`
}

type movieResult struct {
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	PosterPath  *string `json:"poster_path"`
}

func (f *CatalogHTTPFacade) convertToCandidates(payload searchResponse) []models.CandidateMovie {
	n := len(payload.Results)
	if n > f.maxResults {
		n = f.maxResults
	}

	candidates := make([]models.CandidateMovie, 0, n)
	for _, r := range payload.Results[:n] {
		c := models.CandidateMovie{
			Title:      r.Title,
			Year:       releaseYear(r.ReleaseDate),
			PosterPath: r.PosterPath,
		}
		if r.PosterPath != nil && *r.PosterPath != "" {
			c.PosterURL = f.imageBaseURL + *r.PosterPath
		}
		candidates = append(candidates, c)
	}
	return candidates
}

// releaseYear parses the YYYY prefix of a YYYY-MM-DD date.
func releaseYear(date string) *int {
	if len(date) < 4 {
		return nil
	}
	year, err := strconv.Atoi(date[:4])
	if err != nil {
		return nil
	}
	return &year
}
