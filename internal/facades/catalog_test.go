package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchBody = `{
  "page": 1,
  "results": [
    {"title": "Cidade de Deus", "release_date": "2002-08-30", "poster_path": "/k7eYdWvhYQyRQoU2TB2A2Xu2TfD.jpg"},
    {"title": "Cidade de Deus: 10 Anos Depois", "release_date": "2013-11-01", "poster_path": null},
    {"title": "Sem data", "release_date": ""},
    {"title": "Quarto", "release_date": "1999-01-01"},
    {"title": "Quinto", "release_date": "1998-01-01"},
    {"title": "Sexto", "release_date": "1997-01-01"}
  ]
}`

func newTestFacade(t *testing.T, handler http.HandlerFunc, opts ...CatalogOpt) *CatalogHTTPFacade {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	f, err := NewCatalogHTTPFacade(srv.URL, "test-key", opts...)
	require.NoError(t, err)
	return f
}

func TestCatalogHTTPFacade_Search(t *testing.T) {
	f := newTestFacade(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "cidade de deus", r.URL.Query().Get("query"))
		assert.Equal(t, "pt-BR", r.URL.Query().Get("language"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(searchBody))
	})

	got := f.Search(context.Background(), "  cidade de deus ")
	require.Len(t, got, DefaultCatalogMaxResults)

	assert.Equal(t, "Cidade de Deus", got[0].Title)
	require.NotNil(t, got[0].Year)
	assert.Equal(t, 2002, *got[0].Year)
	assert.Equal(t, DefaultCatalogImageBaseURL+"/k7eYdWvhYQyRQoU2TB2A2Xu2TfD.jpg", got[0].PosterURL)

	assert.Nil(t, got[1].PosterPath)
	assert.Empty(t, got[1].PosterURL)
	assert.Equal(t, 2013, *got[1].Year)

	assert.Nil(t, got[2].Year)
	assert.False(t, got[0].AlreadyRated)
}

func TestCatalogHTTPFacade_Options(t *testing.T) {
	f := newTestFacade(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "en-US", r.URL.Query().Get("language"))
		_, _ = w.Write([]byte(searchBody))
	},
		WithLanguage("en-US"),
		WithMaxResults(1),
		WithImageBaseURL("http://img.local/"),
		WithTimeout(time.Second),
	)

	got := f.Search(context.Background(), "cidade")
	require.Len(t, got, 1)
	assert.Equal(t, "http://img.local/k7eYdWvhYQyRQoU2TB2A2Xu2TfD.jpg", got[0].PosterURL)
}

func TestCatalogHTTPFacade_SearchFailures(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		handler http.HandlerFunc
	}{
		{
			name:  "blank query",
			query: "   ",
			handler: func(w http.ResponseWriter, r *http.Request) {
				t.Error("catalog must not be called for a blank query")
			},
		},
		{
			name:  "unauthorized",
			query: "matrix",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"status_message":"Invalid API key"}`))
			},
		},
		{
			name:  "server error",
			query: "matrix",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name:  "malformed body",
			query: "matrix",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"results": [`))
			},
		},
		{
			name:  "no results",
			query: "zzzzzz",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"results": []}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFacade(t, tt.handler)

			got := f.Search(context.Background(), tt.query)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestCatalogHTTPFacade_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	f, err := NewCatalogHTTPFacade(url, "test-key", WithTimeout(500*time.Millisecond))
	require.NoError(t, err)

	got := f.Search(context.Background(), "matrix")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReleaseYear(t *testing.T) {
	tests := []struct {
		date string
		want *int
	}{
		{date: "2002-08-30", want: intPtr(2002)},
		{date: "1999", want: intPtr(1999)},
		{date: "", want: nil},
		{date: "abcd-01-01", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, releaseYear(tt.date))
		})
	}
}

func intPtr(v int) *int { return &v }
