package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-movie-ledger/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The transaction commits when the handler answers below 400 and rolls back otherwise.
// The response is held back until the outcome is known, so a failed commit is reported as 500.
// Callbacks registered with AfterCommit run only once the commit has succeeded.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			hooks := &commitHooks{}
			ctx := setTxToContext(r.Context(), tx)
			ctx = context.WithValue(ctx, hooksKey, hooks)
			r = r.WithContext(ctx)

			bw := &bufferedWriter{ResponseWriter: w}
			next.ServeHTTP(bw, r)

			if bw.status() >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"Internal server error"}` + "\n"))
				return
			}

			bw.flush()
			hooks.run(ctx)
		})
	}
}

// bufferedWriter records status and body until flush.
type bufferedWriter struct {
	http.ResponseWriter
	code int
	body bytes.Buffer
}

func (bw *bufferedWriter) WriteHeader(code int) {
	if bw.code == 0 {
		bw.code = code
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	if bw.code == 0 {
		bw.code = http.StatusOK
	}
	return bw.body.Write(b)
}

func (bw *bufferedWriter) status() int {
	if bw.code == 0 {
		return http.StatusOK
	}
	return bw.code
}

func (bw *bufferedWriter) flush() {
	bw.ResponseWriter.WriteHeader(bw.status())
	_, _ = bw.ResponseWriter.Write(bw.body.Bytes())
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

type hooksContextKey struct{}

var hooksKey = hooksContextKey{}

type commitHooks struct {
	fns []func(ctx context.Context)
}

func (h *commitHooks) run(ctx context.Context) {
	for _, fn := range h.fns {
		fn(ctx)
	}
}

// AfterCommit defers fn until the request transaction in ctx has committed.
// fn is dropped when the transaction rolls back. Without a request transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	if hooks, ok := ctx.Value(hooksKey).(*commitHooks); ok {
		hooks.fns = append(hooks.fns, fn)
		return
	}
	fn(ctx)
}
