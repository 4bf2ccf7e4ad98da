//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	nounrepo "github.com/heartmarshall/artikel-backend/internal/adapter/postgres/noun"
	sessionrepo "github.com/heartmarshall/artikel-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/artikel-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/artikel-backend/internal/auth"
	"github.com/heartmarshall/artikel-backend/internal/config"
	"github.com/heartmarshall/artikel-backend/internal/service/dashboard"
	"github.com/heartmarshall/artikel-backend/internal/service/noun"
	"github.com/heartmarshall/artikel-backend/internal/service/practice"
	"github.com/heartmarshall/artikel-backend/internal/transport/middleware"
	"github.com/heartmarshall/artikel-backend/internal/transport/rest"
)

const (
	jwtSecret = "e2e-secret-at-least-32-characters-long"
	jwtIssuer = "artikel-e2e"
)

// testServer wraps the full HTTP stack backed by a real PostgreSQL container.
type testServer struct {
	URL      string
	Client   *http.Client
	Pool     *pgxpool.Pool
	Clock    *clockwork.FakeClock
	Practice *practice.Service
	verifier *auth.TokenVerifier
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))
	clock := clockwork.NewFakeClockAt(time.Now().UTC())

	nouns := nounrepo.New(pool)
	sessions := sessionrepo.New(pool)

	practiceSvc := practice.NewService(logger, nouns, sessions, clock, nil, practice.Limits{
		DefaultQuestionCount:      10,
		DefaultSecondsPerQuestion: 5,
		MaxQuestionCount:          50,
		MaxSecondsPerQuestion:     60,
	})
	dashboardSvc := dashboard.NewService(logger, sessions, clock, time.UTC, dashboard.Options{
		TrendDays:      30,
		HeatmapMonths:  3,
		RecentSessions: 5,
	})
	nounSvc := noun.NewService(logger, nouns)

	verifier := auth.NewTokenVerifier(jwtSecret, jwtIssuer, clock)
	limiter := middleware.NewMemoryCounterStore(clock, 6000, 1000, time.Minute)

	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, practiceSvc, clock, "e2e"),
		Practice:  rest.NewPracticeHandler(practiceSvc, logger),
		Dashboard: rest.NewDashboardHandler(dashboardSvc, logger),
		Noun:      rest.NewNounHandler(nounSvc, logger),
	}, middleware.Chain(
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         60,
		}),
		middleware.RateLimit(limiter),
		middleware.Auth(verifier),
	))

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		practiceSvc.Shutdown(context.Background())
		srv.Close()
	})

	return &testServer{
		URL:      srv.URL,
		Client:   srv.Client(),
		Pool:     pool,
		Clock:    clock,
		Practice: practiceSvc,
		verifier: verifier,
	}
}

// tokenFor mints a bearer token for userID.
func (ts *testServer) tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := ts.verifier.IssueToken(userID, time.Hour)
	require.NoError(t, err)
	return token
}

// do sends a JSON request and decodes a JSON response into out when out is
// non-nil. It returns the status code.
func (ts *testServer) do(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// ---------------------------------------------------------------------------
// Response shapes, decoded loosely.
// ---------------------------------------------------------------------------

type question struct {
	Position int    `json:"position"`
	NounID   string `json:"nounId"`
	Word     string `json:"word"`
}

type answer struct {
	Position  int     `json:"position"`
	NounID    string  `json:"nounId"`
	Submitted *string `json:"submitted"`
	Correct   bool    `json:"correct"`
	TimedOut  bool    `json:"timedOut"`
	LatencyMs int64   `json:"latencyMs"`
}

type result struct {
	Total     int    `json:"total"`
	Correct   int    `json:"correct"`
	Accuracy  int    `json:"accuracy"`
	Timeouts  int    `json:"timeouts"`
	FastestMs *int64 `json:"fastestMs"`
	AverageMs *int64 `json:"averageMs"`
}

type session struct {
	ID           string    `json:"id"`
	Status       string    `json:"status"`
	Position     int       `json:"position"`
	Total        int       `json:"total"`
	Current      *question `json:"current"`
	Answers      []answer  `json:"answers"`
	Result       *result   `json:"result"`
	ResultSynced bool      `json:"resultSynced"`
}

type answerRequest struct {
	Position int    `json:"position"`
	Article  string `json:"article"`
}

type submitted struct {
	Answer         answer    `json:"answer"`
	CorrectArticle string    `json:"correctArticle"`
	Next           *question `json:"next"`
	Completed      bool      `json:"completed"`
	Result         *result   `json:"result"`
	ResultSynced   bool      `json:"resultSynced"`
}

type nounBody struct {
	ID      string `json:"id"`
	Word    string `json:"word"`
	Article string `json:"article"`
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// articleOf looks up the correct article of a question through the noun API.
func (ts *testServer) articleOf(t *testing.T, token, nounID string) string {
	t.Helper()
	var n nounBody
	status := ts.do(t, http.MethodGet, "/api/nouns/"+nounID, token, nil, &n)
	require.Equal(t, http.StatusOK, status)
	return n.Article
}

// wrongArticle returns an article different from a.
func wrongArticle(a string) string {
	if a == "der" {
		return "die"
	}
	return "der"
}
