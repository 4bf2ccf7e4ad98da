package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/artikel-backend/internal/domain"
)

// uniqueSuffix keeps seeded words from colliding across tests sharing the DB.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedNoun inserts a noun whose word starts with prefix.
func SeedNoun(t *testing.T, pool *pgxpool.Pool, prefix string, article domain.Article, category *string) domain.Noun {
	t.Helper()

	n := domain.Noun{
		ID:          uuid.New(),
		Word:        prefix + "-" + uniqueSuffix(),
		Article:     article,
		Translation: "translation of " + prefix,
		Examples:    []string{},
		Category:    category,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO nouns (id, word, article, translation, examples, category, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		n.ID, n.Word, string(n.Article), n.Translation, n.Examples, n.Category, n.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedNoun: %v", err)
	}
	return n
}

// SeedCompletedSession inserts a completed session for userID created at
// createdAt with the given accuracy.
func SeedCompletedSession(t *testing.T, pool *pgxpool.Pool, userID string, createdAt time.Time, accuracy int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO practice_sessions
		    (id, user_id, status, total_questions, seconds_per_question,
		     correct_answers, accuracy, timeouts, fastest_ms, average_ms,
		     started_at, completed_at, created_at)
		 VALUES ($1, $2, 'COMPLETED', 10, 5, $3, $4, 0, 900, 1500, $5, $5, $5)`,
		id, userID, accuracy/10, accuracy, createdAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompletedSession: %v", err)
	}
	return id
}

// UniqueUserID returns a user identifier not used by other tests.
func UniqueUserID() string {
	return "user_" + uniqueSuffix()
}
