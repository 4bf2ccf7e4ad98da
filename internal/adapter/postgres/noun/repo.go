// Package noun implements the noun catalog repository using PostgreSQL.
// Fixed queries are raw SQL; the filtered listing is built with squirrel.
package noun

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/artikel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/artikel-backend/internal/domain"
)

// Repo provides noun persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new noun repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const nounColumns = `id, word, article, translation, rule, examples, category, created_at`

const fetchPoolSQL = `
SELECT ` + nounColumns + `
FROM nouns
ORDER BY word`

const getByIDSQL = `
SELECT ` + nounColumns + `
FROM nouns
WHERE id = $1`

const categoriesSQL = `
SELECT DISTINCT category
FROM nouns
WHERE category IS NOT NULL AND category <> ''
ORDER BY category`

const upsertSQL = `
INSERT INTO nouns (id, word, article, translation, rule, examples, category)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (word, article) DO UPDATE
SET translation = EXCLUDED.translation,
    rule        = EXCLUDED.rule,
    examples    = EXCLUDED.examples,
    category    = EXCLUDED.category`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// FetchPool returns every noun, ordered by word.
func (r *Repo) FetchPool(ctx context.Context) ([]domain.Noun, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, fetchPoolSQL)
	if err != nil {
		return nil, fmt.Errorf("fetch noun pool: %w", err)
	}
	defer rows.Close()

	nouns, err := scanNouns(rows)
	if err != nil {
		return nil, fmt.Errorf("fetch noun pool: %w", err)
	}
	return nouns, nil
}

// GetByID returns a noun by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Noun, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	n, err := scanNoun(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "noun", id)
	}
	return n, nil
}

// List returns one page of nouns matching filter, ordered by word, and the
// total number of matches.
func (r *Repo) List(ctx context.Context, filter domain.NounFilter) ([]domain.Noun, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if filter.Article != nil {
		where = append(where, sq.Eq{"article": string(*filter.Article)})
	}
	if filter.Search != nil {
		where = append(where, sq.ILike{"word": "%" + *filter.Search + "%"})
	}
	if filter.Category != nil {
		where = append(where, sq.Eq{"category": *filter.Category})
	}

	countQuery, countArgs, err := psql.Select("count(*)").From("nouns").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count nouns: %w", err)
	}

	listQuery, listArgs, err := psql.Select(nounColumns).
		From("nouns").
		Where(where).
		OrderBy("word ASC", "id ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list nouns: %w", err)
	}
	defer rows.Close()

	nouns, err := scanNouns(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list nouns: %w", err)
	}
	return nouns, total, nil
}

// Categories returns the distinct non-empty categories.
func (r *Repo) Categories(ctx context.Context) ([]string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, categoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	cats, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if cats == nil {
		cats = []string{}
	}
	return cats, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// UpsertBatch inserts nouns in one round trip; an existing (word, article)
// pair gets its translation, rule, examples and category replaced.
// Returns the number of nouns written.
func (r *Repo) UpsertBatch(ctx context.Context, nouns []domain.Noun) (int, error) {
	if len(nouns) == 0 {
		return 0, nil
	}
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, n := range nouns {
		id := n.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		examples := n.Examples
		if examples == nil {
			examples = []string{}
		}
		batch.Queue(upsertSQL, id, n.Word, string(n.Article), n.Translation, n.Rule, examples, n.Category)
	}

	br := querier.SendBatch(ctx, batch)
	defer br.Close()

	written := 0
	for _, n := range nouns {
		if _, err := br.Exec(); err != nil {
			return written, postgres.MapError(err, "noun", n.Word)
		}
		written++
	}
	return written, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanNoun(row pgx.Row) (*domain.Noun, error) {
	var (
		n         domain.Noun
		article   string
		createdAt time.Time
	)
	if err := row.Scan(&n.ID, &n.Word, &article, &n.Translation, &n.Rule, &n.Examples, &n.Category, &createdAt); err != nil {
		return nil, err
	}
	n.Article = domain.Article(article)
	n.CreatedAt = createdAt
	return &n, nil
}

func scanNouns(rows pgx.Rows) ([]domain.Noun, error) {
	nouns := []domain.Noun{}
	for rows.Next() {
		n, err := scanNoun(rows)
		if err != nil {
			return nil, err
		}
		nouns = append(nouns, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return nouns, nil
}
