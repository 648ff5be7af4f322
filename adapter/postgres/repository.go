package postgres

import (
	"context"
	"database/sql"

	"newswire/domain"
)

type Repository struct{ db *sql.DB }

func New(db *sql.DB) *Repository { return &Repository{db: db} }

func (r *Repository) Ensure(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
CREATE EXTENSION IF NOT EXISTS pgcrypto;
CREATE TABLE IF NOT EXISTS news_articles (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    country TEXT NOT NULL,
    source TEXT NOT NULL,
    title TEXT NOT NULL,
    link TEXT UNIQUE NOT NULL,
    summary TEXT NOT NULL DEFAULT '',
    published_at TIMESTAMP,
    language TEXT NOT NULL DEFAULT 'unknown',
    age TEXT NOT NULL DEFAULT 'Unknown',
    fetched_at TIMESTAMP NOT NULL DEFAULT now()
);
`)
	return err
}

func (r *Repository) HasLink(ctx context.Context, link string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM news_articles WHERE link = $1)`, link).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// InsertArticle relies on the UNIQUE constraint on link: a duplicate is
// silently skipped and the first stored row wins.
func (r *Repository) InsertArticle(ctx context.Context, a domain.Article) (bool, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO news_articles
 (id, country, source, title, link, summary, published_at, language, age, fetched_at)
 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
 ON CONFLICT (link) DO NOTHING`,
		a.ID, a.Country, a.Source, a.Title, a.Link, a.Summary, a.PublishedAt, a.Language, a.Age, a.FetchedAt)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Repository) ListArticles(ctx context.Context, country string, limit int) ([]domain.Article, error) {
	q := `SELECT id, country, source, title, link, summary, published_at, language, age, fetched_at
 FROM news_articles`
	args := []any{}
	if country != "" {
		q += ` WHERE country = $1`
		args = append(args, country)
	}
	q += ` ORDER BY COALESCE(published_at, fetched_at) DESC, fetched_at DESC`
	if limit > 0 {
		args = append(args, limit)
		if country != "" {
			q += ` LIMIT $2`
		} else {
			q += ` LIMIT $1`
		}
	}
	return scanArticles(r.db.QueryContext(ctx, q, args...))
}

func (r *Repository) CountByCountry(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT country, COUNT(*) FROM news_articles GROUP BY country`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := make(map[string]int)
	for rows.Next() {
		var country string
		var n int
		if err := rows.Scan(&country, &n); err != nil {
			return nil, err
		}
		counts[country] = n
	}
	return counts, rows.Err()
}

func scanArticles(rows *sql.Rows, err error) ([]domain.Article, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []domain.Article
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(&a.ID, &a.Country, &a.Source, &a.Title, &a.Link,
			&a.Summary, &a.PublishedAt, &a.Language, &a.Age, &a.FetchedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
