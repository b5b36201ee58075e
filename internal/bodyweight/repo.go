package bodyweight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/ascend/internal/db"
	"github.com/2beens/ascend/internal/telemetry/tracing"
	"github.com/2beens/ascend/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db db.Querier
}

func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, entry *Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", entry.UserID))

	if err := r.db.QueryRow(ctx, `
		INSERT INTO weight_entry (user_id, weight, date) VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, entry.UserID, entry.Weight, entry.Date.Time).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return fmt.Errorf("insert weight entry: %w", err)
	}

	return nil
}

// List returns entries newest first.
func (r *Repo) List(ctx context.Context, userID int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, weight, date, created_at
		FROM weight_entry
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query weight entries: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *Repo) Latest(ctx context.Context, userID int) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.bodyweight.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	entry, err := scanEntry(r.db.QueryRow(ctx, `
		SELECT id, user_id, weight, date, created_at
		FROM weight_entry
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
		LIMIT 1
	`, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoEntries
	}
	if err != nil {
		return nil, fmt.Errorf("latest weight entry: %w", err)
	}

	return entry, nil
}

func scanEntry(row pgx.Row) (*Entry, error) {
	entry := &Entry{}
	var date time.Time
	if err := row.Scan(&entry.ID, &entry.UserID, &entry.Weight, &date, &entry.CreatedAt); err != nil {
		return nil, err
	}
	entry.Date = pkg.NewDate(date)
	return entry, nil
}
