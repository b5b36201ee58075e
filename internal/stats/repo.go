package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/ascend/internal/db"
	"github.com/2beens/ascend/internal/telemetry/tracing"
	"github.com/2beens/ascend/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

// Repo runs the read-only aggregation queries. Every query takes the first day
// of the window, sessions dated on or after it are included.
type Repo struct {
	db db.Querier
}

func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) TotalVolume(ctx context.Context, userID int, since time.Time) (_ decimal.Decimal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.totalVolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var volume decimal.Decimal
	if err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(we.reps * we.weight), 0)
		FROM workout_exercise we
			JOIN workout_session ws ON ws.id = we.session_id
		WHERE ws.user_id = $1 AND ws.date >= $2
	`, userID, since).Scan(&volume); err != nil {
		return decimal.Zero, fmt.Errorf("query volume: %w", err)
	}

	return volume, nil
}

// MuscleGroupsSince returns distinct tag names of exercises the user logged.
func (r *Repo) MuscleGroupsSince(ctx context.Context, userID int, since time.Time) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.muscleGroupsSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return r.collectNames(ctx, `
		SELECT DISTINCT t.name
		FROM workout_session ws
			JOIN workout_exercise we ON we.session_id = ws.id
			JOIN exercise_tag et ON et.exercise_id = we.exercise_id
			JOIN tag t ON t.id = et.tag_id
		WHERE ws.user_id = $1 AND ws.date >= $2
	`, userID, since)
}

// ExerciseNamesSince returns distinct names of exercises the user logged.
func (r *Repo) ExerciseNamesSince(ctx context.Context, userID int, since time.Time) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.exerciseNamesSince")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	return r.collectNames(ctx, `
		SELECT DISTINCT e.name
		FROM workout_session ws
			JOIN workout_exercise we ON we.session_id = ws.id
			JOIN exercise e ON e.id = we.exercise_id
		WHERE ws.user_id = $1 AND ws.date >= $2
	`, userID, since)
}

func (r *Repo) collectNames(ctx context.Context, sql string, args ...any) ([]string, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query names: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect names: %w", err)
	}
	return names, nil
}

// WeeklyVolume sums volume per calendar week (weeks start on monday).
func (r *Repo) WeeklyVolume(ctx context.Context, userID int, since time.Time) (_ []WeekVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.stats.weeklyVolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT date_trunc('week', ws.date)::date AS week, COALESCE(SUM(we.reps * we.weight), 0)
		FROM workout_session ws
			JOIN workout_exercise we ON we.session_id = ws.id
		WHERE ws.user_id = $1 AND ws.date >= $2
		GROUP BY week
		ORDER BY week
	`, userID, since)
	if err != nil {
		return nil, fmt.Errorf("query weekly volume: %w", err)
	}
	defer rows.Close()

	weeks := []WeekVolume{}
	for rows.Next() {
		var week time.Time
		var volume decimal.Decimal
		if err := rows.Scan(&week, &volume); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		weeks = append(weeks, WeekVolume{WeekStart: pkg.NewDate(week), Volume: volume})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return weeks, nil
}
