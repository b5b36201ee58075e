package records

import (
	"context"
	"errors"
	"fmt"
	"sort"
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

// NewRepo works on a pool or on a transaction. GetOrCreateForUpdate and Apply
// only make sense inside a transaction, the row lock is released on commit.
func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner, withName bool) (*ExerciseRecord, error) {
	rec := &ExerciseRecord{}
	var dateOfPR *time.Time
	dest := []any{&rec.ID, &rec.UserID, &rec.ExerciseID, &rec.PersonalRecord, &dateOfPR, &rec.LifetimeReps}
	if withName {
		dest = append(dest, &rec.ExerciseName)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if dateOfPR != nil {
		d := pkg.NewDate(*dateOfPR)
		rec.DateOfPR = &d
	}
	return rec, nil
}

// GetOrCreateForUpdate returns the record of the pair, inserting a fresh one when
// missing, and holds its row lock until the surrounding transaction ends.
func (r *Repo) GetOrCreateForUpdate(ctx context.Context, userID, exerciseID int) (_ *ExerciseRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.getOrCreateForUpdate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("exercise.id", exerciseID),
	)

	if _, err := r.db.Exec(ctx, `
		INSERT INTO exercise_record (user_id, exercise_id) VALUES ($1, $2)
		ON CONFLICT (user_id, exercise_id) DO NOTHING
	`, userID, exerciseID); err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}

	rec, err := scanRecord(r.db.QueryRow(ctx, `
		SELECT id, user_id, exercise_id, personal_record, date_of_pr, lifetime_reps
		FROM exercise_record
		WHERE user_id = $1 AND exercise_id = $2
		FOR UPDATE
	`, userID, exerciseID), false)
	if err != nil {
		return nil, fmt.Errorf("lock record: %w", err)
	}

	return rec, nil
}

// Apply writes an update, the reps increment is evaluated by the database.
func (r *Repo) Apply(ctx context.Context, update Update) (_ *ExerciseRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.apply")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("record.id", update.RecordID),
		attribute.Int("reps.delta", update.RepsDelta),
		attribute.Bool("new.pr", update.PersonalRecord != nil),
	)

	var dateOfPR *time.Time
	if update.DateOfPR != nil {
		dateOfPR = &update.DateOfPR.Time
	}

	rec, err := scanRecord(r.db.QueryRow(ctx, `
		UPDATE exercise_record
		SET lifetime_reps   = lifetime_reps + $2,
		    personal_record = COALESCE($3, personal_record),
		    date_of_pr      = COALESCE($4, date_of_pr)
		WHERE id = $1
		RETURNING id, user_id, exercise_id, personal_record, date_of_pr, lifetime_reps
	`, update.RecordID, update.RepsDelta, update.PersonalRecord, dateOfPR), false)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update record: %w", err)
	}

	return rec, nil
}

func (r *Repo) Get(ctx context.Context, userID, exerciseID int) (_ *ExerciseRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("exercise.id", exerciseID),
	)

	rec, err := scanRecord(r.db.QueryRow(ctx, `
		SELECT er.id, er.user_id, er.exercise_id, er.personal_record, er.date_of_pr, er.lifetime_reps, e.name
		FROM exercise_record er
			JOIN exercise e ON e.id = er.exercise_id
		WHERE er.user_id = $1 AND er.exercise_id = $2
	`, userID, exerciseID), true)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}

	return rec, nil
}

func (r *Repo) ListForUser(ctx context.Context, userID int) (_ []ExerciseRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.listForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT er.id, er.user_id, er.exercise_id, er.personal_record, er.date_of_pr, er.lifetime_reps, e.name
		FROM exercise_record er
			JOIN exercise e ON e.id = er.exercise_id
		WHERE er.user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []ExerciseRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows, true)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ExerciseName < records[j].ExerciseName
	})

	return records, nil
}
