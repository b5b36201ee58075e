package workout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/ascend/internal/catalog"
	"github.com/2beens/ascend/internal/db"
	"github.com/2beens/ascend/internal/telemetry/tracing"
	"github.com/2beens/ascend/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db      db.Querier
	catalog *catalog.Repo
}

func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db:      db,
		catalog: catalog.NewRepo(db),
	}
}

// InsertSession stores the session row and fills in its ID and CreatedAt.
func (r *Repo) InsertSession(ctx context.Context, session *Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.insertSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", session.UserID))

	var elapsedSeconds *int64
	if session.ElapsedTime != nil {
		secs := int64(session.ElapsedTime.Duration() / time.Second)
		elapsedSeconds = &secs
	}

	if err := r.db.QueryRow(ctx, `
		INSERT INTO workout_session (user_id, name, date, elapsed_seconds, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`,
		session.UserID, session.Name, session.Date.Time, elapsedSeconds, session.Comment,
	).Scan(&session.ID, &session.CreatedAt); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

// InsertSet stores one set of the session and fills in its ID.
func (r *Repo) InsertSet(ctx context.Context, sessionID int, set *Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.insertSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("session.id", sessionID),
		attribute.Int("exercise.id", set.Exercise.ID),
	)

	if err := r.db.QueryRow(ctx, `
		INSERT INTO workout_exercise (session_id, exercise_id, position, reps, weight)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		sessionID, set.Exercise.ID, set.Position, set.Reps, set.Weight,
	).Scan(&set.ID); err != nil {
		return fmt.Errorf("insert set: %w", err)
	}

	return nil
}

const sessionColumns = `id, user_id, name, date, elapsed_seconds, comment, created_at`

func scanSession(row pgx.Row) (*Session, error) {
	s := &Session{}
	var date time.Time
	var elapsedSeconds *int64
	if err := row.Scan(&s.ID, &s.UserID, &s.Name, &date, &elapsedSeconds, &s.Comment, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.Date = pkg.NewDate(date)
	if elapsedSeconds != nil {
		d := pkg.ClockDuration(time.Duration(*elapsedSeconds) * time.Second)
		s.ElapsedTime = &d
	}
	return s, nil
}

func (r *Repo) GetSession(ctx context.Context, userID, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.getSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("session.id", id),
	)

	session, err := scanSession(r.db.QueryRow(ctx, `
		SELECT `+sessionColumns+`
		FROM workout_session
		WHERE id = $1 AND user_id = $2
	`, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	sets, err := r.setsForSessions(ctx, []int{session.ID})
	if err != nil {
		return nil, err
	}
	session.WorkoutSets = setsOrEmpty(sets[session.ID])

	return session, nil
}

// ListSessions returns the user's sessions, newest first.
func (r *Repo) ListSessions(ctx context.Context, userID int) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workout.listSessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT `+sessionColumns+`
		FROM workout_session
		WHERE user_id = $1
		ORDER BY date DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []Session{}
	var ids []int
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sessions = append(sessions, *s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sets, err := r.setsForSessions(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range sessions {
		sessions[i].WorkoutSets = setsOrEmpty(sets[sessions[i].ID])
	}

	return sessions, nil
}

func (r *Repo) setsForSessions(ctx context.Context, sessionIDs []int) (map[int][]Set, error) {
	result := make(map[int][]Set, len(sessionIDs))
	if len(sessionIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT we.session_id, we.id, we.position, we.reps, we.weight, e.id, e.name, e.description
		FROM workout_exercise we
			JOIN exercise e ON e.id = we.exercise_id
		WHERE we.session_id = ANY($1)
		ORDER BY we.session_id, we.position
	`, sessionIDs)
	if err != nil {
		return nil, fmt.Errorf("query sets: %w", err)
	}
	defer rows.Close()

	exerciseIDs := map[int]struct{}{}
	for rows.Next() {
		var sessionID int
		var set Set
		if err := rows.Scan(
			&sessionID, &set.ID, &set.Position, &set.Reps, &set.Weight,
			&set.Exercise.ID, &set.Exercise.Name, &set.Exercise.Description,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		result[sessionID] = append(result[sessionID], set)
		exerciseIDs[set.Exercise.ID] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ids := make([]int, 0, len(exerciseIDs))
	for id := range exerciseIDs {
		ids = append(ids, id)
	}
	tags, err := r.catalog.TagsForExercises(ctx, ids)
	if err != nil {
		return nil, err
	}
	for sessionID, sets := range result {
		for i := range sets {
			sets[i].Exercise.Tags = tags[sets[i].Exercise.ID]
			if sets[i].Exercise.Tags == nil {
				sets[i].Exercise.Tags = []catalog.Tag{}
			}
		}
		result[sessionID] = sets
	}

	return result, nil
}

func setsOrEmpty(sets []Set) []Set {
	if sets == nil {
		return []Set{}
	}
	return sets
}
