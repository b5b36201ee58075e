package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/2beens/ascend/internal/db"
	"github.com/2beens/ascend/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db db.Querier
}

// NewRepo works on a pool or on a transaction.
func NewRepo(db db.Querier) *Repo {
	return &Repo{
		db: db,
	}
}

// ResolveTag returns the tag with the exact given name, creating it when missing.
// A concurrent insert of the same name resolves to the row that won.
func (r *Repo) ResolveTag(ctx context.Context, name string) (_ *Tag, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.resolveTag")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("tag.name", name))

	tag := &Tag{Name: name}
	err = r.db.QueryRow(ctx, `
		INSERT INTO tag (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id
	`, name).Scan(&tag.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = r.db.QueryRow(ctx, `SELECT id FROM tag WHERE name = $1`, name).Scan(&tag.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve tag %q: %w", name, err)
	}

	return tag, nil
}

// ResolveExercise returns the exercise with the given name, creating it and any
// missing tags on demand, and links the given tags to it.
func (r *Repo) ResolveExercise(ctx context.Context, input ExerciseInput) (*Exercise, error) {
	resolved, err := r.ResolveExercises(ctx, []ExerciseInput{input})
	if err != nil {
		return nil, err
	}
	return resolved[input.Name], nil
}

// ResolveExercises resolves a batch keyed by exercise name. Tags, exercises and
// links are written in sorted order so concurrent batches take row locks in the same order.
// Inputs sharing a name are merged: tags are united and the first non-nil description wins.
func (r *Repo) ResolveExercises(ctx context.Context, inputs []ExerciseInput) (_ map[string]*Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.resolveExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("inputs", len(inputs)))

	merged := MergeInputs(inputs)

	tagNames := make(map[string]struct{})
	for _, in := range merged {
		for _, t := range in.Tags {
			tagNames[t] = struct{}{}
		}
	}
	tagsByName := make(map[string]*Tag, len(tagNames))
	for _, name := range sortedKeys(tagNames) {
		tag, err := r.ResolveTag(ctx, name)
		if err != nil {
			return nil, err
		}
		tagsByName[name] = tag
	}

	resolved := make(map[string]*Exercise, len(merged))
	ids := make([]int, 0, len(merged))
	for _, in := range merged {
		ex, err := r.resolveExerciseRow(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, tagName := range in.Tags {
			if _, err := r.db.Exec(ctx, `
				INSERT INTO exercise_tag (exercise_id, tag_id) VALUES ($1, $2)
				ON CONFLICT DO NOTHING
			`, ex.ID, tagsByName[tagName].ID); err != nil {
				return nil, fmt.Errorf("link exercise %d to tag %q: %w", ex.ID, tagName, err)
			}
		}
		resolved[ex.Name] = ex
		ids = append(ids, ex.ID)
	}

	tags, err := r.TagsForExercises(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, ex := range resolved {
		ex.Tags = tagsOrEmpty(tags[ex.ID])
	}

	return resolved, nil
}

func (r *Repo) resolveExerciseRow(ctx context.Context, in ExerciseInput) (*Exercise, error) {
	ex := &Exercise{}
	err := r.db.QueryRow(ctx, `
		INSERT INTO exercise (name, description) VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name, description
	`, in.Name, in.Description).Scan(&ex.ID, &ex.Name, &ex.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		err = r.db.QueryRow(ctx, `
			SELECT id, name, description FROM exercise WHERE name = $1
		`, in.Name).Scan(&ex.ID, &ex.Name, &ex.Description)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve exercise %q: %w", in.Name, err)
	}
	return ex, nil
}

func (r *Repo) GetExercise(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.getExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	ex := &Exercise{}
	err = r.db.QueryRow(ctx, `
		SELECT id, name, description FROM exercise WHERE id = $1
	`, id).Scan(&ex.ID, &ex.Name, &ex.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrExerciseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}

	tags, err := r.TagsForExercises(ctx, []int{id})
	if err != nil {
		return nil, err
	}
	ex.Tags = tagsOrEmpty(tags[id])

	return ex, nil
}

func (r *Repo) ListExercises(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.listExercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT id, name, description FROM exercise`)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}
	defer rows.Close()

	var exercises []Exercise
	var ids []int
	for rows.Next() {
		var ex Exercise
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.Description); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercises = append(exercises, ex)
		ids = append(ids, ex.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tags, err := r.TagsForExercises(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range exercises {
		exercises[i].Tags = tagsOrEmpty(tags[exercises[i].ID])
	}

	sort.Slice(exercises, func(i, j int) bool {
		return exercises[i].Name < exercises[j].Name
	})
	span.SetAttributes(attribute.Int("count", len(exercises)))

	return exercises, nil
}

// ExerciseNamesByTag returns the sorted names of exercises tagged with the given
// tag, matching the tag name case-insensitively.
func (r *Repo) ExerciseNamesByTag(ctx context.Context, tag string) (_ []string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.exerciseNamesByTag")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("tag", tag))

	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT e.name
		FROM exercise e
			JOIN exercise_tag et ON et.exercise_id = e.id
			JOIN tag t ON t.id = et.tag_id
		WHERE lower(t.name) = lower($1)
	`, tag)
	if err != nil {
		return nil, fmt.Errorf("query exercises by tag: %w", err)
	}

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect exercise names: %w", err)
	}
	sort.Strings(names)

	return names, nil
}

// TagsForExercises loads sorted tags keyed by exercise id.
func (r *Repo) TagsForExercises(ctx context.Context, exerciseIDs []int) (map[int][]Tag, error) {
	result := make(map[int][]Tag, len(exerciseIDs))
	if len(exerciseIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT et.exercise_id, t.id, t.name
		FROM exercise_tag et
			JOIN tag t ON t.id = et.tag_id
		WHERE et.exercise_id = ANY($1)
	`, exerciseIDs)
	if err != nil {
		return nil, fmt.Errorf("query exercise tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var exerciseID int
		var tag Tag
		if err := rows.Scan(&exerciseID, &tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		result[exerciseID] = append(result[exerciseID], tag)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for id := range result {
		SortTags(result[id])
	}
	return result, nil
}
