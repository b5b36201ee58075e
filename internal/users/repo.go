package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/ascend/internal/catalog"
	"github.com/2beens/ascend/internal/db"
	"github.com/2beens/ascend/internal/telemetry/tracing"
	"github.com/2beens/ascend/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
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

const userColumns = `id, username, email, first_name, last_name, user_weight, user_height,
	user_gender, lifetime_weight_lifted, password_hash, created_at`

// Create stores the user and fills in its ID and CreatedAt.
func (r *Repo) Create(ctx context.Context, user *User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.QueryRow(ctx, `
		INSERT INTO app_user (username, password_hash, email, first_name, last_name, user_weight, user_height, user_gender)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, lifetime_weight_lifted, created_at
	`,
		user.Username, user.PasswordHash, user.Email, user.FirstName, user.LastName,
		user.Weight, user.Height, user.Gender,
	).Scan(&user.ID, &user.LifetimeWeightLifted, &user.CreatedAt); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM app_user WHERE username = $1`, username))
}

func (r *Repo) GetByID(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", id))

	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM app_user WHERE id = $1`, id))
}

// UpdateProfile overwrites the profile fields present in req and returns the
// updated user.
func (r *Repo) UpdateProfile(ctx context.Context, id int, req UpdateProfileRequest) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", id))

	return scanUser(r.db.QueryRow(ctx, `
		UPDATE app_user SET
			email       = COALESCE($2, email),
			first_name  = COALESCE($3, first_name),
			last_name   = COALESCE($4, last_name),
			user_weight = COALESCE($5, user_weight),
			user_height = COALESCE($6, user_height),
			user_gender = COALESCE($7, user_gender)
		WHERE id = $1
		RETURNING `+userColumns,
		id, req.Email, req.FirstName, req.LastName, req.Weight, req.Height, req.Gender,
	))
}

// AddWeightLifted increments the lifetime total in place, so concurrent
// sessions of the same user never lose an update.
func (r *Repo) AddWeightLifted(ctx context.Context, userID int, volume decimal.Decimal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.addWeightLifted")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	tag, err := r.db.Exec(ctx, `
		UPDATE app_user SET lifetime_weight_lifted = lifetime_weight_lifted + $2 WHERE id = $1
	`, userID, volume)
	if err != nil {
		return fmt.Errorf("add weight lifted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}

func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.FirstName, &user.LastName,
		&user.Weight, &user.Height, &user.Gender, &user.LifetimeWeightLifted,
		&user.PasswordHash, &user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

func (r *Repo) Exists(ctx context.Context, id int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", id))

	var exists bool
	if err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM app_user WHERE id = $1)
	`, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}

	return exists, nil
}

func (r *Repo) AddFavorite(ctx context.Context, userID, exerciseID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.addFavorite")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("exercise.id", exerciseID),
	)

	tag, err := r.db.Exec(ctx, `
		INSERT INTO user_favorite_exercise (user_id, exercise_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, userID, exerciseID)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return catalog.ErrExerciseNotFound
		}
		return fmt.Errorf("add favorite: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFavoriteExists
	}

	return nil
}

// RemoveFavorite reports whether the exercise was a favorite.
func (r *Repo) RemoveFavorite(ctx context.Context, userID, exerciseID int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.removeFavorite")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("exercise.id", exerciseID),
	)

	tag, err := r.db.Exec(ctx, `
		DELETE FROM user_favorite_exercise WHERE user_id = $1 AND exercise_id = $2
	`, userID, exerciseID)
	if err != nil {
		return false, fmt.Errorf("remove favorite: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repo) ListFavorites(ctx context.Context, userID int) (_ []catalog.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.listFavorites")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.name, e.description
		FROM user_favorite_exercise f
			JOIN exercise e ON e.id = f.exercise_id
		WHERE f.user_id = $1
		ORDER BY e.name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	defer rows.Close()

	favorites := []catalog.Exercise{}
	var ids []int
	for rows.Next() {
		var ex catalog.Exercise
		if err := rows.Scan(&ex.ID, &ex.Name, &ex.Description); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		favorites = append(favorites, ex)
		ids = append(ids, ex.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tags, err := r.catalog.TagsForExercises(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range favorites {
		favorites[i].Tags = tags[favorites[i].ID]
		if favorites[i].Tags == nil {
			favorites[i].Tags = []catalog.Tag{}
		}
	}

	return favorites, nil
}
