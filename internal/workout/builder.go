package workout

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/ascend/internal/catalog"
	"github.com/2beens/ascend/internal/db"
	"github.com/2beens/ascend/internal/records"
	"github.com/2beens/ascend/internal/telemetry/metrics"
	"github.com/2beens/ascend/internal/telemetry/tracing"
	"github.com/2beens/ascend/internal/users"
	"github.com/2beens/ascend/internal/validation"
	"github.com/2beens/ascend/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=builder_mocks_test.go -package=workout_test

type CatalogResolver interface {
	ResolveExercises(ctx context.Context, inputs []catalog.ExerciseInput) (map[string]*catalog.Exercise, error)
}

type SessionWriter interface {
	InsertSession(ctx context.Context, session *Session) error
	InsertSet(ctx context.Context, sessionID int, set *Set) error
}

type RecordUpdater interface {
	LockRecords(ctx context.Context, userID int, exerciseIDs []int) (map[int]*records.ExerciseRecord, error)
	ApplyEntry(ctx context.Context, entry records.Entry) (*records.ExerciseRecord, bool, error)
}

type LifetimeRecorder interface {
	AddWeightLifted(ctx context.Context, userID int, volume decimal.Decimal) error
}

// UnitOfWork groups the writers bound to one transaction.
type UnitOfWork struct {
	Catalog  CatalogResolver
	Sessions SessionWriter
	Records  RecordUpdater
	Users    LifetimeRecorder
}

type Transactor interface {
	InTx(ctx context.Context, fn func(uow UnitOfWork) error) error
}

// PgTransactor hands out repos bound to a fresh postgres transaction.
type PgTransactor struct {
	db db.TxBeginner
}

func NewPgTransactor(db db.TxBeginner) *PgTransactor {
	return &PgTransactor{
		db: db,
	}
}

func (t *PgTransactor) InTx(ctx context.Context, fn func(uow UnitOfWork) error) error {
	return db.WithTx(ctx, t.db, func(tx pgx.Tx) error {
		return fn(UnitOfWork{
			Catalog:  catalog.NewRepo(tx),
			Sessions: NewRepo(tx),
			Records:  records.NewUpdater(records.NewRepo(tx)),
			Users:    users.NewRepo(tx),
		})
	})
}

// Builder persists workout sessions together with their record updates.
type Builder struct {
	transactor     Transactor
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewBuilder(transactor Transactor, metricsManager *metrics.Manager) *Builder {
	return &Builder{
		transactor:     transactor,
		metricsManager: metricsManager,
		now:            time.Now,
	}
}

// CreateSession validates the request and stores the session, its sets, the
// affected exercise records and the user's lifetime total in one transaction. Nothing is written unless all
// of it succeeds.
func (b *Builder) CreateSession(ctx context.Context, userID int, req NewSessionRequest) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "workout.builder.createSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("sets", len(req.WorkoutSets)),
	)

	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	submissionDate := pkg.NewDate(b.now())
	sessionDate := submissionDate
	if req.Date != nil {
		sessionDate = *req.Date
	}

	var created *Session
	newPRs := 0
	err = b.transactor.InTx(ctx, func(uow UnitOfWork) error {
		newPRs = 0
		volume := decimal.Zero

		exercises, err := uow.Catalog.ResolveExercises(ctx, req.exerciseInputs())
		if err != nil {
			return fmt.Errorf("resolve exercises: %w", err)
		}

		session := &Session{
			UserID:      userID,
			Name:        req.Name,
			Date:        sessionDate,
			ElapsedTime: req.ElapsedTime,
			Comment:     req.Comment,
			WorkoutSets: make([]Set, 0, len(req.WorkoutSets)),
		}
		if err := uow.Sessions.InsertSession(ctx, session); err != nil {
			return err
		}

		exerciseIDs := make([]int, 0, len(exercises))
		for _, ex := range exercises {
			exerciseIDs = append(exerciseIDs, ex.ID)
		}
		if _, err := uow.Records.LockRecords(ctx, userID, exerciseIDs); err != nil {
			return err
		}

		for i, setReq := range req.WorkoutSets {
			ex, ok := exercises[setReq.Exercise.Name]
			if !ok {
				return fmt.Errorf("exercise %q not resolved", setReq.Exercise.Name)
			}

			set := Set{
				Position: i,
				Exercise: *ex,
				Reps:     *setReq.Reps,
			}
			if setReq.Weight != nil {
				// stored with one decimal place
				w := setReq.Weight.Round(1)
				set.Weight = &w
			}

			if err := uow.Sessions.InsertSet(ctx, session.ID, &set); err != nil {
				return err
			}

			_, newPR, err := uow.Records.ApplyEntry(ctx, records.Entry{
				UserID:         userID,
				ExerciseID:     ex.ID,
				Reps:           set.Reps,
				Weight:         set.Weight,
				SubmissionDate: submissionDate,
			})
			if err != nil {
				return err
			}
			set.NewPersonalRecord = newPR
			if newPR {
				newPRs++
			}

			session.WorkoutSets = append(session.WorkoutSets, set)
			volume = volume.Add(set.Volume())
		}

		if volume.IsPositive() {
			if err := uow.Users.AddWeightLifted(ctx, userID, volume); err != nil {
				return fmt.Errorf("add weight lifted: %w", err)
			}
		}

		created = session
		return nil
	})
	if err != nil {
		return nil, err
	}

	if b.metricsManager != nil {
		b.metricsManager.CounterSessionsCreated.Inc()
		b.metricsManager.CounterSetsLogged.Add(float64(len(created.WorkoutSets)))
		b.metricsManager.CounterPersonalRecords.Add(float64(newPRs))
		b.metricsManager.HistSessionSize.Observe(float64(len(created.WorkoutSets)))
	}
	log.Debugf("user %d created session %d with %d sets, %d new PRs", userID, created.ID, len(created.WorkoutSets), newPRs)

	return created, nil
}
