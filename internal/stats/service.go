package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/ascend/internal/telemetry/tracing"
	"github.com/2beens/ascend/pkg"

	"github.com/coocood/freecache"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=stats_test

const (
	DefaultWindowDays = 14

	msgMuscleGroupsEmpty      = "Sorry, I don't have recent workout muscle group information for you. Please log some workouts with exercises that have assigned tags (e.g., 'Back', 'Legs') for a more personalized recommendation!"
	msgMuscleGroupsNoUser     = "Sorry, I couldn't find your user profile to get workout muscle groups."
	msgMuscleGroupsFailed     = "An unexpected error occurred while retrieving your workout muscle groups. Please try again later."
	msgExercisesByGroupEmpty  = "Sorry, I couldn't find any exercises for the muscle group '%s'. Please check the spelling or try another muscle group."
	msgExercisesByGroupFailed = "An unexpected error occurred while looking up exercises."
	msgRecentExercisesEmpty   = "I couldn't find any specific exercises logged for you in the last %d days."
	msgRecentExercisesNoUser  = "Sorry, I couldn't find your user profile."
	msgRecentExercisesFailed  = "An unexpected error occurred while retrieving your recent exercises."
)

type statsRepo interface {
	TotalVolume(ctx context.Context, userID int, since time.Time) (decimal.Decimal, error)
	MuscleGroupsSince(ctx context.Context, userID int, since time.Time) ([]string, error)
	ExerciseNamesSince(ctx context.Context, userID int, since time.Time) ([]string, error)
	WeeklyVolume(ctx context.Context, userID int, since time.Time) ([]WeekVolume, error)
}

type exerciseCatalog interface {
	ExerciseNamesByTag(ctx context.Context, tag string) ([]string, error)
}

type userChecker interface {
	Exists(ctx context.Context, userID int) (bool, error)
}

type Service struct {
	repo       statsRepo
	catalog    exerciseCatalog
	users      userChecker
	cache      *freecache.Cache
	cacheTTL   time.Duration
	windowDays int
	now        func() time.Time
}

type NewServiceParams struct {
	Repo       statsRepo
	Catalog    exerciseCatalog
	Users      userChecker
	Cache      *freecache.Cache
	CacheTTL   time.Duration
	WindowDays int
}

func NewService(params NewServiceParams) *Service {
	windowDays := params.WindowDays
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Service{
		repo:       params.Repo,
		catalog:    params.Catalog,
		users:      params.Users,
		cache:      params.Cache,
		cacheTTL:   params.CacheTTL,
		windowDays: windowDays,
		now:        time.Now,
	}
}

func (s *Service) WindowDays() int {
	return s.windowDays
}

// windowStart is the first day included in the rolling window.
func (s *Service) windowStart() time.Time {
	return pkg.NewDate(s.now()).AddDate(0, 0, -s.windowDays)
}

// TotalVolume sums reps times weight over the window. Unknown users and lookup
// failures yield 0.
func (s *Service) TotalVolume(ctx context.Context, userID int) float64 {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.service.totalVolume")
	defer span.End()
	span.SetAttributes(attribute.Int("user.id", userID))

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		log.Errorf("total volume, check user %d: %s", userID, err)
		return 0
	}
	if !exists {
		log.Debugf("total volume, user %d not found", userID)
		return 0
	}

	volume, err := s.repo.TotalVolume(ctx, userID, s.windowStart())
	if err != nil {
		log.Errorf("total volume for user %d: %s", userID, err)
		return 0
	}

	f, _ := volume.Float64()
	return f
}

func (s *Service) DistinctMuscleGroups(ctx context.Context, userID int) Result {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.service.distinctMuscleGroups")
	defer span.End()
	span.SetAttributes(attribute.Int("user.id", userID))

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		log.Errorf("muscle groups, check user %d: %s", userID, err)
		return errorResult(msgMuscleGroupsFailed)
	}
	if !exists {
		return errorResult(msgMuscleGroupsNoUser)
	}

	groups, err := s.repo.MuscleGroupsSince(ctx, userID, s.windowStart())
	if err != nil {
		log.Errorf("muscle groups for user %d: %s", userID, err)
		return errorResult(msgMuscleGroupsFailed)
	}
	if len(groups) == 0 {
		return errorResult(msgMuscleGroupsEmpty)
	}

	sort.Strings(groups)
	return Result{Status: StatusSuccess, Report: groups}
}

func (s *Service) DistinctRecentExercises(ctx context.Context, userID int) Result {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.service.distinctRecentExercises")
	defer span.End()
	span.SetAttributes(attribute.Int("user.id", userID))

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		log.Errorf("recent exercises, check user %d: %s", userID, err)
		return errorResult(msgRecentExercisesFailed)
	}
	if !exists {
		return errorResult(msgRecentExercisesNoUser)
	}

	names, err := s.repo.ExerciseNamesSince(ctx, userID, s.windowStart())
	if err != nil {
		log.Errorf("recent exercises for user %d: %s", userID, err)
		return errorResult(msgRecentExercisesFailed)
	}
	if len(names) == 0 {
		return errorResult(fmt.Sprintf(msgRecentExercisesEmpty, s.windowDays))
	}

	sort.Strings(names)
	return Result{Status: StatusSuccess, Exercises: names}
}

// ExercisesByMuscleGroup lists catalog exercises tagged with the group, matched
// case-insensitively. Hits are cached for the configured TTL.
func (s *Service) ExercisesByMuscleGroup(ctx context.Context, group string) Result {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.service.exercisesByMuscleGroup")
	defer span.End()
	span.SetAttributes(attribute.String("muscle.group", group))

	cacheKey := []byte("exercises-by-group:" + strings.ToLower(group))
	if cached, ok := s.cacheGet(cacheKey); ok {
		span.SetAttributes(attribute.Bool("cache.hit", true))
		return Result{Status: StatusSuccess, Exercises: cached}
	}

	names, err := s.catalog.ExerciseNamesByTag(ctx, group)
	if err != nil {
		log.Errorf("exercises for muscle group %q: %s", group, err)
		return errorResult(msgExercisesByGroupFailed)
	}
	if len(names) == 0 {
		return errorResult(fmt.Sprintf(msgExercisesByGroupEmpty, group))
	}

	sort.Strings(names)
	s.cacheSet(cacheKey, names)
	return Result{Status: StatusSuccess, Exercises: names}
}

// WeeklyVolume returns volume per week for the last `weeks` weeks, oldest first.
func (s *Service) WeeklyVolume(ctx context.Context, userID, weeks int) (_ []WeekVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "stats.service.weeklyVolume")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("weeks", weeks),
	)

	since := pkg.NewDate(s.now()).AddDate(0, 0, -7*weeks)
	return s.repo.WeeklyVolume(ctx, userID, since)
}

func (s *Service) cacheGet(key []byte) ([]string, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(key)
	if err != nil {
		return nil, false
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		log.Errorf("decode cached exercises: %s", err)
		return nil, false
	}
	return names, true
}

func (s *Service) cacheSet(key []byte, names []string) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(names)
	if err != nil {
		log.Errorf("encode exercises for cache: %s", err)
		return
	}
	if err := s.cache.Set(key, raw, int(s.cacheTTL/time.Second)); err != nil {
		log.Errorf("cache exercises: %s", err)
	}
}
