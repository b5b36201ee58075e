package stats

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/2beens/ascend/internal/auth"
	"github.com/2beens/ascend/internal/telemetry/tracing"
	"github.com/2beens/ascend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=stats_test

const (
	defaultChartWeeks = 8
	maxChartWeeks     = 52
)

type statsService interface {
	TotalVolume(ctx context.Context, userID int) float64
	WeeklyVolume(ctx context.Context, userID, weeks int) ([]WeekVolume, error)
	DistinctMuscleGroups(ctx context.Context, userID int) Result
	DistinctRecentExercises(ctx context.Context, userID int) Result
	ExercisesByMuscleGroup(ctx context.Context, group string) Result
}

// Handler serves the dashboard read endpoints.
type Handler struct {
	service statsService
}

func NewHandler(service statsService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/stats/volume", handler.HandleVolume).Methods("GET", "OPTIONS").Name("stats-volume")
	r.HandleFunc("/stats/volume/weekly", handler.HandleWeeklyVolume).Methods("GET", "OPTIONS").Name("stats-weekly-volume")
	r.HandleFunc("/stats/muscle-groups", handler.HandleMuscleGroups).Methods("GET", "OPTIONS").Name("stats-muscle-groups")
	r.HandleFunc("/stats/recent-exercises", handler.HandleRecentExercises).Methods("GET", "OPTIONS").Name("stats-recent-exercises")
	r.HandleFunc("/stats/exercises", handler.HandleExercisesByGroup).Methods("GET", "OPTIONS").Name("stats-exercises-by-group")
}

func (handler *Handler) HandleVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "statsHandler.volume")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]any{
		"volume": handler.service.TotalVolume(ctx, userID),
	})
}

func (handler *Handler) HandleWeeklyVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "statsHandler.weeklyVolume")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	weeks := defaultChartWeeks
	if weeksParam := r.URL.Query().Get("weeks"); weeksParam != "" {
		parsed, err := strconv.Atoi(weeksParam)
		if err != nil || parsed <= 0 || parsed > maxChartWeeks {
			http.Error(w, "weeks must be between 1 and 52", http.StatusBadRequest)
			return
		}
		weeks = parsed
	}

	volumes, err := handler.service.WeeklyVolume(ctx, userID, weeks)
	if err != nil {
		log.Errorf("weekly volume for user %d: %s", userID, err)
		http.Error(w, "failed to get weekly volume", http.StatusInternalServerError)
		return
	}
	if volumes == nil {
		volumes = []WeekVolume{}
	}

	pkg.WriteJSON(w, http.StatusOK, volumes)
}

func (handler *Handler) HandleMuscleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "statsHandler.muscleGroups")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, handler.service.DistinctMuscleGroups(ctx, userID))
}

func (handler *Handler) HandleRecentExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "statsHandler.recentExercises")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, handler.service.DistinctRecentExercises(ctx, userID))
}

func (handler *Handler) HandleExercisesByGroup(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "statsHandler.exercisesByGroup")
	defer span.End()

	group := strings.TrimSpace(r.URL.Query().Get("group"))
	if group == "" {
		http.Error(w, "group query param missing", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, handler.service.ExercisesByMuscleGroup(ctx, group))
}
