package catalog

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/ascend/internal/telemetry/tracing"
	"github.com/2beens/ascend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=catalog_test

type exercisesRepo interface {
	GetExercise(ctx context.Context, id int) (*Exercise, error)
	ListExercises(ctx context.Context) ([]Exercise, error)
}

type Handler struct {
	repo exercisesRepo
}

func NewHandler(repo exercisesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/exercises", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "catalogHandler.list")
	defer span.End()

	exercises, err := handler.repo.ListExercises(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}
	if exercises == nil {
		exercises = []Exercise{}
	}

	pkg.WriteJSON(w, http.StatusOK, exercises)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "catalogHandler.get")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.GetExercise(ctx, id)
	if err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("get exercise %d: %s", id, err)
		http.Error(w, "failed to get exercise", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, exercise)
}
