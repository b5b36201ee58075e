package records

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/ascend/internal/auth"
	"github.com/2beens/ascend/internal/telemetry/tracing"
	"github.com/2beens/ascend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=records_test

type recordsRepo interface {
	Get(ctx context.Context, userID, exerciseID int) (*ExerciseRecord, error)
	ListForUser(ctx context.Context, userID int) ([]ExerciseRecord, error)
}

type Handler struct {
	repo recordsRepo
}

func NewHandler(repo recordsRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/records", handler.HandleList).Methods("GET", "OPTIONS").Name("list-records")
	r.HandleFunc("/exercises/{id}/record", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise-record")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "recordsHandler.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	recs, err := handler.repo.ListForUser(ctx, userID)
	if err != nil {
		log.Errorf("list records for user %d: %s", userID, err)
		http.Error(w, "failed to list records", http.StatusInternalServerError)
		return
	}
	if recs == nil {
		recs = []ExerciseRecord{}
	}

	pkg.WriteJSON(w, http.StatusOK, recs)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "recordsHandler.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	exerciseID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	rec, err := handler.repo.Get(ctx, userID, exerciseID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		log.Errorf("get record user %d exercise %d: %s", userID, exerciseID, err)
		http.Error(w, "failed to get record", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, rec)
}
