package bodyweight

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/ascend/internal/auth"
	"github.com/2beens/ascend/internal/telemetry/tracing"
	"github.com/2beens/ascend/internal/validation"
	"github.com/2beens/ascend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=bodyweight_mocks_test.go -package=bodyweight_test

type weightRepo interface {
	Add(ctx context.Context, entry *Entry) error
	List(ctx context.Context, userID int) ([]Entry, error)
	Latest(ctx context.Context, userID int) (*Entry, error)
}

type Handler struct {
	repo weightRepo
	now  func() time.Time
}

func NewHandler(repo weightRepo) *Handler {
	return &Handler{
		repo: repo,
		now:  time.Now,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/user/weight", handler.HandleAdd).Methods("POST", "OPTIONS").Name("add-weight")
	r.HandleFunc("/user/weight", handler.HandleGet).Methods("GET").Name("get-weight")
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "bodyweightHandler.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req NewEntryRequest
	if err := validation.DecodeJSON(r, &req); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			pkg.WriteJSON(w, http.StatusBadRequest, verr)
			return
		}
		log.Errorf("decode weight entry: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	entry := &Entry{
		UserID: userID,
		Weight: req.Weight.Round(1),
		Date:   pkg.NewDate(handler.now()),
	}
	if req.Date != nil {
		entry.Date = *req.Date
	}

	if err := handler.repo.Add(ctx, entry); err != nil {
		log.Errorf("add weight entry for user %d: %s", userID, err)
		http.Error(w, "failed to add weight entry", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, entry)
}

// HandleGet lists all entries, or only the newest one with ?latest=true.
func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "bodyweightHandler.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if r.URL.Query().Get("latest") == "true" {
		entry, err := handler.repo.Latest(ctx, userID)
		if errors.Is(err, ErrNoEntries) {
			http.Error(w, "no weight entries", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Errorf("latest weight entry for user %d: %s", userID, err)
			http.Error(w, "failed to get weight entry", http.StatusInternalServerError)
			return
		}
		pkg.WriteJSON(w, http.StatusOK, entry)
		return
	}

	entries, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("list weight entries for user %d: %s", userID, err)
		http.Error(w, "failed to list weight entries", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}

	pkg.WriteJSON(w, http.StatusOK, entries)
}
