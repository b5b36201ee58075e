package workout

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/ascend/internal/auth"
	"github.com/2beens/ascend/internal/telemetry/tracing"
	"github.com/2beens/ascend/internal/validation"
	"github.com/2beens/ascend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workout_test

type sessionCreator interface {
	CreateSession(ctx context.Context, userID int, req NewSessionRequest) (*Session, error)
}

type sessionsReader interface {
	GetSession(ctx context.Context, userID, id int) (*Session, error)
	ListSessions(ctx context.Context, userID int) ([]Session, error)
}

type Handler struct {
	creator sessionCreator
	reader  sessionsReader
}

func NewHandler(creator sessionCreator, reader sessionsReader) *Handler {
	return &Handler{
		creator: creator,
		reader:  reader,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/sessions", handler.HandleCreate).Methods("POST", "OPTIONS").Name("create-session")
	r.HandleFunc("/sessions", handler.HandleList).Methods("GET").Name("list-sessions")
	r.HandleFunc("/sessions/{id}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-session")
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutHandler.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req NewSessionRequest
	if err := validation.DecodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	session, err := handler.creator.CreateSession(ctx, userID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, session)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutHandler.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sessions, err := handler.reader.ListSessions(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if sessions == nil {
		sessions = []Session{}
	}

	pkg.WriteJSON(w, http.StatusOK, sessions)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutHandler.get")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	session, err := handler.reader.GetSession(ctx, userID, id)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, session)
}

func writeError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		pkg.WriteJSON(w, http.StatusBadRequest, verr)
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "session not found", http.StatusNotFound)
	case pkg.IsCheckViolationError(err), pkg.IsNumericOutOfRangeError(err):
		http.Error(w, "value out of range", http.StatusBadRequest)
	default:
		log.Errorf("workout handler: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
