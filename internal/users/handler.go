package users

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/ascend/internal/auth"
	"github.com/2beens/ascend/internal/catalog"
	"github.com/2beens/ascend/internal/telemetry/tracing"
	"github.com/2beens/ascend/internal/validation"
	"github.com/2beens/ascend/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type accounts interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, creds Credentials) (string, *User, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type profiles interface {
	GetByID(ctx context.Context, id int) (*User, error)
	UpdateProfile(ctx context.Context, id int, req UpdateProfileRequest) (*User, error)
	AddFavorite(ctx context.Context, userID, exerciseID int) error
	RemoveFavorite(ctx context.Context, userID, exerciseID int) (bool, error)
	ListFavorites(ctx context.Context, userID int) ([]catalog.Exercise, error)
}

type Handler struct {
	accounts accounts
	profiles profiles
}

func NewHandler(accounts accounts, profiles profiles) *Handler {
	return &Handler{
		accounts: accounts,
		profiles: profiles,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/register", handler.HandleRegister).Methods("POST", "OPTIONS").Name("register")
	r.HandleFunc("/login", handler.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	r.HandleFunc("/logout", handler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	r.HandleFunc("/user/profile", handler.HandleProfile).Methods("GET", "OPTIONS").Name("profile")
	r.HandleFunc("/user/profile", handler.HandleUpdateProfile).Methods("PATCH").Name("update-profile")
	r.HandleFunc("/user/favorites", handler.HandleListFavorites).Methods("GET", "OPTIONS").Name("list-favorites")
	r.HandleFunc("/user/favorites/{exerciseId}", handler.HandleAddFavorite).Methods("POST", "OPTIONS").Name("add-favorite")
	r.HandleFunc("/user/favorites/{exerciseId}", handler.HandleRemoveFavorite).Methods("DELETE").Name("remove-favorite")
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "usersHandler.register")
	defer span.End()

	var req RegisterRequest
	if err := validation.DecodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := handler.accounts.Register(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSON(w, http.StatusCreated, user)
}

type loginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "usersHandler.login")
	defer span.End()

	var creds Credentials
	if err := validation.DecodeJSON(r, &creds); err != nil {
		writeError(w, err)
		return
	}

	token, user, err := handler.accounts.Login(ctx, creds)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, loginResponse{Token: token, User: user})
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "usersHandler.logout")
	defer span.End()

	token := auth.TokenFromRequest(r)
	if token == "" {
		http.Error(w, "no token", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.accounts.Logout(ctx, token)
	if err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		http.Error(w, "not logged in", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged out")
}

func (handler *Handler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "usersHandler.profile")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := handler.profiles.GetByID(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, user)
}

func (handler *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "usersHandler.updateProfile")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := validation.DecodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := handler.profiles.UpdateProfile(ctx, userID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, user)
}

func (handler *Handler) HandleListFavorites(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "usersHandler.listFavorites")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	favorites, err := handler.profiles.ListFavorites(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if favorites == nil {
		favorites = []catalog.Exercise{}
	}

	pkg.WriteJSON(w, http.StatusOK, favorites)
}

func (handler *Handler) HandleAddFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "usersHandler.addFavorite")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	exerciseID, err := strconv.Atoi(mux.Vars(r)["exerciseId"])
	if err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	if err := handler.profiles.AddFavorite(ctx, userID, exerciseID); err != nil {
		writeError(w, err)
		return
	}

	pkg.WriteResponse(w, pkg.ContentType.Text, "added", http.StatusCreated)
}

func (handler *Handler) HandleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "usersHandler.removeFavorite")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	exerciseID, err := strconv.Atoi(mux.Vars(r)["exerciseId"])
	if err != nil {
		http.Error(w, "invalid exercise id", http.StatusBadRequest)
		return
	}

	removed, err := handler.profiles.RemoveFavorite(ctx, userID, exerciseID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !removed {
		http.Error(w, "not a favorite", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		pkg.WriteJSON(w, http.StatusBadRequest, verr)
	case errors.Is(err, ErrUsernameTaken), errors.Is(err, ErrFavoriteExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrWrongPassword):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, ErrUserNotFound), errors.Is(err, catalog.ErrExerciseNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("users handler: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
