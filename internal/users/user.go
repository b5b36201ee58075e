package users

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrUsernameTaken  = errors.New("username already taken")
	ErrWrongPassword  = errors.New("wrong username or password")
	ErrFavoriteExists = errors.New("exercise already in favorites")
)

type User struct {
	ID        int              `json:"id"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Weight    *decimal.Decimal `json:"user_weight"`
	Height    *decimal.Decimal `json:"user_height"`
	Gender    *string          `json:"user_gender"`
	// sum of reps x weight over every logged set
	LifetimeWeightLifted decimal.Decimal `json:"lifetime_weight_lifted"`
	PasswordHash         string          `json:"-"`
	CreatedAt            time.Time       `json:"created_at"`
}

type Credentials struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username  string           `json:"username" validate:"required,min=3,max=150,alphanum"`
	Password  string           `json:"password" validate:"required,min=8,max=72"`
	Email     string           `json:"email" validate:"omitempty,email,max=254"`
	FirstName string           `json:"first_name" validate:"max=150"`
	LastName  string           `json:"last_name" validate:"max=150"`
	Weight    *decimal.Decimal `json:"user_weight" validate:"omitempty,gt=0,lte=999.9"`
	Height    *decimal.Decimal `json:"user_height" validate:"omitempty,gt=0,lte=999.9"`
	Gender    *string          `json:"user_gender" validate:"omitempty,oneof=male female"`
}

// UpdateProfileRequest changes only the fields that are set.
type UpdateProfileRequest struct {
	Email     *string          `json:"email" validate:"omitempty,email,max=254"`
	FirstName *string          `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string          `json:"last_name" validate:"omitempty,max=150"`
	Weight    *decimal.Decimal `json:"user_weight" validate:"omitempty,gt=0,lte=999.9"`
	Height    *decimal.Decimal `json:"user_height" validate:"omitempty,gt=0,lte=999.9"`
	Gender    *string          `json:"user_gender" validate:"omitempty,oneof=male female"`
}
