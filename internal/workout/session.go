package workout

import (
	"errors"
	"time"

	"github.com/2beens/ascend/internal/catalog"
	"github.com/2beens/ascend/pkg"

	"github.com/shopspring/decimal"
)

var ErrSessionNotFound = errors.New("workout session not found")

type Session struct {
	ID          int                `json:"id"`
	UserID      int                `json:"user_id"`
	Name        string             `json:"name"`
	Date        pkg.Date           `json:"date"`
	ElapsedTime *pkg.ClockDuration `json:"elapsed_time"`
	Comment     *string            `json:"comment"`
	CreatedAt   time.Time          `json:"created_at"`
	WorkoutSets []Set              `json:"workout_sets"`
}

// Set is one logged entry of a session. Sets are immutable once stored.
type Set struct {
	ID       int              `json:"id"`
	Position int              `json:"position"`
	Exercise catalog.Exercise `json:"exercise"`
	Reps     int              `json:"reps"`
	Weight   *decimal.Decimal `json:"weight"`
	// only known when the set is created
	NewPersonalRecord bool `json:"new_personal_record,omitempty"`
}

// Volume is reps times weight, zero when the set carries no weight.
func (s Set) Volume() decimal.Decimal {
	if s.Weight == nil {
		return decimal.Zero
	}
	return s.Weight.Mul(decimal.NewFromInt(int64(s.Reps)))
}

type TagRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

type ExerciseRequest struct {
	Name        string       `json:"name" validate:"required,max=100"`
	Description *string      `json:"description"`
	Tags        []TagRequest `json:"tags" validate:"dive"`
}

type SetRequest struct {
	Exercise ExerciseRequest  `json:"exercise" validate:"required"`
	Reps     *int             `json:"reps" validate:"required,gte=0,lte=100000"`
	Weight   *decimal.Decimal `json:"weight" validate:"omitempty,gte=0,lte=9999.9"`
}

// NewSessionRequest is the session submission contract.
type NewSessionRequest struct {
	Name        string             `json:"name" validate:"required,max=100"`
	Date        *pkg.Date          `json:"date"`
	ElapsedTime *pkg.ClockDuration `json:"elapsed_time"`
	Comment     *string            `json:"comment"`
	WorkoutSets []SetRequest       `json:"workout_sets" validate:"dive"`
}

func (req NewSessionRequest) exerciseInputs() []catalog.ExerciseInput {
	inputs := make([]catalog.ExerciseInput, 0, len(req.WorkoutSets))
	for _, set := range req.WorkoutSets {
		tags := make([]string, 0, len(set.Exercise.Tags))
		for _, t := range set.Exercise.Tags {
			tags = append(tags, t.Name)
		}
		inputs = append(inputs, catalog.ExerciseInput{
			Name:        set.Exercise.Name,
			Description: set.Exercise.Description,
			Tags:        tags,
		})
	}
	return inputs
}
