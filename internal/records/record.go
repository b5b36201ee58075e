package records

import (
	"errors"

	"github.com/2beens/ascend/pkg"

	"github.com/shopspring/decimal"
)

var ErrRecordNotFound = errors.New("exercise record not found")

// ExerciseRecord is the lifetime aggregate of one user on one exercise.
type ExerciseRecord struct {
	ID             int             `json:"id"`
	UserID         int             `json:"user_id"`
	ExerciseID     int             `json:"exercise_id"`
	ExerciseName   string          `json:"exercise_name,omitempty"`
	PersonalRecord decimal.Decimal `json:"personal_record"`
	DateOfPR       *pkg.Date       `json:"date_of_pr"`
	LifetimeReps   int64           `json:"lifetime_reps"`
}

// Entry is a single logged set as seen by the record updater.
type Entry struct {
	UserID         int
	ExerciseID     int
	Reps           int
	Weight         *decimal.Decimal
	SubmissionDate pkg.Date
}

// Update is applied in one statement. RepsDelta is added to the stored value,
// PersonalRecord and DateOfPR are written only when set.
type Update struct {
	RecordID       int
	RepsDelta      int
	PersonalRecord *decimal.Decimal
	DateOfPR       *pkg.Date
}
