package stats

import (
	"github.com/2beens/ascend/pkg"

	"github.com/shopspring/decimal"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Result is the envelope handed to the recommendation tools. Lookup failures are
// reported in it instead of as Go errors.
type Result struct {
	Status       string   `json:"status"`
	Report       []string `json:"report,omitempty"`
	Exercises    []string `json:"exercises,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

func errorResult(msg string) Result {
	return Result{Status: StatusError, ErrorMessage: msg}
}

type WeekVolume struct {
	WeekStart pkg.Date        `json:"week_start"`
	Volume    decimal.Decimal `json:"volume"`
}
