package bodyweight

import (
	"errors"
	"time"

	"github.com/2beens/ascend/pkg"

	"github.com/shopspring/decimal"
)

var ErrNoEntries = errors.New("no bodyweight entries")

type Entry struct {
	ID        int             `json:"id"`
	UserID    int             `json:"user_id"`
	Weight    decimal.Decimal `json:"weight"`
	Date      pkg.Date        `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

type NewEntryRequest struct {
	Weight *decimal.Decimal `json:"weight" validate:"required,gt=0,lte=999.9"`
	Date   *pkg.Date        `json:"date"`
}
