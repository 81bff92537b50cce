package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tip is one row of the append-only tip history.
// Seq is the monotonic ordering key; the greatest Seq per pair is active.
type Tip struct {
	Seq      int64           `json:"seq"`
	TipperID string          `json:"tipper_id"`
	TippeeID string          `json:"tippee_id"`
	Amount   decimal.Decimal `json:"amount"`
	CTime    time.Time       `json:"ctime"`
	MTime    time.Time       `json:"mtime"`
}

// Active reports whether the tip counts toward backers
func (t Tip) Active() bool {
	return t.Amount.IsPositive()
}
