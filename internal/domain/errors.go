package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound     = errors.New("record not found")
	ErrEditConflict       = errors.New("edit conflict")
	ErrForbidden          = errors.New("operation not permitted for this account")
	ErrSeatUnavailable    = errors.New("seat is already sold for this premiere")
	ErrSeatPricingMissing = errors.New("no seat price configured for this premiere and seat")
	ErrPurchaseContention = errors.New("purchase could not complete due to contention")
)

// ConcessionOutOfStockError names the first concession item whose remaining
// stock could not cover the requested quantity.
type ConcessionOutOfStockError struct {
	ItemID int64
}

func (e ConcessionOutOfStockError) Error() string {
	return fmt.Sprintf("concession item %d is out of stock", e.ItemID)
}
