package point

import (
	"fmt"

	"github.com/daehokimm/point-service/internal/models"
)

// Policy limits, in the minor currency unit.
const (
	AmountUnit      = 100
	MinChargeAmount = 1_000
	MaxChargeAmount = 1_000_000
	MaxUseAmount    = 100_000
	MaxBalance      = 10_000_000
)

// validateAmount applies the static amount rules for the given transaction
// type. Pure; it touches no store and is safe to call repeatedly.
func validateAmount(amount int64, typ models.TransactionType) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidAmount, amount)
	}
	if amount%AmountUnit != 0 {
		return fmt.Errorf("%w: amount must be a multiple of %d, got %d", ErrInvalidAmount, AmountUnit, amount)
	}

	switch typ {
	case models.TxnCharge:
		if amount < MinChargeAmount {
			return fmt.Errorf("%w: charge must be at least %d, got %d", ErrInvalidAmount, MinChargeAmount, amount)
		}
		if amount > MaxChargeAmount {
			return fmt.Errorf("%w: charge must be at most %d, got %d", ErrInvalidAmount, MaxChargeAmount, amount)
		}
	case models.TxnUse:
		if amount > MaxUseAmount {
			return fmt.Errorf("%w: use must be at most %d, got %d", ErrInvalidAmount, MaxUseAmount, amount)
		}
	}
	return nil
}

// validateBalance applies the rules that depend on the current balance:
// a use may not overdraw, a charge may not push past the ceiling.
func validateBalance(current, amount int64, typ models.TransactionType) error {
	switch typ {
	case models.TxnUse:
		if amount > current {
			return fmt.Errorf("%w: have %d, need %d", ErrInsufficientBalance, current, amount)
		}
	case models.TxnCharge:
		if current+amount > MaxBalance {
			return fmt.Errorf("%w: %d + %d exceeds %d", ErrBalanceLimitExceeded, current, amount, MaxBalance)
		}
	}
	return nil
}
