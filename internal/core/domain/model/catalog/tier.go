package catalog

import (
	"fmt"

	"studiodesk/internal/pkg/errs"
)

// Tier selects one of the two price dimensions of an item or rule.
// Base is the internal cost; Customer is the billed price.
type Tier int

const (
	// TierUnknown represents an invalid or undefined tier.
	// This value (0) helps catch uninitialized Tier values.
	TierUnknown Tier = iota

	// TierBase is the internal cost dimension.
	TierBase

	// TierCustomer is the billed price dimension.
	TierCustomer
)

func getTierStrings() map[Tier]string {
	return map[Tier]string{
		TierUnknown:  "Unknown",
		TierBase:     "Base",
		TierCustomer: "Customer",
	}
}

// Validate checks if the Tier value is valid.
// Valid tiers are TierBase and TierCustomer.
func (t Tier) Validate() error {
	if t != TierBase && t != TierCustomer {
		return errs.NewValueIsInvalidErrorWithCause("tier", fmt.Errorf("%d is not a valid tier", t))
	}
	return nil
}

// String returns the human-readable name of the tier.
// This method implements the fmt.Stringer interface and is safe
// to call on any Tier value, including invalid ones.
func (t Tier) String() string {
	if str, ok := getTierStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
