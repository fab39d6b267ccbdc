package catalog

import (
	"errors"

	"studiodesk/internal/pkg/errs"
)

var (
	// ErrAddonIsNotConstructed is returned when an Addon instance was not created
	// through the NewAddon factory function.
	ErrAddonIsNotConstructed = errors.New("Addon must be created via NewAddon constructor")
)

// Addon is a named extra that can be attached to a catalog item, such as a
// frame or lamination. An addon has no intrinsic price; pricing is contextual
// and comes from PricingRule entries for specific item+addon combinations.
type Addon struct {
	name string

	isConstructed bool
}

// NewAddon creates an addon with the given unique name.
func NewAddon(name string) (Addon, error) {
	if name == "" {
		return Addon{}, errs.NewValueIsRequiredError("name")
	}

	return Addon{
		name:          name,
		isConstructed: true,
	}, nil
}

// Validate ensures the Addon instance was properly constructed through NewAddon.
func (a Addon) Validate() error {
	if !a.isConstructed {
		return ErrAddonIsNotConstructed
	}
	return nil
}

// Name returns the unique addon name.
func (a Addon) Name() string {
	return a.name
}
