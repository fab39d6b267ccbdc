package commands

import (
	"context"

	"studiodesk/internal/core/domain/model/catalog"
	"studiodesk/internal/core/ports"
)

// SavePricingRuleCommandHandler handles pricing rule upserts. Saving goes
// through the catalog repository so any cache decorating it is invalidated.
type SavePricingRuleCommandHandler struct {
	catalogRepo ports.CatalogRepository
}

// NewSavePricingRuleCommandHandler creates a handler for pricing rule saves.
func NewSavePricingRuleCommandHandler(catalogRepo ports.CatalogRepository) SavePricingRuleCommandHandler {
	return SavePricingRuleCommandHandler{
		catalogRepo: catalogRepo,
	}
}

// Handle processes the save command.
func (h *SavePricingRuleCommandHandler) Handle(ctx context.Context, cmd SavePricingRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	rule, err := catalog.NewPricingRule(cmd.Item(), cmd.Addons(), cmd.BasePrice(), cmd.CustomerPrice())
	if err != nil {
		return err
	}

	return h.catalogRepo.SavePricingRule(ctx, rule)
}
