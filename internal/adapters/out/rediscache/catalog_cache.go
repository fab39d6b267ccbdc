// Package rediscache provides a read-through Redis cache for the pricing
// reference data. The catalog is read on every compose request, changes only
// from the configuration screens, and is small, which makes it the one hot
// collection worth caching.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"studiodesk/internal/core/domain/model/catalog"
	"studiodesk/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	itemsKey  = "catalog:items"
	addonsKey = "catalog:addons"
	rulesKey  = "catalog:rules"

	// DefaultTTL bounds staleness if an invalidation is ever lost.
	DefaultTTL = 10 * time.Minute
)

// CachedCatalogRepository decorates a CatalogRepository with Redis caching.
// Reads go through the cache; saves write through to the inner repository and
// invalidate the affected collection. Redis failures degrade to cache misses,
// never to request failures.
type CachedCatalogRepository struct {
	inner  ports.CatalogRepository
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedCatalogRepository creates a caching decorator around inner.
func NewCachedCatalogRepository(
	inner ports.CatalogRepository,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedCatalogRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedCatalogRepository{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

type itemDocument struct {
	Name                 string  `json:"name"`
	RegularBasePrice     float64 `json:"regularBasePrice"`
	RegularCustomerPrice float64 `json:"regularCustomerPrice"`
	InstantBasePrice     float64 `json:"instantBasePrice"`
	InstantCustomerPrice float64 `json:"instantCustomerPrice"`
}

type ruleDocument struct {
	Item          string   `json:"item"`
	Addons        []string `json:"addons"`
	BasePrice     float64  `json:"basePrice"`
	CustomerPrice float64  `json:"customerPrice"`
}

// GetItems retrieves all catalog items, from Redis when possible.
func (r *CachedCatalogRepository) GetItems(ctx context.Context) ([]catalog.Item, error) {
	var docs []itemDocument
	if r.lookup(ctx, itemsKey, &docs) {
		items := make([]catalog.Item, 0, len(docs))
		for _, doc := range docs {
			item, err := catalog.NewItem(doc.Name, doc.RegularBasePrice,
				doc.RegularCustomerPrice, doc.InstantBasePrice, doc.InstantCustomerPrice)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	}

	items, err := r.inner.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	docs = make([]itemDocument, 0, len(items))
	for _, item := range items {
		docs = append(docs, itemDocument{
			Name:                 item.Name(),
			RegularBasePrice:     item.Price(false, catalog.TierBase),
			RegularCustomerPrice: item.Price(false, catalog.TierCustomer),
			InstantBasePrice:     item.Price(true, catalog.TierBase),
			InstantCustomerPrice: item.Price(true, catalog.TierCustomer),
		})
	}
	r.store(ctx, itemsKey, docs)

	return items, nil
}

// GetAddons retrieves all addons, from Redis when possible.
func (r *CachedCatalogRepository) GetAddons(ctx context.Context) ([]catalog.Addon, error) {
	var names []string
	if r.lookup(ctx, addonsKey, &names) {
		addons := make([]catalog.Addon, 0, len(names))
		for _, name := range names {
			addon, err := catalog.NewAddon(name)
			if err != nil {
				return nil, err
			}
			addons = append(addons, addon)
		}
		return addons, nil
	}

	addons, err := r.inner.GetAddons(ctx)
	if err != nil {
		return nil, err
	}

	names = make([]string, 0, len(addons))
	for _, addon := range addons {
		names = append(names, addon.Name())
	}
	r.store(ctx, addonsKey, names)

	return addons, nil
}

// GetPricingRules retrieves all pricing rules, from Redis when possible.
func (r *CachedCatalogRepository) GetPricingRules(ctx context.Context) ([]catalog.PricingRule, error) {
	var docs []ruleDocument
	if r.lookup(ctx, rulesKey, &docs) {
		rules := make([]catalog.PricingRule, 0, len(docs))
		for _, doc := range docs {
			rule, err := catalog.NewPricingRule(doc.Item, doc.Addons, doc.BasePrice, doc.CustomerPrice)
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)
		}
		return rules, nil
	}

	rules, err := r.inner.GetPricingRules(ctx)
	if err != nil {
		return nil, err
	}

	docs = make([]ruleDocument, 0, len(rules))
	for _, rule := range rules {
		docs = append(docs, ruleDocument{
			Item:          rule.Item(),
			Addons:        rule.Addons(),
			BasePrice:     rule.Price(catalog.TierBase),
			CustomerPrice: rule.Price(catalog.TierCustomer),
		})
	}
	r.store(ctx, rulesKey, docs)

	return rules, nil
}

// SaveItem writes through to the inner repository and invalidates the item
// collection.
func (r *CachedCatalogRepository) SaveItem(ctx context.Context, item catalog.Item) error {
	if err := r.inner.SaveItem(ctx, item); err != nil {
		return err
	}
	r.invalidate(ctx, itemsKey)
	return nil
}

// SaveAddon writes through to the inner repository and invalidates the addon
// collection.
func (r *CachedCatalogRepository) SaveAddon(ctx context.Context, addon catalog.Addon) error {
	if err := r.inner.SaveAddon(ctx, addon); err != nil {
		return err
	}
	r.invalidate(ctx, addonsKey)
	return nil
}

// SavePricingRule writes through to the inner repository and invalidates the
// rule collection.
func (r *CachedCatalogRepository) SavePricingRule(ctx context.Context, rule catalog.PricingRule) error {
	if err := r.inner.SavePricingRule(ctx, rule); err != nil {
		return err
	}
	r.invalidate(ctx, rulesKey)
	return nil
}

// lookup reads and decodes a cached collection. Returns false on miss, decode
// failure or Redis error.
func (r *CachedCatalogRepository) lookup(ctx context.Context, key string, target any) bool {
	payload, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("catalog cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(payload, target); err != nil {
		r.logger.Warn("catalog cache entry is corrupt, dropping", "key", key, "error", err)
		r.invalidate(ctx, key)
		return false
	}

	return true
}

func (r *CachedCatalogRepository) store(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		r.logger.Warn("catalog cache encode failed", "key", key, "error", err)
		return
	}

	if err := r.client.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		r.logger.Warn("catalog cache write failed", "key", key, "error", err)
	}
}

func (r *CachedCatalogRepository) invalidate(ctx context.Context, key string) {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Warn("catalog cache invalidation failed", "key", key, "error", err)
	}
}
