package service

import (
	"context"
	"encoding/json"

	"github.com/sangkips/menu-api/internal/domain/menutree"
	"github.com/sangkips/menu-api/internal/domain/repository"
	"github.com/sangkips/menu-api/internal/domain/rules"
	"github.com/sangkips/menu-api/pkg/logger"
	"go.uber.org/zap"
)

// MenuService serves the aggregated menu tree
type MenuService struct {
	categoryRepo    repository.CategoryRepository
	subcategoryRepo repository.SubcategoryRepository
	itemRepo        repository.ItemRepository
	cache           repository.TreeCache
}

// NewMenuService creates a new menu service
func NewMenuService(
	categoryRepo repository.CategoryRepository,
	subcategoryRepo repository.SubcategoryRepository,
	itemRepo repository.ItemRepository,
	cache repository.TreeCache,
) *MenuService {
	return &MenuService{
		categoryRepo:    categoryRepo,
		subcategoryRepo: subcategoryRepo,
		itemRepo:        itemRepo,
		cache:           cache,
	}
}

// Tree returns the JSON encoded menu forest, from cache when possible
func (s *MenuService) Tree(ctx context.Context) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	cached, generation, err := s.cache.Get(ctx)
	cacheable := err == nil
	if err != nil {
		log.Warn("menu tree cache read failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	forest, err := s.Build(ctx)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(forest)
	if err != nil {
		return nil, err
	}

	if !cacheable {
		return data, nil
	}
	if err := s.cache.Set(ctx, generation, data); err != nil {
		log.Warn("menu tree cache write failed", zap.Error(err))
	}
	return data, nil
}

// Build loads every collection and assembles the forest
func (s *MenuService) Build(ctx context.Context) ([]*menutree.CategoryNode, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	subcategories, err := s.subcategoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// parents are implied by the tree position
	for i := range subcategories {
		sub := &subcategories[i]
		effective := rules.EffectiveSubcategoryTax(sub, sub.Category)
		sub.EffectiveTax = &effective
		sub.Category = nil
	}
	for i := range items {
		items[i].Category = nil
		items[i].SubCategory = nil
	}

	return menutree.Build(categories, subcategories, items), nil
}

// invalidateTree drops the cached tree after a write
func invalidateTree(ctx context.Context, cache repository.TreeCache) {
	if err := cache.Invalidate(ctx); err != nil {
		logger.FromContext(ctx).Warn("menu tree cache invalidation failed", zap.Error(err))
	}
}
