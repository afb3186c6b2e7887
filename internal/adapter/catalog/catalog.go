// Package catalog adapts the external read-only product catalog: a JSON file
// loaded once at startup.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/akozyrev/storepay/internal/adapter/config"
	"github.com/akozyrev/storepay/internal/core/domain"
)

type FileCatalog struct {
	products map[string]*domain.Product
}

func NewFileCatalog(cfg *config.Catalog) (*FileCatalog, error) {
	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var list []*domain.Product
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	products := make(map[string]*domain.Product, len(list))
	for _, p := range list {
		products[p.ID] = p
	}

	return &FileCatalog{products: products}, nil
}

func (c *FileCatalog) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	product, ok := c.products[productID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return product, nil
}
