package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/storefront-api/internal/domain"
	"github.com/phrazzld/storefront-api/internal/platform/logger"
	"github.com/phrazzld/storefront-api/internal/store"
	"github.com/shopspring/decimal"
)

// ProductInput holds the editable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Category    string
}

// CatalogService provides product operations.
type CatalogService interface {
	// CreateProduct adds a product to the catalog.
	CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error)

	// GetProduct returns a product or store.ErrProductNotFound.
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)

	// ListProducts returns the catalog in creation order, optionally
	// restricted to one category.
	ListProducts(ctx context.Context, category string) ([]*domain.Product, error)

	// UpdateProduct replaces the editable fields of a product. Orders
	// already placed keep the prices they were placed at.
	UpdateProduct(ctx context.Context, id int64, in ProductInput) (*domain.Product, error)
}

type catalogServiceImpl struct {
	products store.ProductStore
	logger   *slog.Logger
}

// NewCatalogService creates a new CatalogService.
// It returns an error if the product store is nil.
func NewCatalogService(products store.ProductStore, logger *slog.Logger) (CatalogService, error) {
	if products == nil {
		return nil, domain.NewValidationError("products", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &catalogServiceImpl{
		products: products,
		logger:   logger.With(slog.String("component", "catalog_service")),
	}, nil
}

// CreateProduct implements CatalogService.
func (s *catalogServiceImpl) CreateProduct(ctx context.Context, in ProductInput) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	product, err := domain.NewProduct(in.Name, in.Description, in.Price, in.Stock, in.Category)
	if err != nil {
		log.Debug("rejected invalid product", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if err := s.products.Create(ctx, product); err != nil {
		log.Error("failed to save product", slog.String("error", err.Error()))
		return nil, NewServiceError("catalog", "create_product", err)
	}

	log.Info("product created",
		slog.Int64("product_id", product.ID),
		slog.String("category", product.Category))
	return product, nil
}

// GetProduct implements CatalogService.
func (s *catalogServiceImpl) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, fmt.Errorf("product %d: %w", id, err)
		}
		return nil, NewServiceError("catalog", "get_product", err)
	}
	return product, nil
}

// ListProducts implements CatalogService.
func (s *catalogServiceImpl) ListProducts(ctx context.Context, category string) ([]*domain.Product, error) {
	products, err := s.products.List(ctx, category)
	if err != nil {
		return nil, NewServiceError("catalog", "list_products", err)
	}
	return products, nil
}

// UpdateProduct implements CatalogService.
func (s *catalogServiceImpl) UpdateProduct(
	ctx context.Context,
	id int64,
	in ProductInput,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := product.Revise(in.Name, in.Description, in.Price, in.Stock, in.Category); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if err := s.products.Update(ctx, product); err != nil {
		if store.IsNotFoundError(err) {
			return nil, fmt.Errorf("product %d: %w", id, err)
		}
		log.Error("failed to update product",
			slog.String("error", err.Error()),
			slog.Int64("product_id", id))
		return nil, NewServiceError("catalog", "update_product", err)
	}

	log.Info("product updated", slog.Int64("product_id", id))
	return product, nil
}
