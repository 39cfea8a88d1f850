package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/montanaflynn/stats"

	"github.com/Skotchmaster/storefront/internal/domain"
	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
)

var (
	ErrInvalidPagination = errors.New("invalid pagination")
	ErrValidation        = errors.New("validation failed")
)

type CatalogService struct {
	Repo     repo.Repository
	validate *validator.Validate
}

func NewCatalogService(r repo.Repository) *CatalogService {
	return &CatalogService{
		Repo:     r,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ListParams are the raw query values of a listing request. Empty means not supplied.
type ListParams struct {
	Search   string
	Category string
	Limit    string
	Offset   string
}

// Filtered reports whether any parameter was supplied.
func (p ListParams) Filtered() bool {
	return p.Search != "" || p.Category != "" || p.Limit != "" || p.Offset != ""
}

type ListResult struct {
	Services []models.Service `json:"services"`
	Total    int              `json:"total"`
	HasMore  bool             `json:"hasMore"`
}

func (s *CatalogService) CreateService(ctx context.Context, in repo.NewService) (*models.Service, error) {
	if err := s.validate.StructCtx(ctx, in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.Repo.CreateService(ctx, in)
}

func (s *CatalogService) Count(ctx context.Context) (int64, error) {
	return s.Repo.Count(ctx)
}

func (s *CatalogService) AllServices(ctx context.Context) ([]models.Service, error) {
	return s.Repo.GetAllServices(ctx)
}

func (s *CatalogService) GetService(ctx context.Context, id string) (*models.Service, error) {
	return s.Repo.GetService(ctx, id)
}

// ListServices applies search, then category, then offset/limit.
func (s *CatalogService) ListServices(ctx context.Context, p ListParams) (*ListResult, error) {
	offset, err := parseNonNegative(p.Offset, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: offset: %v", ErrInvalidPagination, err)
	}
	limit, err := parseNonNegative(p.Limit, -1)
	if err != nil {
		return nil, fmt.Errorf("%w: limit: %v", ErrInvalidPagination, err)
	}

	var items []models.Service
	switch {
	case p.Search != "":
		items, err = s.Repo.SearchServices(ctx, p.Search)
		if err == nil && !domain.IsAllCategories(p.Category) {
			items = domain.ByCategory(items, p.Category)
		}
	case !domain.IsAllCategories(p.Category):
		items, err = s.Repo.GetServicesByCategory(ctx, p.Category)
	default:
		items, err = s.Repo.GetAllServices(ctx)
	}
	if err != nil {
		return nil, err
	}

	total := len(items)
	page := domain.Page(items, offset, limit)
	return &ListResult{
		Services: page,
		Total:    total,
		HasMore:  offset < total && len(page) < total-offset,
	}, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	items, err := s.Repo.GetAllServices(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Categories(items), nil
}

func (s *CatalogService) Featured(ctx context.Context) ([]models.Service, error) {
	items, err := s.Repo.GetAllServices(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Featured(items), nil
}

type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

type CatalogStats struct {
	TotalProducts     int            `json:"totalProducts"`
	Categories        int            `json:"categories"`
	AveragePrice      float64        `json:"averagePrice"`
	PriceRange        PriceRange     `json:"priceRange"`
	BadgeDistribution map[string]int `json:"badgeDistribution"`
}

// Stats aggregates the catalog. An empty catalog reports zero prices.
func (s *CatalogService) Stats(ctx context.Context) (*CatalogStats, error) {
	items, err := s.Repo.GetAllServices(ctx)
	if err != nil {
		return nil, err
	}

	out := &CatalogStats{
		TotalProducts:     len(items),
		Categories:        len(domain.Categories(items)),
		BadgeDistribution: make(map[string]int),
	}
	if len(items) == 0 {
		return out, nil
	}

	prices := make(stats.Float64Data, 0, len(items))
	for _, it := range items {
		prices = append(prices, float64(it.Price))
		badge := it.BadgeName()
		if badge == "" {
			badge = models.NoBadgeKey
		}
		out.BadgeDistribution[badge]++
	}

	if out.AveragePrice, err = prices.Mean(); err != nil {
		return nil, fmt.Errorf("mean price: %w", err)
	}
	lo, err := prices.Min()
	if err != nil {
		return nil, fmt.Errorf("min price: %w", err)
	}
	hi, err := prices.Max()
	if err != nil {
		return nil, fmt.Errorf("max price: %w", err)
	}
	out.PriceRange = PriceRange{Min: int64(lo), Max: int64(hi)}
	return out, nil
}

func parseNonNegative(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}
