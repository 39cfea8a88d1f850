package repo

import (
	"context"
	"errors"

	"github.com/Skotchmaster/storefront/internal/models"
)

var (
	ErrServiceNotFound  = errors.New("service not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserAlreadyExist = errors.New("user already exist")
)

// NewService holds the caller-supplied fields of a service. The id is assigned by the store.
type NewService struct {
	Title       string   `json:"title"       validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       int64    `json:"price"       validate:"gte=0"`
	ImageURL    string   `json:"imageUrl"`
	Category    string   `json:"category"    validate:"required"`
	Features    []string `json:"features"    validate:"required"`
	Badge       string   `json:"badge"`
}

// Repository is the catalog store. Listing methods return services in
// badge-priority order (see domain.SortServices).
type Repository interface {
	CreateService(ctx context.Context, in NewService) (*models.Service, error)
	GetAllServices(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	GetServicesByCategory(ctx context.Context, category string) ([]models.Service, error)
	SearchServices(ctx context.Context, query string) ([]models.Service, error)
	Count(ctx context.Context) (int64, error)

	CreateUser(ctx context.Context, username, password string) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

func (in NewService) toModel(id string, seq int64) models.Service {
	features := in.Features
	if features == nil {
		features = []string{}
	} else {
		features = append([]string(nil), features...)
	}
	return models.Service{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		Features:    features,
		Badge:       models.NewBadge(in.Badge),
		Seq:         seq,
	}
}

var (
	_ Repository = (*MemoryRepo)(nil)
	_ Repository = (*GormRepo)(nil)
)
