package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Skotchmaster/storefront/internal/domain"
	"github.com/Skotchmaster/storefront/internal/hash"
	"github.com/Skotchmaster/storefront/internal/models"
)

// GormRepo stores the catalog in a relational database through gorm.
type GormRepo struct {
	DB *gorm.DB
}

// Migrate creates or updates the services and users tables.
func (r *GormRepo) Migrate(ctx context.Context) error {
	return r.DB.WithContext(ctx).AutoMigrate(&models.Service{}, &models.User{})
}

func (r *GormRepo) CreateService(ctx context.Context, in NewService) (*models.Service, error) {
	var created models.Service
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxSeq int64
		if err := tx.Model(&models.Service{}).Select("COALESCE(MAX(seq), 0)").Scan(&maxSeq).Error; err != nil {
			return err
		}
		created = in.toModel(uuid.NewString(), maxSeq+1)
		return tx.Create(&created).Error
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// badgeOrder ranks rows the same way domain.SortServices does.
func badgeOrder() clause.OrderBy {
	var sb strings.Builder
	vars := make([]any, 0, len(models.BadgeRanks))
	sb.WriteString("CASE badge")
	for _, br := range models.BadgeRanks {
		fmt.Fprintf(&sb, " WHEN ? THEN %d", br.Tier)
		vars = append(vars, br.Label)
	}
	sb.WriteString(" ELSE 0 END DESC, price DESC, seq ASC")

	return clause.OrderBy{Expression: clause.Expr{SQL: sb.String(), Vars: vars, WithoutParentheses: true}}
}

func (r *GormRepo) GetAllServices(ctx context.Context) ([]models.Service, error) {
	items := make([]models.Service, 0)
	if err := r.DB.WithContext(ctx).Model(&models.Service{}).Order(badgeOrder()).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	var s models.Service
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return &s, nil
}

// GetServicesByCategory and SearchServices filter in Go: SQL LOWER() folds
// only ASCII on SQLite, and features are stored as JSON with escaped runes.
func (r *GormRepo) GetServicesByCategory(ctx context.Context, category string) ([]models.Service, error) {
	all, err := r.GetAllServices(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ByCategory(all, category), nil
}

func (r *GormRepo) SearchServices(ctx context.Context, query string) ([]models.Service, error) {
	all, err := r.GetAllServices(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Search(all, query), nil
}

func (r *GormRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).Model(&models.Service{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *GormRepo) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	hashed, err := hash.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := models.User{ID: uuid.NewString(), Username: username, PasswordHash: hashed}
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.User{}).Where("username = ?", username).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrUserAlreadyExist
		}
		return tx.Create(&u).Error
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GormRepo) GetUser(ctx context.Context, id string) (*models.User, error) {
	return r.findUser(ctx, "id = ?", id)
}

func (r *GormRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findUser(ctx, "username = ?", username)
}

func (r *GormRepo) findUser(ctx context.Context, where string, arg string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).Where(where, arg).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
