package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/Skotchmaster/storefront/internal/repo"
)

type Store interface {
	Count(ctx context.Context) (int64, error)
	CreateService(ctx context.Context, in repo.NewService) (*models.Service, error)
}

// Run loads items into an empty store. A store that already holds services is left alone.
// It returns the number of services created.
func Run(ctx context.Context, store Store, items []repo.NewService, l *slog.Logger) (int, error) {
	n, err := store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count services: %w", err)
	}
	if n > 0 {
		l.Info("seed_skipped", "existing", n)
		return 0, nil
	}

	for i, in := range items {
		if _, err := store.CreateService(ctx, in); err != nil {
			return i, fmt.Errorf("seed %q: %w", in.Title, err)
		}
	}
	l.Info("seed_completed", "created", len(items))
	return len(items), nil
}
