package repo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/Skotchmaster/storefront/internal/domain"
	"github.com/Skotchmaster/storefront/internal/hash"
	"github.com/Skotchmaster/storefront/internal/models"
)

// MemoryRepo keeps the catalog in process memory. Nothing survives a restart.
type MemoryRepo struct {
	mu       sync.RWMutex
	services map[string]models.Service
	users    map[string]models.User
	seq      int64
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		services: make(map[string]models.Service),
		users:    make(map[string]models.User),
	}
}

func (r *MemoryRepo) CreateService(ctx context.Context, in NewService) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	s := in.toModel(uuid.NewString(), r.seq)
	r.services[s.ID] = s

	out := detach(s)
	return &out, nil
}

func (r *MemoryRepo) GetAllServices(ctx context.Context) ([]models.Service, error) {
	r.mu.RLock()
	items := make([]models.Service, 0, len(r.services))
	for _, s := range r.services {
		items = append(items, detach(s))
	}
	r.mu.RUnlock()

	// map iteration is random; restore insertion order before the stable sort
	sortBySeq(items)
	domain.SortServices(items)
	return items, nil
}

func (r *MemoryRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.services[id]
	if !ok {
		return nil, ErrServiceNotFound
	}
	out := detach(s)
	return &out, nil
}

func (r *MemoryRepo) GetServicesByCategory(ctx context.Context, category string) ([]models.Service, error) {
	all, err := r.GetAllServices(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ByCategory(all, category), nil
}

func (r *MemoryRepo) SearchServices(ctx context.Context, query string) ([]models.Service, error) {
	all, err := r.GetAllServices(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Search(all, query), nil
}

func (r *MemoryRepo) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.services)), nil
}

func (r *MemoryRepo) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	hashed, err := hash.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return nil, ErrUserAlreadyExist
		}
	}

	u := models.User{ID: uuid.NewString(), Username: username, PasswordHash: hashed}
	r.users[u.ID] = u
	return &u, nil
}

func (r *MemoryRepo) GetUser(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &u, nil
}

func (r *MemoryRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, ErrUserNotFound
}

func sortBySeq(items []models.Service) {
	sort.Slice(items, func(i, j int) bool { return items[i].Seq < items[j].Seq })
}

// detach copies the slice and pointer fields so callers cannot write through to the map.
func detach(s models.Service) models.Service {
	s.Features = append(make([]string, 0, len(s.Features)), s.Features...)
	if s.Badge != nil {
		s.Badge = models.NewBadge(*s.Badge)
	}
	return s
}
