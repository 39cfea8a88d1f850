package domain

import (
	"math"
	"testing"

	"github.com/Skotchmaster/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func svc(title string, badge string, price int64) models.Service {
	return models.Service{
		ID:       title,
		Title:    title,
		Price:    price,
		Category: "Aimbot",
		Features: []string{},
		Badge:    models.NewBadge(badge),
	}
}

func titles(services []models.Service) []string {
	out := make([]string, 0, len(services))
	for _, s := range services {
		out = append(out, s.Title)
	}
	return out
}

func TestSortServices_BadgeBeforePrice(t *testing.T) {
	t.Parallel()

	services := []models.Service{
		svc("premium", models.BadgePremium, 9000),
		svc("vip", models.BadgeVIP, 2000),
	}
	SortServices(services)

	assert.Equal(t, []string{"vip", "premium"}, titles(services))
}

func TestSortServices_TierOrder(t *testing.T) {
	t.Parallel()

	services := []models.Service{
		svc("none", "", 100),
		svc("esp", models.BadgeESP, 100),
		svc("premium", models.BadgePremium, 100),
		svc("hot", models.BadgeHot, 100),
		svc("popular", models.BadgePopular, 100),
		svc("vip", models.BadgeVIP, 100),
		svc("unknown", "Legendary", 100),
	}
	SortServices(services)

	assert.Equal(t, []string{"vip", "popular", "hot", "premium", "esp", "none", "unknown"}, titles(services))
}

func TestSortServices_PriceThenInsertionOrder(t *testing.T) {
	t.Parallel()

	services := []models.Service{
		svc("cheap", models.BadgeHot, 100),
		svc("first", models.BadgeHot, 500),
		svc("second", models.BadgeHot, 500),
		svc("esp", models.BadgeESP, 700),
		svc("new", models.BadgeNew, 700),
	}
	SortServices(services)

	assert.Equal(t, []string{"first", "second", "cheap", "esp", "new"}, titles(services))
}

func TestMatchesSearch(t *testing.T) {
	t.Parallel()

	s := models.Service{
		Title:       "Elite Radar",
		Description: "Minimap overlay",
		Category:    "Vision",
		Features:    []string{"Wall Penetration", "Custom Markers"},
	}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "title", query: "elite", want: true},
		{name: "description", query: "MINIMAP", want: true},
		{name: "category", query: "visi", want: true},
		{name: "feature", query: "markers", want: true},
		{name: "empty", query: "", want: true},
		{name: "miss", query: "aimbot", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MatchesSearch(s, tt.query))
		})
	}
}

func TestCategoriesAndFilters(t *testing.T) {
	t.Parallel()

	services := []models.Service{
		{Title: "a", Category: "ESP", Badge: models.NewBadge(models.BadgeVIP)},
		{Title: "b", Category: "Aimbot", Badge: models.NewBadge(models.BadgePremium)},
		{Title: "c", Category: "esp", Badge: models.NewBadge(models.BadgeHot)},
		{Title: "d", Category: "Aimbot"},
	}

	assert.Equal(t, []string{"ESP", "Aimbot", "esp"}, Categories(services))
	assert.Equal(t, []string{"a", "c"}, titles(ByCategory(services, "Esp")))
	assert.Equal(t, []string{"a", "c"}, titles(Featured(services)))
	assert.True(t, IsAllCategories("ALL"))
	assert.True(t, IsAllCategories(""))
	assert.False(t, IsAllCategories("ESP"))
}

func TestPage(t *testing.T) {
	t.Parallel()

	services := []models.Service{{Title: "a"}, {Title: "b"}, {Title: "c"}}

	require.Equal(t, []string{"b", "c"}, titles(Page(services, 1, -1)))
	require.Equal(t, []string{"a", "b"}, titles(Page(services, 0, 2)))
	require.Equal(t, []string{"c"}, titles(Page(services, 2, 10)))
	require.Empty(t, Page(services, 3, 1))
	require.Empty(t, Page(services, 0, 0))
	require.Equal(t, []string{"b", "c"}, titles(Page(services, 1, math.MaxInt)))
	require.Empty(t, Page(services, math.MaxInt, math.MaxInt))
}
