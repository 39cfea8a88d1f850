package domain

import (
	"sort"
	"strings"

	"github.com/Skotchmaster/storefront/internal/models"
)

// SortServices orders services by badge tier, then price, highest first.
// The sort is stable, so equal keys keep the order they came in with.
func SortServices(services []models.Service) {
	sort.SliceStable(services, func(i, j int) bool {
		a, b := services[i], services[j]
		ta, tb := models.TierOf(a.Badge), models.TierOf(b.Badge)
		if ta != tb {
			return ta > tb
		}
		return a.Price > b.Price
	})
}

// MatchesSearch reports whether query occurs, ignoring case, in the title,
// description, category or any feature. An empty query matches everything.
func MatchesSearch(s models.Service, query string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(s.Title), q) ||
		strings.Contains(strings.ToLower(s.Description), q) ||
		strings.Contains(strings.ToLower(s.Category), q) {
		return true
	}
	for _, f := range s.Features {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func MatchesCategory(s models.Service, category string) bool {
	return strings.EqualFold(s.Category, category)
}

// IsAllCategories reports whether the category filter means "no filter".
func IsAllCategories(category string) bool {
	return category == "" || strings.EqualFold(category, "all")
}

func Search(services []models.Service, query string) []models.Service {
	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if MatchesSearch(s, query) {
			out = append(out, s)
		}
	}
	return out
}

func ByCategory(services []models.Service, category string) []models.Service {
	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if MatchesCategory(s, category) {
			out = append(out, s)
		}
	}
	return out
}

func Featured(services []models.Service) []models.Service {
	out := make([]models.Service, 0, len(services))
	for _, s := range services {
		if models.IsFeatured(s.Badge) {
			out = append(out, s)
		}
	}
	return out
}

// Categories returns the distinct category labels in order of first appearance.
func Categories(services []models.Service) []string {
	seen := make(map[string]struct{}, len(services))
	out := make([]string, 0)
	for _, s := range services {
		if _, ok := seen[s.Category]; ok {
			continue
		}
		seen[s.Category] = struct{}{}
		out = append(out, s.Category)
	}
	return out
}

// Page slices services[offset:offset+limit]. A negative limit means no limit.
func Page(services []models.Service, offset, limit int) []models.Service {
	if offset >= len(services) {
		return []models.Service{}
	}
	end := len(services)
	// compared as a difference so huge limits cannot overflow
	if limit >= 0 && limit < end-offset {
		end = offset + limit
	}
	return services[offset:end]
}
