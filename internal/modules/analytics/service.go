package analytics

import (
	"context"
	"math"
	"sort"
	"time"

	"warrantly/internal/domain"
	"warrantly/internal/warranty"
)

// topN caps every leaderboard.
const topN = 5

type BrandProductCount struct {
	BrandID      string `json:"brand_id"`
	BrandName    string `json:"brand_name"`
	ProductCount int    `json:"product_count"`
}

// RatedItem is a leaderboard entry for rating-based top lists. AverageRating
// is the on-demand mean rounded to one decimal.
type RatedItem struct {
	ID            string  `json:"id"`
	Label         string  `json:"label"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

type GlobalStats struct {
	TotalProducts        int `json:"total_products"`
	TotalProviders       int `json:"total_providers"`
	AverageDaysRemaining int `json:"average_days_remaining"`
}

type Summary struct {
	TopBrands    []BrandProductCount `json:"top_brands"`
	TopProviders []RatedItem         `json:"top_providers"`
	TopProducts  []RatedItem         `json:"top_products"`
	Stats        GlobalStats         `json:"stats"`
}

type Service struct {
	products        ProductGate
	brands          BrandGate
	reviews         ReviewGate
	providers       ProviderGate
	providerReviews ProviderReviewGate
}

func NewService(products ProductGate, brands BrandGate, reviews ReviewGate, providers ProviderGate, providerReviews ProviderReviewGate) *Service {
	return &Service{
		products:        products,
		brands:          brands,
		reviews:         reviews,
		providers:       providers,
		providerReviews: providerReviews,
	}
}

// Summary computes all analytics figures over the current entity set.
func (s *Service) Summary(ctx context.Context, now time.Time) (*Summary, error) {
	products, err := s.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	brands, err := s.brands.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviews.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	providers, err := s.providers.GetAll(ctx, "")
	if err != nil {
		return nil, err
	}
	providerReviews, err := s.providerReviews.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	brandNames := make(map[string]string, len(brands))
	for _, b := range brands {
		brandNames[b.ID] = b.Name
	}

	return &Summary{
		TopBrands:    topBrands(products, brandNames),
		TopProviders: topProviders(providers, providerReviews),
		TopProducts:  topProducts(products, reviews, brandNames),
		Stats:        globalStats(products, providers, now),
	}, nil
}

// topBrands groups products by brand and keeps the five biggest groups.
// Count-based, so brands without reviews still appear.
func topBrands(products []domain.Product, brandNames map[string]string) []BrandProductCount {
	counts := make(map[string]int)
	for _, p := range products {
		counts[p.BrandID]++
	}

	out := make([]BrandProductCount, 0, len(counts))
	for brandID, count := range counts {
		out = append(out, BrandProductCount{
			BrandID:      brandID,
			BrandName:    brandNames[brandID],
			ProductCount: count,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ProductCount != out[j].ProductCount {
			return out[i].ProductCount > out[j].ProductCount
		}
		return out[i].BrandName < out[j].BrandName
	})
	return truncate(out)
}

func topProviders(providers []domain.ServiceProvider, reviews []domain.ServiceProviderReview) []RatedItem {
	ratings := make(map[string][]int)
	for _, rv := range reviews {
		ratings[rv.ProviderID] = append(ratings[rv.ProviderID], rv.Rating)
	}

	out := make([]RatedItem, 0, len(providers))
	for _, p := range providers {
		rs := ratings[p.ID]
		if len(rs) == 0 {
			// Rating-based list: unreviewed providers are excluded.
			continue
		}
		out = append(out, RatedItem{
			ID:            p.ID,
			Label:         p.Name,
			AverageRating: mean1(rs),
			ReviewCount:   len(rs),
		})
	}

	sortRated(out)
	return truncate(out)
}

func topProducts(products []domain.Product, reviews []domain.Review, brandNames map[string]string) []RatedItem {
	ratings := make(map[string][]int)
	for _, rv := range reviews {
		ratings[rv.ProductID] = append(ratings[rv.ProductID], rv.Rating)
	}

	out := make([]RatedItem, 0, len(products))
	for _, p := range products {
		rs := ratings[p.ID]
		if len(rs) == 0 {
			continue
		}

		label := p.Name
		if name := brandNames[p.BrandID]; name != "" {
			label = p.Name + " (" + name + ")"
		}

		out = append(out, RatedItem{
			ID:            p.ID,
			Label:         label,
			AverageRating: mean1(rs),
			ReviewCount:   len(rs),
		})
	}

	sortRated(out)
	return truncate(out)
}

// globalStats averages each product's display days remaining (clamped to
// zero). The denominator is floored at 1 so an empty set averages to 0.
func globalStats(products []domain.Product, providers []domain.ServiceProvider, now time.Time) GlobalStats {
	sum := 0
	for _, p := range products {
		sum += warranty.ComputeStatus(p.WarrantyExpiration, now).DisplayDays
	}

	denom := len(products)
	if denom < 1 {
		denom = 1
	}

	return GlobalStats{
		TotalProducts:        len(products),
		TotalProviders:       len(providers),
		AverageDaysRemaining: int(math.Round(float64(sum) / float64(denom))),
	}
}

func sortRated(items []RatedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].AverageRating != items[j].AverageRating {
			return items[i].AverageRating > items[j].AverageRating
		}
		if items[i].ReviewCount != items[j].ReviewCount {
			return items[i].ReviewCount > items[j].ReviewCount
		}
		return items[i].Label < items[j].Label
	})
}

func truncate[T any](items []T) []T {
	if len(items) > topN {
		return items[:topN]
	}
	return items
}

func mean1(ratings []int) float64 {
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	return math.Round(mean*10) / 10
}
