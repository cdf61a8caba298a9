package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"warrantly/internal/database"
	"warrantly/internal/domain"
)

// Each test gets its own named in-memory SQLite database; shared cache keeps
// it alive across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestBrandGetAll_SortedByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewBrandRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Siemens", "Arcelik", "Miele"} {
		require.NoError(t, repo.Create(ctx, &domain.Brand{Name: name, SupportEmail: "support@example.com"}))
	}

	brands, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, brands, 3)
	assert.Equal(t, "Arcelik", brands[0].Name)
	assert.Equal(t, "Miele", brands[1].Name)
	assert.Equal(t, "Siemens", brands[2].Name)
}

func TestProductGetAll_NewestPurchaseFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	old := domain.Product{BrandID: "b-1", Name: "Old", PurchaseDate: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC)}
	newer := domain.Product{BrandID: "b-1", Name: "Newer", PurchaseDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)}
	mid := domain.Product{BrandID: "b-2", Name: "Mid", PurchaseDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	for _, p := range []*domain.Product{&old, &newer, &mid} {
		require.NoError(t, repo.Create(ctx, p))
	}

	products, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Newer", products[0].Name)
	assert.Equal(t, "Mid", products[1].Name)
	assert.Equal(t, "Old", products[2].Name)
}

func TestProductDelete_CascadesToReviewsAndSupportRequests(t *testing.T) {
	db := newTestDB(t)
	products := NewProductRepository(db)
	reviews := NewReviewRepository(db)
	support := NewSupportRequestRepository(db)
	ctx := context.Background()

	p := domain.Product{BrandID: "b-1", Name: "Dishwasher", PurchaseDate: time.Now()}
	require.NoError(t, products.Create(ctx, &p))
	require.NoError(t, reviews.Create(ctx, &domain.Review{ProductID: p.ID, Rating: 4}))
	require.NoError(t, support.Create(ctx, &domain.SupportRequest{
		ProductID:        p.ID,
		IssueDescription: "Leaking door seal",
		Category:         domain.SupportCategoryMalfunction,
		Severity:         domain.SeverityMedium,
		Status:           domain.SupportStatusSent,
	}))

	found, err := products.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, found)

	left, err := reviews.GetByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
	reqs, err := support.GetByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, reqs)

	// second delete reports a miss
	found, err = products.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestProviderGetAll_RatingOrderAndDistrictFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewProviderRepository(db)
	ctx := context.Background()

	a := domain.ServiceProvider{Name: "A", Email: "a@x.com", District: domain.DistrictKadikoy, AverageRating: 3}
	b := domain.ServiceProvider{Name: "B", Email: "b@x.com", District: domain.DistrictSisli, AverageRating: 5}
	c := domain.ServiceProvider{Name: "C", Email: "c@x.com", District: domain.DistrictKadikoy, AverageRating: 4}
	for _, p := range []*domain.ServiceProvider{&a, &b, &c} {
		require.NoError(t, repo.Create(ctx, p))
	}

	all, err := repo.GetAll(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "B", all[0].Name)
	assert.Equal(t, "C", all[1].Name)

	kadikoy, err := repo.GetAll(ctx, domain.DistrictKadikoy)
	require.NoError(t, err)
	require.Len(t, kadikoy, 2)
	assert.Equal(t, "C", kadikoy[0].Name)
}

func TestProviderDelete_CascadesToReviews(t *testing.T) {
	db := newTestDB(t)
	providers := NewProviderRepository(db)
	reviews := NewProviderReviewRepository(db)
	ctx := context.Background()

	p := domain.ServiceProvider{Name: "Shop", Email: "shop@x.com", District: domain.DistrictFatih}
	require.NoError(t, providers.Create(ctx, &p))
	require.NoError(t, reviews.Create(ctx, &domain.ServiceProviderReview{ProviderID: p.ID, Rating: 5}))

	found, err := providers.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, found)

	left, err := reviews.GetByProvider(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestFavoriteToggle_FlipsMembership(t *testing.T) {
	db := newTestDB(t)
	repo := NewFavoriteRepository(db)
	ctx := context.Background()

	on, err := repo.Toggle(ctx, "user-1", domain.FavoriteProduct, "p-1")
	require.NoError(t, err)
	assert.True(t, on)

	exists, err := repo.Exists(ctx, "user-1", domain.FavoriteProduct, "p-1")
	require.NoError(t, err)
	assert.True(t, exists)

	// same target for another user is independent
	exists, err = repo.Exists(ctx, "user-2", domain.FavoriteProduct, "p-1")
	require.NoError(t, err)
	assert.False(t, exists)

	off, err := repo.Toggle(ctx, "user-1", domain.FavoriteProduct, "p-1")
	require.NoError(t, err)
	assert.False(t, off)

	favorites, err := repo.GetByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestProfileSave_Upserts(t *testing.T) {
	db := newTestDB(t)
	repo := NewProfileRepository(db)
	ctx := context.Background()

	first := domain.ClientProfile{UserID: "user-1", FullName: "Ayse Demir", Email: "ayse@example.com"}
	require.NoError(t, repo.Save(ctx, &first))

	second := domain.ClientProfile{UserID: "user-1", FullName: "Ayse Demir-Kaya", Email: "ayse@example.com", City: "Istanbul"}
	require.NoError(t, repo.Save(ctx, &second))

	got, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Ayse Demir-Kaya", got.FullName)
	assert.Equal(t, "Istanbul", got.City)

	var count int64
	require.NoError(t, db.Model(&domain.ClientProfile{}).Where("user_id = ?", "user-1").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestNotificationExistsAndMarkSent(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository(db)
	ctx := context.Background()

	n := domain.Notification{ProductID: "p-1", Type: domain.Notif90Days}
	require.NoError(t, repo.Create(ctx, &n))

	exists, err := repo.Exists(ctx, "p-1", domain.Notif90Days)
	require.NoError(t, err)
	assert.True(t, exists)
	exists, err = repo.Exists(ctx, "p-1", domain.Notif30Days)
	require.NoError(t, err)
	assert.False(t, exists)

	unsent, err := repo.GetUnsent(ctx)
	require.NoError(t, err)
	require.Len(t, unsent, 1)

	at := time.Now().UTC().Truncate(time.Second)
	ok, err := repo.MarkSent(ctx, n.ID, at)
	require.NoError(t, err)
	assert.True(t, ok)

	unsent, err = repo.GetUnsent(ctx)
	require.NoError(t, err)
	assert.Empty(t, unsent)

	ok, err = repo.MarkSent(ctx, "missing", at)
	require.NoError(t, err)
	assert.False(t, ok)
}
