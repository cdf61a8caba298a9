package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"warrantly/internal/database"
	"warrantly/internal/domain"
	"warrantly/internal/repository"
	"warrantly/internal/warranty"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "warrantly.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	// Cleanup old data, children first
	log.Println("Cleaning old data...")
	for _, table := range []string{
		"notifications", "favorites", "support_requests", "reviews",
		"service_provider_reviews", "service_providers",
		"products", "brands", "client_profiles", "users",
	} {
		db.Exec("DELETE FROM " + table)
	}

	ctx := context.Background()

	// ================== DEMO USER ==================
	log.Println("Creating demo user...")
	users := repository.NewUserRepository(db)
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	demo := domain.User{
		Email:        "demo@warrantly.app",
		PasswordHash: string(hash),
		FullName:     "Ayse Demir",
	}
	if err := users.Create(ctx, &demo); err != nil {
		log.Fatal("seed user: ", err)
	}

	profiles := repository.NewProfileRepository(db)
	if err := profiles.Save(ctx, &domain.ClientProfile{
		UserID:      demo.ID,
		FullName:    "Ayse Demir",
		Email:       "demo@warrantly.app",
		PhoneNumber: "+90 532 123 4567",
		Address:     "Caferaga Mah. Moda Cad. 15",
		City:        "Istanbul",
		PostalCode:  "34710",
	}); err != nil {
		log.Fatal("seed profile: ", err)
	}

	// ================== BRANDS ==================
	log.Println("Creating brands...")
	brands := repository.NewBrandRepository(db)
	arcelik := domain.Brand{
		Name:         "Arcelik",
		SupportEmail: "destek@arcelik.com.tr",
		Website:      "https://www.arcelik.com.tr",
	}
	bosch := domain.Brand{
		Name:         "Bosch",
		SupportEmail: "support@bosch-home.com",
		Website:      "https://www.bosch-home.com",
		CountrySupportEmails: map[string]string{
			"DE": "service@bosch-home.de",
			"TR": "servis@bosch-home.com.tr",
		},
	}
	samsung := domain.Brand{
		Name:         "Samsung",
		SupportEmail: "support@samsung.com",
		Website:      "https://www.samsung.com",
	}
	for _, b := range []*domain.Brand{&arcelik, &bosch, &samsung} {
		if err := brands.Create(ctx, b); err != nil {
			log.Fatal("seed brand: ", err)
		}
	}

	// ================== PRODUCTS ==================
	log.Println("Creating products...")
	products := repository.NewProductRepository(db)

	now := time.Now().UTC()
	fridgePurchase := now.AddDate(-1, -2, 0)
	fridge := domain.Product{
		BrandID:            bosch.ID,
		Name:               "No-Frost Refrigerator",
		Model:              "KGN86AIDR",
		SerialNumber:       "BSH-2025-118233",
		Category:           "Kitchen",
		PurchaseDate:       fridgePurchase,
		WarrantyExpiration: warranty.DefaultExpiration(fridgePurchase),
	}

	// TV is close to expiry so a reminder sweep has something to pick up
	tvPurchase := now.AddDate(-3, 0, 45)
	tv := domain.Product{
		BrandID:            samsung.ID,
		Name:               "Crystal UHD TV",
		Model:              "UE55CU7100",
		Category:           "Living Room",
		PurchaseDate:       tvPurchase,
		WarrantyExpiration: warranty.DefaultExpiration(tvPurchase),
	}

	washerPurchase := now.AddDate(-2, -6, 0)
	extended := warranty.DefaultExpiration(washerPurchase).AddDate(2, 0, 0)
	washer := domain.Product{
		BrandID:            arcelik.ID,
		Name:               "Washing Machine",
		Model:              "9123 YK",
		Category:           "Bathroom",
		PurchaseDate:       washerPurchase,
		WarrantyExpiration: extended,
		HasExtension:       true,
		ExtendedExpirationDate: &extended,
		InsuranceProvider:      "Anadolu Sigorta",
		AgentName:              "Mehmet Kaya",
		PolicyNumber:           "AS-2024-77120",
		ExtensionCost:          149900,
	}
	for _, p := range []*domain.Product{&fridge, &tv, &washer} {
		if err := products.Create(ctx, p); err != nil {
			log.Fatal("seed product: ", err)
		}
	}

	// ================== REVIEWS ==================
	log.Println("Creating reviews...")
	reviews := repository.NewReviewRepository(db)
	for _, r := range []*domain.Review{
		{ProductID: fridge.ID, Rating: 5, Title: "Quiet and spacious",
			Content:   "Barely audible even at night.",
			Pros:      []string{"quiet", "large freezer"}, Cons: []string{"pricey"},
			Recommend: true},
		{ProductID: fridge.ID, Rating: 4, Title: "Solid",
			Content: "Ice maker is slower than expected.", Recommend: true},
		{ProductID: washer.ID, Rating: 3, Title: "Average",
			Content: "Long cycles, good results."},
	} {
		if err := reviews.Create(ctx, r); err != nil {
			log.Fatal("seed review: ", err)
		}
	}

	// ================== SERVICE PROVIDERS ==================
	log.Println("Creating service providers...")
	providers := repository.NewProviderRepository(db)
	providerReviews := repository.NewProviderReviewRepository(db)

	kadikoyRepair := domain.ServiceProvider{
		Name:              "Kadikoy Beyaz Esya Servisi",
		Email:             "info@kadikoyservis.com.tr",
		District:          domain.DistrictKadikoy,
		Address:           "Osmanaga Mah. Sogutlucesme Cad. 42",
		City:              "Istanbul",
		Phone:             "+90 216 330 1122",
		SupportedBrandIDs: []string{arcelik.ID, bosch.ID},
	}
	sisliElectronics := domain.ServiceProvider{
		Name:              "Sisli Elektronik Tamir",
		Email:             "servis@sislielektronik.com.tr",
		District:          domain.DistrictSisli,
		Address:           "Merkez Mah. Abide-i Hurriyet Cad. 108",
		City:              "Istanbul",
		Phone:             "+90 212 240 5566",
		SupportedBrandIDs: []string{samsung.ID},
	}
	for _, p := range []*domain.ServiceProvider{&kadikoyRepair, &sisliElectronics} {
		if err := providers.Create(ctx, p); err != nil {
			log.Fatal("seed provider: ", err)
		}
	}

	for _, r := range []*domain.ServiceProviderReview{
		{ProviderID: kadikoyRepair.ID, Rating: 5, Comment: "Fixed the drum bearing same day."},
		{ProviderID: kadikoyRepair.ID, Rating: 4, Comment: "Fair price, a bit late."},
		{ProviderID: sisliElectronics.ID, Rating: 5, Comment: "Panel replacement under warranty, no fuss."},
	} {
		if err := providerReviews.Create(ctx, r); err != nil {
			log.Fatal("seed provider review: ", err)
		}
	}
	// Persisted rollups match the reviews above
	if err := providers.UpdateAverageRating(ctx, kadikoyRepair.ID, 5); err != nil {
		log.Fatal("seed rating: ", err)
	}
	if err := providers.UpdateAverageRating(ctx, sisliElectronics.ID, 5); err != nil {
		log.Fatal("seed rating: ", err)
	}

	// ================== FAVORITES ==================
	log.Println("Creating favorites...")
	favorites := repository.NewFavoriteRepository(db)
	if _, err := favorites.Toggle(ctx, demo.ID, domain.FavoriteProduct, fridge.ID); err != nil {
		log.Fatal("seed favorite: ", err)
	}
	if _, err := favorites.Toggle(ctx, demo.ID, domain.FavoriteProvider, kadikoyRepair.ID); err != nil {
		log.Fatal("seed favorite: ", err)
	}

	log.Println("Seed completed!")
	log.Println("Demo account: demo@warrantly.app / demo1234")
}
