package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"warrantly/internal/database"
	"warrantly/internal/middleware"
	"warrantly/internal/modules/analytics"
	"warrantly/internal/modules/auth"
	"warrantly/internal/modules/brand"
	"warrantly/internal/modules/favorite"
	"warrantly/internal/modules/notification"
	"warrantly/internal/modules/product"
	"warrantly/internal/modules/profile"
	"warrantly/internal/modules/provider"
	"warrantly/internal/modules/review"
	"warrantly/internal/modules/support"
	jwtsvc "warrantly/internal/pkg/jwt"
	"warrantly/internal/repository"
)

type E2ETestSuite struct {
	router *gin.Engine
	db     *gorm.DB
}

type TestResponse struct {
	Success bool         `json:"success"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Connect(fmt.Sprintf("file:e2e_%s?mode=memory&cache=shared", name))
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.Migrate(db), "Failed to migrate test database")

	userRepo := repository.NewUserRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	productRepo := repository.NewProductRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	supportRepo := repository.NewSupportRequestRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	providerReviewRepo := repository.NewProviderReviewRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	jwtService := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	authHandler := auth.NewHandler(auth.NewService(userRepo, jwtService))
	brandHandler := brand.NewHandler(brand.NewService(brandRepo))
	productHandler := product.NewHandler(product.NewService(productRepo, brandRepo, reviewRepo, supportRepo, false))
	reviewHandler := review.NewHandler(review.NewService(reviewRepo, productRepo))
	supportHandler := support.NewHandler(support.NewService(supportRepo, productRepo, brandRepo))
	providerHandler := provider.NewHandler(provider.NewService(providerRepo, providerReviewRepo))
	analyticsHandler := analytics.NewHandler(analytics.NewService(productRepo, brandRepo, reviewRepo, providerRepo, providerReviewRepo))

	hub := notification.NewHub()
	t.Cleanup(hub.Close)
	notificationHandler := notification.NewHandler(
		notification.NewService(notificationRepo, productRepo, hub, zerolog.Nop()),
		hub,
	)
	favoriteHandler := favorite.NewHandler(favoriteRepo)
	profileHandler := profile.NewHandler(profile.NewService(profileRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")

	authHandler.RegisterPublicRoutes(v1)
	brandHandler.RegisterPublicRoutes(v1)
	productHandler.RegisterPublicRoutes(v1)
	reviewHandler.RegisterPublicRoutes(v1)
	providerHandler.RegisterPublicRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.Auth(jwtService))
	{
		authHandler.RegisterRoutes(protected)
		brandHandler.RegisterRoutes(protected)
		productHandler.RegisterRoutes(protected)
		reviewHandler.RegisterRoutes(protected)
		supportHandler.RegisterRoutes(protected)
		providerHandler.RegisterRoutes(protected)
		analyticsHandler.RegisterRoutes(protected)
		notificationHandler.RegisterRoutes(protected)
		favoriteHandler.RegisterRoutes(protected)
		profileHandler.RegisterRoutes(protected)
	}

	return &E2ETestSuite{router: r, db: db}
}

func (s *E2ETestSuite) makeRequest(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	t.Helper()

	var resp TestResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response. Status: %d, Body: %s", w.Code, w.Body.String())
	}
	return &resp
}

func dataMap(t *testing.T, resp *TestResponse) map[string]interface{} {
	t.Helper()

	m, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "expected object data, got %T", resp.Data)
	return m
}

func dataList(t *testing.T, resp *TestResponse) []interface{} {
	t.Helper()

	if resp.Data == nil {
		return nil
	}
	l, ok := resp.Data.([]interface{})
	require.True(t, ok, "expected array data, got %T", resp.Data)
	return l
}

// registerUser creates an account and returns its token.
func (s *E2ETestSuite) registerUser(t *testing.T, email string) string {
	t.Helper()

	w := s.makeRequest("POST", "/api/v1/auth/register", map[string]interface{}{
		"email":     email,
		"password":  "Password123!",
		"full_name": "Test User",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, "registration failed: %s", w.Body.String())

	resp := parseResponse(t, w)
	token, _ := dataMap(t, resp)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func (s *E2ETestSuite) createBrand(t *testing.T, token string, body map[string]interface{}) string {
	t.Helper()

	w := s.makeRequest("POST", "/api/v1/brands", body, token)
	require.Equal(t, http.StatusCreated, w.Code, "brand creation failed: %s", w.Body.String())
	id, _ := dataMap(t, parseResponse(t, w))["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func (s *E2ETestSuite) createProduct(t *testing.T, token string, body map[string]interface{}) string {
	t.Helper()

	w := s.makeRequest("POST", "/api/v1/products", body, token)
	require.Equal(t, http.StatusCreated, w.Code, "product creation failed: %s", w.Body.String())
	id, _ := dataMap(t, parseResponse(t, w))["id"].(string)
	require.NotEmpty(t, id)
	return id
}

// =============================================================================
// Flow 1: Registration and authentication
// =============================================================================

func TestFlow1_RegistrationAndAuth(t *testing.T) {
	suite := setupTestSuite(t)

	var token string

	t.Run("POST /auth/register", func(t *testing.T) {
		token = suite.registerUser(t, "ayse@test.com")
	})

	t.Run("POST /auth/register duplicate email", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/auth/register", map[string]interface{}{
			"email":    "ayse@test.com",
			"password": "Password123!",
		}, "")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "EMAIL_TAKEN", parseResponse(t, w).Error.Code)
	})

	t.Run("POST /auth/login", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/auth/login", map[string]interface{}{
			"email":    "ayse@test.com",
			"password": "Password123!",
		}, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, dataMap(t, parseResponse(t, w))["token"])
	})

	t.Run("POST /auth/login wrong password", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/auth/login", map[string]interface{}{
			"email":    "ayse@test.com",
			"password": "WrongPassword1!",
		}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("GET /auth/me", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/auth/me", nil, token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ayse@test.com", dataMap(t, parseResponse(t, w))["email"])
	})

	t.Run("GET /auth/me without token", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/auth/me", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// Flow 2: Product lifecycle and warranty extension
// =============================================================================

func TestFlow2_ProductLifecycle(t *testing.T) {
	suite := setupTestSuite(t)
	token := suite.registerUser(t, "products@test.com")

	brandID := suite.createBrand(t, token, map[string]interface{}{
		"name":          "Bosch",
		"support_email": "support@bosch-home.com",
	})

	var productID string

	t.Run("POST /products derives the warranty expiration", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/products", map[string]interface{}{
			"brand_id":      brandID,
			"name":          "Refrigerator",
			"model":         "KGN86AIDR",
			"purchase_date": "2023-01-15T00:00:00Z",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		data := dataMap(t, parseResponse(t, w))
		productID = data["id"].(string)
		expiration, _ := data["warranty_expiration"].(string)
		assert.True(t, strings.HasPrefix(expiration, "2026-01-15"), "got %s", expiration)
	})

	t.Run("POST /products unknown brand", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/products", map[string]interface{}{
			"brand_id":      "missing-brand",
			"name":          "Ghost",
			"purchase_date": "2024-01-01T00:00:00Z",
		}, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "BRAND_NOT_FOUND", parseResponse(t, w).Error.Code)
	})

	t.Run("GET /products embeds brand and warranty status", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/products", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		products := dataList(t, parseResponse(t, w))
		require.Len(t, products, 1)

		entry := products[0].(map[string]interface{})
		brandObj := entry["brand"].(map[string]interface{})
		assert.Equal(t, "Bosch", brandObj["name"])
		warrantyObj := entry["warranty"].(map[string]interface{})
		assert.Contains(t, warrantyObj, "days_remaining")
		assert.Contains(t, warrantyObj, "label")
	})

	t.Run("POST /products/:id/extension rejects a non-extending date", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/v1/products/%s/extension", productID), map[string]interface{}{
			"extended_expiration_date": "2025-06-01T00:00:00Z",
			"insurance_provider":       "Anadolu Sigorta",
		}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "EXTENSION_TOO_EARLY", parseResponse(t, w).Error.Code)
	})

	t.Run("POST /products/:id/extension overrides the expiration", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/v1/products/%s/extension", productID), map[string]interface{}{
			"extended_expiration_date": "2028-01-15T00:00:00Z",
			"insurance_provider":       "Anadolu Sigorta",
			"policy_number":            "AS-2025-1001",
			"extension_cost":           149900,
		}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		data := dataMap(t, parseResponse(t, w))
		assert.Equal(t, true, data["has_extension"])
		expiration, _ := data["warranty_expiration"].(string)
		assert.True(t, strings.HasPrefix(expiration, "2028-01-15"), "got %s", expiration)
	})

	t.Run("DELETE /products/:id twice", func(t *testing.T) {
		w := suite.makeRequest("DELETE", "/api/v1/products/"+productID, nil, token)
		assert.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("DELETE", "/api/v1/products/"+productID, nil, token)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// =============================================================================
// Flow 3: Reviews and support requests
// =============================================================================

func TestFlow3_ReviewsAndSupport(t *testing.T) {
	suite := setupTestSuite(t)
	token := suite.registerUser(t, "support@test.com")

	brandID := suite.createBrand(t, token, map[string]interface{}{
		"name":          "Arcelik",
		"support_email": "destek@arcelik.com.tr",
		"country_support_emails": map[string]string{
			"DE": "service@arcelik.de",
		},
	})
	productID := suite.createProduct(t, token, map[string]interface{}{
		"brand_id":      brandID,
		"name":          "Washing Machine",
		"purchase_date": "2024-03-10T00:00:00Z",
	})

	t.Run("POST /products/:id/reviews", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/v1/products/%s/reviews", productID), map[string]interface{}{
			"rating":    5,
			"title":     "Great machine",
			"content":   "Quiet and efficient.",
			"pros":      []string{"quiet"},
			"recommend": true,
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	t.Run("GET /products/:id/reviews", func(t *testing.T) {
		w := suite.makeRequest("GET", fmt.Sprintf("/api/v1/products/%s/reviews", productID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, dataList(t, parseResponse(t, w)), 1)
	})

	var requestID string

	t.Run("POST /products/:id/support-requests lands in sent", func(t *testing.T) {
		w := suite.makeRequest("POST", fmt.Sprintf("/api/v1/products/%s/support-requests", productID), map[string]interface{}{
			"issue_description": "Drum stopped spinning after two months.",
			"category":          "malfunction",
			"severity":          "high",
			"country":           "DE",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		data := dataMap(t, parseResponse(t, w))
		requestID = data["id"].(string)
		assert.Equal(t, "sent", data["status"])
	})

	t.Run("GET /support-requests/:id/email uses the country address", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/support-requests/"+requestID+"/email", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		data := dataMap(t, parseResponse(t, w))
		assert.Equal(t, "service@arcelik.de", data["to"])
		body, _ := data["body"].(string)
		assert.Contains(t, body, "Washing Machine")
	})

	t.Run("PATCH /support-requests/:id/status", func(t *testing.T) {
		w := suite.makeRequest("PATCH", "/api/v1/support-requests/"+requestID+"/status", map[string]interface{}{
			"status": "resolved",
		}, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "resolved", dataMap(t, parseResponse(t, w))["status"])
	})

	t.Run("PATCH /support-requests/:id/status rejects unknown status", func(t *testing.T) {
		w := suite.makeRequest("PATCH", "/api/v1/support-requests/"+requestID+"/status", map[string]interface{}{
			"status": "escalated",
		}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// Flow 4: Service providers and analytics
// =============================================================================

func TestFlow4_ProvidersAndAnalytics(t *testing.T) {
	suite := setupTestSuite(t)
	token := suite.registerUser(t, "providers@test.com")

	t.Run("POST /providers rejects unknown district", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/providers", map[string]interface{}{
			"name":     "Atlantis Repairs",
			"email":    "info@atlantis.example",
			"address":  "1 Nowhere St",
			"city":     "Istanbul",
			"district": "Atlantis",
		}, token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	var providerID string

	t.Run("POST /providers", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/providers", map[string]interface{}{
			"name":     "Kadikoy Beyaz Esya Servisi",
			"email":    "info@kadikoyservis.com.tr",
			"address":  "Osmanaga Mah. 42",
			"city":     "Istanbul",
			"district": "Kadikoy",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		providerID = dataMap(t, parseResponse(t, w))["id"].(string)
	})

	t.Run("POST /providers/:id/reviews recomputes the rating", func(t *testing.T) {
		for _, rating := range []int{5, 4} {
			w := suite.makeRequest("POST", fmt.Sprintf("/api/v1/providers/%s/reviews", providerID), map[string]interface{}{
				"rating":  rating,
				"comment": "Service visit",
			}, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := suite.makeRequest("GET", "/api/v1/providers/"+providerID, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		data := dataMap(t, parseResponse(t, w))
		// persisted rollup rounds 4.5 up, the derived mean keeps one decimal
		assert.EqualValues(t, 5, data["average_rating"])
		assert.EqualValues(t, 4.5, data["derived_average"])
	})

	t.Run("GET /providers?district=", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/providers?district=Kadikoy", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, dataList(t, parseResponse(t, w)), 1)

		w = suite.makeRequest("GET", "/api/v1/providers?district=Fatih", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, dataList(t, parseResponse(t, w)))
	})

	t.Run("GET /districts", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/districts", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, dataList(t, parseResponse(t, w)), 10)
	})

	t.Run("GET /analytics", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/analytics", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		data := dataMap(t, parseResponse(t, w))
		assert.Contains(t, data, "top_providers")
		assert.Contains(t, data, "stats")
	})
}

// =============================================================================
// Flow 5: Favorites, profile and warranty reminders
// =============================================================================

func TestFlow5_FavoritesProfileAndReminders(t *testing.T) {
	suite := setupTestSuite(t)
	token := suite.registerUser(t, "reminders@test.com")

	brandID := suite.createBrand(t, token, map[string]interface{}{
		"name":          "Samsung",
		"support_email": "support@samsung.com",
	})

	// warranty runs out in ~20 days, inside the 30-day reminder window
	purchase := time.Now().UTC().AddDate(-3, 0, 20)
	productID := suite.createProduct(t, token, map[string]interface{}{
		"brand_id":      brandID,
		"name":          "TV",
		"purchase_date": purchase.Format(time.RFC3339),
	})

	t.Run("POST /favorites toggles", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/favorites", map[string]interface{}{
			"type":      "product",
			"target_id": productID,
		}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, true, dataMap(t, parseResponse(t, w))["favorited"])

		w = suite.makeRequest("GET", fmt.Sprintf("/api/v1/favorites/check?type=product&target_id=%s", productID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, true, dataMap(t, parseResponse(t, w))["favorited"])

		w = suite.makeRequest("POST", "/api/v1/favorites", map[string]interface{}{
			"type":      "product",
			"target_id": productID,
		}, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, dataMap(t, parseResponse(t, w))["favorited"])
	})

	t.Run("PUT /profile upserts", func(t *testing.T) {
		w := suite.makeRequest("PUT", "/api/v1/profile", map[string]interface{}{
			"full_name": "Ayse Demir",
			"email":     "ayse@example.com",
		}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = suite.makeRequest("PUT", "/api/v1/profile", map[string]interface{}{
			"full_name": "Ayse Demir-Kaya",
			"email":     "ayse@example.com",
			"city":      "Istanbul",
		}, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = suite.makeRequest("GET", "/api/v1/profile", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		data := dataMap(t, parseResponse(t, w))
		assert.Equal(t, "Ayse Demir-Kaya", data["full_name"])
		assert.Equal(t, "Istanbul", data["city"])
	})

	t.Run("POST /notifications/sweep creates and dispatches the reminder", func(t *testing.T) {
		w := suite.makeRequest("POST", "/api/v1/notifications/sweep", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		data := dataMap(t, parseResponse(t, w))
		assert.EqualValues(t, 1, data["created"])

		// a second sweep finds nothing new
		w = suite.makeRequest("POST", "/api/v1/notifications/sweep", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 0, dataMap(t, parseResponse(t, w))["created"])
	})

	t.Run("GET /products/:id/notifications", func(t *testing.T) {
		w := suite.makeRequest("GET", fmt.Sprintf("/api/v1/products/%s/notifications", productID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		notifications := dataList(t, parseResponse(t, w))
		require.Len(t, notifications, 1)
		entry := notifications[0].(map[string]interface{})
		assert.Equal(t, "30days", entry["type"])
		assert.Equal(t, true, entry["sent"])
	})

	t.Run("GET /notifications/unsent is empty after the sweep", func(t *testing.T) {
		w := suite.makeRequest("GET", "/api/v1/notifications/unsent", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, dataList(t, parseResponse(t, w)))
	})
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}
