package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/acaipro/storefront-service/config"
	"github.com/acaipro/storefront-service/internal/domain/dto"
	"github.com/acaipro/storefront-service/internal/repository"
	"github.com/acaipro/storefront-service/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testAdminPassword = "test-admin-pass"

// storefrontDeps bundles the wired services backing a test router.
type storefrontDeps struct {
	ordersRepo    *repository.MemoryOrdersRepository
	cartService   service.CartService
	authService   service.AdminAuthService
	storeRoutes   *StoreRoutes
	adminRoutes   *AdminRoutes
	healthHandler *HealthHandler
}

// newStorefrontDeps wires the full service stack on in-memory backends.
func newStorefrontDeps(t *testing.T) *storefrontDeps {
	t.Helper()

	catalogRepo := repository.NewCatalogRepository()
	sessions := service.NewShardedSessionStore(1000, time.Hour, 16)
	t.Cleanup(sessions.Stop)

	ordersRepo := repository.NewMemoryOrdersRepository()
	storeDefaults := config.StoreConfig{
		Name:             "Açaí Premium",
		DeliveryFee:      5.00,
		DeliveryLeadTime: 45 * time.Minute,
	}

	catalogService := service.NewCatalogService(catalogRepo)
	cartService := service.NewCartService(catalogRepo, sessions)
	settingsService := service.NewSettingsService(nil, storeDefaults)
	checkoutService := service.NewCheckoutService(sessions, settingsService, ordersRepo)
	orderService := service.NewOrderService(ordersRepo)

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	assert.NoError(t, err)
	authService := service.NewAdminAuthService(config.AuthConfig{
		AdminPasswordHash: string(hash),
		JWTSecretKey:      "test-secret",
		AccessTokenTTL:    time.Hour,
	})

	catalogHandler := NewCatalogHandler(catalogService)
	cartHandler := NewCartHandler(cartService, nil)
	checkoutHandler := NewCheckoutHandler(checkoutService, orderService, settingsService, nil)
	adminHandler := NewAdminHandler(authService, orderService, settingsService, nil, checkoutHandler)

	return &storefrontDeps{
		ordersRepo:    ordersRepo,
		cartService:   cartService,
		authService:   authService,
		storeRoutes:   NewStoreRoutes(catalogHandler, cartHandler, checkoutHandler),
		adminRoutes:   NewAdminRoutes(adminHandler, authService),
		healthHandler: NewHealthHandler(),
	}
}

func buildRouter(deps *storefrontDeps, cfg RouterConfig) *gin.Engine {
	return NewRouter(deps.storeRoutes, deps.adminRoutes, deps.healthHandler, cfg)
}

func setupStorefront(t *testing.T) (*gin.Engine, *storefrontDeps) {
	t.Helper()
	deps := newStorefrontDeps(t)
	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0 // not under test here
	return buildRouter(deps, cfg), deps
}

// doJSON performs a JSON request against the router.
func doJSON(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the data field of a success envelope into out.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var resp dto.SuccessResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	dataBytes, err := json.Marshal(resp.Data)
	assert.NoError(t, err)
	assert.NoError(t, json.Unmarshal(dataBytes, out))
}

// adminToken logs in and returns a bearer token.
func adminToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/admin/login", `{"password": "`+testAdminPassword+`"}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var login dto.AdminLoginResponse
	decodeData(t, w, &login)
	assert.NotEmpty(t, login.Token)
	return login.Token
}

func TestStorefrontFlow(t *testing.T) {
	router, _ := setupStorefront(t)

	// Add a configured açaí; the session id is minted and echoed
	w := doJSON(router, http.MethodPost, "/api/cart/items/acai",
		`{"base_id": "2", "size_id": "m", "topping_ids": ["5"]}`, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	sessionID := w.Header().Get(SessionHeader)
	assert.NotEmpty(t, sessionID)

	var added dto.AddItemResponse
	decodeData(t, w, &added)
	assert.NotEmpty(t, added.ItemID)
	assert.InDelta(t, 23.50, added.Cart.Subtotal, 0.001)

	session := map[string]string{SessionHeader: sessionID}

	// Add a drink to the same session
	w = doJSON(router, http.MethodPost, "/api/cart/items/drinks",
		`{"drink_id": "4", "quantity": 2}`, session)
	assert.Equal(t, http.StatusCreated, w.Code)
	decodeData(t, w, &added)
	assert.Len(t, added.Cart.Items, 2)
	assert.InDelta(t, 33.50, added.Cart.Subtotal, 0.001)

	// Submit the order
	w = doJSON(router, http.MethodPost, "/api/checkout", `{
		"customer": {
			"name": "Maria Silva",
			"phone": "11987654321",
			"address": {"street": "Rua das Flores", "number": "123", "neighborhood": "Centro"}
		}
	}`, session)
	assert.Equal(t, http.StatusCreated, w.Code)

	var order struct {
		ID     string  `json:"id"`
		Status string  `json:"status"`
		Total  float64 `json:"total"`
	}
	decodeData(t, w, &order)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "confirmed", order.Status)
	assert.InDelta(t, 38.50, order.Total, 0.001)

	// Cart is cleared after checkout
	w = doJSON(router, http.MethodGet, "/api/cart", "", session)
	assert.Equal(t, http.StatusOK, w.Code)
	var cart dto.CartResponse
	decodeData(t, w, &cart)
	assert.Empty(t, cart.Items)

	// The order can be tracked publicly
	w = doJSON(router, http.MethodGet, "/api/orders/"+order.ID, "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Admin advances it through the lifecycle
	token := adminToken(t, router)
	auth := map[string]string{"Authorization": "Bearer " + token}

	w = doJSON(router, http.MethodPatch, "/api/admin/orders/"+order.ID+"/status",
		`{"status": "preparing"}`, auth)
	assert.Equal(t, http.StatusOK, w.Code)

	// Skipping a step is rejected
	w = doJSON(router, http.MethodPatch, "/api/admin/orders/"+order.ID+"/status",
		`{"status": "completed"}`, auth)
	assert.Equal(t, http.StatusConflict, w.Code)
}
