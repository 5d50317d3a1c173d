package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panchald9/roospark/configs"
	"github.com/panchald9/roospark/entity"
	"github.com/panchald9/roospark/repository"
	"github.com/panchald9/roospark/routes"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &configs.Config{
		DBDriver:  "memory",
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
	}
	store, err := repository.NewMemStorage()
	require.NoError(t, err)

	r := gin.New()
	routes.RegisterRoutes(r, cfg, store)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/admin/login", gin.H{"username": "admin", "password": "admin123"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)
	return body.Token
}

func TestPublicMenuEndpoints(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/menu-items", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []entity.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 10)

	w = doJSON(r, http.MethodGet, "/api/menu-items/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/menu-items/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminEndpointsRequireToken(t *testing.T) {
	r := setupRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/menu-items"},
		{http.MethodPut, "/api/menu-items/1"},
		{http.MethodDelete, "/api/menu-items/1"},
		{http.MethodGet, "/api/bookings"},
		{http.MethodGet, "/api/orders"},
		{http.MethodPatch, "/api/orders/1/status"},
		{http.MethodGet, "/api/admin/stats"},
		{http.MethodGet, "/api/admin/me"},
	} {
		w := doJSON(r, tc.method, tc.path, nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestMenuItemAdminFlow(t *testing.T) {
	r := setupRouter(t)
	token := login(t, r)

	w := doJSON(r, http.MethodPost, "/api/menu-items", gin.H{
		"name":        "Masala Dosa",
		"description": "Crispy rice crepe with spiced potato filling",
		"price":       299,
		"category":    "indian",
		"diet":        "veg",
		"spice":       "medium",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created entity.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, uint(11), created.ID)
	assert.True(t, created.Available)
	assert.Nil(t, created.Image)

	// partial update — เปลี่ยนราคาอย่างเดียว
	w = doJSON(r, http.MethodPut, "/api/menu-items/11", gin.H{"price": 349}, token)
	require.Equal(t, http.StatusOK, w.Code)
	var updated entity.MenuItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, int64(349), updated.Price)
	assert.Equal(t, "Masala Dosa", updated.Name)

	w = doJSON(r, http.MethodDelete, "/api/menu-items/11", nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/menu-items/11", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderFlow(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/orders", gin.H{
		"customerName":  "Priya",
		"customerEmail": "priya@example.com",
		"customerPhone": "9876543210",
		"orderType":     "pickup",
		"items":         []gin.H{{"menuItemId": 1, "quantity": 2}},
		"totalAmount":   1298,
		"status":        "completed", // ต้องถูกเพิกเฉย
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var order entity.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, entity.OrderStatusPending, order.Status)

	token := login(t, r)

	w = doJSON(r, http.MethodPatch, "/api/orders/1/status", gin.H{"status": "completed"}, token)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, entity.OrderStatusCompleted, order.Status)

	w = doJSON(r, http.MethodPatch, "/api/orders/999/status", gin.H{"status": "ready"}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodPatch, "/api/orders/1/status", gin.H{"status": "vanished"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeliveryOrderValidation(t *testing.T) {
	r := setupRouter(t)

	body := gin.H{
		"customerName":  "Arjun",
		"customerEmail": "arjun@example.com",
		"customerPhone": "9000000000",
		"orderType":     "delivery",
		"items":         []gin.H{{"menuItemId": 3, "quantity": 1}},
		"totalAmount":   599,
	}
	w := doJSON(r, http.MethodPost, "/api/orders", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code, "delivery without address must fail")

	body["deliveryAddress"] = "42 Park Street"
	w = doJSON(r, http.MethodPost, "/api/orders", body, "")
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBookingAndReviewFlow(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/bookings", gin.H{
		"guestName":   "Nina",
		"guestEmail":  "nina@example.com",
		"guestPhone":  "8123456789",
		"guestCount":  4,
		"bookingDate": "2026-09-01",
		"bookingTime": "19:30",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/reviews", gin.H{
		"customerName": "Ann",
		"rating":       5,
		"comment":      "Great",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	// rating นอกช่วง 1–5
	w = doJSON(r, http.MethodPost, "/api/reviews", gin.H{
		"customerName": "Bad",
		"rating":       6,
		"comment":      "nope",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodGet, "/api/reviews", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var reviews []entity.Review
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	assert.Len(t, reviews, 4) // seed 3 + ของ Ann
}

func TestAdminStatsEndpoint(t *testing.T) {
	r := setupRouter(t)
	token := login(t, r)

	w := doJSON(r, http.MethodGet, "/api/admin/stats", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var stats map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.EqualValues(t, 10, stats["totalMenuItems"])
	assert.EqualValues(t, 5, stats["vegItems"])
	assert.EqualValues(t, 5, stats["nonVegItems"])
	assert.InDelta(t, 5.0, stats["averageRating"].(float64), 0.001)
}

func TestAdminMe(t *testing.T) {
	r := setupRouter(t)
	token := login(t, r)

	w := doJSON(r, http.MethodGet, "/api/admin/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var admin entity.AdminUser
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &admin))
	assert.Equal(t, "admin", admin.Username)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestHealth(t *testing.T) {
	r := setupRouter(t)
	w := doJSON(r, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}
