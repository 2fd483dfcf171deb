// internal/interfaces/http/handlers/handlers_test.go
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/gamestore-backend/internal/config"
	"github.com/your-org/gamestore-backend/internal/domain/cart"
	"github.com/your-org/gamestore-backend/internal/domain/catalog"
	"github.com/your-org/gamestore-backend/internal/domain/order"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router  *gin.Engine
	store   *catalog.Store
	carts   *cart.Service
	gateway *order.Gateway
}

func newTestEnv(t *testing.T, games []catalog.Game, pageSize int) *testEnv {
	t.Helper()

	cfg := &config.Config{}
	cfg.Catalog.PageSize = pageSize

	env := &testEnv{
		store:   catalog.NewStore(games, pageSize),
		carts:   cart.NewService(cart.NewMemorySnapshots()),
		gateway: order.NewGateway(config.OrderConfig{}),
	}

	catalogHandler := NewCatalogHandler(env.store, cfg)
	cartHandler := NewCartHandler(env.carts, env.store)
	orderHandler := NewOrderHandler(env.gateway, env.carts)
	geoHandler := NewGeoHandler()

	env.router = gin.New()
	env.router.GET("/games", catalogHandler.ListGames)
	env.router.GET("/games/:id", catalogHandler.GetGame)
	env.router.GET("/cart", cartHandler.GetCart)
	env.router.DELETE("/cart", cartHandler.ClearCart)
	env.router.GET("/cart/count", cartHandler.GetCartCount)
	env.router.POST("/cart/items", cartHandler.AddToCart)
	env.router.PUT("/cart/items/:id", cartHandler.UpdateCartItem)
	env.router.DELETE("/cart/items/:id", cartHandler.RemoveFromCart)
	env.router.GET("/orders", orderHandler.ListOrders)
	env.router.POST("/orders", orderHandler.SubmitOrder)
	env.router.GET("/orders/:id", orderHandler.GetOrder)
	env.router.GET("/wilayas", geoHandler.ListWilayas)

	return env
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "handler-test-session"})

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func storefrontGames() []catalog.Game {
	games := make([]catalog.Game, 0, 34)
	for i := 1; i <= 32; i++ {
		games = append(games, catalog.Game{
			ID:       fmt.Sprintf("%d", i),
			Title:    fmt.Sprintf("PC Game %d", i),
			Platform: catalog.PlatformPC,
		})
	}
	games = append(games,
		catalog.Game{
			ID: "33", Title: "Elden Ring", Platform: catalog.PlatformPC,
			OriginalPrice: 59.99, DiscountedPrice: 29.99, Discount: 50,
		},
		catalog.Game{ID: "34", Title: "Halo Infinite", Platform: catalog.PlatformXbox},
	)
	return games
}

func TestListGamesPagination(t *testing.T) {
	env := newTestEnv(t, storefrontGames(), 30)

	rec := env.do(t, http.MethodGet, "/games?platform=pc", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	pagination := data["pagination"].(map[string]any)
	assert.Equal(t, float64(2), pagination["total_pages"])
	assert.Equal(t, float64(33), pagination["total_count"])
	assert.Len(t, data["games"].([]any), 30)

	rec = env.do(t, http.MethodGet, "/games?platform=pc&page=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data = decodeBody(t, rec)["data"].(map[string]any)
	assert.Len(t, data["games"].([]any), 3)
}

func TestListGamesSearch(t *testing.T) {
	env := newTestEnv(t, storefrontGames(), 30)

	rec := env.do(t, http.MethodGet, "/games?search=elden", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	games := data["games"].([]any)
	require.Len(t, games, 1)
	assert.Equal(t, "Elden Ring", games[0].(map[string]any)["title"])

	query := data["query"].(map[string]any)
	assert.Equal(t, "elden", query["search"])
}

func TestListGamesConcurrentRequestsKeepTheirFilters(t *testing.T) {
	env := newTestEnv(t, storefrontGames(), 30)

	// gin runs handlers concurrently; a request's view must reflect its own
	// URL parameters, never another in-flight request's
	var wg sync.WaitGroup
	for _, platform := range []string{"pc", "xbox"} {
		for i := 0; i < 25; i++ {
			wg.Add(1)
			go func(platform string) {
				defer wg.Done()

				rec := env.do(t, http.MethodGet, "/games?platform="+platform, "")
				if !assert.Equal(t, http.StatusOK, rec.Code) {
					return
				}

				var body map[string]any
				if !assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)) {
					return
				}
				data := body["data"].(map[string]any)
				query := data["query"].(map[string]any)
				assert.Equal(t, platform, query["platform"])
				for _, g := range data["games"].([]any) {
					assert.Equal(t, platform, g.(map[string]any)["platform"])
				}
			}(platform)
		}
	}
	wg.Wait()
}

func TestListGamesRejectsInvalidPlatform(t *testing.T) {
	env := newTestEnv(t, storefrontGames(), 30)

	rec := env.do(t, http.MethodGet, "/games?platform=dreamcast", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetGameNotFound(t *testing.T) {
	env := newTestEnv(t, storefrontGames(), 30)

	rec := env.do(t, http.MethodGet, "/games/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/games/33", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Elden Ring", data["title"])
}

func TestCartLifecycle(t *testing.T) {
	env := newTestEnv(t, storefrontGames(), 30)

	// add the same game twice: one line, quantity 2
	rec := env.do(t, http.MethodPost, "/cart/items", `{"game_id":"33"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodPost, "/cart/items", `{"game_id":"33"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	items := data["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, float64(2), items[0].(map[string]any)["quantity"])

	totals := data["totals"].(map[string]any)
	assert.InDelta(t, 59.98, totals["subtotal"].(float64), 1e-9)
	assert.InDelta(t, 119.98, totals["original_total"].(float64), 1e-9)

	// update quantity
	rec = env.do(t, http.MethodPut, "/cart/items/33", `{"quantity":5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodGet, "/cart/count", "")
	require.Equal(t, http.StatusOK, rec.Code)
	count := decodeBody(t, rec)["data"].(map[string]any)["count"]
	assert.Equal(t, float64(5), count)

	// quantity zero removes the line
	rec = env.do(t, http.MethodPut, "/cart/items/33", `{"quantity":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	data = decodeBody(t, rec)["data"].(map[string]any)
	assert.Empty(t, data["items"].([]any))
}

func TestAddToCartUnknownGame(t *testing.T) {
	env := newTestEnv(t, storefrontGames(), 30)

	rec := env.do(t, http.MethodPost, "/cart/items", `{"game_id":"999"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClearCart(t *testing.T) {
	env := newTestEnv(t, storefrontGames(), 30)

	env.do(t, http.MethodPost, "/cart/items", `{"game_id":"33"}`)
	rec := env.do(t, http.MethodDelete, "/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/cart", "")
	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Empty(t, data["items"].([]any))
}

func validOrderBody() string {
	return `{"full_name":"Amine Bensalem","phone_number":"0550123456","email":"amine@example.com","wilaya":"16"}`
}

func TestSubmitOrderEmptyCartRejected(t *testing.T) {
	env := newTestEnv(t, storefrontGames(), 30)

	rec := env.do(t, http.MethodPost, "/orders", validOrderBody())
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, env.gateway.ListOrders())
}

func TestSubmitOrderValidation(t *testing.T) {
	env := newTestEnv(t, storefrontGames(), 30)
	env.do(t, http.MethodPost, "/cart/items", `{"game_id":"33"}`)

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"phone_number":"0550123456","wilaya":"16"}`},
		{"short name", `{"full_name":"A","phone_number":"0550123456","wilaya":"16"}`},
		{"short phone", `{"full_name":"Amine Bensalem","phone_number":"1234","wilaya":"16"}`},
		{"bad phone charset", `{"full_name":"Amine Bensalem","phone_number":"phone#number!","wilaya":"16"}`},
		{"bad email", `{"full_name":"Amine Bensalem","phone_number":"0550123456","email":"not-an-email","wilaya":"16"}`},
		{"unknown wilaya", `{"full_name":"Amine Bensalem","phone_number":"0550123456","wilaya":"99"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/orders", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	// none of the rejected submissions reached the gateway
	assert.Empty(t, env.gateway.ListOrders())
}

func TestSubmitOrderSuccessClearsCart(t *testing.T) {
	env := newTestEnv(t, storefrontGames(), 30)
	env.do(t, http.MethodPost, "/cart/items", `{"game_id":"33"}`)

	rec := env.do(t, http.MethodPost, "/orders", validOrderBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	orderID := data["id"].(string)
	assert.True(t, strings.HasPrefix(orderID, "ORD-"))
	assert.Equal(t, "pending", data["status"])
	assert.InDelta(t, 29.99, data["total_amount"].(float64), 1e-9)

	// cart is cleared after a successful order
	rec = env.do(t, http.MethodGet, "/cart", "")
	cartData := decodeBody(t, rec)["data"].(map[string]any)
	assert.Empty(t, cartData["items"].([]any))

	// and the order is retrievable
	rec = env.do(t, http.MethodGet, "/orders/"+orderID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetOrderNotFound(t *testing.T) {
	env := newTestEnv(t, storefrontGames(), 30)

	rec := env.do(t, http.MethodGet, "/orders/ORD-0-missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListWilayas(t *testing.T) {
	env := newTestEnv(t, storefrontGames(), 30)

	rec := env.do(t, http.MethodGet, "/wilayas", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].([]any)
	assert.Len(t, data, 58)
}
