// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/gamestore-backend/internal/domain/cart"
	"github.com/your-org/gamestore-backend/internal/domain/geo"
	"github.com/your-org/gamestore-backend/internal/domain/order"
)

var (
	phoneCharset = regexp.MustCompile(`^[0-9+\-\s()]+$`)
	phoneDigits  = regexp.MustCompile(`[0-9]`)
)

// OrderHandler handles order submission and lookup endpoints
type OrderHandler struct {
	gateway     *order.Gateway
	cartService *cart.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(gateway *order.Gateway, cartService *cart.Service) *OrderHandler {
	return &OrderHandler{
		gateway:     gateway,
		cartService: cartService,
	}
}

// SubmitOrder handles POST /orders. Field validation and the non-empty-cart
// invariant live here, at the presentation boundary; the gateway itself
// stays permissive.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	var form order.FormData
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if fieldErrors := validateOrderForm(&form); len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":        "Order validation failed",
			"field_errors": fieldErrors,
		})
		return
	}

	snapshot, err := h.cartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	if len(snapshot.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Your cart is empty. Please add items before placing an order.",
		})
		return
	}

	// Total is computed server-side from the session cart, never trusted
	// from the client.
	created, err := h.gateway.SubmitOrder(c.Request.Context(), form, snapshot.Items, snapshot.Subtotal())
	if err != nil {
		if errors.Is(err, order.ErrSubmissionFailed) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to place order",
		})
		return
	}

	// Clear cart after successful order. The order already exists, so a
	// failed clear is logged rather than surfaced.
	if err := h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
		logrus.WithError(err).WithField("order_id", created.ID).Warn("Failed to clear cart after order")
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    created,
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	found, err := h.gateway.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    found,
	})
}

// ListOrders handles GET /orders - orders accepted since process start
func (h *OrderHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    h.gateway.ListOrders(),
	})
}

// validateOrderForm applies the per-field checks the binding tags cannot
// express. Returns a field -> message map, empty when the form is valid.
func validateOrderForm(form *order.FormData) map[string]string {
	fieldErrors := make(map[string]string)

	if !phoneCharset.MatchString(form.PhoneNumber) {
		fieldErrors["phone_number"] = "Please enter a valid phone number"
	} else if len(phoneDigits.FindAllString(form.PhoneNumber, -1)) < 9 {
		fieldErrors["phone_number"] = "Phone number must be at least 9 digits"
	}

	if _, err := geo.ByCode(form.Wilaya); err != nil {
		fieldErrors["wilaya"] = "Please select a valid wilaya"
	}

	return fieldErrors
}

// getOrCreateSessionID gets session ID from cookie or creates a new one
func (h *OrderHandler) getOrCreateSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
		c.SetCookie("session_id", sessionID, 30*86400, "/", "", false, true)
	}

	return sessionID
}
