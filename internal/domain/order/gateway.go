// internal/domain/order/gateway.go
package order

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/gamestore-backend/internal/config"
	"github.com/your-org/gamestore-backend/internal/domain/cart"
)

var (
	// ErrOrderNotFound is returned when an order id has no match
	ErrOrderNotFound = errors.New("order not found")

	// ErrSubmissionFailed is returned when the simulated transport fails.
	// No partial order is retained on failure.
	ErrSubmissionFailed = errors.New("order submission failed, please try again")
)

// Gateway accepts order submissions and serves lookups from an in-process
// list scoped to the running process. The transport is simulated: a
// configurable delay on each call and a configurable failure rate on
// submission.
type Gateway struct {
	mu     sync.RWMutex
	orders []Order

	submitDelay time.Duration
	lookupDelay time.Duration
	failureRate float64
}

// NewGateway creates an order gateway with the configured simulated
// transport behavior
func NewGateway(cfg config.OrderConfig) *Gateway {
	return &Gateway{
		submitDelay: cfg.SubmitDelay,
		lookupDelay: cfg.LookupDelay,
		failureRate: cfg.FailureRate,
	}
}

// SubmitOrder constructs an order from the form data, cart snapshot and
// total, assigns it a fresh id and timestamp with status pending, and
// appends it to the in-process list. The append is all-or-nothing: a
// simulated transport failure leaves no trace of the order.
func (g *Gateway) SubmitOrder(ctx context.Context, form FormData, items []cart.Item, totalAmount float64) (*Order, error) {
	if err := g.wait(ctx, g.submitDelay); err != nil {
		return nil, err
	}

	if g.failureRate > 0 && rand.Float64() < g.failureRate {
		return nil, ErrSubmissionFailed
	}

	snapshot := make([]cart.Item, len(items))
	copy(snapshot, items)

	order := Order{
		ID:          generateOrderID(),
		FormData:    form,
		Items:       snapshot,
		TotalAmount: totalAmount,
		OrderDate:   time.Now().UTC(),
		Status:      StatusPending,
	}

	g.mu.Lock()
	g.orders = append(g.orders, order)
	g.mu.Unlock()

	return &order, nil
}

// GetOrderByID looks up an order in the in-process list. Orders do not
// survive a process restart.
func (g *Gateway) GetOrderByID(ctx context.Context, id string) (*Order, error) {
	if err := g.wait(ctx, g.lookupDelay); err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	for i := range g.orders {
		if g.orders[i].ID == id {
			order := g.orders[i]
			return &order, nil
		}
	}
	return nil, ErrOrderNotFound
}

// ListOrders returns all orders accepted since process start
func (g *Gateway) ListOrders() []Order {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Order, len(g.orders))
	copy(out, g.orders)
	return out
}

// wait blocks for the simulated transport delay, honoring the request
// context deadline.
func (g *Gateway) wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// generateOrderID builds an id of the shape ORD-<millis>-<suffix>. The
// random suffix makes collisions improbable rather than impossible, which
// is acceptable for a mock gateway.
func generateOrderID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), suffix)
}
