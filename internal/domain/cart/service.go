// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"
)

// Service handles cart business logic. Every mutating operation reloads the
// session snapshot, applies the change and persists the result before
// returning, so reads always observe the last write.
type Service struct {
	snapshots SnapshotStore
}

// NewService creates a new cart service
func NewService(snapshots SnapshotStore) *Service {
	return &Service{snapshots: snapshots}
}

// Get retrieves the cart for a session, empty when none exists
func (s *Service) Get(ctx context.Context, sessionID string) (*Snapshot, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required for cart access")
	}
	return s.snapshots.Load(ctx, sessionID)
}

// AddItem adds a game to the cart. Adding an id already in the cart
// increments its quantity instead of duplicating the line; the incoming
// quantity field is ignored.
func (s *Service) AddItem(ctx context.Context, sessionID string, item Item) (*Snapshot, error) {
	snapshot, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range snapshot.Items {
		if snapshot.Items[i].ID == item.ID {
			snapshot.Items[i].Quantity++
			merged = true
			break
		}
	}

	if !merged {
		item.Quantity = 1
		snapshot.Items = append(snapshot.Items, item)
	}

	if err := s.snapshots.Save(ctx, sessionID, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// RemoveItem deletes a cart line by game id, a no-op when absent
func (s *Service) RemoveItem(ctx context.Context, sessionID, id string) (*Snapshot, error) {
	snapshot, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range snapshot.Items {
		if snapshot.Items[i].ID == id {
			snapshot.Items = append(snapshot.Items[:i], snapshot.Items[i+1:]...)
			break
		}
	}

	if err := s.snapshots.Save(ctx, sessionID, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// SetQuantity sets the quantity for a cart line. A quantity of zero or
// below removes the line. No upper bound is enforced. Absent ids are a
// no-op.
func (s *Service) SetQuantity(ctx context.Context, sessionID, id string, quantity int) (*Snapshot, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, id)
	}

	snapshot, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	for i := range snapshot.Items {
		if snapshot.Items[i].ID == id {
			snapshot.Items[i].Quantity = quantity
			break
		}
	}

	if err := s.snapshots.Save(ctx, sessionID, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// Clear empties the cart and persists the empty state
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session ID required for cart access")
	}
	return s.snapshots.Save(ctx, sessionID, &Snapshot{Items: []Item{}})
}

// ItemCount returns the total quantity across the cart
func (s *Service) ItemCount(ctx context.Context, sessionID string) (int, error) {
	snapshot, err := s.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return snapshot.TotalItems(), nil
}
