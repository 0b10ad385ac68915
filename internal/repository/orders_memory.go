// Package repository provides an in-memory order store for running
// without MongoDB.
package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/acaipro/storefront-service/internal/domain/model"
)

// MemoryOrdersRepository keeps orders in process memory. It backs the
// service when MongoDB is disabled; orders do not survive a restart.
type MemoryOrdersRepository struct {
	mu     sync.RWMutex
	orders map[string]model.Order
}

// NewMemoryOrdersRepository creates an empty in-memory orders repository.
func NewMemoryOrdersRepository() *MemoryOrdersRepository {
	return &MemoryOrdersRepository{
		orders: make(map[string]model.Order),
	}
}

// Insert stores a materialized order.
func (r *MemoryOrdersRepository) Insert(_ context.Context, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = *order
	return nil
}

// FindByID returns the order with the given id, or nil when not found.
func (r *MemoryOrdersRepository) FindByID(_ context.Context, id string) (*model.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

// List returns orders matching the filters, newest first.
func (r *MemoryOrdersRepository) List(_ context.Context, opts OrderQueryOptions) ([]model.Order, error) {
	r.mu.RLock()
	matched := make([]model.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if r.matches(order, opts) {
			matched = append(matched, order)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if opts.Skip > 0 {
		if opts.Skip >= len(matched) {
			return []model.Order{}, nil
		}
		matched = matched[opts.Skip:]
	}
	if opts.Limit > 0 && opts.Limit < len(matched) {
		matched = matched[:opts.Limit]
	}

	return matched, nil
}

// UpdateStatus sets the status of an order, returning nil when it does not exist.
func (r *MemoryOrdersRepository) UpdateStatus(_ context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	order.Status = status
	r.orders[id] = order
	return &order, nil
}

// Count returns the number of orders matching the filters.
func (r *MemoryOrdersRepository) Count(_ context.Context, opts OrderQueryOptions) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, order := range r.orders {
		if r.matches(order, opts) {
			count++
		}
	}
	return count, nil
}

// Stats aggregates totals and per-status counts over all orders.
func (r *MemoryOrdersRepository) Stats(_ context.Context) (*OrderStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &OrderStats{ByStatus: make(map[string]int64)}
	for _, order := range r.orders {
		stats.TotalOrders++
		stats.TotalRevenue += order.Total
		stats.ByStatus[string(order.Status)]++
	}
	stats.TotalRevenue = model.RoundPrice(stats.TotalRevenue)

	return stats, nil
}

func (r *MemoryOrdersRepository) matches(order model.Order, opts OrderQueryOptions) bool {
	if opts.Status != "" && order.Status != opts.Status {
		return false
	}
	if opts.StartTime != nil && order.CreatedAt.Before(*opts.StartTime) {
		return false
	}
	if opts.EndTime != nil && order.CreatedAt.After(*opts.EndTime) {
		return false
	}
	return true
}
