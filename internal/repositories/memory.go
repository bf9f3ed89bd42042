package repositories

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"payflow/internal/models"
)

// MemoryStore keeps every record in process memory. It backs the demo mode
// and tests, and hands out copies so stored records cannot be mutated.
type MemoryStore struct {
	payments  *memoryTable[models.Payment]
	customers *memoryTable[models.Customer]
	apiKeys   *memoryTable[models.APIKey]
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		payments: newMemoryTable(EntityPayment, ErrPaymentNotFound,
			func(p models.Payment) string { return p.ID },
			func(p models.Payment) time.Time { return p.Created },
			func(p *models.Payment, t time.Time) { p.Created = t },
			clonePayment,
		),
		customers: newMemoryTable(EntityCustomer, ErrCustomerNotFound,
			func(c models.Customer) string { return c.ID },
			func(c models.Customer) time.Time { return c.Created },
			func(c *models.Customer, t time.Time) { c.Created = t },
			cloneCustomer,
		),
		apiKeys: newMemoryTable(EntityAPIKey, ErrAPIKeyNotFound,
			func(k models.APIKey) string { return k.ID },
			func(k models.APIKey) time.Time { return k.Created },
			func(k *models.APIKey, t time.Time) { k.Created = t },
			cloneAPIKey,
		),
	}
}

// Payments returns the payment table.
func (s *MemoryStore) Payments() PaymentRepository { return s.payments }

// Customers returns the customer table.
func (s *MemoryStore) Customers() CustomerRepository { return s.customers }

// APIKeys returns the API key table.
func (s *MemoryStore) APIKeys() APIKeyRepository { return s.apiKeys }

// Reset drops every record.
func (s *MemoryStore) Reset() {
	s.payments.reset()
	s.customers.reset()
	s.apiKeys.reset()
}

type memoryTable[T any] struct {
	mu       sync.RWMutex
	rows     map[string]T
	entity   string
	notFound error

	id         func(T) string
	created    func(T) time.Time
	setCreated func(*T, time.Time)
	clone      func(T) T
}

func newMemoryTable[T any](
	entity string,
	notFound error,
	id func(T) string,
	created func(T) time.Time,
	setCreated func(*T, time.Time),
	clone func(T) T,
) *memoryTable[T] {
	return &memoryTable[T]{
		rows:       make(map[string]T),
		entity:     entity,
		notFound:   notFound,
		id:         id,
		created:    created,
		setCreated: setCreated,
		clone:      clone,
	}
}

func (t *memoryTable[T]) GetAll(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError("get_all", t.entity, err)
	}

	t.mu.RLock()
	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		out = append(out, t.clone(row))
	}
	t.mu.RUnlock()

	slices.SortFunc(out, func(a, b T) int {
		if c := t.created(b).Compare(t.created(a)); c != 0 {
			return c
		}
		return strings.Compare(t.id(a), t.id(b))
	})
	return out, nil
}

func (t *memoryTable[T]) GetByID(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeError("get", t.entity, err)
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		return nil, storeError("get", t.entity, t.notFound)
	}
	cp := t.clone(row)
	return &cp, nil
}

func (t *memoryTable[T]) Create(ctx context.Context, row *T) error {
	if err := ctx.Err(); err != nil {
		return storeError("create", t.entity, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.id(*row)
	if _, exists := t.rows[id]; exists {
		return storeError("create", t.entity, ErrDuplicateID)
	}
	if t.created(*row).IsZero() {
		t.setCreated(row, time.Now().UTC())
	}
	t.rows[id] = t.clone(*row)
	return nil
}

func (t *memoryTable[T]) Update(ctx context.Context, row *T) error {
	if err := ctx.Err(); err != nil {
		return storeError("update", t.entity, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.id(*row)
	existing, ok := t.rows[id]
	if !ok {
		return storeError("update", t.entity, t.notFound)
	}
	updated := t.clone(*row)
	t.setCreated(&updated, t.created(existing))
	t.rows[id] = updated
	return nil
}

func (t *memoryTable[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return storeError("delete", t.entity, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return storeError("delete", t.entity, t.notFound)
	}
	delete(t.rows, id)
	return nil
}

func (t *memoryTable[T]) reset() {
	t.mu.Lock()
	t.rows = make(map[string]T)
	t.mu.Unlock()
}

func clonePayment(p models.Payment) models.Payment {
	if p.Customer != nil {
		ref := *p.Customer
		p.Customer = &ref
	}
	if p.PaymentMethod != nil {
		m := *p.PaymentMethod
		p.PaymentMethod = &m
	}
	if p.Metadata != nil {
		p.Metadata = maps.Clone(p.Metadata)
	}
	return p
}

func cloneCustomer(c models.Customer) models.Customer {
	if c.DefaultPaymentMethod != nil {
		m := *c.DefaultPaymentMethod
		c.DefaultPaymentMethod = &m
	}
	return c
}

func cloneAPIKey(k models.APIKey) models.APIKey {
	if k.LastUsed != nil {
		t := *k.LastUsed
		k.LastUsed = &t
	}
	return k
}
