// Package cart owns the persisted shopping cart. Every operation reloads the
// cart from the key-value store, applies one change and writes it back.
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/parse"
	"github.com/nikolayk812/storefront-cart/internal/port"
	"go.uber.org/zap"
)

// DefaultKey is the storage key used when none is configured.
const DefaultKey = "cart"

var errNoChange = errors.New("no change")

type Store struct {
	kv     port.KVStore
	key    string
	mu     *sync.Mutex
	logger *zap.Logger
}

type Option func(*Store)

func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

func New(kv port.KVStore, opts ...Option) (*Store, error) {
	if kv == nil {
		return nil, fmt.Errorf("kv store is nil")
	}

	s := &Store{
		kv:     kv,
		key:    DefaultKey,
		mu:     &sync.Mutex{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	return s, nil
}

// Key is the storage key this store reads and writes.
func (s *Store) Key() string {
	return s.key
}

// Session returns a store over the key namespaced by id. It shares the
// parent's lock and backend.
func (s *Store) Session(id string) *Store {
	if id == "" {
		return s
	}

	child := *s
	child.key = s.key + ":" + id
	return &child
}

// Load returns the persisted cart. Missing or unreadable state is an empty
// cart; only backend failures are returned.
func (s *Store) Load(ctx context.Context) (domain.Cart, error) {
	data, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return domain.Cart{}, nil
		}
		return domain.Cart{}, fmt.Errorf("kv.Get: %w", err)
	}

	return s.decode(data), nil
}

// Add puts one more unit of name in the cart. An existing line keeps its
// price; a new line is priced from price. An empty name does nothing.
func (s *Store) Add(ctx context.Context, name, price string) error {
	if name == "" {
		return nil
	}

	unitPrice := parse.Price(price)

	return s.mutate(ctx, func(c *domain.Cart) bool {
		return c.Add(name, unitPrice)
	})
}

// UpdateQuantity sets the quantity of the line at index from rawQty. A
// quantity that parses to zero removes the line. Out of range indexes do
// nothing.
func (s *Store) UpdateQuantity(ctx context.Context, index int, rawQty string) error {
	qty := parse.Quantity(rawQty)

	return s.mutate(ctx, func(c *domain.Cart) bool {
		return c.SetQuantity(index, qty)
	})
}

// Remove deletes the line at index. Out of range indexes do nothing.
func (s *Store) Remove(ctx context.Context, index int) error {
	return s.mutate(ctx, func(c *domain.Cart) bool {
		return c.Remove(index)
	})
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	return s.mutate(ctx, func(c *domain.Cart) bool {
		c.Clear()
		return true
	})
}

// mutate runs a read-modify-write. fn reports whether it changed the cart;
// nothing is written when it did not.
func (s *Store) mutate(ctx context.Context, fn func(c *domain.Cart) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if updater, ok := s.kv.(port.Updater); ok {
		err := updater.Update(ctx, s.key, func(current []byte) ([]byte, error) {
			c := s.decode(current)
			if !fn(&c) {
				return nil, errNoChange
			}
			return encode(c)
		})
		if err != nil && !errors.Is(err, errNoChange) {
			return fmt.Errorf("updater.Update: %w", err)
		}
		return nil
	}

	c, err := s.Load(ctx)
	if err != nil {
		return fmt.Errorf("s.Load: %w", err)
	}

	if !fn(&c) {
		return nil
	}

	data, err := encode(c)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("kv.Set: %w", err)
	}

	return nil
}

func (s *Store) decode(data []byte) domain.Cart {
	c, err := decode(data)
	if err != nil {
		s.logger.Warn("discarding unreadable cart state",
			zap.String("key", s.key),
			zap.Error(err))
		return domain.Cart{}
	}
	return c
}
