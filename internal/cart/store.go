package cart

import (
	"context"
	"encoding/json"

	"github.com/rabbinur71/quickbite-frontend/internal/localstore"
)

const blobKeyPrefix = "quickbite_cart:"

// Store holds one browser session's cart. It is rehydrated from the durable
// store on Open and writes the whole state back after every mutation, so a
// reload always sees the last completed transition. Two sessions never share
// a key; two tabs on the same session race last-writer-wins.
type Store struct {
	db    localstore.Store
	key   string
	state State
}

// Open loads the persisted cart for the given session. A missing or corrupt
// blob silently yields an empty cart; corruption is not surfaced to the user.
func Open(ctx context.Context, db localstore.Store, sessionID string) *Store {
	s := &Store{
		db:  db,
		key: blobKeyPrefix + sessionID,
	}

	blob, err := db.Get(ctx, s.key)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(blob, &s.state); err != nil {
		s.state = State{}
	}
	return s
}

func (s *Store) persist(ctx context.Context) error {
	blob, err := json.Marshal(s.state)
	if err != nil {
		return err
	}
	return s.db.Set(ctx, s.key, blob)
}

func (s *Store) findIndex(key Key) int {
	for i, item := range s.state.Items {
		if item.Key() == key {
			return i
		}
	}
	return -1
}

// Add merges the line into the cart. When a line with the same (id, type)
// already exists only its quantity grows; name, image and price keep their
// first-written values. Malformed lines are rejected with ErrInvalidLine.
func (s *Store) Add(ctx context.Context, line Line) error {
	if err := validateLine(line); err != nil {
		return err
	}

	if i := s.findIndex(line.Key()); i > -1 {
		existing := s.state.Items[i]
		s.state.Items[i] = existing.withCount(existing.Count() + line.Count())
	} else {
		s.state.Items = append(s.state.Items, line)
	}
	return s.persist(ctx)
}

// UpdateQuantity sets the matching line's quantity. A quantity of zero or
// less removes the line. Unknown keys are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, id int, t LineType, quantity int) error {
	i := s.findIndex(Key{ID: id, Type: t})
	if i < 0 {
		return nil
	}

	if quantity <= 0 {
		s.state.Items = append(s.state.Items[:i], s.state.Items[i+1:]...)
	} else {
		s.state.Items[i] = s.state.Items[i].withCount(quantity)
	}
	return s.persist(ctx)
}

// Remove deletes the matching line. Unknown keys are a no-op.
func (s *Store) Remove(ctx context.Context, id int, t LineType) error {
	i := s.findIndex(Key{ID: id, Type: t})
	if i < 0 {
		return nil
	}
	s.state.Items = append(s.state.Items[:i], s.state.Items[i+1:]...)
	return s.persist(ctx)
}

// Clear empties the cart. The sidebar flag is left as-is.
func (s *Store) Clear(ctx context.Context) error {
	s.state.Items = nil
	return s.persist(ctx)
}

func (s *Store) Toggle(ctx context.Context) error {
	s.state.IsOpen = !s.state.IsOpen
	return s.persist(ctx)
}

func (s *Store) SetOpen(ctx context.Context, open bool) error {
	s.state.IsOpen = open
	return s.persist(ctx)
}

// Items returns the lines in insertion order.
func (s *Store) Items() []Line {
	items := make([]Line, len(s.state.Items))
	copy(items, s.state.Items)
	return items
}

func (s *Store) IsOpen() bool {
	return s.state.IsOpen
}

// TotalPrice recomputes the grand total on every call; nothing is cached.
func (s *Store) TotalPrice() float64 {
	var total float64
	for _, item := range s.state.Items {
		total += item.UnitPrice() * float64(item.Count())
	}
	return total
}

// TotalItems is the sum of all line quantities.
func (s *Store) TotalItems() int {
	var count int
	for _, item := range s.state.Items {
		count += item.Count()
	}
	return count
}
