package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

type LineType string

const (
	LineMenu    LineType = "menu"
	LineSpecial LineType = "special"
)

var ErrInvalidLine = errors.New("invalid cart line")

// Key identifies a line inside a cart. At most one line exists per key;
// adding the same key again merges quantities instead of duplicating.
type Key struct {
	ID   int
	Type LineType
}

// Line is one cart entry: either a MenuLine or a SpecialLine. Name, image
// and price are display copies captured at add time, never live-refreshed.
type Line interface {
	Key() Key
	Label() string
	UnitPrice() float64
	Count() int

	withCount(quantity int) Line
	record() lineRecord
}

// MenuLine is a quantity of a single menu item.
type MenuLine struct {
	ID       int
	Name     string
	Image    string
	Price    float64
	Quantity int
}

func (l MenuLine) Key() Key           { return Key{ID: l.ID, Type: LineMenu} }
func (l MenuLine) Label() string      { return l.Name }
func (l MenuLine) UnitPrice() float64 { return l.Price }
func (l MenuLine) Count() int         { return l.Quantity }

func (l MenuLine) withCount(quantity int) Line {
	l.Quantity = quantity
	return l
}

// SpecialLine is a special-order package priced for a chosen party size.
// Price is the already-computed total for People, not a per-person rate;
// the per-person rate is kept alongside for display.
type SpecialLine struct {
	ID             int
	Name           string
	Image          string
	Price          float64
	Quantity       int
	People         int
	PricePerPerson float64
}

func (l SpecialLine) Key() Key           { return Key{ID: l.ID, Type: LineSpecial} }
func (l SpecialLine) Label() string      { return l.Name }
func (l SpecialLine) UnitPrice() float64 { return l.Price }
func (l SpecialLine) Count() int         { return l.Quantity }

func (l SpecialLine) withCount(quantity int) Line {
	l.Quantity = quantity
	return l
}

// lineRecord is the flat wire/persistence shape shared by both line kinds,
// discriminated by the type field. It matches the persisted cart blob.
type lineRecord struct {
	ID             int      `json:"id"`
	Type           LineType `json:"type"`
	Name           string   `json:"name"`
	Image          string   `json:"image,omitempty"`
	Price          float64  `json:"price"`
	Quantity       int      `json:"quantity"`
	People         int      `json:"people,omitempty"`
	PricePerPerson float64  `json:"price_per_person,omitempty"`
}

func (l MenuLine) record() lineRecord {
	return lineRecord{
		ID:       l.ID,
		Type:     LineMenu,
		Name:     l.Name,
		Image:    l.Image,
		Price:    l.Price,
		Quantity: l.Quantity,
	}
}

func (l SpecialLine) record() lineRecord {
	return lineRecord{
		ID:             l.ID,
		Type:           LineSpecial,
		Name:           l.Name,
		Image:          l.Image,
		Price:          l.Price,
		Quantity:       l.Quantity,
		People:         l.People,
		PricePerPerson: l.PricePerPerson,
	}
}

func (l MenuLine) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.record())
}

func (l SpecialLine) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.record())
}

func decodeLine(rec lineRecord) (Line, error) {
	switch rec.Type {
	case LineMenu:
		return MenuLine{
			ID:       rec.ID,
			Name:     rec.Name,
			Image:    rec.Image,
			Price:    rec.Price,
			Quantity: rec.Quantity,
		}, nil
	case LineSpecial:
		return SpecialLine{
			ID:             rec.ID,
			Name:           rec.Name,
			Image:          rec.Image,
			Price:          rec.Price,
			Quantity:       rec.Quantity,
			People:         rec.People,
			PricePerPerson: rec.PricePerPerson,
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidLine, rec.Type)
	}
}

// validateLine rejects malformed lines before they enter the cart, so a bad
// price can never flow into totals.
func validateLine(l Line) error {
	if l.Key().ID <= 0 {
		return fmt.Errorf("%w: missing item id", ErrInvalidLine)
	}
	price := l.UnitPrice()
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("%w: price is not a number", ErrInvalidLine)
	}
	if price < 0 {
		return fmt.Errorf("%w: negative price", ErrInvalidLine)
	}
	if l.Count() < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidLine)
	}
	if sp, ok := l.(SpecialLine); ok && sp.People < 1 {
		return fmt.Errorf("%w: party size must be at least 1", ErrInvalidLine)
	}
	return nil
}

// State is the full cart: ordered lines plus the transient sidebar flag.
// The whole struct is what gets persisted, IsOpen included.
type State struct {
	Items  []Line `json:"items"`
	IsOpen bool   `json:"isOpen"`
}

func (s State) MarshalJSON() ([]byte, error) {
	records := make([]lineRecord, 0, len(s.Items))
	for _, item := range s.Items {
		records = append(records, item.record())
	}
	return json.Marshal(struct {
		Items  []lineRecord `json:"items"`
		IsOpen bool         `json:"isOpen"`
	}{records, s.IsOpen})
}

func (s *State) UnmarshalJSON(data []byte) error {
	var raw struct {
		Items  []lineRecord `json:"items"`
		IsOpen bool         `json:"isOpen"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	items := make([]Line, 0, len(raw.Items))
	for _, rec := range raw.Items {
		line, err := decodeLine(rec)
		if err != nil {
			return err
		}
		items = append(items, line)
	}

	s.Items = items
	s.IsOpen = raw.IsOpen
	return nil
}
