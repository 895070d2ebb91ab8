package recipe

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pedroescher01/gestorpro-premium-sub001/internal/model"
	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// InputCatalog lists the raw materials a recipe line may reference
type InputCatalog interface {
	List(ctx context.Context) ([]model.Input, error)
}

// Persistence loads and overwrites the whole recipe collection
type Persistence interface {
	Load(ctx context.Context) ([]model.Recipe, error)
	SaveAll(ctx context.Context, recipes []model.Recipe) error
}

// SortOrder selects the name ordering used by List
type SortOrder string

const (
	SortNameAsc  SortOrder = "name_asc"
	SortNameDesc SortOrder = "name_desc"
)

// ParseSortOrder maps a query value to a SortOrder, defaulting to ascending
func ParseSortOrder(s string) SortOrder {
	if SortOrder(strings.ToLower(s)) == SortNameDesc {
		return SortNameDesc
	}
	return SortNameAsc
}

// Store maintains the recipe collection
type Store struct {
	catalog InputCatalog
	persist Persistence
	locale  language.Tag
	now     func() time.Time
	newID   func() string

	// serializes load/modify/save cycles
	mu sync.Mutex
}

// Option configures a Store
type Option func(*Store)

// WithLocale sets the collation locale for name ordering
func WithLocale(tag language.Tag) Option {
	return func(s *Store) { s.locale = tag }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the uuid generator
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func NewStore(catalog InputCatalog, persist Persistence, opts ...Option) *Store {
	s := &Store{
		catalog: catalog,
		persist: persist,
		locale:  language.BrazilianPortuguese,
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LineSpec names an input and the quantity a recipe needs of it
type LineSpec struct {
	InputID  string
	Quantity decimal.Decimal
}

// AddLine appends a line for inputID to the draft. The input must resolve
// in the catalog and the quantity must be positive. Repeated inputs are
// kept as separate lines.
func (s *Store) AddLine(ctx context.Context, d *Draft, inputID string, quantity decimal.Decimal) error {
	return s.AddLines(ctx, d, LineSpec{InputID: inputID, Quantity: quantity})
}

// AddLines appends every spec with a single catalog read. Nothing is
// appended unless all specs are valid.
func (s *Store) AddLines(ctx context.Context, d *Draft, specs ...LineSpec) error {
	for _, spec := range specs {
		if err := checkQuantity(spec.Quantity); err != nil {
			return err
		}
	}

	catalog, err := s.catalogByID(ctx)
	if err != nil {
		return err
	}

	lines := make([]model.RecipeLine, 0, len(specs))
	for _, spec := range specs {
		in, ok := catalog[spec.InputID]
		if !ok {
			return unknownInput(spec.InputID)
		}
		lines = append(lines, model.RecipeLine{
			InputID:   in.ID,
			InputName: in.Name,
			Quantity:  spec.Quantity,
			Unit:      in.Unit,
		})
	}
	d.Lines = append(d.Lines, lines...)
	return nil
}

// Save validates the draft and stores it. A draft whose id matches a stored
// recipe overwrites it; anything else is inserted under a fresh id.
func (s *Store) Save(ctx context.Context, d *Draft) (model.Recipe, error) {
	return s.save(ctx, d, false)
}

// Replace overwrites the stored recipe with id using the draft's content.
// It returns ErrNotFound when id is not stored and never inserts.
func (s *Store) Replace(ctx context.Context, id string, d *Draft) (model.Recipe, error) {
	if id == "" {
		return model.Recipe{}, ErrNotFound
	}
	d.ID = id
	return s.save(ctx, d, true)
}

func (s *Store) save(ctx context.Context, d *Draft, mustExist bool) (model.Recipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.persist.Load(ctx)
	if err != nil {
		return model.Recipe{}, fmt.Errorf("load recipes: %w", err)
	}

	idx := indexOf(recipes, d.ID)
	if idx < 0 && mustExist {
		return model.Recipe{}, ErrNotFound
	}

	if len(d.Lines) == 0 {
		return model.Recipe{}, invalid("lines", "at least one input required")
	}
	if d.YieldQuantity < 0 {
		return model.Recipe{}, invalid("yield_quantity", "yield quantity must be a positive integer")
	}
	for _, l := range d.Lines {
		if err := checkQuantity(l.Quantity); err != nil {
			return model.Recipe{}, err
		}
	}

	catalog, err := s.catalogByID(ctx)
	if err != nil {
		return model.Recipe{}, err
	}

	// A line may keep pointing at a removed input only if the stored
	// recipe already carried it.
	carried := map[string]bool{}
	if idx >= 0 {
		for _, l := range recipes[idx].Lines {
			carried[l.InputID] = true
		}
	}

	lines := make([]model.RecipeLine, len(d.Lines))
	for i, l := range d.Lines {
		in, ok := catalog[l.InputID]
		switch {
		case ok:
			if l.InputName == "" {
				l.InputName = in.Name
			}
			if l.Unit == "" {
				l.Unit = in.Unit
			}
		case !carried[l.InputID]:
			return model.Recipe{}, unknownInput(l.InputID)
		}
		lines[i] = l
	}

	now := s.now()
	r := model.Recipe{
		ID:            d.ID,
		Name:          d.Name,
		Description:   d.Description,
		YieldQuantity: d.YieldQuantity,
		Lines:         lines,
		UpdatedAt:     now,
	}
	if r.YieldQuantity == 0 {
		r.YieldQuantity = 1
	}

	if idx >= 0 {
		r.CreatedAt = recipes[idx].CreatedAt
		recipes[idx] = r
	} else {
		r.ID = s.newID()
		r.CreatedAt = now
		recipes = append(recipes, r)
	}

	if err := s.persist.SaveAll(ctx, recipes); err != nil {
		return model.Recipe{}, fmt.Errorf("save recipes: %w", err)
	}
	return r, nil
}

// Delete removes the recipe with id. Unknown ids are not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recipes, err := s.persist.Load(ctx)
	if err != nil {
		return fmt.Errorf("load recipes: %w", err)
	}

	kept := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if r.ID != id {
			kept = append(kept, r)
		}
	}

	if err := s.persist.SaveAll(ctx, kept); err != nil {
		return fmt.Errorf("save recipes: %w", err)
	}
	return nil
}

// Get returns the recipe with id or ErrNotFound
func (s *Store) Get(ctx context.Context, id string) (model.Recipe, error) {
	recipes, err := s.persist.Load(ctx)
	if err != nil {
		return model.Recipe{}, fmt.Errorf("load recipes: %w", err)
	}
	if idx := indexOf(recipes, id); idx >= 0 {
		return recipes[idx], nil
	}
	return model.Recipe{}, ErrNotFound
}

// List returns recipes whose name or description contains filter,
// ignoring case, ordered by name with the store's collation.
func (s *Store) List(ctx context.Context, filter string, order SortOrder) ([]model.Recipe, error) {
	recipes, err := s.persist.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}

	needle := strings.ToLower(filter)
	out := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if needle == "" ||
			strings.Contains(strings.ToLower(r.Name), needle) ||
			strings.Contains(strings.ToLower(r.Description), needle) {
			out = append(out, r)
		}
	}

	// Collators keep scratch buffers, so each call gets its own.
	col := collate.New(s.locale)
	sort.SliceStable(out, func(i, j int) bool {
		c := col.CompareString(out[i].Name, out[j].Name)
		if order == SortNameDesc {
			return c > 0
		}
		return c < 0
	})
	return out, nil
}

// Costing loads the recipe with id and prices it against the current catalog
func (s *Store) Costing(ctx context.Context, id string) (Costing, error) {
	r, err := s.Get(ctx, id)
	if err != nil {
		return Costing{}, err
	}
	inputs, err := s.catalog.List(ctx)
	if err != nil {
		return Costing{}, fmt.Errorf("list inputs: %w", err)
	}
	return Cost(r, inputs), nil
}

func (s *Store) catalogByID(ctx context.Context) (map[string]model.Input, error) {
	inputs, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list inputs: %w", err)
	}
	byID := make(map[string]model.Input, len(inputs))
	for _, in := range inputs {
		byID[in.ID] = in
	}
	return byID, nil
}

func indexOf(recipes []model.Recipe, id string) int {
	if id == "" {
		return -1
	}
	for i, r := range recipes {
		if r.ID == id {
			return i
		}
	}
	return -1
}
