package layout

import "sync"

// Engine owns an insertion-ordered mapping from items to their constraints
// plus the immutable axis and spacing configuration. Iteration order is
// placement order along the primary axis, so it is part of the engine's
// observable behavior, not an implementation accident.
//
// All operations are synchronous and serialized under one engine-wide
// lock, matching the single layout thread of a windowing host. The lock
// is not reentrant; Item callbacks must not call back into the engine.
type Engine struct {
	mu          sync.Mutex
	axis        Axis
	spacing     Spacing
	items       []Item
	constraints map[Item]Constraint
}

// NewEngine creates an engine that lays items out along the given primary
// axis with the given spacing policy.
func NewEngine(axis Axis, spacing Spacing) *Engine {
	return &Engine{
		axis:        axis,
		spacing:     spacing,
		constraints: make(map[Item]Constraint),
	}
}

// NewDefaultEngine creates a vertical engine that centers its items.
func NewDefaultEngine() *Engine {
	return NewEngine(Vertical, PackCenter)
}

// Axis returns the engine's primary axis.
func (e *Engine) Axis() Axis { return e.axis }

// Spacing returns the engine's spacing policy.
func (e *Engine) Spacing() Spacing { return e.spacing }

// Add registers item with the given constraint, replacing any previous
// constraint. Re-adding a known item keeps its position in placement
// order; only genuinely new items go to the end.
func (e *Engine) Add(item Item, c Constraint) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.constraints[item]; !ok {
		e.items = append(e.items, item)
	}
	e.constraints[item] = c
}

// AddText registers item with a constraint parsed from wire-format text.
// An empty string registers the default constraint (centered, intrinsic
// preferred size). On a parse error the item is not added.
func (e *Engine) AddText(item Item, text string) error {
	if text == "" {
		e.Add(item, DefaultConstraint(item))
		return nil
	}
	c, err := Parse(text)
	if err != nil {
		return err
	}
	e.Add(item, c)
	return nil
}

// Remove unregisters item. Removing an unknown item is a no-op.
func (e *Engine) Remove(item Item) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.constraints[item]; !ok {
		return
	}
	delete(e.constraints, item)
	for i, it := range e.items {
		if it == item {
			e.items = append(e.items[:i], e.items[i+1:]...)
			break
		}
	}
}

// Get returns item's current constraint, or false if item is not registered.
func (e *Engine) Get(item Item) (Constraint, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, ok := e.constraints[item]
	return c, ok
}

// Len returns the number of registered items.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.items)
}

// Items returns the registered items in placement order.
func (e *Engine) Items() []Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Item, len(e.items))
	copy(out, e.items)
	return out
}
