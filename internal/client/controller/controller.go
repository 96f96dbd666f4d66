// Package controller implements the fetch/filter/mutate state machine behind
// every collection screen (rooms, members, character sheets).
//
// A Controller owns two ordered views of one backend collection: all (the
// last successfully fetched result) and visible (the filtered subset shown to
// the user, always an order-preserving subsequence of all). Mutations go
// through the backend and resynchronize with a full reload rather than
// patching local state, trading a little latency for consistency with
// server-assigned fields.
package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// State of a controller. Transitions:
//
//	Idle → Loading → {Loaded, Failed}
//	Loaded → Loading (refresh)
//	Failed → Loading (retry)
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrNameMismatch blocks a delete whose typed confirmation does not
	// exactly match the target's display name. The network call is never made.
	ErrNameMismatch = errors.New("confirmation name does not match")

	// ErrUnknownID blocks a delete of an id absent from the loaded collection.
	ErrUnknownID = errors.New("no such item in the loaded list")
)

// Ops are the backend operations a controller drives. Create and Delete may
// be nil for read-only collections (e.g. the member list).
type Ops[T any, I any] struct {
	List   func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, input I) error
	Delete func(ctx context.Context, id string) error
}

// Desc describes the element type: identity, display name, and the filter
// predicate (already case-folded query).
type Desc[T any] struct {
	ID    func(T) string
	Name  func(T) string
	Match func(item T, foldedQuery string) bool
}

// Snapshot is a point-in-time copy handed to the rendering layer.
type Snapshot[T any] struct {
	All     []T
	Visible []T
	State   State
	Err     string
}

// Controller is safe for concurrent use. Overlapping Load calls are
// serialized by generation: only the most recently started load may publish
// its result, so a slow stale response never clobbers a newer one.
type Controller[T any, I any] struct {
	mu       sync.Mutex
	ops      Ops[T, I]
	desc     Desc[T]
	validate func(I) error

	state   State
	all     []T
	visible []T
	query   string
	errMsg  string
	gen     uint64
}

// New builds a controller. validate may be nil; when set it gates Create
// client-side (validation failures never reach the network).
func New[T any, I any](ops Ops[T, I], desc Desc[T], validate func(I) error) *Controller[T, I] {
	return &Controller[T, I]{ops: ops, desc: desc, validate: validate}
}

// Load fetches the collection. On success all is replaced and visible is
// recomputed through the current query. On failure the previous all/visible
// survive untouched (stale-but-visible): a transient network error must not
// flash an empty list at the user.
func (c *Controller[T, I]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.state = StateLoading
	c.gen++
	gen := c.gen
	list := c.ops.List
	c.mu.Unlock()

	items, err := list(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A newer load started while this one was in flight; drop the result.
		return err
	}
	if err != nil {
		c.state = StateFailed
		c.errMsg = err.Error()
		return err
	}
	c.state = StateLoaded
	c.errMsg = ""
	c.all = items
	c.visible = c.filtered(c.query)
	return nil
}

// Filter recomputes visible from all without a network call. The match is a
// case-insensitive substring test; the empty query restores visible == all.
// Filtering is idempotent and preserves the order of all.
func (c *Controller[T, I]) Filter(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
	c.visible = c.filtered(query)
}

// filtered computes the visible subsequence; callers must hold the mutex.
func (c *Controller[T, I]) filtered(query string) []T {
	if strings.TrimSpace(query) == "" {
		return c.all
	}
	folded := strings.ToLower(query)
	out := make([]T, 0, len(c.all))
	for _, item := range c.all {
		if c.desc.Match(item, folded) {
			out = append(out, item)
		}
	}
	return out
}

// Create validates the input client-side, submits it, and resynchronizes via
// a full Load so server-assigned fields (id, timestamps, invite code) are
// picked up. On failure the loaded state is untouched.
func (c *Controller[T, I]) Create(ctx context.Context, input I) error {
	if c.validate != nil {
		if err := c.validate(input); err != nil {
			return err
		}
	}
	if err := c.ops.Create(ctx, input); err != nil {
		return err
	}
	return c.Load(ctx)
}

// Delete requires confirmationName to exactly match the target's display name
// (case-sensitive). A mismatch or unknown id blocks the network call
// entirely. On success the collection is reloaded.
func (c *Controller[T, I]) Delete(ctx context.Context, id, confirmationName string) error {
	c.mu.Lock()
	var name string
	found := false
	for _, item := range c.all {
		if c.desc.ID(item) == id {
			name = c.desc.Name(item)
			found = true
			break
		}
	}
	c.mu.Unlock()

	if !found {
		return ErrUnknownID
	}
	if name != confirmationName {
		return ErrNameMismatch
	}
	if err := c.ops.Delete(ctx, id); err != nil {
		return err
	}
	return c.Load(ctx)
}

// Find returns the loaded item with the given id.
func (c *Controller[T, I]) Find(id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, item := range c.all {
		if c.desc.ID(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Snapshot returns copies of the current views and state for rendering.
func (c *Controller[T, I]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot[T]{
		All:     append([]T(nil), c.all...),
		Visible: append([]T(nil), c.visible...),
		State:   c.state,
		Err:     c.errMsg,
	}
}

// Seed installs a collection without a network call, e.g. cached data shown
// while offline. It does not change the state machine: a Seed before the
// first Load leaves the controller Idle so the caller can tell cached data
// from a fresh fetch.
func (c *Controller[T, I]) Seed(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.all = items
	c.visible = c.filtered(c.query)
}
