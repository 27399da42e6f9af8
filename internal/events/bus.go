// Package events provides the synchronous publish/subscribe bus that wires
// input, movement and progression together.
//
// Handlers are plain functions that receive the owned context (typically the
// game state) and the entity id they were registered for. They never capture
// entity references, so a handler that outlives its entity can only ever look
// up a missing id.
package events

import (
	"errors"
	"fmt"
)

// Kind identifies an event. The set of kinds is closed.
type Kind int

const (
	KeyUp Kind = iota
	KeyDown
	KeyRight
	KeyLeft
	PlayerMoved
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KeyUp:
		return "KeyUp"
	case KeyDown:
		return "KeyDown"
	case KeyRight:
		return "KeyRight"
	case KeyLeft:
		return "KeyLeft"
	case PlayerMoved:
		return "PlayerMoved"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Owner is the id of the entity a subscription belongs to. Zero means none.
type Owner uint64

// Handler reacts to an event. ctx is the state the bus was emitted with.
type Handler[C any] func(ctx C, owner Owner) error

// DefaultMaxDepth bounds nested Emit calls made from inside handlers.
const DefaultMaxDepth = 8

// ErrEmitDepth is returned when handlers emit recursively past the limit.
var ErrEmitDepth = errors.New("events: emit depth exceeded")

type subscription[C any] struct {
	owner   Owner
	handler Handler[C]
}

// Bus dispatches events to handlers in registration order.
//
// Architecture:
//   - Single-threaded, run-to-completion dispatch
//   - Multiple handlers per kind, no deduplication
//   - Clear during an emission aborts the rest of that emission
type Bus[C any] struct {
	handlers   map[Kind][]subscription[C]
	generation uint64 // bumped by Clear
	depth      int
	maxDepth   int
}

// NewBus creates an empty bus with the default depth limit.
func NewBus[C any]() *Bus[C] {
	return &Bus[C]{
		handlers: make(map[Kind][]subscription[C]),
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth overrides the nested emission limit. Values below 1 are ignored.
func (b *Bus[C]) SetMaxDepth(n int) {
	if n >= 1 {
		b.maxDepth = n
	}
}

// Register appends a handler for the given kind.
func (b *Bus[C]) Register(kind Kind, owner Owner, h Handler[C]) {
	b.handlers[kind] = append(b.handlers[kind], subscription[C]{owner: owner, handler: h})
}

// Emit invokes every handler registered for kind, in order.
// Emitting a kind nobody listens to is a no-op.
// The first handler error stops the emission and is returned.
func (b *Bus[C]) Emit(ctx C, kind Kind) error {
	subs := b.handlers[kind]
	if len(subs) == 0 {
		return nil
	}
	if b.depth >= b.maxDepth {
		return fmt.Errorf("%w: %s at depth %d", ErrEmitDepth, kind, b.depth)
	}

	b.depth++
	defer func() { b.depth-- }()

	gen := b.generation
	for _, sub := range subs {
		if err := sub.handler(ctx, sub.owner); err != nil {
			return err
		}
		// A handler cleared the bus; everything left in subs is stale.
		if b.generation != gen {
			return nil
		}
	}
	return nil
}

// Clear removes every kind and handler.
func (b *Bus[C]) Clear() {
	b.handlers = make(map[Kind][]subscription[C])
	b.generation++
}

// HandlerCount returns the number of handlers registered for kind.
func (b *Bus[C]) HandlerCount(kind Kind) int {
	return len(b.handlers[kind])
}

// Len returns the total number of registered handlers.
func (b *Bus[C]) Len() int {
	n := 0
	for _, subs := range b.handlers {
		n += len(subs)
	}
	return n
}

// Generation returns how many times the bus has been cleared.
func (b *Bus[C]) Generation() uint64 {
	return b.generation
}
