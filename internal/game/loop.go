package game

import (
	"context"
	"time"
)

// Renderer paints a drawable at a position. Calls are fire-and-forget.
type Renderer interface {
	Draw(asset AssetRef, x, y int)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(asset AssetRef, x, y int)

// Draw calls f.
func (f RendererFunc) Draw(asset AssetRef, x, y int) {
	f(asset, x, y)
}

// Loop drives rendering from an external clock.
type Loop struct {
	state    *State
	renderer Renderer
	frames   uint64
}

// NewLoop creates a loop that renders state through r.
func NewLoop(state *State, r Renderer) *Loop {
	return &Loop{state: state, renderer: r}
}

// Frame renders every entity in draw order.
func (l *Loop) Frame() {
	l.frames++
	for _, e := range l.state.Entities() {
		l.renderer.Draw(e.Asset, e.X, e.Y)
	}
}

// Frames returns how many frames have been rendered.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Run renders one frame per tick and applies directions as they arrive,
// all on the calling goroutine. It returns when ctx is done, when ticks is
// closed, or when input handling fails. A closed input channel is ignored.
func (l *Loop) Run(ctx context.Context, ticks <-chan time.Time, input <-chan Direction) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			l.Frame()
		case d, ok := <-input:
			if !ok {
				input = nil
				continue
			}
			if err := l.state.HandleInput(d); err != nil {
				return err
			}
		}
	}
}
