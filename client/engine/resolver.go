package engine

import (
	"context"
	"sync"
	"time"

	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/store"
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

// resolveTimeout bounds the server query that settles an expired window.
const resolveTimeout = 10 * time.Second

type windowKind int

const (
	eventWindow windowKind = iota
	setWindow
)

// resolver owns one cancellation window: the grace period during which any
// player may counter a just-played event card or set. Playing the item arms
// the timer; every observed counter-play rearms it; when it finally expires
// the resolver queries the server exactly once for the surviving item and
// branches the step machine accordingly.
//
// A generation counter invalidates timers that were cancelled or superseded
// after their callback was already scheduled, so the query-once and
// clear-once guarantees hold even across racing rearms.
type resolver struct {
	e    *Engine
	kind windowKind

	mu    sync.Mutex
	gen   int
	timer *time.Timer
	open  bool
}

// Open arms the window. Opening an already open window restarts it.
func (r *resolver) Open() {
	r.arm()
}

// Restart rearms an open window. It is a no-op when no window is open, so a
// stray counter-play log entry cannot conjure a window out of nothing.
func (r *resolver) Restart() {
	r.mu.Lock()
	if !r.open {
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	r.arm()
}

// Cancel closes the window without resolving. Any scheduled expiry becomes a
// no-op.
func (r *resolver) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.open = false
}

func (r *resolver) arm() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	gen := r.gen
	if r.timer != nil {
		r.timer.Stop()
	}
	r.open = true
	r.timer = time.AfterFunc(r.e.window, func() { r.expire(gen) })
}

func (r *resolver) expire(gen int) {
	r.mu.Lock()
	if gen != r.gen || !r.open {
		r.mu.Unlock()
		return
	}
	r.open = false
	r.timer = nil
	r.mu.Unlock()

	switch r.kind {
	case eventWindow:
		r.resolveEvent()
	case setWindow:
		r.resolveSet()
	}
}

// resolveEvent settles the window for a played event card. If the card
// survived, its follow-up flow starts (the flow keeps ownership of the
// trigger card); immediate effects fire here. Countered, unknown or failed
// outcomes all converge on discarding the trigger and moving to the discard
// phase.
func (r *resolver) resolveEvent() {
	ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
	defer cancel()

	s := r.e.store.State()
	active := s.ActiveEventCard
	if active == nil {
		r.e.store.Dispatch(store.SetStep{Step: types.StepDiscard})
		return
	}

	item, err := r.e.svc.CountCancellations(ctx, s.Game.ID)
	if err != nil {
		r.e.logger.Warnw("failed to resolve event window", "card", active.Name, "error", err)
		r.e.store.Dispatch(store.SetActiveEvent{})
		r.e.store.Dispatch(store.SetSelectedCard{})
		r.e.store.Dispatch(store.SetStep{Step: types.StepDiscard})
		return
	}

	if item.CardID == active.ID {
		if next, ok := stepForEvent(active.Name); ok {
			r.e.store.Dispatch(store.SetStep{Step: next})
			return
		}
		if active.Name == eventEarlyTrain {
			if err := r.e.svc.EarlyTrainPaddington(ctx, s.Game.ID, s.MyPlayerID); err != nil {
				r.e.logger.Warnw("failed to resolve early train effect", "error", err)
			}
		}
	} else {
		r.e.logger.Infow("event card countered", "card", active.Name)
	}

	if _, err := r.e.svc.DiscardSelected(ctx, s.MyPlayerID, []int{active.ID}); err != nil {
		r.e.logger.Warnw("failed to discard event trigger", "card", active.Name, "error", err)
	}
	r.e.store.Dispatch(store.SetActiveEvent{})
	r.e.store.Dispatch(store.SetSelectedCard{})
	r.e.store.Dispatch(store.SetStep{Step: types.StepDiscard})
}

// resolveSet settles the window for a played or boosted set. Surviving sets
// with a power branch into that power's selection step; everything else
// lands in the discard phase. The active set is cleared on every path.
func (r *resolver) resolveSet() {
	ctx, cancel := context.WithTimeout(context.Background(), resolveTimeout)
	defer cancel()

	s := r.e.store.State()
	active := s.ActiveSet
	if active == nil {
		r.e.store.Dispatch(store.SetStep{Step: types.StepDiscard})
		return
	}

	item, err := r.e.svc.CountCancellations(ctx, s.Game.ID)
	if err != nil {
		r.e.logger.Warnw("failed to resolve set window", "set", active.Name, "error", err)
		r.e.store.Dispatch(store.SetActiveSet{})
		r.e.store.Dispatch(store.SetStep{Step: types.StepDiscard})
		return
	}
	if item.SetID != active.ID {
		r.e.logger.Infow("set countered", "set", active.Name)
		r.e.store.Dispatch(store.SetActiveSet{})
		r.e.store.Dispatch(store.SetStep{Step: types.StepDiscard})
		return
	}

	next, _ := stepForSet(active.Name)
	r.e.store.Dispatch(store.SetActiveSet{})
	r.e.store.Dispatch(store.SetStep{Step: next})
}
