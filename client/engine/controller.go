package engine

import (
	"sync"
	"time"

	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/store"
)

// StepController is the surface every per-step controller exposes to the
// presentation layer: whether its primary action is in flight and the
// current transient validation message, if any.
type StepController interface {
	Locked() bool
	Message() string
}

// controller carries the behaviour shared by every step controller: a lock
// flag that prevents double submission of the primary action and a
// validation message that clears itself after a short interval.
type controller struct {
	e *Engine

	mu       sync.Mutex
	locked   bool
	message  string
	msgTimer *time.Timer
}

// tryLock claims the in-flight lock. The caller must release it with unlock
// once the primary action settles.
func (c *controller) tryLock() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.locked {
		return false
	}
	c.locked = true
	return true
}

func (c *controller) unlock() {
	c.mu.Lock()
	c.locked = false
	c.mu.Unlock()
}

// Locked reports whether the primary action is currently in flight.
func (c *controller) Locked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.locked
}

// Message returns the transient validation message, or "".
func (c *controller) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// setMessage shows a validation message that auto-clears. A newer message
// supersedes an older one along with its expiry.
func (c *controller) setMessage(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.message = msg
	if c.msgTimer != nil {
		c.msgTimer.Stop()
	}
	c.msgTimer = time.AfterFunc(c.e.messageTTL, func() {
		c.mu.Lock()
		if c.message == msg {
			c.message = ""
		}
		c.mu.Unlock()
	})
}

// Cancel abandons the step, resetting the session to the idle state. All
// selections and active items are dropped; authoritative state is untouched.
func (c *controller) Cancel() {
	c.e.store.Dispatch(store.ClearSelections{})
}

// waitController backs the passive waiting steps. It has no primary action;
// the engine's reconcilers and resolvers advance out of these steps.
type waitController struct {
	controller
}
