// Package engine drives the turn-flow state machine on top of the session
// store. Each step has a dedicated controller exposing the step's primary
// action; the engine itself reacts to synchronized state, advancing waiting
// steps when remote actors finish and resolving counter-play windows.
package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/store"
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/edge"
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

const (
	defaultResponseWindow = 5 * time.Second
	defaultMessageTTL     = 3 * time.Second
)

// Options tunes engine timing. Zero values take the defaults; tests shrink
// the response window to keep themselves fast.
type Options struct {
	// ResponseWindow is how long opponents have to counter a played event
	// card or set before it resolves.
	ResponseWindow time.Duration
	// MessageTTL is how long controller validation messages stay visible.
	MessageTTL time.Duration
	Logger     *zap.SugaredLogger
}

// Engine wires the per-step controllers, the two cancellation windows and
// the edge-triggered reconcilers to a session store. Create one per session
// with New and release its timers with Close.
type Engine struct {
	store      *store.Store
	svc        Service
	logger     *zap.SugaredLogger
	window     time.Duration
	messageTTL time.Duration

	events *resolver
	sets   *resolver

	// Trackers feed exclusively from the store's ordered notification
	// stream, so no locking is needed around them.
	myTurn     *edge.Tracker[bool]
	myPending  *edge.Tracker[types.PendingAction]
	follyBusy  *edge.Tracker[bool]
	oppReveal  *edge.Tracker[bool]
	counterLog *edge.Tracker[int]

	Start          *StartController
	PlaySet        *PlaySetController
	PlayEvent      *PlayEventController
	AddDetective   *AddDetectiveController
	Discard        *DiscardController
	Draw           *DrawController
	StealSet       *StealSetController
	LookIntoAshes  *LookIntoAshesController
	CardsOffTable  *CardsOffTableController
	OneMore        *OneMoreController
	DelayEscape    *DelayEscapeController
	PointSusp      *PointSuspicionsController
	Vote           *VoteController
	CardTrade      *CardTradeController
	DeadCardFolly  *DeadCardFollyController
	RevealSecret   *RevealSecretController
	HideSecret     *HideSecretController
	SelectReveal   *SelectPlayerRevealController
	Blackmail      *BlackmailController
	CounterPlay    *CounterPlayController

	table map[types.Step]StepController
}

// New builds an engine bound to the store and service, seeds its trackers
// from the current state and subscribes to every subsequent transition.
func New(st *store.Store, svc Service, opts Options) *Engine {
	if opts.ResponseWindow <= 0 {
		opts.ResponseWindow = defaultResponseWindow
	}
	if opts.MessageTTL <= 0 {
		opts.MessageTTL = defaultMessageTTL
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}

	e := &Engine{
		store:      st,
		svc:        svc,
		logger:     opts.Logger,
		window:     opts.ResponseWindow,
		messageTTL: opts.MessageTTL,
		myTurn:     edge.NewTracker[bool](2),
		myPending:  edge.NewTracker[types.PendingAction](4),
		follyBusy:  edge.NewTracker[bool](2),
		oppReveal:  edge.NewTracker[bool](2),
		counterLog: edge.NewTracker[int](2),
	}
	e.events = &resolver{e: e, kind: eventWindow}
	e.sets = &resolver{e: e, kind: setWindow}

	e.Start = &StartController{controller{e: e}}
	e.PlaySet = &PlaySetController{controller{e: e}}
	e.PlayEvent = &PlayEventController{controller{e: e}}
	e.AddDetective = &AddDetectiveController{controller{e: e}}
	e.Discard = &DiscardController{controller: controller{e: e}}
	e.Draw = &DrawController{controller{e: e}}
	e.StealSet = &StealSetController{controller{e: e}}
	e.LookIntoAshes = &LookIntoAshesController{controller{e: e}}
	e.CardsOffTable = &CardsOffTableController{controller{e: e}}
	e.OneMore = &OneMoreController{controller{e: e}}
	e.DelayEscape = &DelayEscapeController{controller: controller{e: e}}
	e.PointSusp = &PointSuspicionsController{controller{e: e}}
	e.Vote = &VoteController{controller: controller{e: e}}
	e.CardTrade = &CardTradeController{controller{e: e}}
	e.DeadCardFolly = &DeadCardFollyController{controller{e: e}}
	e.RevealSecret = &RevealSecretController{controller{e: e}}
	e.HideSecret = &HideSecretController{controller{e: e}}
	e.SelectReveal = &SelectPlayerRevealController{controller{e: e}}
	e.Blackmail = &BlackmailController{controller{e: e}}
	e.CounterPlay = &CounterPlayController{controller{e: e}}

	waitFor := func() *waitController { return &waitController{controller{e: e}} }
	e.table = map[types.Step]StepController{
		types.StepStart:               e.Start,
		types.StepPlaySet:             e.PlaySet,
		types.StepPlayEvent:           e.PlayEvent,
		types.StepAddDetective:        e.AddDetective,
		types.StepDiscardSkip:         e.Discard,
		types.StepDiscard:             e.Discard,
		types.StepDraw:                e.Draw,
		types.StepAnotherVictim:       e.StealSet,
		types.StepLookIntoAshes:       e.LookIntoAshes,
		types.StepCardsOffTable:       e.CardsOffTable,
		types.StepOneMore:             e.OneMore,
		types.StepDelayEscape:         e.DelayEscape,
		types.StepPointSuspicions:     e.PointSusp,
		types.StepVote:                e.Vote,
		types.StepWaitVotingToEnd:     waitFor(),
		types.StepCardTrade:           e.CardTrade,
		types.StepWaitTrade:           waitFor(),
		types.StepDeadCardFolly:       e.DeadCardFolly,
		types.StepWaitTradeFolly:      waitFor(),
		types.StepWaitEventResolution: waitFor(),
		types.StepWaitSetResolution:   waitFor(),
		types.StepSelectRevealSecret:  e.RevealSecret,
		types.StepSelectHideSecret:    e.HideSecret,
		types.StepSelectPlayerReveal:  e.SelectReveal,
		types.StepWaitRevealSecret:    waitFor(),
	}

	e.observe(st.State())
	st.OnChange(e.onChange)
	return e
}

// Controller returns the controller handling the given step. Unknown steps
// fall back to the idle controller so a stale or corrupted step value can
// never leave the session without a handler.
func (e *Engine) Controller(step types.Step) StepController {
	if c, ok := e.table[step]; ok {
		return c
	}
	return e.Start
}

// Close cancels any armed cancellation window. The engine must not be used
// afterwards.
func (e *Engine) Close() {
	e.events.Cancel()
	e.sets.Cancel()
}

func (e *Engine) observe(s store.State) {
	e.myTurn.Observe(s.IsMyTurn())
	e.myPending.Observe(s.MyPendingAction())
	e.follyBusy.Observe(anyPlayerPending(s.Players, types.PendingSelectFollyCard, types.PendingWaitFollyTrade))
	e.oppReveal.Observe(opponentRevealPending(s))
	e.counterLog.Observe(logID(s.LastCancelableEvent))
}

// onChange runs once per transition, in order, with nothing coalesced. The
// reconcilers here look for edges between the previous and current
// observation; acting on levels instead would refire forever or miss
// remote completions entirely.
func (e *Engine) onChange(prev, next store.State) {
	e.observe(next)

	e.reconcileTurn(next)
	e.reconcileSocialDisgrace(prev, next)
	e.reconcileCounterPlays(next)
	e.reconcileWindows(prev, next)
	e.reconcileTrade(next)
	e.reconcileFolly(next)
	e.reconcileVoting(next)
	e.reconcileReveal(next)
	e.reconcileVoteLatch()
}

// reconcileTurn drops the session back to idle when the turn moves away
// from the local player.
func (e *Engine) reconcileTurn(next store.State) {
	if e.myTurn.Left(true) && next.CurrentStep != types.StepStart {
		e.store.Dispatch(store.SetStep{Step: types.StepStart})
	}
}

// reconcileSocialDisgrace forces the mandatory-discard flow at the start of
// a disgraced player's turn, skipping the free choices.
func (e *Engine) reconcileSocialDisgrace(prev, next store.State) {
	cond := func(s store.State) bool {
		return s.CurrentStep == types.StepStart && s.IsMyTurn() && s.IsSocialDisgrace()
	}
	if cond(next) && !cond(prev) {
		e.store.Dispatch(store.SetStep{Step: types.StepDiscardSkip})
	}
}

// reconcileCounterPlays rearms the open cancellation window whenever a new
// counter-play log entry arrives.
func (e *Engine) reconcileCounterPlays(next store.State) {
	cur, _ := e.counterLog.Current()
	if !e.counterLog.Changed() || cur == 0 {
		return
	}
	switch next.CurrentStep {
	case types.StepWaitEventResolution:
		e.events.Restart()
	case types.StepWaitSetResolution:
		e.sets.Restart()
	}
}

// reconcileWindows closes a window whose item disappeared, whichever path
// cleared it. A cancelled window never queries the server.
func (e *Engine) reconcileWindows(prev, next store.State) {
	if prev.ActiveEventCard != nil && next.ActiveEventCard == nil {
		e.events.Cancel()
	}
	if prev.ActiveSet != nil && next.ActiveSet == nil {
		e.sets.Cancel()
	}
}

// reconcileTrade advances the trade initiator once the server clears both
// participants' trade flags.
func (e *Engine) reconcileTrade(next store.State) {
	if next.CurrentStep != types.StepWaitTrade || !next.IsMyTurn() {
		return
	}
	if e.myPending.Left(types.PendingSelectTradeCard, types.PendingWaitTradePartner) {
		e.store.Dispatch(store.SetSelectedCard{})
		e.store.Dispatch(store.SetSelectedTargetPlayer{})
		e.store.Dispatch(store.SetStep{Step: types.StepDiscard})
	}
}

// reconcileFolly advances the folly initiator once no player at the table
// still owes or awaits a folly card.
func (e *Engine) reconcileFolly(next store.State) {
	if next.CurrentStep != types.StepWaitTradeFolly || !next.IsMyTurn() {
		return
	}
	if e.follyBusy.Left(true) {
		e.store.Dispatch(store.SetStep{Step: types.StepDraw})
	}
}

// reconcileVoting advances the vote initiator when their own voting flag
// clears. A forced secret reveal arriving in its place keeps the session
// waiting; the prompt takes over instead.
func (e *Engine) reconcileVoting(next store.State) {
	if next.CurrentStep != types.StepWaitVotingToEnd || !next.IsMyTurn() {
		return
	}
	if !e.myPending.Left(types.PendingVote, types.PendingWaitVotingToEnd) {
		return
	}
	if cur, _ := e.myPending.Current(); cur == types.PendingRevealSecret {
		return
	}
	e.store.Dispatch(store.SetStep{Step: types.StepDiscard})
}

// reconcileReveal advances past the targeted-reveal wait once no opponent
// is still forced to reveal. Not gated on the turn: the target acts while
// the observer waits.
func (e *Engine) reconcileReveal(next store.State) {
	if next.CurrentStep != types.StepWaitRevealSecret {
		return
	}
	if e.oppReveal.Left(true) {
		e.store.Dispatch(store.SetSelectedTargetPlayer{})
		e.store.Dispatch(store.SetStep{Step: types.StepDiscard})
	}
}

// reconcileVoteLatch rearms the vote controller once the server confirms
// the voting round is over for the local player.
func (e *Engine) reconcileVoteLatch() {
	if e.myPending.Left(types.PendingVote, types.PendingWaitVotingToEnd) {
		e.Vote.reset()
	}
}

func anyPlayerPending(players []types.Player, set ...types.PendingAction) bool {
	for _, p := range players {
		if p.PendingAction.In(set...) {
			return true
		}
	}
	return false
}

func opponentRevealPending(s store.State) bool {
	for _, p := range s.Players {
		if p.ID != s.MyPlayerID && p.PendingAction == types.PendingRevealSecret {
			return true
		}
	}
	return false
}

func logID(entry *types.LogEntry) int {
	if entry == nil {
		return 0
	}
	return entry.ID
}
