package engine

import (
	"context"

	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/store"
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

// handLimit is the hand size a player draws back up to at the end of a turn.
const handLimit = 6

// StartController handles the idle step. On the player's turn it branches
// into one of the four opening choices; off turn it does nothing.
type StartController struct {
	controller
}

var freeChoices = map[types.Step]bool{
	types.StepPlaySet:      true,
	types.StepPlayEvent:    true,
	types.StepAddDetective: true,
	types.StepDiscardSkip:  true,
}

// Choose enters one of the free opening steps.
func (c *StartController) Choose(step types.Step) {
	s := c.e.store.State()
	if !s.IsMyTurn() {
		c.setMessage("wait for your turn")
		return
	}
	if s.IsSocialDisgrace() && step != types.StepDiscardSkip {
		c.setMessage("social disgrace: you must discard this turn")
		return
	}
	if !freeChoices[step] {
		return
	}
	c.e.store.Dispatch(store.SetStep{Step: step})
}

// PlaySetController plays a new detective set from the multi-card hand
// selection and opens its counter-play window.
type PlaySetController struct {
	controller
}

// Play submits the selected cards as a set. On success the set becomes the
// active item and the session waits out the counter-play window.
func (c *PlaySetController) Play(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	ids := s.SelectedCardIDs

	var (
		set types.CardSet
		err error
	)
	switch len(ids) {
	case 2:
		set, err = c.e.svc.PlaySet2(ctx, ids[0], ids[1])
	case 3:
		set, err = c.e.svc.PlaySet3(ctx, ids[0], ids[1], ids[2])
	default:
		c.setMessage("select two or three detective cards")
		return
	}
	if err != nil {
		c.setMessage(err.Error())
		return
	}
	if err := c.e.svc.RegisterCancelableSet(ctx, set.ID); err != nil {
		c.setMessage(err.Error())
		return
	}

	c.e.store.Dispatch(store.SetSelectedCard{})
	c.e.store.Dispatch(store.SetActiveSet{Set: &set})
	c.e.store.Dispatch(store.SetStep{Step: types.StepWaitSetResolution})
	c.e.sets.Open()
}

// PlayEventController plays the selected event card and opens its
// counter-play window. The card's effect only applies once the window
// expires uncountered.
type PlayEventController struct {
	controller
}

// Play submits the selected event card.
func (c *PlayEventController) Play(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	card := s.SelectedCard
	if card == nil || card.Type != types.CardTypeEvent {
		c.setMessage("select an event card")
		return
	}
	if card.Name == types.CardNotSoFast {
		c.setMessage("that card can only counter another play")
		return
	}
	if err := c.e.svc.RegisterCancelableEvent(ctx, card.ID); err != nil {
		c.setMessage(err.Error())
		c.e.store.Dispatch(store.ClearSelections{})
		return
	}

	c.e.store.Dispatch(store.SetSelectedCard{})
	c.e.store.Dispatch(store.SetActiveEvent{Card: card})
	c.e.store.Dispatch(store.SetStep{Step: types.StepWaitEventResolution})
	c.e.events.Open()
}

// AddDetectiveController adds the selected detective card to the selected
// table set and branches straight into the boosted set's power.
type AddDetectiveController struct {
	controller
}

// Add submits the boost.
func (c *AddDetectiveController) Add(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	card := s.SelectedCard
	if card == nil || card.Type != types.CardTypeDetective {
		c.setMessage("select a detective card")
		return
	}
	if s.SelectedSet == nil {
		c.setMessage("select a set on the table")
		return
	}

	boosted, err := c.e.svc.AddDetective(ctx, card.ID, s.SelectedSet.ID)
	if err != nil {
		c.setMessage(err.Error())
		return
	}

	c.e.store.Dispatch(store.SetSelectedCard{})
	c.e.store.Dispatch(store.SetSelectedSet{})
	next, _ := stepForSet(boosted.Name)
	c.e.store.Dispatch(store.SetStep{Step: next})
}

// DiscardController handles both the mandatory and the end-of-turn discard
// phases.
type DiscardController struct {
	controller
}

// Confirm discards the multi-card hand selection and moves on to drawing.
func (c *DiscardController) Confirm(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	ids := s.SelectedCardIDs
	if len(ids) == 0 {
		c.setMessage("select at least one card to discard")
		return
	}
	if _, err := c.e.svc.DiscardSelected(ctx, s.MyPlayerID, ids); err != nil {
		c.setMessage(err.Error())
		return
	}
	c.e.store.Dispatch(store.SetSelectedCard{})
	c.e.store.Dispatch(store.SetStep{Step: types.StepDraw})
}

// Skip moves on to drawing without discarding. The mandatory phase cannot
// be skipped.
func (c *DiscardController) Skip() {
	s := c.e.store.State()
	if s.CurrentStep == types.StepDiscardSkip && s.IsSocialDisgrace() {
		c.setMessage("social disgrace: discarding is mandatory")
		return
	}
	c.e.store.Dispatch(store.SetStep{Step: types.StepDraw})
}

// Cancel refuses to abandon a mandatory discard; otherwise it resets to
// idle like any other step.
func (c *DiscardController) Cancel() {
	s := c.e.store.State()
	if s.CurrentStep == types.StepDiscardSkip && s.IsSocialDisgrace() {
		c.setMessage("social disgrace: discarding is mandatory")
		return
	}
	c.controller.Cancel()
}

// DrawController handles the draw phase closing a turn: drawing back up to
// the hand limit from the deck or the draft pile, then passing the turn.
type DrawController struct {
	controller
}

// FromDeck draws the top deck card.
func (c *DrawController) FromDeck(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	if len(s.MyHand()) >= handLimit {
		c.setMessage("your hand is full")
		return
	}
	if _, err := c.e.svc.DrawCard(ctx, s.MyPlayerID, s.Game.ID); err != nil {
		c.setMessage(err.Error())
	}
}

// FromDraft takes the selected card from the draft pile instead.
func (c *DrawController) FromDraft(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	if len(s.MyHand()) >= handLimit {
		c.setMessage("your hand is full")
		return
	}
	card := s.SelectedCard
	if card == nil {
		c.setMessage("select a draft card")
		return
	}
	if _, err := c.e.svc.PickUpDraftCard(ctx, s.Game.ID, card.ID, s.MyPlayerID); err != nil {
		c.setMessage(err.Error())
		return
	}
	c.e.store.Dispatch(store.SetSelectedCard{})
}

// EndTurn passes the turn once the hand is refilled. The turn-change
// snapshot coming back over the bridge is what resets the step machine.
func (c *DrawController) EndTurn(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	if len(s.MyHand()) < handLimit && s.Game.CardsLeft > 0 {
		c.setMessage("draw back up to six cards first")
		return
	}
	if _, err := c.e.svc.UpdateTurn(ctx, s.Game.ID); err != nil {
		c.setMessage(err.Error())
		return
	}
	c.e.store.Dispatch(store.ClearSelections{})
}
