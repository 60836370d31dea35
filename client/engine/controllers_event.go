package engine

import (
	"context"
	"sort"
	"sync"

	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/store"
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

// StealSetController resolves "Another Victim": the selected opponent set
// moves to the player's table and, if it carries a power, that power fires.
type StealSetController struct {
	controller
}

// Steal takes the selected set.
func (c *StealSetController) Steal(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	set := s.SelectedSet
	if set == nil || set.PlayerID == s.MyPlayerID {
		c.setMessage("select an opponent's set")
		return
	}

	stolen, err := c.e.svc.StealSet(ctx, s.MyPlayerID, set.ID)
	if err != nil {
		c.setMessage(err.Error())
		c.e.store.Dispatch(store.ClearSelections{})
		return
	}
	c.discardTrigger(ctx, s)

	c.e.store.Dispatch(store.SetSelectedSet{})
	c.e.store.Dispatch(store.SetSelectedCard{})
	c.e.store.Dispatch(store.SetActiveEvent{})
	next, _ := stepForSet(stolen.Name)
	c.e.store.Dispatch(store.SetStep{Step: next})
}

// LookIntoAshesController resolves "Look into the ashes": one card comes
// back out of the discard pile.
type LookIntoAshesController struct {
	controller
}

// PickUp takes the selected discard-pile card into the hand.
func (c *LookIntoAshesController) PickUp(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	card := s.SelectedCard
	if card == nil {
		c.setMessage("select a card from the discard pile")
		return
	}
	if err := c.e.svc.PickUpFromDiscard(ctx, s.MyPlayerID, card.ID); err != nil {
		c.setMessage(err.Error())
		return
	}
	c.discardTrigger(ctx, s)

	c.e.store.Dispatch(store.SetSelectedCard{})
	c.e.store.Dispatch(store.SetActiveEvent{})
	c.e.store.Dispatch(store.SetStep{Step: types.StepDiscard})
}

// CardsOffTableController resolves "Cards off the table": the chosen
// opponent loses their counter cards.
type CardsOffTableController struct {
	controller
}

// Strip applies the effect to the selected target.
func (c *CardsOffTableController) Strip(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	target := s.SelectedTargetPlayer
	if target == nil || target.ID == s.MyPlayerID {
		c.setMessage("select an opponent")
		return
	}
	if err := c.e.svc.CardsOffTheTable(ctx, target.ID); err != nil {
		c.setMessage(err.Error())
		return
	}
	c.discardTrigger(ctx, s)

	c.e.store.Dispatch(store.SetSelectedTargetPlayer{})
	c.e.store.Dispatch(store.SetActiveEvent{})
	c.e.store.Dispatch(store.SetStep{Step: types.StepDiscard})
}

// OneMoreController resolves "And then there was one more...": a revealed
// secret moves to another player face down.
type OneMoreController struct {
	controller
}

// Give moves the selected revealed secret to the selected player.
func (c *OneMoreController) Give(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	secret := s.SelectedSecret
	if secret == nil || !secret.Revealed {
		c.setMessage("select a revealed secret")
		return
	}
	target := s.SelectedTargetPlayer
	if target == nil {
		c.setMessage("select the player receiving the secret")
		return
	}
	if err := c.e.svc.OneMore(ctx, target.ID, secret.ID); err != nil {
		c.setMessage(err.Error())
		return
	}
	c.discardTrigger(ctx, s)

	c.e.store.Dispatch(store.SetSelectedSecret{})
	c.e.store.Dispatch(store.SetSelectedTargetPlayer{})
	c.e.store.Dispatch(store.SetActiveEvent{})
	c.e.store.Dispatch(store.SetStep{Step: types.StepDiscard})
}

// DelayEscapeController resolves "Delay the murderer's escape!": one to
// five discard-pile cards go back under the deck. The discard-pile picks
// are step-scoped, so the controller keeps them itself instead of using the
// hand selection.
type DelayEscapeController struct {
	controller

	selMu    sync.Mutex
	selected []int
}

// Toggle flips a discard-pile card in or out of the pick.
func (c *DelayEscapeController) Toggle(cardID int) {
	c.selMu.Lock()
	defer c.selMu.Unlock()
	for i, id := range c.selected {
		if id == cardID {
			c.selected = append(c.selected[:i], c.selected[i+1:]...)
			return
		}
	}
	c.selected = append(c.selected, cardID)
}

// Selected returns the current pick.
func (c *DelayEscapeController) Selected() []int {
	c.selMu.Lock()
	defer c.selMu.Unlock()
	out := make([]int, len(c.selected))
	copy(out, c.selected)
	return out
}

// Confirm returns the picked cards to the deck.
func (c *DelayEscapeController) Confirm(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	ids := c.Selected()
	if len(ids) < 1 || len(ids) > 5 {
		c.setMessage("pick one to five cards from the discard pile")
		return
	}
	s := c.e.store.State()
	if err := c.e.svc.DelayEscape(ctx, s.Game.ID, s.MyPlayerID, ids); err != nil {
		c.setMessage(err.Error())
		return
	}
	c.discardTrigger(ctx, s)

	c.clearPick()
	c.e.store.Dispatch(store.SetActiveEvent{})
	c.e.store.Dispatch(store.SetStep{Step: types.StepDiscard})
}

// Cancel drops the step-scoped pick along with the usual reset.
func (c *DelayEscapeController) Cancel() {
	c.clearPick()
	c.controller.Cancel()
}

func (c *DelayEscapeController) clearPick() {
	c.selMu.Lock()
	c.selected = nil
	c.selMu.Unlock()
}

// PointSuspicionsController resolves "Point your suspicions": a table-wide
// vote starts and the initiator waits for it to end.
type PointSuspicionsController struct {
	controller
}

// CallVote starts the vote.
func (c *PointSuspicionsController) CallVote(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	if err := c.e.svc.PointYourSuspicions(ctx, s.Game.ID); err != nil {
		c.setMessage(err.Error())
		c.e.store.Dispatch(store.ClearSelections{})
		return
	}
	c.discardTrigger(ctx, s)

	c.e.store.Dispatch(store.SetActiveEvent{})
	c.e.store.Dispatch(store.SetStep{Step: types.StepWaitVotingToEnd})
}

// VoteController casts the local player's vote during "Point your
// suspicions". A latch keeps one round to one vote; the engine rearms it
// when the server clears the voting flags.
type VoteController struct {
	controller

	voteMu sync.Mutex
	voted  bool
}

// Vote casts a vote against the given player.
func (c *VoteController) Vote(ctx context.Context, votedID int) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	c.voteMu.Lock()
	already := c.voted
	c.voteMu.Unlock()
	if already {
		c.setMessage("your vote is already in")
		return
	}

	s := c.e.store.State()
	if votedID == s.MyPlayerID {
		c.setMessage("you cannot vote for yourself")
		return
	}
	if err := c.e.svc.VotePlayer(ctx, votedID, s.MyPlayerID); err != nil {
		c.setMessage(err.Error())
		return
	}
	c.voteMu.Lock()
	c.voted = true
	c.voteMu.Unlock()
	c.setMessage("vote registered")
}

// Voted reports whether the local player's vote is in for this round.
func (c *VoteController) Voted() bool {
	c.voteMu.Lock()
	defer c.voteMu.Unlock()
	return c.voted
}

func (c *VoteController) reset() {
	c.voteMu.Lock()
	c.voted = false
	c.voteMu.Unlock()
}

// CardTradeController resolves "Card trade": the initiator picks a partner,
// then both sides hand over a card of their choice.
type CardTradeController struct {
	controller
}

// Initiate starts a trade with the selected target player.
func (c *CardTradeController) Initiate(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	target := s.SelectedTargetPlayer
	if target == nil || target.ID == s.MyPlayerID {
		c.setMessage("select a trade partner")
		return
	}
	active := s.ActiveEventCard
	if active == nil {
		c.setMessage("no trade in progress")
		return
	}
	if err := c.e.svc.InitiateCardTrade(ctx, s.MyPlayerID, target.ID, active.ID); err != nil {
		c.setMessage(err.Error())
		c.e.store.Dispatch(store.ClearSelections{})
		return
	}

	c.e.store.Dispatch(store.SetActiveEvent{})
	c.e.store.Dispatch(store.SetStep{Step: types.StepWaitTrade})
}

// SubmitCard hands over the selected card. Both trade participants use
// this while their trade flag is set.
func (c *CardTradeController) SubmitCard(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	card := s.SelectedCard
	if card == nil {
		c.setMessage("select the card to trade away")
		return
	}
	if err := c.e.svc.SelectTradeCard(ctx, s.MyPlayerID, card.ID); err != nil {
		c.setMessage(err.Error())
		return
	}
	c.e.store.Dispatch(store.SetSelectedCard{})
}

// DeadCardFollyController resolves "Dead card folly": every player passes
// one card to their neighbour in the chosen direction.
type DeadCardFollyController struct {
	controller
}

// Initiate starts the folly in the given direction.
func (c *DeadCardFollyController) Initiate(ctx context.Context, direction string) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	if direction != types.FollyLeft && direction != types.FollyRight {
		c.setMessage("pick a direction")
		return
	}
	s := c.e.store.State()
	active := s.ActiveEventCard
	if active == nil {
		c.setMessage("no folly in progress")
		return
	}
	if err := c.e.svc.InitiateFolly(ctx, s.MyPlayerID, s.Game.ID, active.ID, direction); err != nil {
		c.setMessage(err.Error())
		c.e.store.Dispatch(store.ClearSelections{})
		return
	}

	c.e.store.Dispatch(store.SetActiveEvent{})
	c.e.store.Dispatch(store.SetStep{Step: types.StepWaitTradeFolly})
}

// SubmitCard passes the selected card to the neighbour the folly direction
// points at. Every player uses this while their folly flag is set.
func (c *DeadCardFollyController) SubmitCard(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	card := s.SelectedCard
	if card == nil {
		c.setMessage("select the card to pass along")
		return
	}
	neighbour, ok := follyNeighbour(s)
	if !ok {
		c.setMessage("no neighbour to pass to")
		return
	}
	if err := c.e.svc.FollyTrade(ctx, s.MyPlayerID, neighbour.ID, card.ID); err != nil {
		c.setMessage(err.Error())
		return
	}
	c.e.store.Dispatch(store.SetSelectedCard{})
}

// CounterPlayController plays a held counter card into an open cancellation
// window, rearming it for everyone at the table.
type CounterPlayController struct {
	controller
}

// Play submits the selected counter card.
func (c *CounterPlayController) Play(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	card := s.SelectedCard
	if card == nil || card.Name != types.CardNotSoFast {
		c.setMessage("select your counter card")
		return
	}
	if s.LastCancelableEvent == nil && s.LastCancelableSet == nil {
		c.setMessage("there is nothing to counter")
		return
	}
	// Registering is the whole play; the server moves the card itself.
	if err := c.e.svc.RegisterCancelableEvent(ctx, card.ID); err != nil {
		c.setMessage(err.Error())
		return
	}
	c.e.store.Dispatch(store.SetSelectedCard{})
}

// discardTrigger sends the event card that triggered the current flow to
// the discard pile. Flows that already consumed their trigger server-side
// have a nil active card and skip it.
func (c *controller) discardTrigger(ctx context.Context, s store.State) {
	if s.ActiveEventCard == nil {
		return
	}
	if _, err := c.e.svc.DiscardSelected(ctx, s.MyPlayerID, []int{s.ActiveEventCard.ID}); err != nil {
		c.e.logger.Warnw("failed to discard event trigger", "card", s.ActiveEventCard.Name, "error", err)
	}
}

// follyNeighbour resolves which player sits next to the local player in the
// game's folly direction, by turn order with wrap-around.
func follyNeighbour(s store.State) (types.Player, bool) {
	if len(s.Players) < 2 {
		return types.Player{}, false
	}
	players := make([]types.Player, len(s.Players))
	copy(players, s.Players)
	sort.Slice(players, func(i, j int) bool { return players[i].TurnOrder < players[j].TurnOrder })

	idx := -1
	for i, p := range players {
		if p.ID == s.MyPlayerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return types.Player{}, false
	}
	step := 1
	if s.Game.FollyDirection == types.FollyLeft {
		step = len(players) - 1
	}
	return players[(idx+step)%len(players)], true
}
