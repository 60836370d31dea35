package store

import (
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

// State is the single per-session state container. The top block mirrors
// server-authoritative data and is only ever replaced by bridge-sourced
// actions; the bottom block is local UI intent owned by the step engine.
type State struct {
	Game        types.Game
	Players     []types.Player
	DiscardPile []types.Card
	DraftPile   []types.Card
	MyPlayerID  int

	CurrentStep          types.Step
	SelectedCardIDs      []int
	SelectedCard         *types.Card
	SelectedSet          *types.CardSet
	SelectedSecret       *types.Secret
	SelectedTargetPlayer *types.Player
	ActiveEventCard      *types.Card
	ActiveSet            *types.CardSet
	LastCancelableEvent  *types.LogEntry
	LastCancelableSet    *types.LogEntry
	BlackmailedSecret    *types.Secret

	Logs         []types.LogEntry
	ChatMessages []types.ChatMessage

	ErrorMessage string
	Loading      bool
}

// NewState builds the initial state for a session. The authoritative game
// record and the local viewer's identity are supplied once and the identity
// never changes afterwards.
func NewState(game types.Game, myPlayerID int) State {
	return State{
		Game:        game,
		MyPlayerID:  myPlayerID,
		CurrentStep: types.StepStart,
	}
}

// CurrentPlayer returns the local viewer's player record from the latest
// players snapshot.
func (s State) CurrentPlayer() (types.Player, bool) {
	for _, p := range s.Players {
		if p.ID == s.MyPlayerID {
			return p, true
		}
	}
	return types.Player{}, false
}

// IsMyTurn reports whether the local viewer currently holds the turn.
func (s State) IsMyTurn() bool {
	p, ok := s.CurrentPlayer()
	return ok && p.TurnOrder == s.Game.CurrentTurn
}

// IsSocialDisgrace reports whether the local viewer is in social disgrace,
// which forces the mandatory-discard flow at the start of their turn.
func (s State) IsSocialDisgrace() bool {
	p, ok := s.CurrentPlayer()
	return ok && p.SocialDisgrace
}

// MyPendingAction returns the local viewer's server-forced interaction.
func (s State) MyPendingAction() types.PendingAction {
	p, ok := s.CurrentPlayer()
	if !ok {
		return types.PendingNone
	}
	return p.PendingAction
}

// MyHand returns the local viewer's current hand, excluding cards already
// discarded.
func (s State) MyHand() []types.Card {
	p, ok := s.CurrentPlayer()
	if !ok {
		return nil
	}
	hand := make([]types.Card, 0, len(p.Cards))
	for _, c := range p.Cards {
		if !c.Dropped {
			hand = append(hand, c)
		}
	}
	return hand
}

// HandCardSelected reports whether the given card id is part of the
// multi-card hand selection.
func (s State) HandCardSelected(cardID int) bool {
	for _, id := range s.SelectedCardIDs {
		if id == cardID {
			return true
		}
	}
	return false
}
