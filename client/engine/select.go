package engine

import (
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/store"
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

// Selection helpers. The presentation layer calls these instead of
// dispatching store actions itself, keeping the engine the only writer of
// local state.

// ToggleHandCard flips a card in or out of the multi-card hand selection.
func (e *Engine) ToggleHandCard(cardID int) {
	e.store.Dispatch(store.ToggleHandCardID{CardID: cardID})
}

// SelectCard replaces the single-card selection; nil clears it.
func (e *Engine) SelectCard(card *types.Card) {
	e.store.Dispatch(store.SetSelectedCard{Card: card})
}

// SelectSet replaces the table-set selection; nil clears it.
func (e *Engine) SelectSet(set *types.CardSet) {
	e.store.Dispatch(store.SetSelectedSet{Set: set})
}

// SelectSecret replaces the secret selection; nil clears it.
func (e *Engine) SelectSecret(secret *types.Secret) {
	e.store.Dispatch(store.SetSelectedSecret{Secret: secret})
}

// SelectTargetPlayer replaces the target-player selection; nil clears it.
func (e *Engine) SelectTargetPlayer(p *types.Player) {
	e.store.Dispatch(store.SetSelectedTargetPlayer{Player: p})
}
