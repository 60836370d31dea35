package engine

import (
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/store"
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

// Prompt names the interaction the local player must be offered right now,
// independent of whose turn it is.
type Prompt int

const (
	PromptNone Prompt = iota
	// PromptCounterPlay offers playing a held counter card into an open
	// cancellation window.
	PromptCounterPlay
	// PromptRevealSecret covers a forced reveal of one of the player's own
	// secrets, whatever forced it.
	PromptRevealSecret
	// PromptRevealFauxPas is the forced reveal after a social faux pas.
	PromptRevealFauxPas
	// PromptChooseBlackmail forces the coerced player to pick one of their
	// own hidden secrets to show the waiting viewer.
	PromptChooseBlackmail
	// PromptBlackmailed shows the privately revealed secret to its viewer.
	PromptBlackmailed
	// PromptSelectTradeCard asks for the card to hand over in a trade.
	PromptSelectTradeCard
	// PromptSelectFollyCard asks for the card to pass along in a folly.
	PromptSelectFollyCard
	// PromptVote asks for the player's vote.
	PromptVote
	// PromptFreeTurn is an unforced turn: the free choices are available.
	PromptFreeTurn
)

// counterSuppressedSteps lists the steps during which the counter-play
// offer is withheld: discards and exchanges the player has to finish before
// anything may interrupt them.
var counterSuppressedSteps = map[types.Step]bool{
	types.StepDiscard:        true,
	types.StepDiscardSkip:    true,
	types.StepLookIntoAshes:  true,
	types.StepDelayEscape:    true,
	types.StepWaitTrade:      true,
	types.StepWaitTradeFolly: true,
}

// ActivePrompt derives the current forced prompt from the latest snapshot.
// It is recomputed from scratch on every call rather than stored, so a
// snapshot arriving in any order can never leave a stale prompt behind.
//
// Priority when several conditions hold at once: the counter-play offer
// wins (its window is expiring in real time), then forced secret reveals,
// then trade, folly and vote obligations, and only then the free turn.
func ActivePrompt(s store.State) Prompt {
	if s.SelectedCard != nil && s.SelectedCard.Name == types.CardNotSoFast &&
		(s.LastCancelableEvent != nil || s.LastCancelableSet != nil) &&
		!counterSuppressedSteps[s.CurrentStep] {
		return PromptCounterPlay
	}
	switch s.MyPendingAction() {
	case types.PendingRevealSecret:
		return PromptRevealSecret
	case types.PendingRevealFauxPasSecret:
		return PromptRevealFauxPas
	case types.PendingChooseBlackmail:
		return PromptChooseBlackmail
	case types.PendingBlackmailed:
		return PromptBlackmailed
	case types.PendingSelectTradeCard:
		return PromptSelectTradeCard
	case types.PendingSelectFollyCard:
		return PromptSelectFollyCard
	case types.PendingVote:
		return PromptVote
	}
	if s.IsMyTurn() {
		return PromptFreeTurn
	}
	return PromptNone
}
