package store

import (
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

// Transition is the pure transition function: given a state and an action it
// returns the next state. It never mutates its input and performs no I/O, so
// it can be driven from tests without a network or timers.
func Transition(s State, a Action) State {
	switch act := a.(type) {
	case SetPlayers:
		s.Players = act.Players
	case SetGame:
		s.Game = act.Game
	case SetDiscardPile:
		s.DiscardPile = act.Cards
	case SetDraftPile:
		s.DraftPile = act.Cards
	case SetLogs:
		s.Logs = act.Entries
	case AddChatMessage:
		msgs := make([]types.ChatMessage, 0, len(s.ChatMessages)+1)
		msgs = append(msgs, s.ChatMessages...)
		s.ChatMessages = append(msgs, act.Message)
	case SetLastCancelableEvent:
		s.LastCancelableEvent = act.Entry
	case SetLastCancelableSet:
		s.LastCancelableSet = act.Entry
	case SetBlackmailSecret:
		s.BlackmailedSecret = act.Secret

	case SetStep:
		s.CurrentStep = act.Step
	case ToggleHandCardID:
		s.SelectedCardIDs = toggleID(s.SelectedCardIDs, act.CardID)
		s.SelectedCard = nil
	case SetSelectedCard:
		s.SelectedCard = act.Card
		s.SelectedCardIDs = nil
	case SetSelectedSet:
		s.SelectedSet = act.Set
	case SetSelectedSecret:
		s.SelectedSecret = act.Secret
	case SetSelectedTargetPlayer:
		s.SelectedTargetPlayer = act.Player
	case SetActiveEvent:
		s.ActiveEventCard = act.Card
	case SetActiveSet:
		s.ActiveSet = act.Set
	case ClearSelections:
		s.CurrentStep = types.StepStart
		s.SelectedCardIDs = nil
		s.SelectedCard = nil
		s.SelectedSet = nil
		s.SelectedSecret = nil
		s.SelectedTargetPlayer = nil
		s.ActiveEventCard = nil
		s.ActiveSet = nil
		s.LastCancelableEvent = nil
		s.LastCancelableSet = nil
	case SetLoading:
		s.Loading = act.Loading
	case SetError:
		s.ErrorMessage = act.Message
	}
	return s
}

// toggleID returns a fresh slice with id added if absent or removed if
// present, leaving the input untouched.
func toggleID(ids []int, id int) []int {
	out := make([]int, 0, len(ids)+1)
	found := false
	for _, v := range ids {
		if v == id {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, id)
	}
	return out
}
