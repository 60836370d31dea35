package store

import (
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

// Action is one element of the closed transition set. Every mutation of a
// session's State funnels through Transition with one of these.
//
// The set is split by origin: SyncAction values replace authoritative fields
// and may only come from the synchronization bridge; LocalAction values touch
// selection and step fields and are what controllers dispatch. The split is
// enforced at the type level through Store.Sync and Store.Dispatch.
type Action interface{ isAction() }

// SyncAction marks actions that write server-authoritative fields.
type SyncAction interface {
	Action
	isSync()
}

// LocalAction marks actions that only write local UI fields.
type LocalAction interface {
	Action
	isLocal()
}

// Bridge-sourced actions.

type SetPlayers struct{ Players []types.Player }

type SetGame struct{ Game types.Game }

type SetDiscardPile struct{ Cards []types.Card }

type SetDraftPile struct{ Cards []types.Card }

type SetLogs struct{ Entries []types.LogEntry }

type AddChatMessage struct{ Message types.ChatMessage }

type SetLastCancelableEvent struct{ Entry *types.LogEntry }

type SetLastCancelableSet struct{ Entry *types.LogEntry }

// SetBlackmailSecret surfaces (or clears) a secret shown through a private
// two-party reveal. The bridge sets it; the acknowledging side also clears it
// locally so the prompt cannot outlive the interaction, which makes this the
// one action usable from both origins.
type SetBlackmailSecret struct{ Secret *types.Secret }

func (SetPlayers) isAction()             {}
func (SetPlayers) isSync()               {}
func (SetGame) isAction()                {}
func (SetGame) isSync()                  {}
func (SetDiscardPile) isAction()         {}
func (SetDiscardPile) isSync()           {}
func (SetDraftPile) isAction()           {}
func (SetDraftPile) isSync()             {}
func (SetLogs) isAction()                {}
func (SetLogs) isSync()                  {}
func (AddChatMessage) isAction()         {}
func (AddChatMessage) isSync()           {}
func (SetLastCancelableEvent) isAction() {}
func (SetLastCancelableEvent) isSync()   {}
func (SetLastCancelableSet) isAction()   {}
func (SetLastCancelableSet) isSync()     {}
func (SetBlackmailSecret) isAction()     {}
func (SetBlackmailSecret) isSync()       {}
func (SetBlackmailSecret) isLocal()      {}

// Controller-sourced actions.

type SetStep struct{ Step types.Step }

// ToggleHandCardID flips membership of a card id in the multi-card hand
// selection. Toggling always clears the single-card selection.
type ToggleHandCardID struct{ CardID int }

// SetSelectedCard replaces the single-card selection. A non-nil card always
// empties the multi-card selection.
type SetSelectedCard struct{ Card *types.Card }

type SetSelectedSet struct{ Set *types.CardSet }

type SetSelectedSecret struct{ Secret *types.Secret }

type SetSelectedTargetPlayer struct{ Player *types.Player }

type SetActiveEvent struct{ Card *types.Card }

type SetActiveSet struct{ Set *types.CardSet }

// ClearSelections is the single reset-to-idle operation: step back to start,
// every selection, active-item and counter-play window field nulled. The
// game, players, piles and logs are untouched. It is idempotent.
type ClearSelections struct{}

type SetLoading struct{ Loading bool }

// SetError sets the session-level error banner; an empty message clears it.
// The bridge also dispatches this for connectivity failures.
type SetError struct{ Message string }

func (SetStep) isAction()                 {}
func (SetStep) isLocal()                  {}
func (ToggleHandCardID) isAction()        {}
func (ToggleHandCardID) isLocal()         {}
func (SetSelectedCard) isAction()         {}
func (SetSelectedCard) isLocal()          {}
func (SetSelectedSet) isAction()          {}
func (SetSelectedSet) isLocal()           {}
func (SetSelectedSecret) isAction()       {}
func (SetSelectedSecret) isLocal()        {}
func (SetSelectedTargetPlayer) isAction() {}
func (SetSelectedTargetPlayer) isLocal()  {}
func (SetActiveEvent) isAction()          {}
func (SetActiveEvent) isLocal()           {}
func (SetActiveSet) isAction()            {}
func (SetActiveSet) isLocal()             {}
func (ClearSelections) isAction()         {}
func (ClearSelections) isLocal()          {}
func (SetLoading) isAction()              {}
func (SetLoading) isLocal()               {}
func (SetError) isAction()                {}
func (SetError) isLocal()                 {}
