package types

// Step is the local state-machine state describing what the acting or
// observing player should currently be doing. It is purely client-side
// intent; the server never sees it.
type Step string

const (
	// StepStart is the idle state at the beginning of a turn (and the state
	// every observer sits in while it is not their turn).
	StepStart Step = "start"

	// Free-choice turn steps.
	StepPlaySet      Step = "p_set"
	StepPlayEvent    Step = "p_event"
	StepAddDetective Step = "add_detective"
	StepDiscardSkip  Step = "discard_skip"
	StepDiscard      Step = "discard_op"
	StepDraw         Step = "draw"

	// Event resolution steps, one per event card flow.
	StepAnotherVictim   Step = "another_victim"
	StepLookIntoAshes   Step = "look_into_the_ashes"
	StepCardsOffTable   Step = "cards_off_the_table"
	StepOneMore         Step = "and_then_there_was_one_more"
	StepDelayEscape     Step = "delay_escape_selection"
	StepPointSuspicions Step = "point_your_suspicions"
	StepVote            Step = "vote"
	StepWaitVotingToEnd Step = "wait_voting_to_end"
	StepCardTrade       Step = "card_trade"
	StepWaitTrade       Step = "wait_trade"
	StepDeadCardFolly   Step = "dead_card_folly"
	StepWaitTradeFolly  Step = "wait_trade_folly"

	// Cancellation window steps.
	StepWaitEventResolution Step = "wait_event_resolution"
	StepWaitSetResolution   Step = "wait_set_resolution"

	// Set resolution steps.
	StepSelectRevealSecret Step = "sel_reveal_secret"
	StepSelectHideSecret   Step = "sel_hide_secret"
	StepSelectPlayerReveal Step = "sel_player_reveal"
	StepWaitRevealSecret   Step = "wait_reveal_secret"
)

// Steps lists every step the engine dispatches on. Kept in one place so the
// handler table can be checked for exhaustiveness in tests.
var Steps = []Step{
	StepStart,
	StepPlaySet,
	StepPlayEvent,
	StepAddDetective,
	StepDiscardSkip,
	StepDiscard,
	StepDraw,
	StepAnotherVictim,
	StepLookIntoAshes,
	StepCardsOffTable,
	StepOneMore,
	StepDelayEscape,
	StepPointSuspicions,
	StepVote,
	StepWaitVotingToEnd,
	StepCardTrade,
	StepWaitTrade,
	StepDeadCardFolly,
	StepWaitTradeFolly,
	StepWaitEventResolution,
	StepWaitSetResolution,
	StepSelectRevealSecret,
	StepSelectHideSecret,
	StepSelectPlayerReveal,
	StepWaitRevealSecret,
}
