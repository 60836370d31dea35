package engine

import (
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

// Event card names with a follow-up flow on the acting client.
const (
	eventCardTrade       = "Card trade"
	eventPointSuspicions = "Point your suspicions"
	eventAnotherVictim   = "Another Victim"
	eventLookIntoAshes   = "Look into the ashes"
	eventCardsOffTable   = "Cards off the table"
	eventOneMore         = "And then there was one more..."
	eventDelayEscape     = "Delay the murderer's escape!"
	eventEarlyTrain      = "Early train to paddington"
	eventDeadCardFolly   = "Dead card folly"
)

// Detective set names, grouped by the power they trigger when the set
// resolves (freshly played, boosted or stolen).
const (
	setHerculePoirot  = "Hercule Poirot"
	setMissMarple     = "Miss Marple"
	setSatterthwaite  = "Mr Satterthwaite"
	setBundleBrent    = "Lady Eileen 'Bundle' Brent"
	setTommyBeresford = "Tommy Beresford"
	setTuppence       = "Tuppence Beresford"
	setBeresfords     = "Beresford brothers"
	setParkerPyne     = "Parker Pyne"
)

// stepForSet maps a resolved set name to its follow-up step. The second
// return is false for sets with no power, which fall through to the discard
// phase.
func stepForSet(name string) (types.Step, bool) {
	switch name {
	case setHerculePoirot, setMissMarple:
		return types.StepSelectRevealSecret, true
	case setSatterthwaite, setBundleBrent, setTommyBeresford, setTuppence, setBeresfords:
		return types.StepSelectPlayerReveal, true
	case setParkerPyne:
		return types.StepSelectHideSecret, true
	default:
		return types.StepDiscard, false
	}
}

// stepForEvent maps a resolved event card name to its follow-up step. The
// second return is false for events that resolve entirely server-side (or
// have no client flow at all); those discard the trigger and fall through.
func stepForEvent(name string) (types.Step, bool) {
	switch name {
	case eventCardTrade:
		return types.StepCardTrade, true
	case eventPointSuspicions:
		return types.StepPointSuspicions, true
	case eventAnotherVictim:
		return types.StepAnotherVictim, true
	case eventLookIntoAshes:
		return types.StepLookIntoAshes, true
	case eventCardsOffTable:
		return types.StepCardsOffTable, true
	case eventOneMore:
		return types.StepOneMore, true
	case eventDelayEscape:
		return types.StepDelayEscape, true
	case eventDeadCardFolly:
		return types.StepDeadCardFolly, true
	default:
		return types.StepDiscard, false
	}
}
