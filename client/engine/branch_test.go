package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

func TestStepForSet(t *testing.T) {
	tests := []struct {
		set      string
		want     types.Step
		hasPower bool
	}{
		{set: setHerculePoirot, want: types.StepSelectRevealSecret, hasPower: true},
		{set: setMissMarple, want: types.StepSelectRevealSecret, hasPower: true},
		{set: setSatterthwaite, want: types.StepSelectPlayerReveal, hasPower: true},
		{set: setBundleBrent, want: types.StepSelectPlayerReveal, hasPower: true},
		{set: setTommyBeresford, want: types.StepSelectPlayerReveal, hasPower: true},
		{set: setTuppence, want: types.StepSelectPlayerReveal, hasPower: true},
		{set: setBeresfords, want: types.StepSelectPlayerReveal, hasPower: true},
		{set: setParkerPyne, want: types.StepSelectHideSecret, hasPower: true},
		{set: "Ariadne Oliver", want: types.StepDiscard, hasPower: false},
		{set: "", want: types.StepDiscard, hasPower: false},
	}

	for _, tc := range tests {
		t.Run(tc.set, func(t *testing.T) {
			got, ok := stepForSet(tc.set)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.hasPower, ok)
		})
	}
}

func TestStepForEvent(t *testing.T) {
	tests := []struct {
		event     string
		want      types.Step
		hasFollow bool
	}{
		{event: eventCardTrade, want: types.StepCardTrade, hasFollow: true},
		{event: eventPointSuspicions, want: types.StepPointSuspicions, hasFollow: true},
		{event: eventAnotherVictim, want: types.StepAnotherVictim, hasFollow: true},
		{event: eventLookIntoAshes, want: types.StepLookIntoAshes, hasFollow: true},
		{event: eventCardsOffTable, want: types.StepCardsOffTable, hasFollow: true},
		{event: eventOneMore, want: types.StepOneMore, hasFollow: true},
		{event: eventDelayEscape, want: types.StepDelayEscape, hasFollow: true},
		{event: eventDeadCardFolly, want: types.StepDeadCardFolly, hasFollow: true},
		{event: eventEarlyTrain, want: types.StepDiscard, hasFollow: false},
		{event: "Unknown card", want: types.StepDiscard, hasFollow: false},
	}

	for _, tc := range tests {
		t.Run(tc.event, func(t *testing.T) {
			got, ok := stepForEvent(tc.event)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.hasFollow, ok)
		})
	}
}
