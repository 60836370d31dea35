package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/store"
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

func TestStartChoose(t *testing.T) {
	e, st := newTestEngine(t, myTurnState(), &fakeService{}, time.Hour)

	e.Start.Choose(types.StepPlaySet)
	assert.Equal(t, types.StepPlaySet, st.State().CurrentStep)
}

func TestStartChooseOffTurn(t *testing.T) {
	s := myTurnState()
	s.Game.CurrentTurn = 2
	e, st := newTestEngine(t, s, &fakeService{}, time.Hour)

	e.Start.Choose(types.StepPlaySet)

	assert.Equal(t, types.StepStart, st.State().CurrentStep)
	assert.NotEmpty(t, e.Start.Message())
}

func TestStartChooseUnderDisgrace(t *testing.T) {
	s := myTurnState()
	s.Players[0].SocialDisgrace = true
	s.CurrentStep = types.StepDiscardSkip
	e, st := newTestEngine(t, s, &fakeService{}, time.Hour)

	e.Start.Choose(types.StepPlaySet)
	assert.Equal(t, types.StepDiscardSkip, st.State().CurrentStep)
	assert.NotEmpty(t, e.Start.Message())

	e.Start.Choose(types.StepDiscardSkip)
	assert.Equal(t, types.StepDiscardSkip, st.State().CurrentStep)
}

func TestPlaySetValidatesSelection(t *testing.T) {
	tests := []struct {
		name string
		ids  []int
		ok   bool
	}{
		{name: "none selected", ids: nil, ok: false},
		{name: "one selected", ids: []int{1}, ok: false},
		{name: "two selected", ids: []int{1, 2}, ok: true},
		{name: "three selected", ids: []int{1, 2, 3}, ok: true},
		{name: "four selected", ids: []int{1, 2, 3, 4}, ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &fakeService{playedSet: types.CardSet{ID: 9}}
			e, st := newTestEngine(t, myTurnState(), svc, time.Hour)
			for _, id := range tc.ids {
				e.ToggleHandCard(id)
			}

			e.PlaySet.Play(context.Background())

			if tc.ok {
				assert.Equal(t, types.StepWaitSetResolution, st.State().CurrentStep)
			} else {
				assert.Equal(t, types.StepStart, st.State().CurrentStep)
				assert.NotEmpty(t, e.PlaySet.Message())
			}
		})
	}
}

func TestPlayEventRejectsNonEvents(t *testing.T) {
	e, st := newTestEngine(t, myTurnState(), &fakeService{}, time.Hour)

	e.SelectCard(&types.Card{ID: 1, Type: types.CardTypeDetective, Name: setMissMarple})
	e.PlayEvent.Play(context.Background())

	assert.Equal(t, types.StepStart, st.State().CurrentStep)
	assert.NotEmpty(t, e.PlayEvent.Message())
}

func TestPlayEventRejectsCounterCard(t *testing.T) {
	e, st := newTestEngine(t, myTurnState(), &fakeService{}, time.Hour)

	e.SelectCard(&types.Card{ID: 1, Type: types.CardTypeEvent, Name: types.CardNotSoFast})
	e.PlayEvent.Play(context.Background())

	assert.Equal(t, types.StepStart, st.State().CurrentStep)
	assert.NotEmpty(t, e.PlayEvent.Message())
}

func TestAddDetectiveBranchesOnBoostedSet(t *testing.T) {
	svc := &fakeService{boostedSet: types.CardSet{ID: 3, Name: setParkerPyne}}
	e, st := newTestEngine(t, myTurnState(), svc, time.Hour)

	e.SelectCard(&types.Card{ID: 1, Type: types.CardTypeDetective})
	e.SelectSet(&types.CardSet{ID: 3})
	e.AddDetective.Add(context.Background())

	s := st.State()
	assert.Equal(t, types.StepSelectHideSecret, s.CurrentStep)
	assert.Nil(t, s.SelectedCard)
	assert.Nil(t, s.SelectedSet)
}

func TestDiscardMandatoryCannotBeAbandoned(t *testing.T) {
	s := myTurnState()
	s.Players[0].SocialDisgrace = true
	s.CurrentStep = types.StepDiscardSkip
	e, st := newTestEngine(t, s, &fakeService{}, time.Hour)

	e.Discard.Cancel()
	assert.Equal(t, types.StepDiscardSkip, st.State().CurrentStep)

	e.Discard.Skip()
	assert.Equal(t, types.StepDiscardSkip, st.State().CurrentStep)
	assert.NotEmpty(t, e.Discard.Message())
}

func TestDiscardConfirmMovesToDraw(t *testing.T) {
	s := myTurnState()
	s.CurrentStep = types.StepDiscard
	e, st := newTestEngine(t, s, &fakeService{}, time.Hour)

	e.ToggleHandCard(4)
	e.Discard.Confirm(context.Background())

	next := st.State()
	assert.Equal(t, types.StepDraw, next.CurrentStep)
	assert.Empty(t, next.SelectedCardIDs)
}

func TestDrawHandLimit(t *testing.T) {
	s := myTurnState()
	s.Players[0].Cards = []types.Card{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}, {ID: 6}}
	e, _ := newTestEngine(t, s, &fakeService{}, time.Hour)

	e.Draw.FromDeck(context.Background())
	assert.NotEmpty(t, e.Draw.Message())
}

func TestEndTurnRequiresFullHand(t *testing.T) {
	s := myTurnState()
	s.Game.CardsLeft = 10
	s.Players[0].Cards = []types.Card{{ID: 1}}
	svc := &fakeService{}
	e, _ := newTestEngine(t, s, svc, time.Hour)

	e.Draw.EndTurn(context.Background())

	svc.mu.Lock()
	defer svc.mu.Unlock()
	assert.Equal(t, 0, svc.turnsEnded)
	assert.NotEmpty(t, e.Draw.Message())
}

func TestEndTurnWithEmptyDeck(t *testing.T) {
	s := myTurnState()
	s.Game.CardsLeft = 0
	s.Players[0].Cards = []types.Card{{ID: 1}}
	svc := &fakeService{}
	e, st := newTestEngine(t, s, svc, time.Hour)

	e.Draw.EndTurn(context.Background())

	svc.mu.Lock()
	turns := svc.turnsEnded
	svc.mu.Unlock()
	assert.Equal(t, 1, turns, "an empty deck waives the hand limit")
	assert.Equal(t, types.StepStart, st.State().CurrentStep)
}

func TestVoteLatch(t *testing.T) {
	svc := &fakeService{}
	e, st := newTestEngine(t, myTurnState(), svc, time.Hour)

	e.Vote.Vote(context.Background(), 8)
	assert.True(t, e.Vote.Voted())

	e.Vote.Vote(context.Background(), 8)
	svc.mu.Lock()
	votes := len(svc.votes)
	svc.mu.Unlock()
	assert.Equal(t, 1, votes, "one vote per round")

	// The server closing the round rearms the latch.
	st.Sync(store.SetPlayers{Players: []types.Player{
		{ID: 7, TurnOrder: 1, PendingAction: types.PendingWaitVotingToEnd},
		{ID: 8, TurnOrder: 2},
	}})
	st.Sync(store.SetPlayers{Players: []types.Player{
		{ID: 7, TurnOrder: 1},
		{ID: 8, TurnOrder: 2},
	}})
	assert.False(t, e.Vote.Voted())
}

func TestVoteRejectsSelf(t *testing.T) {
	svc := &fakeService{}
	e, _ := newTestEngine(t, myTurnState(), svc, time.Hour)

	e.Vote.Vote(context.Background(), 7)

	svc.mu.Lock()
	defer svc.mu.Unlock()
	assert.Empty(t, svc.votes)
	assert.NotEmpty(t, e.Vote.Message())
}

func TestRevealSecretValidatesState(t *testing.T) {
	e, _ := newTestEngine(t, myTurnState(), &fakeService{}, time.Hour)

	e.SelectSecret(&types.Secret{ID: 3, PlayerID: 7, Revealed: true})
	e.RevealSecret.Reveal(context.Background())
	assert.NotEmpty(t, e.RevealSecret.Message())

	e.SelectSecret(&types.Secret{ID: 4, PlayerID: 7})
	e.HideSecret.Hide(context.Background())
	assert.NotEmpty(t, e.HideSecret.Message())
}

func TestRevealSecretFromSetPowerAdvances(t *testing.T) {
	s := myTurnState()
	s.CurrentStep = types.StepSelectRevealSecret
	e, st := newTestEngine(t, s, &fakeService{}, time.Hour)

	e.SelectSecret(&types.Secret{ID: 3, PlayerID: 7})
	e.RevealSecret.Reveal(context.Background())

	next := st.State()
	assert.Equal(t, types.StepDiscard, next.CurrentStep)
	assert.Nil(t, next.SelectedSecret)
}

func TestRevealSecretFromPromptKeepsStep(t *testing.T) {
	s := myTurnState()
	s.Game.CurrentTurn = 2 // forced reveal while observing
	e, st := newTestEngine(t, s, &fakeService{}, time.Hour)

	e.SelectSecret(&types.Secret{ID: 3, PlayerID: 7})
	e.RevealSecret.Reveal(context.Background())

	assert.Equal(t, types.StepStart, st.State().CurrentStep)
}

func TestSelectPlayerRevealKeepsTarget(t *testing.T) {
	svc := &fakeService{}
	e, st := newTestEngine(t, myTurnState(), svc, time.Hour)

	e.SelectTargetPlayer(&types.Player{ID: 8})
	e.SelectReveal.Select(context.Background())

	s := st.State()
	assert.Equal(t, types.StepWaitRevealSecret, s.CurrentStep)
	assert.NotNil(t, s.SelectedTargetPlayer, "the waiting step shows who was targeted")
}

func TestBlackmailChooseShowsOwnSecret(t *testing.T) {
	s := myTurnState()
	s.Players[0].PendingAction = types.PendingChooseBlackmail
	s.Players[1].PendingAction = types.PendingBlackmailed
	svc := &fakeService{}
	e, st := newTestEngine(t, s, svc, time.Hour)

	e.SelectSecret(&types.Secret{ID: 5, PlayerID: 7})
	e.Blackmail.ChooseSecret(context.Background())

	svc.mu.Lock()
	activations := svc.activations
	svc.mu.Unlock()
	require.Len(t, activations, 1)
	assert.Equal(t, [3]int{7, 8, 5}, activations[0], "the chooser shows, the waiting player views")
	assert.Nil(t, st.State().SelectedSecret)
	assert.Empty(t, e.Blackmail.Message())
}

func TestBlackmailChooseRejectsOpponentSecret(t *testing.T) {
	s := myTurnState()
	s.Players[0].PendingAction = types.PendingChooseBlackmail
	s.Players[1].PendingAction = types.PendingBlackmailed
	svc := &fakeService{}
	e, _ := newTestEngine(t, s, svc, time.Hour)

	e.SelectSecret(&types.Secret{ID: 5, PlayerID: 8})
	e.Blackmail.ChooseSecret(context.Background())

	svc.mu.Lock()
	defer svc.mu.Unlock()
	assert.Empty(t, svc.activations, "only the player's own secrets can be shown")
	assert.NotEmpty(t, e.Blackmail.Message())
}

func TestBlackmailChooseNeedsAViewer(t *testing.T) {
	s := myTurnState()
	s.Players[0].PendingAction = types.PendingChooseBlackmail
	svc := &fakeService{}
	e, _ := newTestEngine(t, s, svc, time.Hour)

	e.SelectSecret(&types.Secret{ID: 5, PlayerID: 7})
	e.Blackmail.ChooseSecret(context.Background())

	svc.mu.Lock()
	defer svc.mu.Unlock()
	assert.Empty(t, svc.activations)
	assert.NotEmpty(t, e.Blackmail.Message())
}

func TestBlackmailAcknowledgeAlwaysClears(t *testing.T) {
	svc := &fakeService{callErr: assert.AnError}
	e, st := newTestEngine(t, myTurnState(), svc, time.Hour)

	st.Sync(store.SetBlackmailSecret{Secret: &types.Secret{ID: 9, PlayerID: 8}})
	e.Blackmail.Acknowledge(context.Background())

	assert.Nil(t, st.State().BlackmailedSecret, "the prompt never sticks around")
	assert.NotEmpty(t, e.Blackmail.Message())
}

func TestDelayEscapePickBounds(t *testing.T) {
	e, _ := newTestEngine(t, myTurnState(), &fakeService{}, time.Hour)

	e.DelayEscape.Confirm(context.Background())
	assert.NotEmpty(t, e.DelayEscape.Message())

	for i := 1; i <= 6; i++ {
		e.DelayEscape.Toggle(i)
	}
	e.DelayEscape.Confirm(context.Background())
	assert.Len(t, e.DelayEscape.Selected(), 6, "an oversized pick is rejected, not trimmed")
}

func TestDelayEscapeCancelDropsPick(t *testing.T) {
	e, _ := newTestEngine(t, myTurnState(), &fakeService{}, time.Hour)

	e.DelayEscape.Toggle(1)
	e.DelayEscape.Toggle(2)
	e.DelayEscape.Cancel()

	assert.Empty(t, e.DelayEscape.Selected())
}

func TestCounterPlayOnlyRegisters(t *testing.T) {
	svc := &fakeService{}
	e, st := newTestEngine(t, myTurnState(), svc, time.Hour)

	st.Sync(store.SetLastCancelableEvent{Entry: &types.LogEntry{ID: 21}})
	e.SelectCard(&types.Card{ID: 3, Type: types.CardTypeEvent, Name: types.CardNotSoFast})
	e.CounterPlay.Play(context.Background())

	svc.mu.Lock()
	registered := svc.registered
	svc.mu.Unlock()
	assert.Equal(t, []int{3}, registered)
	assert.Empty(t, svc.discardedLists(), "the server moves the counter card itself")
	assert.Nil(t, st.State().SelectedCard)
}

func TestSelectPlayerRevealRetract(t *testing.T) {
	svc := &fakeService{}
	e, st := newTestEngine(t, myTurnState(), svc, time.Hour)

	e.SelectTargetPlayer(&types.Player{ID: 8})
	e.SelectReveal.Select(context.Background())
	require.Equal(t, types.StepWaitRevealSecret, st.State().CurrentStep)

	e.SelectReveal.Retract(context.Background())

	svc.mu.Lock()
	unselected := svc.unselected
	svc.mu.Unlock()
	assert.Equal(t, []int{8}, unselected)
	s := st.State()
	assert.Equal(t, types.StepSelectPlayerReveal, s.CurrentStep)
	assert.Nil(t, s.SelectedTargetPlayer)
}

func TestFollyNeighbour(t *testing.T) {
	tests := []struct {
		name      string
		direction string
		want      int
	}{
		{name: "right goes to next in turn order", direction: types.FollyRight, want: 8},
		{name: "left goes to previous in turn order", direction: types.FollyLeft, want: 9},
		{name: "unset direction defaults right", direction: "", want: 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := store.NewState(types.Game{ID: 1, CurrentTurn: 1, FollyDirection: tc.direction}, 7)
			s.Players = []types.Player{
				{ID: 9, TurnOrder: 3},
				{ID: 7, TurnOrder: 1},
				{ID: 8, TurnOrder: 2},
			}

			n, ok := follyNeighbour(s)
			require.True(t, ok)
			assert.Equal(t, tc.want, n.ID)
		})
	}
}

func TestControllerMessageAutoClears(t *testing.T) {
	st := store.New(myTurnState())
	e := New(st, &fakeService{}, Options{MessageTTL: 20 * time.Millisecond})
	t.Cleanup(e.Close)

	e.PlaySet.Play(context.Background())
	require.NotEmpty(t, e.PlaySet.Message())

	require.Eventually(t, func() bool {
		return e.PlaySet.Message() == ""
	}, time.Second, 5*time.Millisecond)
}

func TestControllerLockBlocksReentry(t *testing.T) {
	e, _ := newTestEngine(t, myTurnState(), &fakeService{}, time.Hour)

	require.True(t, e.PlaySet.tryLock())
	assert.True(t, e.PlaySet.Locked())

	// The primary action bails out while a previous submission is in flight.
	e.PlaySet.Play(context.Background())
	assert.Empty(t, e.PlaySet.Message())

	e.PlaySet.unlock()
	assert.False(t, e.PlaySet.Locked())
}
