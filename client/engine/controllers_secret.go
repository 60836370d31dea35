package engine

import (
	"context"

	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/store"
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

// RevealSecretController turns one of the local player's hidden secrets
// face up. It backs the set-power step and every server-forced reveal
// prompt; only the set-power path advances the step machine afterwards.
type RevealSecretController struct {
	controller
}

// Reveal reveals the selected secret.
func (c *RevealSecretController) Reveal(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	secret := s.SelectedSecret
	if secret == nil {
		c.setMessage("select one of your secrets")
		return
	}
	if secret.Revealed {
		c.setMessage("that secret is already revealed")
		return
	}
	if _, err := c.e.svc.RevealSecret(ctx, secret.ID); err != nil {
		c.setMessage(err.Error())
		return
	}

	c.e.store.Dispatch(store.SetSelectedSecret{})
	if s.CurrentStep == types.StepSelectRevealSecret {
		c.e.store.Dispatch(store.SetStep{Step: types.StepDiscard})
	}
}

// HideSecretController turns one of the local player's revealed secrets
// face down again (the Parker Pyne power).
type HideSecretController struct {
	controller
}

// Hide hides the selected secret.
func (c *HideSecretController) Hide(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	secret := s.SelectedSecret
	if secret == nil {
		c.setMessage("select one of your secrets")
		return
	}
	if !secret.Revealed {
		c.setMessage("that secret is already hidden")
		return
	}
	if _, err := c.e.svc.HideSecret(ctx, secret.ID); err != nil {
		c.setMessage(err.Error())
		return
	}

	c.e.store.Dispatch(store.SetSelectedSecret{})
	if s.CurrentStep == types.StepSelectHideSecret {
		c.e.store.Dispatch(store.SetStep{Step: types.StepDiscard})
	}
}

// SelectPlayerRevealController targets an opponent who must then choose one
// of their own secrets to reveal. The session waits until the server clears
// the target's forced-reveal flag.
type SelectPlayerRevealController struct {
	controller
}

// Select targets the selected opponent.
func (c *SelectPlayerRevealController) Select(ctx context.Context) {
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
	if err := c.e.svc.SelectPlayer(ctx, target.ID); err != nil {
		c.setMessage(err.Error())
		return
	}
	// The target stays selected so the waiting step can show who it is;
	// the reveal reconciler clears it.
	c.e.store.Dispatch(store.SetStep{Step: types.StepWaitRevealSecret})
}

// Retract withdraws the targeted reveal while the target has not acted yet,
// stepping back to the selection.
func (c *SelectPlayerRevealController) Retract(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	target := s.SelectedTargetPlayer
	if target == nil {
		return
	}
	if err := c.e.svc.UnselectPlayer(ctx, target.ID); err != nil {
		c.setMessage(err.Error())
		return
	}
	c.e.store.Dispatch(store.SetSelectedTargetPlayer{})
	c.e.store.Dispatch(store.SetStep{Step: types.StepSelectPlayerReveal})
}

// BlackmailController drives both halves of a blackmail: the coerced player
// choosing which of their own secrets to show, and the viewer dismissing
// the private reveal afterwards.
type BlackmailController struct {
	controller
}

// ChooseSecret privately shows the selected secret, which must be one of the
// local player's own hidden secrets, to the player waiting on the reveal.
func (c *BlackmailController) ChooseSecret(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	secret := s.SelectedSecret
	if secret == nil || secret.PlayerID != s.MyPlayerID {
		c.setMessage("select one of your own secrets")
		return
	}
	if secret.Revealed {
		c.setMessage("that secret is already public")
		return
	}
	viewer, ok := blackmailViewer(s)
	if !ok {
		c.setMessage("nobody is waiting for the reveal")
		return
	}
	if _, err := c.e.svc.ActivateBlackmail(ctx, s.MyPlayerID, viewer.ID, secret.ID); err != nil {
		c.setMessage(err.Error())
		return
	}
	c.e.store.Dispatch(store.SetSelectedSecret{})
}

// blackmailViewer finds the opponent the chosen secret is shown to.
func blackmailViewer(s store.State) (types.Player, bool) {
	for _, p := range s.Players {
		if p.ID != s.MyPlayerID && p.PendingAction == types.PendingBlackmailed {
			return p, true
		}
	}
	return types.Player{}, false
}

// Acknowledge dismisses the privately shown secret. The local copy is
// cleared even if the server call fails, so the prompt cannot get stuck.
func (c *BlackmailController) Acknowledge(ctx context.Context) {
	if !c.tryLock() {
		return
	}
	defer c.unlock()

	s := c.e.store.State()
	secret := s.BlackmailedSecret
	if secret == nil {
		return
	}
	err := c.e.svc.DeactivateBlackmail(ctx, secret.PlayerID, s.MyPlayerID)
	c.e.store.Dispatch(store.SetBlackmailSecret{})
	if err != nil {
		c.setMessage(err.Error())
	}
}
