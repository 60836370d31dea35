package types

// PendingAction is a server-authoritative flag on a player record forcing
// that player into a specific interaction. The zero value means no
// interaction is pending; a JSON null decodes to it.
type PendingAction string

const (
	PendingNone PendingAction = ""

	PendingRevealSecret        PendingAction = "REVEAL_SECRET"
	PendingRevealFauxPasSecret PendingAction = "REVEAL_SOCIAL_FAUX_PAS_SECRET"
	PendingChooseBlackmail     PendingAction = "CHOOSE_BLACKMAIL_SECRET"
	PendingBlackmailed         PendingAction = "BLACKMAILED"
	PendingSelectTradeCard     PendingAction = "SELECT_TRADE_CARD"
	PendingWaitTradePartner    PendingAction = "WAITING_FOR_TRADE_PARTNER"
	PendingSelectFollyCard     PendingAction = "SELECT_FOLLY_CARD"
	PendingWaitFollyTrade      PendingAction = "WAITING_FOR_FOLLY_TRADE"
	PendingVote                PendingAction = "VOTE"
	PendingWaitVotingToEnd     PendingAction = "WAITING_VOTING_TO_END"
	PendingWaitRevealSecret    PendingAction = "WAITING_REVEAL_SECRET"
)

// None reports whether no interaction is pending.
func (p PendingAction) None() bool {
	return p == PendingNone
}

// In reports whether p is one of the given values.
func (p PendingAction) In(set ...PendingAction) bool {
	for _, v := range set {
		if p == v {
			return true
		}
	}
	return false
}
