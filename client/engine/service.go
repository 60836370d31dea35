package engine

import (
	"context"

	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/client/rest"
	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

// Service is the slice of the game server API the step engine drives.
// *rest.Client satisfies it; tests substitute a scripted fake.
type Service interface {
	DrawCard(ctx context.Context, playerID, gameID int) (types.Card, error)
	PickUpDraftCard(ctx context.Context, gameID, cardID, playerID int) (types.Card, error)
	PickUpFromDiscard(ctx context.Context, playerID, cardID int) error
	DiscardSelected(ctx context.Context, playerID int, cardIDs []int) ([]types.Card, error)

	PlaySet2(ctx context.Context, c1, c2 int) (types.CardSet, error)
	PlaySet3(ctx context.Context, c1, c2, c3 int) (types.CardSet, error)
	StealSet(ctx context.Context, playerID, setID int) (types.CardSet, error)
	AddDetective(ctx context.Context, cardID, setID int) (types.CardSet, error)

	RevealSecret(ctx context.Context, secretID int) (types.Secret, error)
	HideSecret(ctx context.Context, secretID int) (types.Secret, error)

	SelectPlayer(ctx context.Context, playerID int) error
	UnselectPlayer(ctx context.Context, playerID int) error
	VotePlayer(ctx context.Context, votedID, votingID int) error

	CountCancellations(ctx context.Context, gameID int) (rest.ResolvedItem, error)
	RegisterCancelableEvent(ctx context.Context, cardID int) error
	RegisterCancelableSet(ctx context.Context, setID int) error

	CardsOffTheTable(ctx context.Context, playerID int) error
	OneMore(ctx context.Context, newSecretPlayerID, secretID int) error
	DelayEscape(ctx context.Context, gameID, playerID int, cardIDs []int) error
	EarlyTrainPaddington(ctx context.Context, gameID, playerID int) error
	PointYourSuspicions(ctx context.Context, gameID int) error
	InitiateCardTrade(ctx context.Context, traderID, tradeeID, cardID int) error
	SelectTradeCard(ctx context.Context, playerID, cardID int) error
	InitiateFolly(ctx context.Context, playerID, gameID, cardID int, direction string) error
	FollyTrade(ctx context.Context, fromPlayerID, toPlayerID, cardID int) error
	ActivateBlackmail(ctx context.Context, fromPlayerID, toPlayerID, secretID int) (types.Secret, error)
	DeactivateBlackmail(ctx context.Context, fromPlayerID, toPlayerID int) error

	UpdateTurn(ctx context.Context, gameID int) (types.Game, error)
}

var _ Service = (*rest.Client)(nil)
