package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

// ResolvedItem is the answer to a cancellation-window query: whichever event
// card or set ultimately survived the window. Exactly one of CardID/SetID is
// meaningful depending on what was being resolved.
type ResolvedItem struct {
	CardID int    `json:"card_id"`
	SetID  int    `json:"set_id"`
	Name   string `json:"name"`
}

// CountCancellations asks the server which item survived the counter-play
// window for the given game.
func (c *Client) CountCancellations(ctx context.Context, gameID int) (ResolvedItem, error) {
	var item ResolvedItem
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/events/count/Not_so_fast/%d", gameID), nil, &item)
	return item, err
}

// RegisterCancelableEvent opens (or extends) the counter-play window for an
// event card.
func (c *Client) RegisterCancelableEvent(ctx context.Context, cardID int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/event/Not_so_fast/%d", cardID), nil, nil)
}

// RegisterCancelableSet opens (or extends) the counter-play window for a
// played set.
func (c *Client) RegisterCancelableSet(ctx context.Context, setID int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/set/Not_so_fast/%d", setID), nil, nil)
}

// CardsOffTheTable strips a player's counter-play cards.
func (c *Client) CardsOffTheTable(ctx context.Context, playerID int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/event/cards_off_table/%d", playerID), nil, nil)
}

// OneMore moves a revealed secret to another player face down ("And then
// there was one more...").
func (c *Client) OneMore(ctx context.Context, newSecretPlayerID, secretID int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/event/one_more/%d,%d", newSecretPlayerID, secretID), nil, nil)
}

type delayEscapeBody struct {
	CardIDs []int `json:"card_ids"`
}

// DelayEscape returns 1-5 discard-pile cards to the deck.
func (c *Client) DelayEscape(ctx context.Context, gameID, playerID int, cardIDs []int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/event/delay_escape/%d,%d", gameID, playerID), delayEscapeBody{CardIDs: cardIDs}, nil)
}

// EarlyTrainPaddington resolves the immediate "Early train to paddington"
// effect; there is no follow-up step on the client.
func (c *Client) EarlyTrainPaddington(ctx context.Context, gameID, playerID int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/event/early_train_paddington/%d,%d", gameID, playerID), nil, nil)
}

// PointYourSuspicions starts a table-wide vote.
func (c *Client) PointYourSuspicions(ctx context.Context, gameID int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/event/point_your_suspicion/%d", gameID), nil, nil)
}

// InitiateCardTrade starts a trade between the trader and the tradee using
// the played event card.
func (c *Client) InitiateCardTrade(ctx context.Context, traderID, tradeeID, cardID int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/event/card_trade/initiate/%d,%d,%d", traderID, tradeeID, cardID), nil, nil)
}

// SelectTradeCard submits the card a trade participant hands over.
func (c *Client) SelectTradeCard(ctx context.Context, playerID, cardID int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/event/card_trade/select_card/%d/%d", playerID, cardID), nil, nil)
}

// InitiateFolly starts "Dead card folly": every player passes a card in the
// chosen direction.
func (c *Client) InitiateFolly(ctx context.Context, playerID, gameID, cardID int, direction string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/event/dead_card_folly/initiate/%d/%d/%d/%s", playerID, gameID, cardID, direction), nil, nil)
}

// FollyTrade passes the chosen card to the neighbour during a folly exchange.
func (c *Client) FollyTrade(ctx context.Context, fromPlayerID, toPlayerID, cardID int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/event/dead_card_folly/select_card/%d/%d/%d", fromPlayerID, toPlayerID, cardID), nil, nil)
}

// ActivateBlackmail privately reveals a secret from one player to another.
func (c *Client) ActivateBlackmail(ctx context.Context, fromPlayerID, toPlayerID, secretID int) (types.Secret, error) {
	var secret types.Secret
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/event/blackmailed/%d,%d,%d", fromPlayerID, toPlayerID, secretID), nil, &secret)
	return secret, err
}

// DeactivateBlackmail ends a private reveal and clears both players' pending
// actions server-side.
func (c *Client) DeactivateBlackmail(ctx context.Context, fromPlayerID, toPlayerID int) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/event/blackmailed/deactivate/%d,%d", fromPlayerID, toPlayerID), nil, nil)
}
