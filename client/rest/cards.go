package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

// DrawCard draws the top card of the deck into the player's hand.
func (c *Client) DrawCard(ctx context.Context, playerID, gameID int) (types.Card, error) {
	var card types.Card
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/cards/pick_up/%d,%d", playerID, gameID), nil, &card)
	return card, err
}

// PickUpDraftCard takes the chosen card from the draft pile.
func (c *Client) PickUpDraftCard(ctx context.Context, gameID, cardID, playerID int) (types.Card, error) {
	var card types.Card
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/cards/draft_pickup/%d,%d,%d", gameID, cardID, playerID), nil, &card)
	return card, err
}

// PickUpFromDiscard takes a card out of the discard pile ("Look into the
// ashes" effect).
func (c *Client) PickUpFromDiscard(ctx context.Context, playerID, cardID int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/event/look_into_ashes/%d,%d", playerID, cardID), nil, nil)
}

type discardListBody struct {
	CardIDs []int `json:"card_ids"`
}

// DiscardSelected discards the given hand cards.
func (c *Client) DiscardSelected(ctx context.Context, playerID int, cardIDs []int) ([]types.Card, error) {
	var cards []types.Card
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/cards/game/drop_list/%d", playerID), discardListBody{CardIDs: cardIDs}, &cards)
	return cards, err
}
