package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

// PlaySet2 plays a two-card detective set.
func (c *Client) PlaySet2(ctx context.Context, c1, c2 int) (types.CardSet, error) {
	var set types.CardSet
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/sets_of2/%d,%d", c1, c2), nil, &set)
	return set, err
}

// PlaySet3 plays a three-card detective set.
func (c *Client) PlaySet3(ctx context.Context, c1, c2, c3 int) (types.CardSet, error) {
	var set types.CardSet
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/sets_of3/%d,%d,%d", c1, c2, c3), nil, &set)
	return set, err
}

// StealSet moves an opponent's set to the player's table ("Another Victim").
func (c *Client) StealSet(ctx context.Context, playerID, setID int) (types.CardSet, error) {
	var set types.CardSet
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/sets/steal/%d/%d", playerID, setID), nil, &set)
	return set, err
}

// AddDetective adds a detective card to an existing set and returns the
// boosted set.
func (c *Client) AddDetective(ctx context.Context, cardID, setID int) (types.CardSet, error) {
	var set types.CardSet
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/add/detective/%d/%d", cardID, setID), nil, &set)
	return set, err
}
