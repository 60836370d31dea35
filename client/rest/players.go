package rest

import (
	"context"
	"fmt"
	"net/http"
)

// SelectPlayer marks a target player, forcing them to choose a secret to
// reveal.
func (c *Client) SelectPlayer(ctx context.Context, playerID int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/select/player/%d", playerID), nil, nil)
}

// UnselectPlayer clears a previous target selection.
func (c *Client) UnselectPlayer(ctx context.Context, playerID int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/unselect/player/%d", playerID), nil, nil)
}

// VotePlayer casts the voting player's vote against the voted player.
func (c *Client) VotePlayer(ctx context.Context, votedID, votingID int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/vote/player/%d/%d", votedID, votingID), nil, nil)
}
