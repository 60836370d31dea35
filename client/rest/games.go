package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

// GetGame fetches a game record.
func (c *Client) GetGame(ctx context.Context, gameID int) (types.Game, error) {
	var game types.Game
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/games/%d", gameID), nil, &game)
	return game, err
}

// UpdateTurn advances the turn to the next player.
func (c *Client) UpdateTurn(ctx context.Context, gameID int) (types.Game, error) {
	var game types.Game
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/game/update_turn/%d", gameID), nil, &game)
	return game, err
}

// GetLogs fetches the full audit trail for a game.
func (c *Client) GetLogs(ctx context.Context, gameID int) ([]types.LogEntry, error) {
	var entries []types.LogEntry
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/logs/%d", gameID), nil, &entries)
	return entries, err
}

type chatBody struct {
	Message string `json:"message"`
}

// SendChat delivers a chat message to be broadcast to the table.
func (c *Client) SendChat(ctx context.Context, gameID, playerID int, message string) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/send/chat/%d,%d", gameID, playerID), chatBody{Message: message}, nil)
}
