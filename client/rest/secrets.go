package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lucamaccioni05/Web-Game-Project-Agatha-Cristhies/pkg/game/types"
)

// RevealSecret turns a hidden secret face up.
func (c *Client) RevealSecret(ctx context.Context, secretID int) (types.Secret, error) {
	var secret types.Secret
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/secrets/reveal/%d", secretID), nil, &secret)
	return secret, err
}

// HideSecret turns a revealed secret face down again.
func (c *Client) HideSecret(ctx context.Context, secretID int) (types.Secret, error) {
	var secret types.Secret
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/secrets/hide/%d", secretID), nil, &secret)
	return secret, err
}
