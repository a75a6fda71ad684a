package sdk

import (
	"context"
	"time"
)

// FollowUp is a reminder to contact a client.
type FollowUp struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Note      string    `json:"note"`
	DueAt     time.Time `json:"due_at"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateFollowUpInput holds the fields accepted when scheduling a follow-up.
type CreateFollowUpInput struct {
	ClientID string    `json:"client_id"`
	Note     string    `json:"note"`
	DueAt    time.Time `json:"due_at"`
}

// ListFollowUps returns one page of follow-ups.
func (c *Client) ListFollowUps(ctx context.Context, opts ListOptions) (Page[FollowUp], error) {
	var page Page[FollowUp]
	if err := c.get(ctx, "/api/followups", opts.query(), &page); err != nil {
		return Page[FollowUp]{}, err
	}
	return page, nil
}

// CreateFollowUp schedules a new follow-up.
func (c *Client) CreateFollowUp(ctx context.Context, input CreateFollowUpInput) (*FollowUp, error) {
	var followUp FollowUp
	if err := c.post(ctx, "/api/followups", input, &followUp); err != nil {
		return nil, err
	}
	return &followUp, nil
}

// CompleteFollowUp marks a follow-up as done.
func (c *Client) CompleteFollowUp(ctx context.Context, id string) (*FollowUp, error) {
	var followUp FollowUp
	if err := c.put(ctx, "/api/followups/"+id+"/done", nil, &followUp); err != nil {
		return nil, err
	}
	return &followUp, nil
}
