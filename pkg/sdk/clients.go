package sdk

import (
	"context"
	"fmt"
	"time"
)

// ClientRecord is a customer of the signed-in business.
type ClientRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateClientInput holds the fields accepted when creating a client.
type CreateClientInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Company string `json:"company,omitempty"`
	Address string `json:"address,omitempty"`
}

// ListClients returns one page of the business's clients.
func (c *Client) ListClients(ctx context.Context, opts ListOptions) (Page[ClientRecord], error) {
	var page Page[ClientRecord]
	if err := c.get(ctx, "/api/clients", opts.query(), &page); err != nil {
		return Page[ClientRecord]{}, err
	}
	return page, nil
}

// GetClient fetches a single client by ID.
func (c *Client) GetClient(ctx context.Context, id string) (*ClientRecord, error) {
	var record ClientRecord
	if err := c.get(ctx, "/api/clients/"+id, nil, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// CreateClient creates a new client record.
func (c *Client) CreateClient(ctx context.Context, input CreateClientInput) (*ClientRecord, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("client name is required")
	}
	var record ClientRecord
	if err := c.post(ctx, "/api/clients", input, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateClient replaces the mutable fields of a client record.
func (c *Client) UpdateClient(ctx context.Context, id string, input CreateClientInput) (*ClientRecord, error) {
	var record ClientRecord
	if err := c.put(ctx, "/api/clients/"+id, input, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteClient removes a client record.
func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/clients/"+id)
}
