package sdk

import (
	"context"
	"time"
)

// Project is a piece of work tracked for a client.
type Project struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"client_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProjectInput holds the fields accepted when creating a project.
type CreateProjectInput struct {
	ClientID    string `json:"client_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ListProjects returns one page of projects.
func (c *Client) ListProjects(ctx context.Context, opts ListOptions) (Page[Project], error) {
	var page Page[Project]
	if err := c.get(ctx, "/api/projects", opts.query(), &page); err != nil {
		return Page[Project]{}, err
	}
	return page, nil
}

// CreateProject creates a new project.
func (c *Client) CreateProject(ctx context.Context, input CreateProjectInput) (*Project, error) {
	var project Project
	if err := c.post(ctx, "/api/projects", input, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/projects/"+id)
}
