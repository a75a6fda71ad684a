package sdk

import (
	"context"
	"time"
)

// Admin is a tenant administrator account, visible to platform operators
// only. The routes below require the superadmin role; an admin calling them
// receives Forbidden from the backend regardless of what the local guard
// decided.
type Admin struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PlanID    string    `json:"plan_id,omitempty"`
	Disabled  bool      `json:"disabled"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateAdminInput holds the fields accepted when provisioning an admin.
type CreateAdminInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	PlanID   string `json:"plan_id,omitempty"`
}

// Plan is a subscription tier assignable to tenant admins.
type Plan struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	PriceCents int       `json:"price_cents"`
	MaxClients int       `json:"max_clients"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreatePlanInput holds the fields accepted when creating a plan.
type CreatePlanInput struct {
	Name       string `json:"name"`
	PriceCents int    `json:"price_cents"`
	MaxClients int    `json:"max_clients"`
}

// ListAdmins returns one page of tenant admins.
func (c *Client) ListAdmins(ctx context.Context, opts ListOptions) (Page[Admin], error) {
	var page Page[Admin]
	if err := c.get(ctx, "/api/superadmin/admins", opts.query(), &page); err != nil {
		return Page[Admin]{}, err
	}
	return page, nil
}

// CreateAdmin provisions a new tenant admin account.
func (c *Client) CreateAdmin(ctx context.Context, input CreateAdminInput) (*Admin, error) {
	var admin Admin
	if err := c.post(ctx, "/api/superadmin/admins", input, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// SetAdminDisabled enables or disables a tenant admin account.
func (c *Client) SetAdminDisabled(ctx context.Context, id string, disabled bool) (*Admin, error) {
	var admin Admin
	body := struct {
		Disabled bool `json:"disabled"`
	}{Disabled: disabled}
	if err := c.put(ctx, "/api/superadmin/admins/"+id+"/disabled", body, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// ListPlans returns one page of subscription plans.
func (c *Client) ListPlans(ctx context.Context, opts ListOptions) (Page[Plan], error) {
	var page Page[Plan]
	if err := c.get(ctx, "/api/superadmin/plans", opts.query(), &page); err != nil {
		return Page[Plan]{}, err
	}
	return page, nil
}

// CreatePlan creates a new subscription plan.
func (c *Client) CreatePlan(ctx context.Context, input CreatePlanInput) (*Plan, error) {
	var plan Plan
	if err := c.post(ctx, "/api/superadmin/plans", input, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
