// Package client is a typed Go client for the store-rating API. It is
// the server-side counterpart of the SPA's API proxy: it attaches the
// bearer token obtained at register/login to every subsequent call.
package client

import (
	"context"
	"fmt"
	"strings"

	"storerate/internal/domain/entity"
	"storerate/internal/usecase"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Client calls the store-rating API.
type Client struct {
	http *resty.Client
}

// apiError is the error body shape returned by the server.
type apiError struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors"`
}

func (e *apiError) message() string {
	if e.Error != "" {
		return e.Error
	}
	if len(e.Errors) > 0 {
		return strings.Join(e.Errors, "; ")
	}

	return "request failed"
}

// AuthResult is the payload returned by Register and Login.
type AuthResult struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *entity.User `json:"user"`
}

// New creates a client against the given base URL (e.g. "http://localhost:5000").
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json"),
	}
}

// SetToken sets the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

// Register creates an account and stores the returned token on the client.
func (c *Client) Register(ctx context.Context, input *usecase.RegisterInput) (*AuthResult, error) {
	var out AuthResult
	if err := c.call(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(input).SetResult(&out).Post("/api/register")
	}); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)

	return &out, nil
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var out AuthResult
	if err := c.call(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(&usecase.LoginInput{Email: email, Password: password}).
			SetResult(&out).
			Post("/api/login")
	}); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)

	return &out, nil
}

// Profile returns the authenticated user's record.
func (c *Client) Profile(ctx context.Context) (*entity.User, error) {
	var out struct {
		User *entity.User `json:"user"`
	}
	if err := c.call(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&out).Get("/api/profile")
	}); err != nil {
		return nil, err
	}

	return out.User, nil
}

// UpdatePassword changes the authenticated user's password.
func (c *Client) UpdatePassword(ctx context.Context, currentPassword, newPassword string) error {
	return c.call(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(&usecase.UpdatePasswordInput{
			CurrentPassword: currentPassword,
			NewPassword:     newPassword,
		}).Put("/api/update-password")
	})
}

// Stores lists stores with rating aggregates.
func (c *Client) Stores(ctx context.Context, filter *usecase.StoreListInput) ([]*entity.StoreWithStats, error) {
	var out struct {
		Stores []*entity.StoreWithStats `json:"stores"`
	}
	if err := c.call(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetQueryParams(storeQuery(filter)).SetResult(&out).Get("/api/stores")
	}); err != nil {
		return nil, err
	}

	return out.Stores, nil
}

// StoresWithRatings lists stores including the caller's own rating.
func (c *Client) StoresWithRatings(ctx context.Context, filter *usecase.StoreListInput) ([]*usecase.StoreWithViewerRating, error) {
	var out struct {
		Stores []*usecase.StoreWithViewerRating `json:"stores"`
	}
	if err := c.call(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetQueryParams(storeQuery(filter)).SetResult(&out).Get("/api/stores-with-ratings")
	}); err != nil {
		return nil, err
	}

	return out.Stores, nil
}

// SubmitRating rates a store on the caller's behalf.
func (c *Client) SubmitRating(ctx context.Context, storeID uint64, rating int) error {
	return c.call(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(map[string]int{"rating": rating}).
			Post(fmt.Sprintf("/api/stores/%d/rate", storeID))
	})
}

// StoreRatings lists a store's ratings, newest first.
func (c *Client) StoreRatings(ctx context.Context, storeID uint64) ([]*entity.StoreRatingEntry, error) {
	var out struct {
		Ratings []*entity.StoreRatingEntry `json:"ratings"`
	}
	if err := c.call(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&out).Get(fmt.Sprintf("/api/stores/%d/ratings", storeID))
	}); err != nil {
		return nil, err
	}

	return out.Ratings, nil
}

// CreateUser creates a user with an explicit role (admin only).
func (c *Client) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (uint64, error) {
	var out struct {
		UserID uint64 `json:"userId"`
	}
	if err := c.call(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(input).SetResult(&out).Post("/api/admin/users")
	}); err != nil {
		return 0, err
	}

	return out.UserID, nil
}

// Users lists users with filters (admin only).
func (c *Client) Users(ctx context.Context, filter *usecase.UserListInput) ([]*entity.User, error) {
	params := map[string]string{}
	if filter != nil {
		params["name"] = filter.Name
		params["email"] = filter.Email
		params["role"] = filter.Role
		params["sortBy"] = filter.SortBy
		params["sortOrder"] = filter.SortOrder
	}

	var out struct {
		Users []*entity.User `json:"users"`
	}
	if err := c.call(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetQueryParams(params).SetResult(&out).Get("/api/admin/users")
	}); err != nil {
		return nil, err
	}

	return out.Users, nil
}

// Stats returns the dashboard totals (admin only).
func (c *Client) Stats(ctx context.Context) (*usecase.Stats, error) {
	var out struct {
		Stats *usecase.Stats `json:"stats"`
	}
	if err := c.call(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&out).Get("/api/admin/stats")
	}); err != nil {
		return nil, err
	}

	return out.Stats, nil
}

// UserDetails returns one user with owner rating when applicable (admin only).
func (c *Client) UserDetails(ctx context.Context, userID uint64) (*entity.UserDetails, error) {
	var out struct {
		User *entity.UserDetails `json:"user"`
	}
	if err := c.call(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&out).Get(fmt.Sprintf("/api/admin/users/%d", userID))
	}); err != nil {
		return nil, err
	}

	return out.User, nil
}

// CreateStore creates a store (admin only).
func (c *Client) CreateStore(ctx context.Context, input *usecase.CreateStoreInput) (uint64, error) {
	var out struct {
		StoreID uint64 `json:"storeId"`
	}
	if err := c.call(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(input).SetResult(&out).Post("/api/admin/stores")
	}); err != nil {
		return 0, err
	}

	return out.StoreID, nil
}

// call runs one request and converts error responses into Go errors.
func (c *Client) call(ctx context.Context, do func(r *resty.Request) (*resty.Response, error)) error {
	var apiErr apiError
	resp, err := do(c.http.R().SetContext(ctx).SetError(&apiErr))
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	if resp.IsError() {
		return errors.Errorf("%s: %s", resp.Status(), apiErr.message())
	}

	return nil
}

func storeQuery(filter *usecase.StoreListInput) map[string]string {
	params := map[string]string{}
	if filter == nil {
		return params
	}

	params["name"] = filter.Name
	params["address"] = filter.Address
	params["sortBy"] = filter.SortBy
	params["sortOrder"] = filter.SortOrder

	return params
}
