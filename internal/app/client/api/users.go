package api

import (
	"context"
	"net/http"
	"net/url"

	"docui/internal/domain/user"
)

// ListUsers возвращает список пользователей.
func (c *Client) ListUsers(ctx context.Context) ([]user.Record, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/users/", nil, nil, "")
	if err != nil {
		return nil, err
	}

	var records []user.Record
	if err := c.parseResponse(resp, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// DeleteUser удаляет пользователя по идентификатору.
func (c *Client) DeleteUser(ctx context.Context, id string) (*user.DeleteResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/users/"+url.PathEscape(id), nil, nil, "")
	if err != nil {
		return nil, err
	}

	var deleteResp user.DeleteResponse
	if err := c.parseResponse(resp, &deleteResp); err != nil {
		return nil, err
	}

	return &deleteResp, nil
}
