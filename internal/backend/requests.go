package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	ctx, cancel := c.exchangeContext(ctx)
	defer cancel()

	resp, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return decodeJSON(resp, out)
}

func (c *Client) PostJSON(ctx context.Context, path string, in, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPost, path, in, out)
}

func (c *Client) PutJSON(ctx context.Context, path string, in, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPut, path, in, out)
}

func (c *Client) PatchJSON(ctx context.Context, path string, in, out interface{}) error {
	return c.sendJSON(ctx, http.MethodPatch, path, in, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	ctx, cancel := c.exchangeContext(ctx)
	defer cancel()

	resp, err := c.do(ctx, http.MethodDelete, path, nil, "")
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out interface{}) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
	}
	ctx, cancel := c.exchangeContext(ctx)
	defer cancel()

	resp, err := c.do(ctx, method, path, &body, "application/json")
	if err != nil {
		return err
	}
	return decodeJSON(resp, out)
}
