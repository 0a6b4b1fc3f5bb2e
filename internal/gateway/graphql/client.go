// Package graphql runs raw GraphQL operations against the package service.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gql "github.com/hasura/go-graphql-client"
	"trackit/internal/pkg/identity"
)

const defaultTimeout = 10 * time.Second

type Request struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	endpoint string
	http     doer
	gql      *gql.Client
}

type Option func(*Client)

func WithHTTPClient(c doer) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}

	c.gql = gql.NewClient(endpoint, &recordingDoer{next: c.http}).
		WithRequestModifier(func(r *http.Request) {
			r.Header.Set("Accept", "application/json")
			if token, ok := identity.Token(r.Context()); ok {
				r.Header.Set("Authorization", "Bearer "+token)
			}
		})
	return c
}

// Do runs the operation and decodes the data object into out.
// Transport failures are returned wrapped; anything the server answered with is an *Error.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	exchange := &exchange{}
	data, err := c.gql.ExecRaw(withExchange(ctx, exchange), req.Query, req.Variables)

	if exchange.status == 0 {
		if err == nil {
			err = errors.New("no response")
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("graphql transport: %w", ctxErr)
		}
		return fmt.Errorf("graphql transport: %w", err)
	}

	if exchange.status < 200 || exchange.status > 299 {
		return &Error{StatusCode: exchange.status, Messages: bodyMessages(exchange.body)}
	}
	if !json.Valid(exchange.body) {
		return &Error{StatusCode: exchange.status, Messages: []string{"malformed graphql response"}}
	}
	if err != nil {
		return &Error{StatusCode: exchange.status, Messages: errorMessages(err)}
	}

	if out == nil || len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &Error{StatusCode: exchange.status, Messages: []string{"unexpected graphql data: " + err.Error()}}
	}
	return nil
}

func errorMessages(err error) []string {
	var errs gql.Errors
	if !errors.As(err, &errs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		if e.Message != "" {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

// bodyMessages pulls the errors array out of a non-2xx body, which the library reports only as a status.
func bodyMessages(body []byte) []string {
	var decoded struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if json.Unmarshal(body, &decoded) != nil {
		return nil
	}

	var msgs []string
	for _, e := range decoded.Errors {
		if e.Message != "" {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

// exchange records what the server actually answered for one operation.
type exchange struct {
	status int
	body   []byte
}

type exchangeKey struct{}

func withExchange(ctx context.Context, e *exchange) context.Context {
	return context.WithValue(ctx, exchangeKey{}, e)
}

type recordingDoer struct {
	next doer
}

func (d *recordingDoer) Do(req *http.Request) (*http.Response, error) {
	resp, err := d.next.Do(req)
	if err != nil {
		return nil, err
	}

	e, ok := req.Context().Value(exchangeKey{}).(*exchange)
	if !ok {
		return resp, nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read graphql response: %w", err)
	}
	e.status = resp.StatusCode
	e.body = body
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}
