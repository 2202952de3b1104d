// Package restclient binds the data-access contract to a remote HTTP
// endpoint. The remote surface is narrower than the native one: operations
// the endpoint does not expose return repository.ErrNotImplemented, and
// per-user reads the endpoint cannot scope come back empty or broadened,
// mirroring what callers of the remote service actually get today.
package restclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gpushare/market-go/internal/config"
	"github.com/gpushare/market-go/internal/domain/profile"
	"github.com/gpushare/market-go/internal/repository"
	"github.com/gpushare/market-go/pkg/response"
)

type Client struct {
	base  string
	token string
	http  *http.Client
}

// New builds a client against the given base URL, falling back to the
// configured API base when empty.
func New(base string) *Client {
	if base == "" {
		base = config.ApiBase
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// Login authenticates with a phone number and verification code.
func (c *Client) Login(phone, code string) (response.TokenResponse, error) {
	var tr response.TokenResponse
	if err := c.post("/auth/login", profile.LoginInput{Phone: phone, Code: code}, &tr); err != nil {
		return response.TokenResponse{}, err
	}
	return tr, nil
}

// WithToken returns a copy that authenticates with the given bearer token.
func (c *Client) WithToken(token string) *Client {
	out := *c
	out.token = token
	return &out
}

func (c *Client) get(path string, query url.Values, out interface{}) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(path string, body, out interface{}) error {
	return c.send(http.MethodPost, path, body, out)
}

func (c *Client) send(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, c.base+path, reader)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return remoteError(res)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func remoteError(res *http.Response) error {
	msg := res.Status
	raw, err := io.ReadAll(io.LimitReader(res.Body, 4096))
	if err == nil && len(raw) > 0 {
		var body struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &body) == nil && body.Error != "" {
			msg = body.Error
		} else {
			msg = fmt.Sprintf("%s: %s", res.Status, strings.TrimSpace(string(raw)))
		}
	}
	return &repository.RemoteError{StatusCode: res.StatusCode, Message: msg}
}
