package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/apperror"
)

// Client talks to the content API. It is transport only: no caching, no
// fallback, no credential storage — the Session layers those on top.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *Client) FetchContent(ctx context.Context) (*entity.WebsiteContent, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/content", nil)
	if err != nil {
		return nil, err
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, apperror.NewStoreError("fetch content", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, apperror.NewStoreError("read content response", err)
	}

	switch res.StatusCode {
	case http.StatusOK:
		var doc entity.WebsiteContent
		if err := json.Unmarshal(body, &doc); err != nil {
			return nil, apperror.NewStoreError("decode content", err)
		}
		return &doc, nil
	case http.StatusNotFound:
		return nil, apperror.ErrNotFound
	default:
		return nil, apperror.NewStoreError("fetch content", fmt.Errorf("status %d: %s", res.StatusCode, string(body)))
	}
}

func (c *Client) PutContent(ctx context.Context, token string, doc *entity.WebsiteContent) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.BaseURL+"/content", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return apperror.NewStoreError("put content", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return apperror.NewStoreError("read put response", err)
	}

	switch res.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return apperror.ErrInvalidToken
	case http.StatusBadRequest:
		return apperror.ErrValidation
	default:
		var eb errorBody
		_ = json.Unmarshal(body, &eb)
		return apperror.NewStoreError("put content", fmt.Errorf("status %d: %s", res.StatusCode, eb.Error))
	}
}

// Login exchanges the admin password for a bearer token.
func (c *Client) Login(ctx context.Context, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{"password": password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/auth", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", apperror.NewStoreError("login", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		return "", apperror.ErrUnauthorized
	}
	if res.StatusCode != http.StatusOK {
		return "", apperror.NewStoreError("login", fmt.Errorf("status %d", res.StatusCode))
	}

	var lr struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	if err := json.NewDecoder(res.Body).Decode(&lr); err != nil {
		return "", apperror.NewStoreError("decode login response", err)
	}
	if !lr.Success || lr.Token == "" {
		return "", apperror.ErrUnauthorized
	}
	return lr.Token, nil
}
