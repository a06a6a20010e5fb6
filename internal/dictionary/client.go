// Package dictionary предоставляет клиент словарного API (dictionaryapi.dev).
package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en/"
	DefaultTimeout = 10 * time.Second
)

// Client представляет клиент словарного API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Config конфигурация клиента словаря.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// New создаёт новый клиент словаря.
func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Lookup ищет слово и возвращает первую словарную статью.
// Любой сбой (сеть, не-2xx, битый ответ) возвращается ошибкой, не паникой.
func (c *Client) Lookup(ctx context.Context, word string) (*Entry, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, fmt.Errorf("пустое слово")
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+url.PathEscape(word), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("словарь вернул %s", resp.Status)
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("статья не найдена")
	}

	return &entries[0], nil
}

// Link возвращает канонический URL статьи.
func (c *Client) Link(e *Entry) string {
	return c.baseURL + url.PathEscape(e.Word)
}
