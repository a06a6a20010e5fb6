// Package rickmorty предоставляет клиент API персонажей (rickandmortyapi.com).
package rickmorty

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://rickandmortyapi.com/api"
	DefaultTimeout = 10 * time.Second

	// DefaultCharacterCount - запасное число персонажей для случайного
	// выбора, когда живой запрос количества не удался. Соответствует
	// размеру корпуса на момент написания; настраивается через конфиг.
	DefaultCharacterCount = 826
)

// Character - запись о персонаже.
type Character struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Status  string   `json:"status"`
	Species string   `json:"species"`
	Image   string   `json:"image"`
	Origin  Place    `json:"origin"`
	Location Place   `json:"location"`
	Episode []string `json:"episode"`
}

// Place - место (происхождение или текущая локация).
type Place struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Client представляет клиент API персонажей.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	fallbackCount int
	randInt       func(n int) int
}

// Config конфигурация клиента персонажей.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// CharacterCount - запасное количество персонажей (0 = DefaultCharacterCount).
	CharacterCount int
}

// New создаёт новый клиент API персонажей.
func New(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	count := cfg.CharacterCount
	if count <= 0 {
		count = DefaultCharacterCount
	}

	return &Client{
		baseURL:       baseURL,
		fallbackCount: count,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		randInt: rand.Intn,
	}
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API вернул %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// Count возвращает общее количество персонажей из постраничного индекса.
func (c *Client) Count(ctx context.Context) (int, error) {
	var page struct {
		Info struct {
			Count int `json:"count"`
		} `json:"info"`
	}

	if err := c.getJSON(ctx, c.baseURL+"/character", &page); err != nil {
		return 0, err
	}
	if page.Info.Count <= 0 {
		return 0, fmt.Errorf("некорректное количество персонажей")
	}

	return page.Info.Count, nil
}

// Random выбирает случайного персонажа.
// Если живой запрос количества не удался, используется запасное
// значение из конфига вместо скрытой константы.
func (c *Client) Random(ctx context.Context) (*Character, error) {
	count, err := c.Count(ctx)
	if err != nil {
		count = c.fallbackCount
	}

	return c.Character(ctx, 1+c.randInt(count))
}

// Character возвращает персонажа по идентификатору.
func (c *Client) Character(ctx context.Context, id int) (*Character, error) {
	var ch Character
	if err := c.getJSON(ctx, fmt.Sprintf("%s/character/%d", c.baseURL, id), &ch); err != nil {
		return nil, err
	}
	if ch.Name == "" {
		return nil, fmt.Errorf("персонаж не найден")
	}
	return &ch, nil
}

// EpisodeName возвращает название эпизода по его URL.
func (c *Client) EpisodeName(ctx context.Context, url string) (string, error) {
	var ep struct {
		Name string `json:"name"`
	}
	if err := c.getJSON(ctx, url, &ep); err != nil {
		return "", err
	}
	if ep.Name == "" {
		return "", fmt.Errorf("эпизод не найден")
	}
	return ep.Name, nil
}

// FetchImage скачивает изображение персонажа.
func (c *Client) FetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API вернул %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("пустое изображение")
	}

	return data, nil
}
