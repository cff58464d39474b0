package occupation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// ErrNoMatch is returned when the keyword search finds no occupation.
var ErrNoMatch = errors.New("no matching occupation found")

// CareerInfo is the description and task list for one occupation code.
type CareerInfo struct {
	Description string
	Tasks       []string
}

type Config struct {
	BaseURL  string
	Username string
	Password string
	Timeout  time.Duration
}

func NewConfig() (*Config, error) {
	username := os.Getenv("ONET_USERNAME")
	password := os.Getenv("ONET_PASSWORD")
	if username == "" || password == "" {
		return nil, errors.New("ONET_USERNAME and ONET_PASSWORD environment variables are required")
	}

	baseURL := os.Getenv("ONET_BASE_URL")
	if baseURL == "" {
		baseURL = "https://services.onetcenter.org/ws/"
	}

	return &Config{
		BaseURL:  baseURL,
		Username: username,
		Password: password,
		Timeout:  15 * time.Second,
	}, nil
}

// Client talks to the occupation-data web service. Credentials and timeout
// are injected at construction; safe for concurrent use.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
}

func NewClient(config *Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/") + "/",
		username:   config.Username,
		password:   config.Password,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

type searchResult struct {
	Occupation []struct {
		Code  string `json:"code"`
		Title string `json:"title"`
	} `json:"occupation"`
	Error string `json:"error"`
}

type careerResult struct {
	WhatTheyDo string `json:"what_they_do"`
	OnTheJob   struct {
		Task []string `json:"task"`
	} `json:"on_the_job"`
	Error string `json:"error"`
}

// SearchCode resolves a keyword to the top-ranked occupation code.
// Returns ErrNoMatch when the service finds nothing relevant.
func (c *Client) SearchCode(ctx context.Context, keyword string) (string, error) {
	keyword = strings.TrimSpace(keyword)

	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("end", "1")

	var result searchResult
	if err := c.get(ctx, "online/search?"+params.Encode(), &result); err != nil {
		return "", err
	}
	if result.Error != "" {
		return "", fmt.Errorf("occupation search failed: %s", result.Error)
	}
	if len(result.Occupation) == 0 {
		return "", ErrNoMatch
	}
	return result.Occupation[0].Code, nil
}

// CareerInfo fetches the description and on-the-job tasks for a code.
func (c *Client) CareerInfo(ctx context.Context, code string) (*CareerInfo, error) {
	var result careerResult
	if err := c.get(ctx, "mnm/careers/"+url.PathEscape(code), &result); err != nil {
		return nil, err
	}
	if result.Error != "" {
		return nil, fmt.Errorf("career lookup failed: %s", result.Error)
	}
	return &CareerInfo{
		Description: result.WhatTheyDo,
		Tasks:       result.OnTheJob.Task,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("occupation service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("occupation service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode occupation service response: %w", err)
	}
	return nil
}
