// Package leetcode 提供了一个与非官方 LeetCode 题目接口交互的客户端。
package leetcode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrBadResponse 表示上游返回了无法解析的响应体。
// 调用方不应把底层解析细节透给前端，遇到该错误时返回统一的通用文案。
var ErrBadResponse = errors.New("malformed problem api response")

// Problem 是题目接口返回的原始字段。
type Problem struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Difficulty string `json:"difficulty"`
}

// Client 是题目数据接口的客户端。
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient 创建一个新的题目接口客户端实例。
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// GetProblem 按题目 ID 或 slug 拉取题目数据。
func (c *Client) GetProblem(ctx context.Context, query string) (*Problem, error) {
	apiURL := fmt.Sprintf("%s/problem/%s", c.baseURL, url.PathEscape(query))

	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create problem request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call problem api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("problem api returned non-200 status: %s, body: %s", resp.Status, string(body))
	}

	var p Problem
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, ErrBadResponse
	}
	return &p, nil
}
