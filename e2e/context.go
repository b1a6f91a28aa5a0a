// Package e2e drives a running server through its public HTTP API.
package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TestContext holds per-scenario state: the target server and the last response.
type TestContext struct {
	BaseURL    string
	AdminToken string
	client     *http.Client

	lastStatus int
	lastHeader http.Header
	lastBody   []byte
}

// NewTestContext targets baseURL.
func NewTestContext(baseURL, adminToken string) *TestContext {
	return &TestContext{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		AdminToken: adminToken,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

// Reset clears the previous response between scenarios.
func (tc *TestContext) Reset() {
	tc.lastStatus = 0
	tc.lastHeader = nil
	tc.lastBody = nil
}

func (tc *TestContext) GET(path string, headers map[string]string) error {
	return tc.do(http.MethodGet, path, nil, headers)
}

func (tc *TestContext) POST(path string, body any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal body: %w", err)
	}
	return tc.do(http.MethodPost, path, raw, map[string]string{"Content-Type": "application/json"})
}

func (tc *TestContext) POSTRaw(path, body string, headers map[string]string) error {
	if headers == nil {
		headers = map[string]string{}
	}
	if _, ok := headers["Content-Type"]; !ok {
		headers["Content-Type"] = "application/json"
	}
	return tc.do(http.MethodPost, path, []byte(body), headers)
}

func (tc *TestContext) GetAdminToken() string {
	return tc.AdminToken
}

func (tc *TestContext) GetLastStatusCode() int {
	return tc.lastStatus
}

func (tc *TestContext) GetLastHeader(name string) string {
	return tc.lastHeader.Get(name)
}

func (tc *TestContext) GetLastBody() []byte {
	return tc.lastBody
}

// GetResponseField reads a top-level field of a JSON object response.
func (tc *TestContext) GetResponseField(field string) (any, error) {
	var obj map[string]any
	if err := json.Unmarshal(tc.lastBody, &obj); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}
	v, ok := obj[field]
	if !ok {
		return nil, fmt.Errorf("field %q not in response: %s", field, tc.lastBody)
	}
	return v, nil
}

func (tc *TestContext) do(method, path string, body []byte, headers map[string]string) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, tc.BaseURL+path, reader)
	if err != nil {
		return err
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.lastBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	tc.lastStatus = resp.StatusCode
	tc.lastHeader = resp.Header
	return nil
}
