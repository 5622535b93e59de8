// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package testhelper holds shared helpers for hydro's tests.
package testhelper

import (
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
)

const (
	// TestOnlineURL is a real upstream page used by integration tests.
	TestOnlineURL = "https://www.hydrodaten.admin.ch/de/stationen-und-daten.html"

	integrationEnv = "HYDRO_INTEGRATION_TESTS"
)

// MockRoundTripper replaces the HTTP transport with Fn.
type MockRoundTripper struct {
	Fn func(*http.Request) (*http.Response, error)
}

// RoundTrip implements http.RoundTripper.
func (m MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.Fn(req)
}

// Response returns a minimal HTTP response carrying body.
func Response(status int, body string) *http.Response {
	header := make(http.Header)
	header.Set("Content-Type", "text/html; charset=utf-8")
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     header,
	}
}

// FileResponse returns a 200 response with the content of the file at path.
func FileResponse(t *testing.T, path string) *http.Response {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read response file: %s", err)
	}
	return Response(http.StatusOK, string(data))
}

// PerformIntegrationTests skips the test unless HYDRO_INTEGRATION_TESTS is set.
func PerformIntegrationTests(t *testing.T) {
	t.Helper()
	if os.Getenv(integrationEnv) == "" {
		t.Skipf("skipping integration test, set %s to enable", integrationEnv)
	}
}
