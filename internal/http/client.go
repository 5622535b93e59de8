// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package http

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html/charset"

	"github.com/wneessen/hydro/internal/logger"
)

const (
	// DefaultTimeout is the default timeout value for the HTTPClient
	DefaultTimeout = time.Second * 30
)

var (
	// version is the version of the application (will be set at build time)
	version = "dev"
	// UserAgent is the User-Agent that the HTTP client sends with every request
	UserAgent = fmt.Sprintf("Mozilla/5.0 (%s; %s) hydro/%s (+https://github.com/wneessen/hydro/)",
		runtime.GOOS,
		runtime.GOARCH,
		version,
	)

	// ErrServerNotReachable is returned when no response could be obtained from the server.
	ErrServerNotReachable = errors.New("server not reachable")
	// ErrBadResponse is returned for responses with a non-2xx status code.
	ErrBadResponse = errors.New("bad response")
	// ErrCorruptedBody is returned when the response body cannot be read as text.
	ErrCorruptedBody = errors.New("corrupted body")
)

// Client is a type wrapper for the Go stdlib http.Client and the logger
type Client struct {
	*http.Client
	logger *logger.Logger
}

// New returns a new HTTP client using DefaultTimeout
func New(logger *logger.Logger) *Client {
	return NewWithTimeout(logger, DefaultTimeout)
}

// NewWithTimeout returns a new HTTP client with the given request timeout
func NewWithTimeout(logger *logger.Logger, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
	}
	httpTransport := &http.Transport{TLSClientConfig: tlsConfig, Proxy: http.ProxyFromEnvironment}
	httpClient := &http.Client{
		Timeout:   timeout,
		Transport: httpTransport,
	}
	return &Client{httpClient, logger}
}

// GetText performs a single HTTP GET request for the given URL and returns the response body
// decoded as UTF-8 text
func (h *Client) GetText(ctx context.Context, endpoint string) (string, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create HTTP request: %w", ErrServerNotReachable, err)
	}
	request.Header.Set("User-Agent", UserAgent)
	request.Header.Set("Accept", "text/html")

	response, err := h.Do(request)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrServerNotReachable, err)
	}
	if response == nil {
		return "", fmt.Errorf("%w: nil response received", ErrServerNotReachable)
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			h.logger.Error("failed to close HTTP response body", logger.Err(err))
		}
	}(response.Body)

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: HTTP status %d", ErrBadResponse, response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptedBody, err)
	}
	// A guessed encoding only applies to bodies that are not UTF-8 already
	encoding, name, certain := charset.DetermineEncoding(body, response.Header.Get("Content-Type"))
	if name != "utf-8" && (certain || !utf8.Valid(body)) {
		if body, err = encoding.NewDecoder().Bytes(body); err != nil {
			return "", fmt.Errorf("%w: failed to decode %s body: %w", ErrCorruptedBody, name, err)
		}
	}
	if !utf8.Valid(body) {
		return "", fmt.Errorf("%w: body is not valid UTF-8", ErrCorruptedBody)
	}

	return string(body), nil
}
