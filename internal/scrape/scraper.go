// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package scrape turns the HTML tables published by hydrodaten.admin.ch into station records.
package scrape

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/hydro/internal/logger"
	"github.com/wneessen/hydro/internal/station"
)

// Fetcher returns the body of the page at url as text.
type Fetcher interface {
	GetText(ctx context.Context, url string) (string, error)
}

// Scraper fetches, extracts and normalizes station pages below a domain.
type Scraper struct {
	fetcher  Fetcher
	domain   string
	template RowTemplate
	logger   *logger.Logger
}

// New returns a Scraper for pages below domain. domain must end with a slash.
func New(fetcher Fetcher, domain string, log *logger.Logger) *Scraper {
	return &Scraper{
		fetcher:  fetcher,
		domain:   domain,
		template: StationRow,
		logger:   log,
	}
}

// Stations performs one scrape of page and returns the stations in document order.
func (s *Scraper) Stations(ctx context.Context, page Page) ([]station.Station, error) {
	url := s.domain + page.Path
	s.logger.Debug("fetching station page", slog.String("page", page.Name), slog.String("url", url))
	body, err := s.fetcher.GetText(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s page: %w", page.Name, err)
	}

	rows, err := Extract(body, s.template)
	if err != nil {
		return nil, fmt.Errorf("failed to extract rows from %s page: %w", page.Name, err)
	}

	stations := Normalize(rows, page, s.domain, s.logger)
	s.logger.Debug("scraped station page", slog.String("page", page.Name), slog.Int("rows", len(rows)),
		slog.Int("stations", len(stations)))

	return stations, nil
}
