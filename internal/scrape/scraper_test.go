// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package scrape

import (
	"errors"
	"io"
	"log/slog"
	stdhttp "net/http"
	"testing"

	"github.com/wneessen/hydro/internal/http"
	"github.com/wneessen/hydro/internal/logger"
	"github.com/wneessen/hydro/internal/station"
	"github.com/wneessen/hydro/internal/testhelper"
)

func testScraper(t *testing.T, fn func(*stdhttp.Request) (*stdhttp.Response, error)) *Scraper {
	t.Helper()
	log := logger.NewLogger(slog.LevelDebug, io.Discard)
	client := http.New(log)
	client.Transport = testhelper.MockRoundTripper{Fn: fn}
	return New(client, station.DefaultDomain, log)
}

func TestScraper_Stations(t *testing.T) {
	t.Run("scraping the stations index succeeds", func(t *testing.T) {
		var requested string
		scraper := testScraper(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			requested = req.URL.String()
			return testhelper.FileResponse(t, stationsFile), nil
		})
		stations, err := scraper.Stations(t.Context(), IndexPage)
		if err != nil {
			t.Fatalf("failed to scrape stations: %s", err)
		}
		if requested != "https://www.hydrodaten.admin.ch/de/stationen-und-daten.html" {
			t.Errorf("unexpected request URL: %s", requested)
		}
		if len(stations) != 4 {
			t.Errorf("expected 4 stations, got %d", len(stations))
		}
	})
	t.Run("scraping the temperatures page succeeds", func(t *testing.T) {
		var requested string
		scraper := testScraper(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			requested = req.URL.String()
			return testhelper.FileResponse(t, temperaturesFile), nil
		})
		stations, err := scraper.Stations(t.Context(), TemperaturePage)
		if err != nil {
			t.Fatalf("failed to scrape stations: %s", err)
		}
		if requested != "https://www.hydrodaten.admin.ch/de/tabelle-der-wassertemperaturen.html" {
			t.Errorf("unexpected request URL: %s", requested)
		}
		if len(stations) != 3 {
			t.Fatalf("expected 3 stations, got %d", len(stations))
		}
		if stations[0].Measurement.Value() != 16.7 {
			t.Errorf("expected measurement 16.7, got %s", stations[0].Measurement)
		}
	})
	t.Run("fetch errors are passed through", func(t *testing.T) {
		tests := []struct {
			name string
			fn   func(*stdhttp.Request) (*stdhttp.Response, error)
			want error
		}{
			{"unreachable", func(*stdhttp.Request) (*stdhttp.Response, error) {
				return nil, errors.New("intentionally failing")
			}, http.ErrServerNotReachable},
			{"bad response", func(*stdhttp.Request) (*stdhttp.Response, error) {
				return testhelper.Response(stdhttp.StatusServiceUnavailable, "maintenance"), nil
			}, http.ErrBadResponse},
			{"corrupted body", func(*stdhttp.Request) (*stdhttp.Response, error) {
				return testhelper.Response(stdhttp.StatusOK, "Sch\xffnau"), nil
			}, http.ErrCorruptedBody},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := testScraper(t, tc.fn).Stations(t.Context(), IndexPage)
				if !errors.Is(err, tc.want) {
					t.Errorf("expected error to be %s, got %v", tc.want, err)
				}
			})
		}
	})
	t.Run("every station url is derived from its id", func(t *testing.T) {
		scraper := testScraper(t, func(req *stdhttp.Request) (*stdhttp.Response, error) {
			return testhelper.FileResponse(t, stationsFile), nil
		})
		stations, err := scraper.Stations(t.Context(), IndexPage)
		if err != nil {
			t.Fatalf("failed to scrape stations: %s", err)
		}
		for _, s := range stations {
			if s.URL != station.URL(station.DefaultDomain, s.ID) {
				t.Errorf("station %d: unexpected url %q", s.ID, s.URL)
			}
		}
	})
}
