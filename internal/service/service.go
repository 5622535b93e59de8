// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package service runs hydro's pipelines: scrape a station page, narrow the result down and
// maintain the favorites.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/hydro/internal/config"
	"github.com/wneessen/hydro/internal/favorites"
	"github.com/wneessen/hydro/internal/logger"
	"github.com/wneessen/hydro/internal/scrape"
	"github.com/wneessen/hydro/internal/station"
)

// Service ties the scraper and the favorites store to the loaded configuration.
type Service struct {
	config    *config.Config
	logger    *logger.Logger
	scraper   *scrape.Scraper
	favorites *favorites.Store
}

// New returns a Service that fetches pages through fetcher.
func New(conf *config.Config, log *logger.Logger, fetcher scrape.Fetcher) *Service {
	return &Service{
		config:    conf,
		logger:    log,
		scraper:   scrape.New(fetcher, conf.HTTP.BaseURL, log),
		favorites: favorites.NewStore(conf.Favorites.File, log),
	}
}

// Stations scrapes page and applies query to the result.
func (s *Service) Stations(ctx context.Context, page scrape.Page, query station.Query) ([]station.Station, error) {
	stations, err := s.scrape(ctx, page)
	if err != nil {
		return nil, err
	}
	return station.Filter(stations, query), nil
}

// Station scrapes page and looks up the station with the given id. The bool is false if the
// page does not list the station.
func (s *Service) Station(ctx context.Context, page scrape.Page, id uint16) (station.Station, bool, error) {
	stations, err := s.scrape(ctx, page)
	if err != nil {
		return station.Station{}, false, err
	}
	found, ok := station.Find(stations, id)
	return found, ok, nil
}

// Favorites scrapes page and returns the stations that are in the favorites.
func (s *Service) Favorites(ctx context.Context, page scrape.Page) ([]station.Station, error) {
	set, err := s.favorites.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	stations, err := s.scrape(ctx, page)
	if err != nil {
		return nil, err
	}
	return set.Filter(stations), nil
}

// AddFavorites adds ids to the favorites and returns the updated set.
func (s *Service) AddFavorites(ids ...uint16) (favorites.Set, error) {
	return s.updateFavorites(func(set favorites.Set) { set.Add(ids...) })
}

// RemoveFavorites removes ids from the favorites and returns the updated set.
func (s *Service) RemoveFavorites(ids ...uint16) (favorites.Set, error) {
	return s.updateFavorites(func(set favorites.Set) { set.Remove(ids...) })
}

func (s *Service) updateFavorites(update func(favorites.Set)) (favorites.Set, error) {
	set, err := s.favorites.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	update(set)
	if err = s.favorites.Save(set); err != nil {
		return nil, fmt.Errorf("failed to save favorites: %w", err)
	}
	s.logger.Info("favorites updated", slog.Any("ids", set.IDs()))
	return set, nil
}

func (s *Service) scrape(ctx context.Context, page scrape.Page) ([]station.Station, error) {
	stations, err := s.scraper.Stations(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to scrape stations: %w", err)
	}
	return stations, nil
}
