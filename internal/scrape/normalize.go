// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package scrape

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/wneessen/hydro/internal/logger"
	"github.com/wneessen/hydro/internal/station"
)

var (
	// ErrNoDelimiter is returned for a composite name without a "-" between water and location.
	ErrNoDelimiter = errors.New("station name has no water delimiter")
	// ErrEmptyName is returned if the water or the location part of a composite name is empty.
	ErrEmptyName = errors.New("station name has an empty water or location")
	// ErrInvalidID is returned if the id cell is not an unsigned 16-bit integer.
	ErrInvalidID = errors.New("invalid station id")

	tagPattern = regexp.MustCompile(`<[^>]*>`)

	decimalReplacer = strings.NewReplacer("'", "", "’", "", " ", "", ",", ".")
)

// Page is one of the upstream pages listing stations. Both pages share the StationRow layout,
// Measurements tells whether the measurement, max and datetime columns carry data.
type Page struct {
	Name         string
	Path         string
	Measurements bool
}

var (
	// IndexPage is the stations index.
	IndexPage = Page{Name: "stations", Path: "stationen-und-daten.html"}
	// TemperaturePage is the water temperatures table.
	TemperaturePage = Page{Name: "temperatures", Path: "tabelle-der-wassertemperaturen.html", Measurements: true}
)

// Normalize converts rows into stations for page. Rows that cannot be converted are skipped
// and logged at debug level.
func Normalize(rows []Row, page Page, domain string, log *logger.Logger) []station.Station {
	stations := make([]station.Station, 0, len(rows))
	for _, row := range rows {
		s, err := NormalizeRow(row, page, domain)
		if err != nil {
			log.Debug("skipping station row", slog.String("id", row[FieldID]), logger.Err(err))
			continue
		}
		stations = append(stations, s)
	}
	return stations
}

// NormalizeRow converts a single extracted row into a station.
func NormalizeRow(row Row, page Page, domain string) (station.Station, error) {
	water, name, err := SplitName(StripTags(row[FieldFullName]))
	if err != nil {
		return station.Station{}, err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(row[FieldID]), 10, 16)
	if err != nil {
		return station.Station{}, fmt.Errorf("%w %q: %w", ErrInvalidID, row[FieldID], err)
	}

	s := station.Station{
		ID:    uint16(id),
		Water: water,
		Name:  name,
		URL:   station.URL(domain, uint16(id)),
	}
	if page.Measurements {
		if val, ok := parseDecimal(row[FieldMeasurement]); ok {
			s.Measurement.Set(val)
		}
		if val, ok := parseDecimal(row[FieldMax]); ok {
			s.Max.Set(val)
		}
		if datetime := collapseSpace(row[FieldDatetime]); datetime != "" {
			s.Time.Set(datetime)
		}
	}
	return s, nil
}

// StripTags removes every HTML tag from markup and unescapes entities, leaving plain text.
func StripTags(markup string) string {
	return html.UnescapeString(tagPattern.ReplaceAllString(markup, ""))
}

// SplitName splits a composite "<water> - <location>" name at the first "-". Any further "-"
// belongs to the location.
func SplitName(fullName string) (water, name string, err error) {
	water, name, found := strings.Cut(collapseSpace(fullName), "-")
	if !found {
		return "", "", fmt.Errorf("%w: %q", ErrNoDelimiter, fullName)
	}
	water, name = strings.TrimSpace(water), strings.TrimSpace(name)
	if water == "" || name == "" {
		return "", "", fmt.Errorf("%w: %q", ErrEmptyName, fullName)
	}
	return water, name, nil
}

// parseDecimal parses a measurement cell. Swiss thousands separators and a decimal comma
// are accepted.
func parseDecimal(cell string) (float64, bool) {
	cell = decimalReplacer.Replace(strings.TrimSpace(cell))
	if cell == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}
