// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package presenter formats stations as text tables.
package presenter

import (
	"io"
	"strconv"

	"github.com/wneessen/hydro/internal/station"
	"github.com/wneessen/hydro/internal/table"
	"github.com/wneessen/hydro/internal/vartype"
)

// TemperatureFormat is the fmt format of measurement values.
const TemperatureFormat = "%.1f °C"

// Presenter renders stations. Measurements adds the measurement columns of the water
// temperatures page, URL adds the station detail URL, Bold enables bold titles.
type Presenter struct {
	URL          bool
	Measurements bool
	Bold         bool
}

// List writes stations as a table with one station per row.
func (p *Presenter) List(w io.Writer, stations []station.Station) error {
	title := []string{"ID", "Name", "Water"}
	align := []table.Align{table.Right, table.Left, table.Left}
	if p.Measurements {
		title = append(title, "Measurement", "Max 24h", "Time")
		align = append(align, table.Right, table.Right, table.Left)
	}
	if p.URL {
		title = append(title, "URL")
		align = append(align, table.Left)
	}

	tbl := table.New(title...)
	tbl.Align = align
	tbl.Bold = p.Bold
	for _, s := range stations {
		row := []table.Cell{{Text: formatID(s.ID)}, {Text: s.Name}, {Text: s.Water}}
		if p.Measurements {
			row = append(row,
				table.Cell{Text: formatTemperature(s.Measurement)},
				table.Cell{Text: formatTemperature(s.Max)},
				table.Cell{Text: s.Time.String()},
			)
		}
		if p.URL {
			row = append(row, table.Cell{Text: s.URL})
		}
		tbl.Append(row...)
	}
	return tbl.Render(w)
}

// Detail writes a single station as a key/value table.
func (p *Presenter) Detail(w io.Writer, s station.Station) error {
	tbl := &table.Table{Align: []table.Align{table.Right, table.Left}, Bold: p.Bold}
	add := func(key, value string) {
		tbl.Append(table.Cell{Text: key, Bold: true}, table.Cell{Text: value})
	}

	add("ID", formatID(s.ID))
	add("Name", s.Name)
	add("Water", s.Water)
	if p.Measurements {
		add("Measurement", formatTemperature(s.Measurement))
		add("Max 24h", formatTemperature(s.Max))
		add("Time", s.Time.String())
	}
	add("URL", s.URL)

	return tbl.Render(w)
}

func formatID(id uint16) string {
	return strconv.FormatUint(uint64(id), 10)
}

func formatTemperature(v vartype.VarFloat64) string {
	return v.Format(TemperatureFormat)
}
