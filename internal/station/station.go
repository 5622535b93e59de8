// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package station holds the hydrological measurement station record and the queries run on
// a scraped list of stations.
package station

import (
	"strconv"

	"github.com/wneessen/hydro/internal/vartype"
)

// DefaultDomain is the base of every station detail URL.
const DefaultDomain = "https://www.hydrodaten.admin.ch/de/"

// Station is a single measurement station as published by hydrodaten.admin.ch. The stations
// index only provides ID, Water, Name and URL. The water temperatures page additionally
// provides Measurement, Max and Time.
type Station struct {
	ID    uint16
	Water string
	Name  string
	URL   string

	Measurement vartype.VarFloat64
	Max         vartype.VarFloat64
	Time        vartype.VarString
}

// URL returns the detail page URL of the station with the given id below domain.
func URL(domain string, id uint16) string {
	return domain + strconv.FormatUint(uint64(id), 10) + ".html"
}
