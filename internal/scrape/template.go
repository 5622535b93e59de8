// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package scrape

// Field names of the station row template.
const (
	FieldID          = "id"
	FieldFullName    = "full_name"
	FieldDatetime    = "datetime"
	FieldMeasurement = "measurement"
	FieldMax         = "max"
	FieldUnit        = "unit"
	FieldGraphic     = "graphic"
)

// Field describes one <td> of a row template.
type Field struct {
	// Name is the key of the field in the extracted Row.
	Name string
	// Markup keeps the inner HTML of the cell instead of its text content.
	Markup bool
	// Anchor requires the cell to contain an <a> element and captures the content of that element.
	Anchor bool
}

// RowTemplate describes the shape of a <tbody><tr> row. A row matches if it has exactly one
// <td> per field, in order.
type RowTemplate struct {
	Fields []Field
}

// Row maps field names to the raw content of the matching cell.
type Row map[string]string

// StationRow is the row layout shared by the stations index and the water temperatures page:
//
//	id | <a>full_name</a> | datetime | measurement | max | unit | graphic
var StationRow = RowTemplate{
	Fields: []Field{
		{Name: FieldID},
		{Name: FieldFullName, Markup: true, Anchor: true},
		{Name: FieldDatetime},
		{Name: FieldMeasurement},
		{Name: FieldMax},
		{Name: FieldUnit, Markup: true},
		{Name: FieldGraphic, Markup: true},
	},
}
