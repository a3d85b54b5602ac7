/*
Package metadata reads and writes the placement records that describe where
each named image lives inside a sprite sheet.

The format is a JSON array with one object per image:

	[
	    {
	        "name": "first",
	        "Rectangle": {
	            "x": 0,
	            "y": 0,
	            "width": 384,
	            "height": 128
	        }
	    }
	]

Numbers are written as integers. When reading, integer-valued floats such as
384.0 are accepted as well and fractional values are truncated toward zero.
*/
package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"spritesheet/rectpack"
)

// Rectangle is the position and size part of a record.
type Rectangle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Record places one named image on the sheet.
type Record struct {
	Name      string    `json:"name"`
	Rectangle Rectangle `json:"Rectangle"`
}

// Placement converts the record into a rectpack placement.
func (r Record) Placement() rectpack.Placement {
	return rectpack.NewPlacement(r.Name, r.Rectangle.X, r.Rectangle.Y, r.Rectangle.Width, r.Rectangle.Height)
}

// FromPlacement converts a rectpack placement into a record.
func FromPlacement(p rectpack.Placement) Record {
	return Record{
		Name:      p.ID,
		Rectangle: Rectangle{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height},
	}
}

// FromResult returns one record per placement, in placement order.
func FromResult(result *rectpack.Result) []Record {
	records := make([]Record, len(result.Placements))
	for i, p := range result.Placements {
		records[i] = FromPlacement(p)
	}
	return records
}

// Placements converts records into rectpack placements, keeping their order.
func Placements(records []Record) []rectpack.Placement {
	placements := make([]rectpack.Placement, len(records))
	for i, r := range records {
		placements[i] = r.Placement()
	}
	return placements
}

const expectedShape = `{
 "name": "first",
 "Rectangle": {
  "x": 0.0,
  "y": 0.0,
  "width": 384.0,
  "height": 128.0
 }
},
{
 "name": "second",
 "Rectangle": {
  "x": 384.0,
  "y": 0.0,
  "width": 384.0,
  "height": 128.0
 }
}`

// ShapeError reports a document that does not have the record layout.
type ShapeError struct {
	// Index is the offending record, or -1 when the document as a whole is wrong.
	Index  int
	Reason string
}

func (e *ShapeError) Error() string {
	where := "metadata"
	if e.Index >= 0 {
		where = fmt.Sprintf("record #%d", e.Index)
	}
	return fmt.Sprintf("%s: %s. Expected format example: \n%s", where, e.Reason, expectedShape)
}

type rawRectangle struct {
	X      *json.Number `json:"x"`
	Y      *json.Number `json:"y"`
	Width  *json.Number `json:"width"`
	Height *json.Number `json:"height"`
}

type rawRecord struct {
	Name      *string       `json:"name"`
	Rectangle *rawRectangle `json:"Rectangle"`
}

// Decode reads a record list from r. A malformed document yields a
// *ShapeError and no records.
func Decode(r io.Reader) ([]Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw []rawRecord
	if err := dec.Decode(&raw); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("failed to parse metadata: %w", err)
		}
		return nil, &ShapeError{Index: -1, Reason: err.Error()}
	}

	records := make([]Record, 0, len(raw))
	for i, item := range raw {
		record, err := item.record(i)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (raw rawRecord) record(index int) (Record, error) {
	if raw.Name == nil {
		return Record{}, &ShapeError{Index: index, Reason: `missing "name"`}
	}
	if raw.Rectangle == nil {
		return Record{}, &ShapeError{Index: index, Reason: `missing "Rectangle"`}
	}
	record := Record{Name: *raw.Name}
	fields := []struct {
		name string
		src  *json.Number
		dst  *int
	}{
		{"x", raw.Rectangle.X, &record.Rectangle.X},
		{"y", raw.Rectangle.Y, &record.Rectangle.Y},
		{"width", raw.Rectangle.Width, &record.Rectangle.Width},
		{"height", raw.Rectangle.Height, &record.Rectangle.Height},
	}
	for _, f := range fields {
		if f.src == nil {
			return Record{}, &ShapeError{Index: index, Reason: fmt.Sprintf("missing \"Rectangle.%s\"", f.name)}
		}
		v, err := toInt(*f.src)
		if err != nil {
			return Record{}, &ShapeError{Index: index, Reason: fmt.Sprintf("\"Rectangle.%s\": %v", f.name, err)}
		}
		*f.dst = v
	}
	return record, nil
}

func toInt(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		if i < math.MinInt || i > math.MaxInt {
			return 0, fmt.Errorf("%s is out of range", n)
		}
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", n.String())
	}
	if f < math.MinInt || f > math.MaxInt {
		return 0, fmt.Errorf("%s is out of range", n)
	}
	return int(f), nil
}

// Encode writes records to w as an indented JSON array.
func Encode(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

// ReadFile decodes the record list stored at path.
func ReadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// WriteFile encodes records into the file at path, replacing it.
func WriteFile(path string, records []Record) error {
	var buf bytes.Buffer
	if err := Encode(&buf, records); err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
