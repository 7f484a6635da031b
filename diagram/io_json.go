package diagram

import (
	"fmt"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonDiagram mirrors the reference JSON diagram format: points are
// encoded as [x, y] string pairs (rather than numbers) so that infinite
// values survive round-tripping losslessly.
type jsonDiagram struct {
	Betti     int         `json:"betti"`
	Dimension int         `json:"dimension"`
	Name      string      `json:"name,omitempty"`
	Size      int         `json:"size"`
	Points    [][2]string `json:"diagram"`
}

// WriteJSON serializes d to w in the reference JSON diagram format. name
// is optional; an empty string omits the "name" field.
func WriteJSON(w io.Writer, d *Diagram, name string) error {
	jd := jsonDiagram{
		Betti:     d.Betti(),
		Dimension: d.Dimension(),
		Name:      name,
		Size:      d.Len(),
		Points:    make([][2]string, d.Len()),
	}
	for i, p := range d.points {
		jd.Points[i] = [2]string{formatFloat(p.X), formatFloat(p.Y)}
	}

	return json.NewEncoder(w).Encode(&jd)
}

// ReadJSON parses the reference JSON diagram format, returning the
// decoded Diagram and its optional name field.
func ReadJSON(r io.Reader) (*Diagram, string, error) {
	var jd jsonDiagram
	if err := json.NewDecoder(r).Decode(&jd); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrParseError, err)
	}

	d := New(jd.Dimension)
	for _, pair := range jd.Points {
		x, err := strconv.ParseFloat(pair[0], 64)
		if err != nil {
			return nil, "", ErrParseError
		}
		y, err := strconv.ParseFloat(pair[1], 64)
		if err != nil {
			return nil, "", ErrParseError
		}
		d.AddFinite(x, y)
	}

	return d, jd.Name, nil
}
