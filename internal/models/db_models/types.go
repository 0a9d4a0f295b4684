package db_models

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/ewkbhex"
	"github.com/twpayne/go-geom/encoding/wkt"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

const dialectPostgres = "postgres"

// StringList is a list of tags. Postgres stores it as text[]; other engines
// get a text column holding the same array literal.
type StringList []string

func (StringList) GormDataType() string {
	return "string_list"
}

func (StringList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == dialectPostgres {
		return "text[]"
	}
	return "text"
}

func (l StringList) Value() (driver.Value, error) {
	return pq.StringArray(l).Value()
}

func (l *StringList) Scan(src any) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return fmt.Errorf("scan string list: %w", err)
	}
	*l = StringList(arr)
	return nil
}

// GeoSRID is WGS 84, the reference system of every stored point.
const GeoSRID = 4326

// GeoPoint is a longitude/latitude pair. Postgres keeps it in a
// geography(Point,4326) column; other engines store its EWKT text.
type GeoPoint struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

func (GeoPoint) GormDataType() string {
	return "geo_point"
}

func (GeoPoint) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == dialectPostgres {
		return fmt.Sprintf("geography(Point,%d)", GeoSRID)
	}
	return "varchar(250)"
}

// Value writes EWKT, which PostGIS accepts as geography input.
func (p GeoPoint) Value() (driver.Value, error) {
	text, err := wkt.Marshal(geom.NewPointFlat(geom.XY, []float64{p.Lng, p.Lat}))
	if err != nil {
		return nil, fmt.Errorf("encode point: %w", err)
	}
	return fmt.Sprintf("SRID=%d;%s", GeoSRID, text), nil
}

// Scan reads either EWKT (sqlite) or hex EWKB (postgres output).
func (p *GeoPoint) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case nil:
		*p = GeoPoint{}
		return nil
	default:
		return fmt.Errorf("scan point: unsupported type %T", src)
	}

	g, err := decodePoint(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("scan point: %w", err)
	}
	pt, ok := g.(*geom.Point)
	if !ok {
		return fmt.Errorf("scan point: got %T", g)
	}
	*p = GeoPoint{Lng: pt.X(), Lat: pt.Y()}
	return nil
}

func decodePoint(raw string) (geom.T, error) {
	upper := strings.ToUpper(raw)
	if strings.HasPrefix(upper, "SRID=") {
		if i := strings.IndexByte(raw, ';'); i >= 0 {
			return wkt.Unmarshal(raw[i+1:])
		}
		return nil, fmt.Errorf("malformed EWKT %q", raw)
	}
	if strings.HasPrefix(upper, "POINT") {
		return wkt.Unmarshal(raw)
	}
	return ewkbhex.Decode(raw)
}
