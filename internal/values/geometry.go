package values

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// CRS identifies a coordinate reference system by its SRID code.
type CRS struct {
	Code      int
	Name      string
	Dimension int
}

// Supported coordinate reference systems.
var (
	Cartesian   = CRS{Code: 7203, Name: "cartesian", Dimension: 2}
	Cartesian3D = CRS{Code: 9157, Name: "cartesian-3d", Dimension: 3}
	WGS84       = CRS{Code: 4326, Name: "wgs-84", Dimension: 2}
	WGS84_3D    = CRS{Code: 4979, Name: "wgs-84-3d", Dimension: 3}
)

var knownCRS = []CRS{Cartesian, Cartesian3D, WGS84, WGS84_3D}

// CRSByName looks a CRS up by name.
func CRSByName(name string) (CRS, bool) {
	for _, c := range knownCRS {
		if c.Name == name {
			return c, true
		}
	}
	return CRS{}, false
}

// CRSByCode looks a CRS up by SRID code.
func CRSByCode(code int) (CRS, bool) {
	for _, c := range knownCRS {
		if c.Code == code {
			return c, true
		}
	}
	return CRS{}, false
}

// Point is a geometry in a coordinate reference system.
// Points order by CRS code, then coordinates, then dimension.
type Point struct {
	crs    CRS
	coords []float64
}

// NewPoint copies coords into a new point. The caller is responsible for
// passing as many coordinates as the CRS has dimensions.
func NewPoint(crs CRS, coords ...float64) Point {
	return Point{crs: crs, coords: slices.Clone(coords)}
}

func (Point) storable() {}

// Group returns GroupGeometry.
func (Point) Group() ValueGroup { return GroupGeometry }

// CRS returns the coordinate reference system of p.
func (p Point) CRS() CRS { return p.crs }

// Coordinates returns a copy of the coordinates.
func (p Point) Coordinates() []float64 { return slices.Clone(p.coords) }

func (p Point) Equals(other Value) bool {
	o, ok := other.(Point)
	return ok && p.compareTo(o) == 0
}

func (p Point) compareTo(other Point) int {
	if c := cmp.Compare(p.crs.Code, other.crs.Code); c != 0 {
		return c
	}
	return compareSequences(len(p.coords), len(other.coords), func(i int) int {
		return compareFloats(p.coords[i], other.coords[i])
	})
}

func (p Point) String() string {
	parts := make([]string, len(p.coords))
	for i, c := range p.coords {
		parts[i] = formatFloat(c)
	}
	return fmt.Sprintf("point(%s; %s)", p.crs.Name, strings.Join(parts, ", "))
}

// GeometryArray is an array of points.
type GeometryArray struct {
	points []Point
}

// NewGeometryArray copies points into a new array.
func NewGeometryArray(points ...Point) GeometryArray {
	return GeometryArray{points: slices.Clone(points)}
}

func (GeometryArray) storable() {}

// Group returns GroupGeometryArray.
func (GeometryArray) Group() ValueGroup { return GroupGeometryArray }

func (a GeometryArray) Len() int { return len(a.points) }

// At returns the i-th point.
func (a GeometryArray) At(i int) Point { return a.points[i] }

func (a GeometryArray) Equals(other Value) bool {
	o, ok := other.(GeometryArray)
	return ok && a.compareTo(o) == 0
}

func (a GeometryArray) compareTo(other GeometryArray) int {
	return compareSequences(len(a.points), len(other.points), func(i int) int {
		return a.points[i].compareTo(other.points[i])
	})
}

func (a GeometryArray) String() string {
	parts := make([]string, len(a.points))
	for i, p := range a.points {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
