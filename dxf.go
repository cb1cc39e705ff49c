package main

import (
	"fmt"
	"os"

	"github.com/rpaloschi/dxf-go/core"
	"github.com/rpaloschi/dxf-go/document"
	"github.com/rpaloschi/dxf-go/entities"
)

func point(p core.Point) Point {
	return Point{p.X, p.Y}
}

// ReadDXF parses a DXF file and maps its drawing entities onto the neutral
// entity list the engine consumes. Entity types the engine has no use for
// are skipped; the engine itself then drops anything malformed.
func ReadDXF(path string) ([]Entity, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	doc, err := document.DxfDocumentFromStream(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %v", path, err)
	}

	found := []Entity{}

	for _, e := range doc.Entities.Entities {
		switch entity := e.(type) {
		case *entities.Line:
			found = append(found, Entity{
				kind:  LineEntity,
				start: point(entity.Start),
				end:   point(entity.End),
			})

		case *entities.Arc:
			found = append(found, Entity{
				kind:       ArcEntity,
				center:     point(entity.Center),
				radius:     entity.Radius,
				startAngle: entity.StartAngle,
				endAngle:   entity.EndAngle,
			})

		case *entities.Circle:
			found = append(found, Entity{
				kind:   CircleEntity,
				center: point(entity.Center),
				radius: entity.Radius,
			})

		case *entities.Polyline:
			found = append(found, polylineEntity(entity))

		case *entities.LWPolyline:
			found = append(found, lwPolylineEntity(entity))

		case *entities.Spline:
			// splines are consumed as their control polygon; fine detail
			// is not worth chasing at cutting tolerances
			points := make([]Point, 0, len(entity.ControlPoints))
			for _, p := range entity.ControlPoints {
				points = append(points, point(p))
			}
			found = append(found, Entity{
				kind:   SplineEntity,
				points: points,
			})
		}
	}

	return found, nil
}

// polylineEntity maps a heavyweight POLYLINE. The closed flag must come
// across too, or a closed drawing loses its closing edge.
func polylineEntity(p *entities.Polyline) Entity {
	points := make([]Point, 0, len(p.Vertices))
	bulges := make([]float64, 0, len(p.Vertices))
	for _, v := range p.Vertices {
		points = append(points, point(v.Location))
		bulges = append(bulges, v.Bulge)
	}
	return Entity{
		kind:   PolylineEntity,
		points: points,
		bulges: bulges,
		closed: p.Closed,
	}
}

// lwPolylineEntity maps a lightweight LWPOLYLINE, the form modern drawings
// actually use. Vertices carry their bulge inline.
func lwPolylineEntity(p *entities.LWPolyline) Entity {
	points := make([]Point, 0, len(p.Points))
	bulges := make([]float64, 0, len(p.Points))
	for _, v := range p.Points {
		points = append(points, point(v.Point))
		bulges = append(bulges, v.Bulge)
	}
	return Entity{
		kind:   PolylineEntity,
		points: points,
		bulges: bulges,
		closed: p.Closed,
	}
}
