package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/objwire/objwire/geom"
)

// A scene file declares named polyhedra in TOML. Each triangle is three
// [x, y, z] vertices:
//
//	[[polyhedron]]
//	name = "wedge"
//	triangles = [
//	  [[0.0, 0.0, 0.0], [1.0, 0.0, 0.0], [0.0, 1.0, 0.0]],
//	  [[0.0, 0.0, 1.0], [1.0, 0.0, 1.0], [0.0, 1.0, 1.0]],
//	]
type sceneFile struct {
	Polyhedron []scenePolyhedron `toml:"polyhedron"`
}

type scenePolyhedron struct {
	Name      string          `toml:"name"`
	Triangles [][3][3]float32 `toml:"triangles"`
}

func loadScene(path string) ([]namedPolyhedron, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}

	var scene sceneFile
	if err := toml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	polys := make([]namedPolyhedron, 0, len(scene.Polyhedron))
	for i, sp := range scene.Polyhedron {
		name := sp.Name
		if name == "" {
			name = fmt.Sprintf("polyhedron-%d", i)
		}

		triangles := make([]geom.Triangle, 0, len(sp.Triangles))
		for _, st := range sp.Triangles {
			triangles = append(triangles, geom.Triangle{
				A: geom.Vec3{X: st[0][0], Y: st[0][1], Z: st[0][2]},
				B: geom.Vec3{X: st[1][0], Y: st[1][1], Z: st[1][2]},
				C: geom.Vec3{X: st[2][0], Y: st[2][1], Z: st[2][2]},
			})
		}

		polys = append(polys, namedPolyhedron{
			name: name,
			poly: geom.Polyhedron{Triangles: triangles},
		})
	}

	return polys, nil
}
