// Package hexagon converts quad meshes into hexagonal tilings.
//
// The pipeline triangulates the quads, subdivides once so that every
// interior vertex of valence 6 sits in the middle of a ring of quads,
// collapses those rings into single faces, cleans up the leftover
// two-edge vertices, and optionally filters and hollows the result.
package hexagon

import (
	"errors"
	"fmt"

	"hexmesh/internal/mesh"
)

var (
	// ErrInvalidInput is returned for nil or empty meshes and meshes with
	// broken indices. Nothing is processed when it is returned.
	ErrInvalidInput = errors.New("invalid input mesh")

	// ErrNotQuads is returned in strict mode when the input has faces that
	// are not quads, including any previous output of Tessellate.
	ErrNotQuads = errors.New("input faces are not all quads")

	// ErrInvalidOptions is returned for out-of-range option values.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrNonManifold is returned when a collapse cannot form simple faces.
	ErrNonManifold = mesh.ErrNonManifold
)

// CenterValence is the valence that marks a hexagon center after subdivision.
const CenterValence = 6

// Options configures Tessellate.
type Options struct {
	// HexOnly deletes every face with fewer than six edges. When false the
	// mesh is left alone and faces with six or more edges are reported in
	// Result.Selected.
	HexOnly bool
	// Hollow insets every face and removes the inner copy.
	Hollow bool
	// Offset is the inset fraction of each face's size, in (0, 0.5).
	Offset float64
	// Continuity blends subdivision between linear (0) and smooth (1).
	Continuity float64
	// KeepBorder pins open-boundary vertices during subdivision.
	KeepBorder bool
	// Strict rejects input that is not all quads.
	Strict bool
}

// DefaultOptions returns the standard conversion: hexagons only, hollowed.
func DefaultOptions() Options {
	return Options{
		HexOnly:    true,
		Hollow:     true,
		Offset:     0.2,
		Continuity: 1,
		KeepBorder: true,
	}
}

// Validate checks option ranges.
func (o Options) Validate() error {
	if o.Hollow && (o.Offset <= 0 || o.Offset >= 0.5) {
		return fmt.Errorf("hexagon: offset %g outside (0, 0.5): %w", o.Offset, ErrInvalidOptions)
	}
	if o.Continuity < 0 || o.Continuity > 1 {
		return fmt.Errorf("hexagon: continuity %g outside [0, 1]: %w", o.Continuity, ErrInvalidOptions)
	}
	return nil
}

// Result is the outcome of one Tessellate call.
type Result struct {
	Mesh *mesh.Mesh
	// Selected lists faces with six or more edges. Only set when HexOnly
	// and Hollow are both off, since any later edit renumbers faces.
	Selected []int
	// Centers is the number of hexagon centers found after subdivision.
	Centers int
	Hollow  bool
}

// Message is the user-facing status line for the result.
func (r *Result) Message() string {
	if r.Hollow {
		return "Hollow hexagons created"
	}
	return "Hexagon conversion complete"
}

// Tessellate runs the pipeline on a private copy of m. The caller's mesh is
// never modified, so a failing stage leaves no partial edit behind.
func Tessellate(m *mesh.Mesh, opts Options) (*Result, error) {
	if m.Empty() {
		return nil, fmt.Errorf("hexagon: nothing to convert: %w", ErrInvalidInput)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("hexagon: %w: %w", ErrInvalidInput, err)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Strict {
		for fi, f := range m.Faces {
			if f.Degree() != 4 {
				return nil, fmt.Errorf("hexagon: face %d has %d edges: %w", fi, f.Degree(), ErrNotQuads)
			}
		}
	}

	work := mesh.Triangulate(m)
	work = mesh.Subdivide(work, mesh.SubdivideOptions{
		KeepBorder: opts.KeepBorder,
		Continuity: opts.Continuity,
	})

	centers := findCenters(work)
	work, err := collapseCenters(work, centers)
	if err != nil {
		return nil, fmt.Errorf("hexagon: collapse: %w", err)
	}
	work = cleanup(work)

	res := &Result{Centers: len(centers), Hollow: opts.Hollow}
	if opts.HexOnly {
		work = mesh.DeleteFaces(work, facesBelow(work, CenterValence))
	} else if !opts.Hollow {
		res.Selected = facesAtLeast(work, CenterValence)
	}

	if opts.Hollow {
		all := make([]int, len(work.Faces))
		for i := range all {
			all[i] = i
		}
		work, err = mesh.Hollow(work, all, mesh.InsetOptions{Offset: opts.Offset})
		if err != nil {
			return nil, fmt.Errorf("hexagon: hollow: %w", err)
		}
	}

	res.Mesh = work
	return res, nil
}

// TessellateAll converts every mesh of a selection. It stops at the first
// failure and returns no results in that case.
func TessellateAll(meshes []*mesh.Mesh, opts Options) ([]*Result, error) {
	if len(meshes) == 0 {
		return nil, fmt.Errorf("hexagon: no meshes selected: %w", ErrInvalidInput)
	}
	results := make([]*Result, 0, len(meshes))
	for i, m := range meshes {
		r, err := Tessellate(m, opts)
		if err != nil {
			name := fmt.Sprintf("#%d", i)
			if m != nil && m.Name != "" {
				name = m.Name
			}
			return nil, fmt.Errorf("mesh %s: %w", name, err)
		}
		results = append(results, r)
	}
	return results, nil
}
