package dcel

import (
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/osuushi/delaunay/internal/throw"
)

// Verify the structural invariants of the mesh, returning every violation
// found. This walks every record, so it is only meant for tests and debug
// runs.
func (m *Mesh) CheckConsistency() error {
	var err error
	fail := func(format string, args ...interface{}) {
		err = multierr.Append(err, errors.Wrapf(throw.ErrInternalInvariantViolation, format, args...))
	}

	for i, e := range m.Edges {
		h := EdgeIndex(i)
		if !e.InUse {
			continue
		}
		if !m.Edges[e.Twin].InUse || m.Edges[e.Twin].Twin != h {
			fail("half-edge %d has a broken twin: %s", h, pretty.Sprint(e))
			continue
		}
		if m.Edges[e.Next].Prev != h || m.Edges[e.Prev].Next != h {
			fail("half-edge %d has broken next/prev links: %s", h, pretty.Sprint(e))
			continue
		}
		if m.Edges[m.Edges[e.Next].Next].Next != h {
			fail("face cycle of half-edge %d is not a triangle", h)
		}
		if m.Edges[e.Next].Face != e.Face {
			fail("half-edges %d and %d are linked but have different faces", h, e.Next)
		}
		if m.Edges[e.Next].Origin != m.Dest(h) {
			fail("half-edge %d ends at %v but its successor starts at %v", h, m.Dest(h), m.Edges[e.Next].Origin)
		}
		if e.Face == EmptyFace || !m.Faces[e.Face].InUse {
			fail("half-edge %d lies on retired face %d", h, e.Face)
		}
	}

	for i, face := range m.Faces {
		f := FaceIndex(i)
		if !face.InUse {
			continue
		}
		if !m.Edges[face.Edge].InUse || m.Edges[face.Edge].Face != f {
			fail("face %d points at half-edge %d which is not on it", f, face.Edge)
			continue
		}
		if face.Data == nil {
			if f != m.Outer {
				fail("bounded face %d has no history node", f)
			}
			continue
		}
		tri := m.FaceTriangle(f)
		if face.Data.Triangle != tri {
			fail("face %d is %v but its history node is %v", f, tri, face.Data.Triangle)
		}
		if !face.Data.IsLeaf() {
			fail("face %d is live but its history node %v was split", f, tri)
		}
		if m.Points.Orient(tri[0], tri[1], tri[2]) != -1 {
			fail("face %d %v is not clockwise", f, tri)
		}
	}

	for slot, h := range m.vertexEdges {
		if h == EmptyEdge {
			continue
		}
		if !m.Edges[h].InUse || m.vertexSlot(m.Edges[h].Origin) != slot {
			fail("vertex slot %d points at half-edge %d which does not leave it: %s", slot, h, pretty.Sprint(m.Edges[h]))
		}
	}
	return err
}
