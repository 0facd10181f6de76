package scene

import (
	"github.com/cockroachdb/errors"

	"quaternion-matrix/mathutil"
)

// ErrZeroAxis is returned for a node that rotates by a non-zero angle about a
// zero-length axis.
var ErrZeroAxis = errors.New("scene: zero-length rotation axis")

const axisEpsilon = 1e-12

// LocalRotation returns the node's rotation quaternion. A zero axis is
// accepted only together with a zero angle.
func LocalRotation(n Node) (mathutil.Quatd, error) {
	if n.Axis.Len() < axisEpsilon {
		if n.Angle != 0 {
			return mathutil.Quatd{}, errors.Wrapf(ErrZeroAxis, "node %q", n.Name)
		}
		return mathutil.QuatIdentity[float64](), nil
	}
	return mathutil.QuatFromAxisAndAngle(n.Axis, n.Angle), nil
}

// World is a node's transform in scene space: p_world = Rot·(Scale·p) + Offset.
type World struct {
	Rot    mathutil.Mat4d
	Scale  float64
	Offset mathutil.Vec3d
}

// Apply maps a local point into scene space.
func (w World) Apply(p mathutil.Vec3d) mathutil.Vec3d {
	r := p.Scale(w.Scale).Pure().DotMV(w.Rot).Spatial()
	return mathutil.Vec3d{r[0] + w.Offset[0], r[1] + w.Offset[1], r[2] + w.Offset[2]}
}

// BuildWorld computes the world transform for each node, chaining parents
// before children.
func BuildWorld(nodes []Node) ([]World, error) {
	worlds := make([]World, len(nodes))
	for i, n := range nodes {
		q, err := LocalRotation(n)
		if err != nil {
			return nil, err
		}
		scale := n.Scale
		if scale == 0 {
			scale = 1
		}
		local := World{Rot: q.ToM4Rot(), Scale: scale, Offset: n.Offset}

		switch {
		case n.Parent < 0:
			worlds[i] = local
		case n.Parent < i:
			parent := worlds[n.Parent]
			worlds[i] = World{
				// parent·local: the local rotation applies first.
				Rot:    local.Rot.DotM(parent.Rot),
				Scale:  parent.Scale * local.Scale,
				Offset: parent.Apply(local.Offset),
			}
		default:
			return nil, errors.Newf("scene: node %q: parent %d must precede it", n.Name, n.Parent)
		}
	}
	return worlds, nil
}

// Flatten returns every node's mesh with vertices moved into scene space.
// Node meshes are not modified.
func Flatten(nodes []Node) ([]Mesh, error) {
	worlds, err := BuildWorld(nodes)
	if err != nil {
		return nil, err
	}

	var out []Mesh
	for i, n := range nodes {
		if n.Mesh == nil {
			continue
		}
		m := *n.Mesh
		m.Verts = make([]mathutil.Vec3d, len(n.Mesh.Verts))
		for vi, v := range n.Mesh.Verts {
			m.Verts[vi] = worlds[i].Apply(v)
		}
		out = append(out, m)
	}
	return out, nil
}

// Radius returns the largest distance of any vertex from the origin.
func Radius(meshes []Mesh) float64 {
	var r float64
	for _, m := range meshes {
		for _, v := range m.Verts {
			if l := v.Len(); l > r {
				r = l
			}
		}
	}
	return r
}
