package scene

import (
	"math"

	"github.com/alucas2/raytracing-potato/types"
)

// Triangles with a determinant below this threshold are treated as
// degenerate and never hit.
const degenerateEpsilon = 1e-9

// Hittable is the closed set of geometry aggregates: a sphere, a triangle
// reference into a mesh, an unordered list, or an accelerated tree. The
// variant set is sealed so that dispatch sites can rely on exhaustiveness.
type Hittable interface {
	// Return the nearest valid hit with t inside the ray interval.
	Hit(ray *Ray, sd *SceneData) (Hit, bool)

	// Compute the box that contains the whole aggregate. Panics on a Bvh,
	// which is a terminal aggregate not meant for further composition.
	BoundingBox(sd *SceneData) AABB

	sealedHittable()
}

// ------------------------------------------- Sphere -------------------------------------------

type Sphere struct {
	Center   types.Vec3
	Radius   float64
	Material MaterialId
}

func (s Sphere) sealedHittable() {}

// Solve the quadratic |origin + t*dir - center|^2 = radius^2. A tangent ray
// (zero discriminant) counts as a miss.
func (s Sphere) Hit(ray *Ray, _ *SceneData) (Hit, bool) {
	toCenter := ray.Origin.Sub(s.Center)
	a := ray.Dir.LenSq()
	halfB := ray.Dir.Dot(toCenter)
	c := toCenter.LenSq() - s.Radius*s.Radius
	delta := halfB*halfB - a*c
	if delta <= 0 {
		return Hit{}, false
	}

	// Try the closer hit first, then the farther one
	sqrtDelta := math.Sqrt(delta)
	t := (-halfB - sqrtDelta) / a
	if t < ray.TMin || t > ray.TMax {
		t = (-halfB + sqrtDelta) / a
		if t < ray.TMin || t > ray.TMax {
			return Hit{}, false
		}
	}

	position := ray.At(t)
	normal := position.Sub(s.Center).Normalize()
	return Hit{
		T:        t,
		Position: position,
		Normal:   normal,
		UV:       sphericalUV(normal),
		Material: s.Material,
	}, true
}

func (s Sphere) BoundingBox(_ *SceneData) AABB {
	r := types.XYZ(s.Radius, s.Radius, s.Radius)
	return AABB{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

// ------------------------------------------- Mesh triangle -------------------------------------------

// A reference to one triangle of a mesh. The material comes from the owning
// mesh.
type MeshTriangle struct {
	Mesh     MeshId
	Triangle TriangleId
}

func (mt MeshTriangle) sealedHittable() {}

// Solve the 3x3 system [a-b a-c dir] * [u v t]^T = a-origin with Cramer's
// rule. All barycentric weights must be >= 0 and t inside the ray interval.
// https://facultyweb.cs.wwu.edu/~wehrwes/courses/csci480_20w/lectures/L10/L10.pdf
func (mt MeshTriangle) Hit(ray *Ray, sd *SceneData) (Hit, bool) {
	mesh := &sd.Meshes[mt.Mesh.ToIndex()]
	va, vb, vc := mesh.Triangle(mt.Triangle)
	ba := va.Position.Sub(vb.Position)
	ca := va.Position.Sub(vc.Position)
	pa := va.Position.Sub(ray.Origin)
	d := ray.Dir

	det := ba[0]*ca[1]*d[2] + ba[1]*ca[2]*d[0] + ba[2]*ca[0]*d[1] -
		ba[0]*ca[2]*d[1] - ba[1]*ca[0]*d[2] - ba[2]*ca[1]*d[0]
	if math.Abs(det) < degenerateEpsilon {
		return Hit{}, false
	}
	invDet := 1.0 / det

	t := (pa[0]*(ba[1]*ca[2]-ba[2]*ca[1]) +
		pa[1]*(ba[2]*ca[0]-ba[0]*ca[2]) +
		pa[2]*(ba[0]*ca[1]-ba[1]*ca[0])) * invDet

	u := (pa[0]*(ca[1]*d[2]-ca[2]*d[1]) +
		pa[1]*(ca[2]*d[0]-ca[0]*d[2]) +
		pa[2]*(ca[0]*d[1]-ca[1]*d[0])) * invDet

	v := (pa[0]*(ba[2]*d[1]-ba[1]*d[2]) +
		pa[1]*(ba[0]*d[2]-ba[2]*d[0]) +
		pa[2]*(ba[1]*d[0]-ba[0]*d[1])) * invDet

	w := 1.0 - u - v
	if t < ray.TMin || t > ray.TMax || u < 0 || v < 0 || w < 0 {
		return Hit{}, false
	}

	// Interpolate the normals and texture coordinates
	normal := va.Normal.Mul(w).Add(vb.Normal.Mul(u)).Add(vc.Normal.Mul(v))
	uv := va.UV.Mul(w).Add(vb.UV.Mul(u)).Add(vc.UV.Mul(v))
	return Hit{
		T:        t,
		Position: ray.At(t),
		Normal:   normal,
		UV:       uv,
		Material: mesh.Material,
	}, true
}

func (mt MeshTriangle) BoundingBox(sd *SceneData) AABB {
	mesh := &sd.Meshes[mt.Mesh.ToIndex()]
	va, vb, vc := mesh.Triangle(mt.Triangle)
	return AABB{
		Min: types.MinVec3(va.Position, types.MinVec3(vb.Position, vc.Position)),
		Max: types.MaxVec3(va.Position, types.MaxVec3(vb.Position, vc.Position)),
	}
}

// ------------------------------------------- List -------------------------------------------

// An unordered sequence of hittables, scanned linearly.
type List []Hittable

func (l List) sealedHittable() {}

// Keep the closest hit so far, shrinking the ray interval before testing
// subsequent members. A later hit replaces the current best only when it is
// strictly closer, so the earliest-found candidate wins ties.
func (l List) Hit(ray *Ray, sd *SceneData) (Hit, bool) {
	local := *ray
	var closest Hit
	found := false
	for _, h := range l {
		if hit, ok := h.Hit(&local, sd); ok && (!found || hit.T < closest.T) {
			local.TMax = hit.T
			closest = hit
			found = true
		}
	}
	return closest, found
}

func (l List) BoundingBox(sd *SceneData) AABB {
	if len(l) == 0 {
		return AABB{}
	}
	aabb := l[0].BoundingBox(sd)
	for _, h := range l[1:] {
		aabb = aabb.Union(h.BoundingBox(sd))
	}
	return aabb
}
