package tracer

import "github.com/chewxy/math32"

// PitchLimit bounds Camera.Pitch to avoid flipping over the vertical.
const PitchLimit float32 = 1.3

// Camera is a first-person camera.
//
// Yaw turns about the world Y axis, pitch about the camera X axis; both are in
// radians. Mutate it between frames only and render from View snapshots.
type Camera struct {
	Position Vec3
	Yaw      float32
	Pitch    float32
}

// DefaultCamera looks down +Z from just above the floor.
func DefaultCamera() Camera {
	return Camera{Position: V3(0, 0.5, -3)}
}

// MoveForward moves along the centre view ray, including its vertical part.
func (c *Camera) MoveForward(d float32) {
	c.Position = c.Position.Add(c.Forward().Mul(d))
}

// Forward is the unit direction of the centre view ray. Positive pitch
// tilts it down.
func (c *Camera) Forward() Vec3 {
	sy, cy := math32.Sincos(c.Yaw)
	sp, cp := math32.Sincos(c.Pitch)
	return V3(sy, -sp*cy, cp*cy)
}

// Strafe moves sideways in the horizontal plane. Positive is right.
func (c *Camera) Strafe(d float32) {
	sy, cy := math32.Sincos(c.Yaw)
	c.Position = c.Position.Add(V3(cy, 0, -sy).Mul(d))
}

// Rise moves along world up.
func (c *Camera) Rise(d float32) {
	c.Position.Y += d
}

func (c *Camera) Turn(delta float32) {
	c.Yaw += delta
}

// Look changes pitch, clamped to ±PitchLimit.
func (c *Camera) Look(delta float32) {
	c.Pitch = clampF32(c.Pitch+delta, -PitchLimit, PitchLimit)
}

// View is an immutable camera snapshot for one frame.
type View struct {
	Origin Vec3
	rot    Mat3
}

// View snapshots the camera. Trigonometry runs once here instead of per pixel.
func (c Camera) View() View {
	return View{
		Origin: c.Position,
		rot:    Mat3Mul(Mat3RotateX(c.Pitch), Mat3RotateY(c.Yaw)),
	}
}

// RayDir returns the unit world direction for camera-plane offsets (dx, dy) on
// the z = 1 image plane.
func (v View) RayDir(dx, dy float32) Vec3 {
	return Normalize(Mat3MulV3(v.rot, V3(dx, dy, 1)))
}
