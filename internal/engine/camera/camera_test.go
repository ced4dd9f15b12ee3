package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/gldemos/pkg/math"
)

const tol = 1e-5

func newCamera(mode Mode) *Camera {
	cfg := DefaultConfig()
	cfg.Mode = mode
	return New(cfg)
}

func assertVec3(t *testing.T, want, got math.Vec3, delta float64) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, delta, "X")
	assert.InDelta(t, want.Y, got.Y, delta, "Y")
	assert.InDelta(t, want.Z, got.Z, delta, "Z")
}

func TestDefaults(t *testing.T) {
	c := New(DefaultConfig())

	assert.Equal(t, Orbiting, c.Mode())
	assert.Equal(t, DefaultHome, c.Position())
	assert.Equal(t, float32(45), c.FOV())
	assert.Equal(t, float32(0.1), c.Near())
	assert.Equal(t, float32(10000), c.Far())
	assert.Equal(t, float32(0), c.Azimuth())
	assert.Equal(t, float32(0), c.Elevation())
}

func TestViewIsInverseOfPlacement(t *testing.T) {
	states := []struct {
		name      string
		mode      Mode
		pos       math.Vec3
		azimuth   float32
		elevation float32
		dolly     float32
	}{
		{"home orbiting", Orbiting, DefaultHome, 0, 0, 0},
		{"home tracking", Tracking, DefaultHome, 0, 0, 0},
		{"orbit rotated", Orbiting, math.Vec3{X: 5, Y: 7, Z: 36}, 45, -30, 0},
		{"orbit dollied", Orbiting, DefaultHome, 170, 80, 12},
		{"track rotated", Tracking, math.Vec3{X: -10, Y: 3, Z: 20}, -120, 15, 0},
		{"track dollied", Tracking, DefaultHome, 300, -60, -8},
	}

	for _, s := range states {
		t.Run(s.name, func(t *testing.T) {
			c := newCamera(s.mode)
			c.SetPosition(s.pos)
			c.SetAzimuth(s.azimuth)
			c.SetElevation(s.elevation)
			c.Dolly(s.dolly)

			got := c.ViewTransform().Mul(c.Matrix())
			assert.True(t, got.ApproxEqual(math.Identity(), tol), "view * matrix = %v", got)
		})
	}
}

// At the control panel's limits the translation reaches a few hundred
// units, so the float32 residual is bounded relative to it.
func TestViewIsInverseAtSliderExtremes(t *testing.T) {
	angles := []float32{-180, -135, -90, -45, 0, 45, 90, 135, 180}

	for _, mode := range []Mode{Orbiting, Tracking} {
		for _, sx := range []float32{-100, 100} {
			for _, sz := range []float32{-136, 136} {
				for _, az := range angles {
					for _, el := range angles {
						c := newCamera(mode)
						c.SetPosition(math.Vec3{X: sx, Y: 100, Z: sz})
						c.SetAzimuth(az)
						c.SetElevation(el)
						c.Dolly(100)

						m := c.Matrix()
						reach := math.Vec3{X: m[12], Y: m[13], Z: m[14]}.Length()
						got := c.ViewTransform().Mul(m)
						assert.True(t, got.ApproxEqual(math.Identity(), 1e-6*math32.Max(1, reach)),
							"%s p=(%g,100,%g) az=%g el=%g: view * matrix = %v", mode, sx, sz, az, el, got)
					}
				}
			}
		}
	}
}

func TestNormalTransformIsTransposedPlacement(t *testing.T) {
	c := newCamera(Orbiting)
	c.SetAzimuth(35)
	c.SetElevation(-20)

	m := c.Matrix()
	n := c.NormalTransform()
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			assert.Equal(t, m[col*4+row], n[row*4+col])
		}
	}
}

func TestAngleWrap(t *testing.T) {
	inputs := []float32{0, 1, 359.5, 360, 360.5, 361, 720, 1000.25, -1, -359.5, -360, -361, -720, -1000.25, 7200}

	for _, in := range inputs {
		c := newCamera(Orbiting)
		c.SetAzimuth(in)
		c.SetElevation(in)

		for _, got := range []float32{c.Azimuth(), c.Elevation()} {
			assert.Greater(t, got, float32(-360), "input %v", in)
			assert.LessOrEqual(t, got, float32(360), "input %v", in)
		}
	}
}

func TestAngleWrapValues(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{360, 360},
		{361, 1},
		{-361, -1},
		{-360, 0},
		{725, 5},
		{-725, -5},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, wrapAngle(tt.in), 1e-4, "wrapAngle(%v)", tt.in)
	}
}

func TestAbsoluteSetters(t *testing.T) {
	c := newCamera(Orbiting)
	c.SetAzimuth(30)
	c.SetAzimuth(30)
	assert.Equal(t, float32(30), c.Azimuth(), "setting the same azimuth twice must not add up")

	c.SetElevation(-10)
	c.SetElevation(15)
	assert.Equal(t, float32(15), c.Elevation())
}

func TestDollySameTargetDoesNotMove(t *testing.T) {
	for _, mode := range []Mode{Orbiting, Tracking} {
		t.Run(mode.String(), func(t *testing.T) {
			c := newCamera(mode)
			c.SetAzimuth(40)

			c.Dolly(5)
			first := c.Position()
			c.Dolly(5)

			assert.Equal(t, first, c.Position())
			assert.Equal(t, float32(5), c.DollySteps())
		})
	}
}

func TestDollyOrbitingMovesZOnly(t *testing.T) {
	c := newCamera(Orbiting)
	c.SetAzimuth(30)
	c.SetElevation(20)
	before := c.Position()

	c.Dolly(10)

	after := c.Position()
	assert.Equal(t, before.X, after.X)
	assert.Equal(t, before.Y, after.Y)
	assert.InDelta(t, before.Z-10, after.Z, tol)

	// Stepping back applies only the difference.
	c.Dolly(4)
	assert.InDelta(t, before.Z-4, c.Position().Z, tol)
}

func TestDollyTrackingMovesAlongForward(t *testing.T) {
	c := newCamera(Tracking)
	c.SetAzimuth(90)

	forward := c.Forward().Normalize()
	require.Greater(t, math32.Abs(forward.X), float32(0.5), "azimuth 90 should turn forward towards X")

	before := c.Position()
	c.Dolly(5)

	want := before.Sub(forward.Scale(5))
	assertVec3(t, want, c.Position(), 1e-4)
	assertVec3(t, math.Vec3{X: -5, Y: 7, Z: 36}, c.Position(), 1e-4)
}

func TestDollyTrackingWithElevation(t *testing.T) {
	c := newCamera(Tracking)
	c.SetAzimuth(45)
	c.SetElevation(30)
	before := c.Position()

	c.Dolly(-3)

	moved := c.Position().Sub(before)
	assert.NotZero(t, moved.X)
	assert.NotZero(t, moved.Y)
	assert.InDelta(t, 3, moved.Length(), 1e-4)
}

func TestTrackingPositionDerivedFromMatrix(t *testing.T) {
	c := newCamera(Tracking)
	c.SetPosition(math.Vec3{X: 1, Y: 2, Z: 3})
	c.SetAzimuth(60)
	c.SetElevation(-45)

	m := c.Matrix()
	origin := m.TransformPoint(math.Vec3{})
	assertVec3(t, origin, c.Position(), 1e-6)
	assertVec3(t, math.Vec3{X: 1, Y: 2, Z: 3}, c.Position(), 1e-5)
}

func TestOrbitingPositionIsPivot(t *testing.T) {
	c := newCamera(Orbiting)
	c.SetAzimuth(90)

	// Pivot is untouched, but the lens is swung around it.
	assert.Equal(t, DefaultHome, c.Position())
	lens := c.Matrix().TransformPoint(math.Vec3{})
	assertVec3(t, math.Vec3{X: 36, Y: 7, Z: 0}, lens, 1e-4)
}

func TestBasisIsOrthonormal(t *testing.T) {
	c := newCamera(Orbiting)
	c.SetAzimuth(123)
	c.SetElevation(-47)

	r, u, f := c.Right(), c.Up(), c.Forward()
	assert.InDelta(t, 1, r.Length(), tol)
	assert.InDelta(t, 1, u.Length(), tol)
	assert.InDelta(t, 1, f.Length(), tol)
	assert.InDelta(t, 0, r.Dot(u), tol)
	assert.InDelta(t, 0, r.Dot(f), tol)
	assert.InDelta(t, 0, u.Dot(f), tol)
}

func TestSetModeDefersRebuild(t *testing.T) {
	c := newCamera(Orbiting)
	c.SetAzimuth(90)
	before := c.Matrix()

	c.SetMode(Tracking)
	assert.Equal(t, before, c.Matrix())

	c.SetPosition(c.Position())
	assert.NotEqual(t, before, c.Matrix())
}

func TestGoHome(t *testing.T) {
	c := newCamera(Orbiting)
	c.SetPosition(math.Vec3{X: 10, Y: 10, Z: 10})
	c.SetAzimuth(80)
	c.SetElevation(-30)

	c.GoHome()

	assert.Equal(t, DefaultHome, c.Position())
	assert.Equal(t, float32(0), c.Azimuth())
	assert.Equal(t, float32(0), c.Elevation())
	assert.Equal(t, math.Translate(0, 7, 36), c.Matrix())
}

func TestGoHomeTo(t *testing.T) {
	c := newCamera(Tracking)
	home := math.Vec3{X: 0, Y: 2, Z: 50}

	c.GoHomeTo(home)

	assertVec3(t, home, c.Position(), 1e-6)
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"orbiting", Orbiting, false},
		{"TRACKING", Tracking, false},
		{" track ", Tracking, false},
		{"spin", Orbiting, true},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}
