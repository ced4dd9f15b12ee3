package demo

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/gldemos/internal/config"
	"github.com/Faultbox/gldemos/internal/engine/camera"
	"github.com/Faultbox/gldemos/internal/engine/input"
	"github.com/Faultbox/gldemos/internal/engine/lighting"
	"github.com/Faultbox/gldemos/internal/engine/mesh"
	"github.com/Faultbox/gldemos/internal/engine/render"
	"github.com/Faultbox/gldemos/internal/engine/render/rendertest"
	"github.com/Faultbox/gldemos/pkg/math"
)

var sceneUniforms = []string{
	render.UniformModelView,
	render.UniformProjection,
	render.UniformNormal,
	render.UniformMaterialDiffuse,
	render.UniformMaterialAmbient,
	render.UniformMaterialSpecular,
	render.UniformWireframe,
	lighting.UniformPosition,
	lighting.UniformAmbient,
	lighting.UniformDiffuse,
	lighting.UniformSpecular,
	lighting.UniformShininess,
	lighting.UniformFixed,
	lighting.UniformDirection,
	UniformTranslate,
	UniformTranslation,
}

func newEnv(t *testing.T) (Env, *rendertest.Backend) {
	t.Helper()
	b := rendertest.NewBackend(sceneUniforms...)
	ctx, err := render.NewContext(b)
	require.NoError(t, err)
	ctx.SetCanvasSize(&rendertest.Surface{W: 640, H: 480, Ratio: 1})

	cam := camera.New(camera.DefaultConfig())
	return Env{
		Render:   ctx,
		Camera:   cam,
		Controls: input.NewControls(cam, input.DefaultSteps()),
		Light:    lighting.Default(),
		Scene:    config.Default().Scene,
	}, b
}

type recordingScene struct {
	name     string
	enterErr error
	calls    []string
}

func (s *recordingScene) Name() string { return s.name }
func (s *recordingScene) Enter() error {
	s.calls = append(s.calls, "enter")
	return s.enterErr
}
func (s *recordingScene) Exit() error {
	s.calls = append(s.calls, "exit")
	return nil
}
func (s *recordingScene) Update(float64) error {
	s.calls = append(s.calls, "update")
	return nil
}
func (s *recordingScene) Render() error {
	s.calls = append(s.calls, "render")
	return nil
}

type bouncer struct{ strengths []float64 }

func (b *bouncer) PlayBounce(strength float64) error {
	b.strengths = append(b.strengths, strength)
	return nil
}

func TestNew(t *testing.T) {
	env, _ := newEnv(t)

	for _, name := range Names {
		s, err := New(name, env)
		require.NoError(t, err)
		assert.Equal(t, name, s.Name())
	}

	_, err := New("lights", env)
	assert.Error(t, err)
}

func TestNamesAreValidConfig(t *testing.T) {
	for _, name := range Names {
		cfg := config.Default()
		cfg.Scene.Name = name
		assert.NoError(t, cfg.Validate(), name)
	}
}

func TestNextName(t *testing.T) {
	assert.Equal(t, NameGouraudLambert, NextName(NameSquare))
	assert.Equal(t, NameCamera, NextName(NamePhong))
	assert.Equal(t, NameBouncingBalls, NextName(NameCamera))
	assert.Equal(t, NameSquare, NextName(NameBouncingBalls))
	assert.Equal(t, NameSquare, NextName("unknown"))

	seen := map[string]bool{}
	name := NameSquare
	for range Names {
		seen[name] = true
		name = NextName(name)
	}
	assert.Len(t, seen, len(Names))
}

func TestManagerTransitions(t *testing.T) {
	m := NewManager()
	a := &recordingScene{name: "a"}
	b := &recordingScene{name: "b"}

	require.NoError(t, m.Update(0))
	require.NoError(t, m.Render())
	assert.Nil(t, m.Current())

	m.Change(a)
	require.NoError(t, m.Update(0.016))
	require.NoError(t, m.Render())
	assert.Equal(t, a, m.Current())

	m.Change(b)
	require.NoError(t, m.Update(0.016))
	assert.Equal(t, []string{"enter", "update", "render", "exit"}, a.calls)
	assert.Equal(t, []string{"enter", "update"}, b.calls)

	require.NoError(t, m.Close())
	assert.Nil(t, m.Current())
	assert.Equal(t, "exit", b.calls[len(b.calls)-1])
}

func TestManagerEnterError(t *testing.T) {
	m := NewManager()
	boom := errors.New("boom")
	s := &recordingScene{name: "broken", enterErr: boom}

	m.Change(s)
	assert.ErrorIs(t, m.Update(0), boom)
	assert.Equal(t, []string{"enter"}, s.calls)
}

func TestCameraScene(t *testing.T) {
	env, b := newEnv(t)
	s := NewCameraScene(env)

	require.NoError(t, s.Enter())
	require.Len(t, s.Objects(), 3)
	assert.NotZero(t, env.Render.Program())
	assert.Equal(t, lighting.Default().Shininess, b.Uniforms[lighting.UniformShininess])

	require.NoError(t, s.Update(0.016))
	require.NoError(t, s.Render())
	require.Len(t, b.Draws, 3)

	floor, axis, cone := b.Draws[0], b.Draws[1], b.Draws[2]
	assert.Equal(t, render.Lines, floor.Mode)
	assert.Equal(t, int32(4*81), floor.Count)
	assert.Equal(t, render.Lines, axis.Mode)
	assert.Equal(t, int32(6), axis.Count)
	assert.Equal(t, render.Triangles, cone.Mode)
	assert.Equal(t, int32(0), cone.Uniforms[render.UniformWireframe])
	assert.Equal(t, env.Camera.ViewTransform(), cone.Uniforms[render.UniformModelView])

	require.NoError(t, s.Exit())
	assert.Empty(t, b.LiveVAOs)
	assert.Empty(t, b.LiveBuffers)
}

func TestCameraSceneGoesHome(t *testing.T) {
	env, _ := newEnv(t)
	env.Camera.SetAzimuth(30)

	require.NoError(t, NewCameraScene(env).Enter())
	assert.Zero(t, env.Camera.Azimuth())
	assert.Equal(t, camera.DefaultHome, env.Camera.Position())
}

func TestCameraSceneMissingMesh(t *testing.T) {
	env, _ := newEnv(t)
	env.Scene.Mesh = filepath.Join(t.TempDir(), "nope.json")

	assert.Error(t, NewCameraScene(env).Enter())
}

func TestCameraSceneCompileFailure(t *testing.T) {
	env, b := newEnv(t)
	b.CompileErr = render.ErrLink

	err := NewCameraScene(env).Enter()
	assert.ErrorIs(t, err, render.ErrLink)
}

func TestBallsSceneDraws(t *testing.T) {
	env, b := newEnv(t)
	env.Scene.BallCount = 5
	env.Scene.Seed = 7
	s := NewBallsScene(env)

	require.NoError(t, s.Enter())
	require.Len(t, s.Balls(), 5)
	require.NoError(t, s.Update(0.5))
	require.NoError(t, s.Render())

	// One floor draw, then one draw per ball from the same bindings.
	require.Len(t, b.Draws, 6)
	floor := b.Draws[0]
	assert.Equal(t, render.Lines, floor.Mode)
	assert.Equal(t, int32(0), floor.Uniforms[UniformTranslate])

	for i, ball := range s.Balls() {
		d := b.Draws[i+1]
		assert.Equal(t, render.Triangles, d.Mode)
		assert.Equal(t, b.Draws[1].VAO, d.VAO)
		assert.Equal(t, int32(1), d.Uniforms[UniformTranslate])
		assert.Equal(t, ball.Position().Array(), d.Uniforms[UniformTranslation])
		assert.Equal(t, [4]float32(ball.Color()), d.Uniforms[render.UniformMaterialDiffuse])
	}
	assert.Zero(t, b.VAO, "bindings cleaned after the ball loop")
}

func TestBallsSceneSeedIsDeterministic(t *testing.T) {
	envA, _ := newEnv(t)
	envB, _ := newEnv(t)
	envA.Scene.Seed, envB.Scene.Seed = 42, 42

	a, b := NewBallsScene(envA), NewBallsScene(envB)
	require.NoError(t, a.Enter())
	require.NoError(t, b.Enter())

	require.Len(t, a.Balls(), 50)
	for i := range a.Balls() {
		assert.Equal(t, a.Balls()[i].Position(), b.Balls()[i].Position())
		assert.Equal(t, a.Balls()[i].Color(), b.Balls()[i].Color())
	}
}

func TestBallsSceneClockAndBounceSound(t *testing.T) {
	env, _ := newEnv(t)
	env.Scene.BallCount = 10
	env.Scene.Seed = 3
	sound := &bouncer{}
	env.Audio = sound
	s := NewBallsScene(env)
	require.NoError(t, s.Enter())

	// Every ball spawns below y=80 and lands within 4.1 seconds.
	for i := 0; i < 50; i++ {
		require.NoError(t, s.Update(0.1))
	}
	assert.InDelta(t, 5.0, s.Clock(), 1e-9)

	bounces := 0
	for _, ball := range s.Balls() {
		assert.GreaterOrEqual(t, ball.Bounces(), 1)
		bounces += ball.Bounces()
	}
	require.Len(t, sound.strengths, bounces)
	for _, v := range sound.strengths {
		assert.Greater(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestBallsSceneFixedLight(t *testing.T) {
	env, b := newEnv(t)
	env.Scene.BallCount = 1
	s := NewBallsScene(env)
	require.NoError(t, s.Enter())

	require.NoError(t, s.Render())
	assert.Equal(t, int32(0), b.Uniforms[lighting.UniformFixed])

	env.Controls.HandleEvent(input.Event{Type: input.EventKeyDown, Key: input.KeyL})
	require.NoError(t, s.Render())
	assert.Equal(t, int32(1), b.Uniforms[lighting.UniformFixed])
}

func TestBallsSceneExitReleases(t *testing.T) {
	env, b := newEnv(t)
	s := NewBallsScene(env)
	require.NoError(t, s.Enter())
	require.NoError(t, s.Exit())

	assert.Empty(t, b.LiveVAOs)
	assert.Empty(t, b.LiveBuffers)
	assert.Empty(t, s.Balls())
}

func TestSquareScene(t *testing.T) {
	env, b := newEnv(t)
	env.Render.SetClearColor(mesh.RGBA{0.9, 0.9, 0.9, 1})
	s := NewSquareScene(env)

	require.NoError(t, s.Enter())
	assert.Equal(t, [4]float32{0, 0, 0, 1}, b.ClearColor)

	require.NoError(t, s.Update(0.016))
	require.NoError(t, s.Render())
	require.Len(t, b.Draws, 1)
	assert.Equal(t, render.Triangles, b.Draws[0].Mode)
	assert.Equal(t, int32(6), b.Draws[0].Count)
	assert.Empty(t, b.Draws[0].Uniforms, "square draws without uniforms")

	require.NoError(t, s.Exit())
	assert.Empty(t, b.LiveVAOs)
	assert.Equal(t, [4]float32{0.9, 0.9, 0.9, 1}, b.ClearColor)
}

func TestShadingScenes(t *testing.T) {
	tests := []struct {
		shading  Shading
		name     string
		spin     float32
		specular bool
	}{
		{GouraudLambert, NameGouraudLambert, 0, false},
		{GouraudPhong, NameGouraudPhong, 90, true},
		{Phong, NamePhong, 90, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, b := newEnv(t)
			s := NewShadingScene(env, tt.shading)
			assert.Equal(t, tt.name, s.Name())

			require.NoError(t, s.Enter())
			assert.Equal(t, [4]float32{1, 1, 1, 1}, b.ClearColor)
			assert.Equal(t, s.Light().Direction.Array(), b.Uniforms[lighting.UniformDirection])
			assert.Equal(t, [4]float32(s.Light().Diffuse), b.Uniforms[lighting.UniformDiffuse])
			if tt.specular {
				assert.Equal(t, float32(10), b.Uniforms[lighting.UniformShininess])
			}

			require.NoError(t, s.Update(0.5))
			assert.InDelta(t, tt.spin/2, s.Angle(), 1e-4)
			require.NoError(t, s.Render())

			require.Len(t, b.Draws, 1)
			d := b.Draws[0]
			assert.Equal(t, render.Triangles, d.Mode)

			eye := math.Translate(0, 0, -1.5)
			model := eye.RotatedY(math.DegToRad(s.Angle()))
			assert.Equal(t, model, d.Uniforms[render.UniformModelView])
			assert.Equal(t, model.Inverse().Transpose(), d.Uniforms[render.UniformNormal])
			assert.Equal(t, env.Render.Projection(), d.Uniforms[render.UniformProjection])

			// The sphere's rotation is popped once drawn.
			assert.Equal(t, eye, env.Render.ModelView())
			assert.Equal(t, eye, b.Uniforms[render.UniformModelView])

			require.NoError(t, s.Exit())
			assert.Empty(t, b.LiveVAOs)
			assert.Empty(t, b.LiveBuffers)
		})
	}
}

func TestShadingSceneAngleWraps(t *testing.T) {
	env, _ := newEnv(t)
	s := NewShadingScene(env, Phong)
	require.NoError(t, s.Enter())

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Update(1))
	}
	assert.InDelta(t, 90, s.Angle(), 1e-3)

	// Re-entering starts the turntable over.
	require.NoError(t, s.Exit())
	require.NoError(t, s.Enter())
	assert.Zero(t, s.Angle())
}
