package scene

import (
	"testing"

	"VoxelVision/cliente/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRejectsZeroSurface(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"largura zero", 0, 600},
		{"altura zero", 800, 0},
		{"ambos zero", 0, 0},
		{"negativo", -1, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newFakeSurface(tt.w, tt.h)
			h, teardown, err := Init(s)
			assert.ErrorIs(t, err, ErrZeroSurface)
			assert.Nil(t, h)
			assert.Nil(t, teardown)
			assert.Nil(t, s.device, "nada deve ser alocado")
			assert.Equal(t, 0, s.queue.Pending())
		})
	}
}

func TestInitPropagatesDeviceError(t *testing.T) {
	s := newFakeSurface(800, 600)
	s.deviceErr = errNoGPU

	_, _, err := Init(s)
	assert.ErrorIs(t, err, errNoGPU)
	assert.Equal(t, 0, s.queue.Pending())
}

func TestInitBuildsScene(t *testing.T) {
	s := newFakeSurface(800, 600)
	h, teardown, err := Init(s)
	require.NoError(t, err)
	defer teardown()

	assert.Equal(t, BackgroundColor, h.World.Background)
	assert.Equal(t, 1, h.World.Count(KindAmbientLight))
	assert.Equal(t, 2, h.World.Count(KindDirectionalLight))
	assert.Equal(t, 0, h.World.Count(KindInstancedMesh))
	assert.Equal(t, 0, h.World.Count(KindLineSegments))

	assert.Equal(t, float32(800.0/600.0), h.Camera.Aspect)
	assert.Equal(t, mgl32.Vec3{10, 10, 10}, h.Camera.Position)
	assert.True(t, h.Controls.EnableDamping)

	assert.True(t, s.attached[h.Device()])
	w, hh := h.Device().Size()
	assert.Equal(t, []int{800, 600}, []int{w, hh})
	assert.Equal(t, 1, s.queue.Pending(), "loop deve estar agendado")
}

func TestDirectionalLightsNeverLeaveFaceUnlit(t *testing.T) {
	s := newFakeSurface(800, 600)
	h, teardown, err := Init(s)
	require.NoError(t, err)
	defer teardown()

	var ambient float32
	for _, obj := range h.World.Objects() {
		if a, ok := obj.(*AmbientLight); ok {
			ambient += a.Intensity
		}
	}
	// Mesmo uma face de costas para as duas direcionais recebe a ambiente.
	assert.GreaterOrEqual(t, ambient, float32(1.0))
}

func TestRenderLoopTicksEachPump(t *testing.T) {
	s := newFakeSurface(800, 600)
	h, teardown, err := Init(s)
	require.NoError(t, err)
	defer teardown()

	for i := 0; i < 3; i++ {
		s.queue.Pump(1.0 / 60)
	}
	assert.Equal(t, uint64(3), h.FrameCount())
	assert.Equal(t, 3, s.device.renders)
	assert.Equal(t, 1, s.queue.Pending())
}

func TestResizeUpdatesCameraAndDevice(t *testing.T) {
	s := newFakeSurface(800, 600)
	h, teardown, err := Init(s)
	require.NoError(t, err)
	defer teardown()

	faces := NewInstancedMesh(NewBoxGeometry(1, 1, 1), NewLambertMaterial(Hex(0x4ade80)), 2)
	require.NoError(t, h.SetBatches(faces, nil))
	before := h.World.Objects()

	s.resize(400, 300)

	assert.Equal(t, float32(400.0/300.0), h.Camera.Aspect)
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(CameraFov), 400.0/300.0, CameraNear, CameraFar), h.Camera.Projection())
	w, hh := h.Device().Size()
	assert.Equal(t, []int{400, 300}, []int{w, hh})
	assert.Equal(t, before, h.World.Objects(), "resize não mexe na geometria")
	assert.Equal(t, 2, faces.Count())
}

func TestResizeToZeroIsIgnored(t *testing.T) {
	s := newFakeSurface(800, 600)
	h, teardown, err := Init(s)
	require.NoError(t, err)
	defer teardown()

	s.resize(0, 0)
	assert.Equal(t, float32(800.0/600.0), h.Camera.Aspect)
	w, hh := h.Device().Size()
	assert.Equal(t, []int{800, 600}, []int{w, hh})
}

func TestTeardownStopsLoopAndReleasesEverything(t *testing.T) {
	s := newFakeSurface(800, 600)
	h, teardown, err := Init(s)
	require.NoError(t, err)
	device := s.device

	s.queue.Pump(1.0 / 60)
	s.queue.Pump(1.0 / 60)
	frames := h.FrameCount()
	controls := h.Controls

	teardown()

	// "Espera" vários refreshes: nenhum frame novo.
	for i := 0; i < 10; i++ {
		s.queue.Pump(1.0 / 60)
	}
	assert.Equal(t, frames, h.FrameCount())
	assert.Equal(t, 0, s.queue.Pending())

	assert.True(t, h.Closed())
	assert.True(t, device.disposed)
	assert.True(t, controls.Disposed())
	assert.Empty(t, s.attached)
	assert.Empty(t, s.observers)
	assert.Nil(t, h.World)
	assert.Nil(t, h.Camera)
	assert.Nil(t, h.Controls)
	assert.Nil(t, h.Device())

	// Segunda chamada não faz nada
	assert.NotPanics(t, teardown)
}

func TestTeardownReleasesLiveBatches(t *testing.T) {
	s := newFakeSurface(800, 600)
	h, teardown, err := Init(s)
	require.NoError(t, err)

	faces := NewInstancedMesh(NewBoxGeometry(1, 1, 1), NewLambertMaterial(Hex(0x4ade80)), 1)
	edges := NewLineSegments(&Geometry{Positions: make([]float32, 72)}, NewLineMaterial(Hex(0)))
	require.NoError(t, h.SetBatches(faces, edges))
	s.queue.Pump(1.0 / 60)
	assert.Len(t, s.device.live, 4)

	teardown()
	assert.Empty(t, s.device.live)
	assert.True(t, faces.Geometry.Disposed())
	assert.True(t, edges.Material.Disposed())
}

func TestSetBatchesRequiresClearFirst(t *testing.T) {
	s := newFakeSurface(800, 600)
	h, teardown, err := Init(s)
	require.NoError(t, err)

	first := NewInstancedMesh(NewBoxGeometry(1, 1, 1), NewLambertMaterial(Hex(0x4ade80)), 1)
	require.NoError(t, h.SetBatches(first, nil))

	second := NewInstancedMesh(NewBoxGeometry(1, 1, 1), NewLambertMaterial(Hex(0x4ade80)), 1)
	assert.Error(t, h.SetBatches(second, nil))

	h.ClearBatches()
	assert.False(t, h.World.Contains(first))
	assert.True(t, first.Geometry.Disposed())
	require.NoError(t, h.SetBatches(second, nil))
	assert.Equal(t, 1, h.World.Count(KindInstancedMesh))

	teardown()
	assert.ErrorIs(t, h.SetBatches(first, nil), ErrSceneClosed)
}

func TestResetViewReturnsToStart(t *testing.T) {
	s := newFakeSurface(800, 600)
	h, teardown, err := Init(s)
	require.NoError(t, err)

	h.Controls.SetTarget(mgl32.Vec3{3, 0, 0})
	h.Camera.Position = mgl32.Vec3{50, 2, -7}

	require.NoError(t, h.ResetView())
	assert.InDelta(t, 0, h.Controls.Target.Len(), 1e-6)
	assert.InDelta(t, 0, h.Camera.Position.Sub(CameraStart).Len(), 1e-4)

	teardown()
	assert.ErrorIs(t, h.ResetView(), ErrSceneClosed)
}

func TestResetViewDropsPendingInertia(t *testing.T) {
	s := newFakeSurface(800, 600)
	s.pointer = &dragPointer{pending: []camera.PointerState{
		{DeltaX: 400, DeltaY: 120, Rotate: true, Pan: true},
	}}
	h, teardown, err := Init(s)
	require.NoError(t, err)
	defer teardown()

	s.queue.Pump(1.0 / 60)
	require.Greater(t, h.Camera.Position.Sub(CameraStart).Len(), float32(1e-3), "o arraste deve mover a câmera")

	require.NoError(t, h.ResetView())
	for i := 0; i < 60; i++ {
		s.queue.Pump(1.0 / 60)
	}

	assert.InDelta(t, 0, h.Controls.Target.Len(), 1e-4)
	assert.InDelta(t, 0, h.Camera.Position.Sub(CameraStart).Len(), 1e-3)
}
