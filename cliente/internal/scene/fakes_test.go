package scene

import (
	"errors"

	"VoxelVision/cliente/internal/camera"
)

// fakeDevice conta uploads como o Device real: uma geometria/material vira
// "alocação de GPU" no primeiro Render e é liberada pelo OnDispose.
type fakeDevice struct {
	width, height int
	renders       int
	disposed      bool
	live          map[any]bool
}

func newFakeDevice(w, h int) *fakeDevice {
	return &fakeDevice{width: w, height: h, live: make(map[any]bool)}
}

func (d *fakeDevice) SetSize(w, h int) { d.width, d.height = w, h }
func (d *fakeDevice) Size() (int, int) { return d.width, d.height }
func (d *fakeDevice) Dispose()         { d.disposed = true }
func (d *fakeDevice) Render(w *World, _ *camera.Perspective) {
	d.renders++
	for _, obj := range w.Objects() {
		switch o := obj.(type) {
		case *InstancedMesh:
			d.upload(o.Geometry, &o.Geometry.resource)
			d.upload(o.Material, &o.Material.resource)
		case *LineSegments:
			d.upload(o.Geometry, &o.Geometry.resource)
			d.upload(o.Material, &o.Material.resource)
		}
	}
}

func (d *fakeDevice) upload(key any, r *resource) {
	if d.live[key] {
		return
	}
	d.live[key] = true
	r.OnDispose(func() { delete(d.live, key) })
}

type fakeSurface struct {
	width, height int
	queue         *FrameQueue
	device        *fakeDevice
	attached      map[Device]bool
	observers     map[int]func(int, int)
	nextObserver  int
	deviceErr     error
	pointer       camera.PointerSource
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{
		width:     w,
		height:    h,
		queue:     NewFrameQueue(),
		attached:  make(map[Device]bool),
		observers: make(map[int]func(int, int)),
	}
}

func (s *fakeSurface) Size() (int, int) { return s.width, s.height }

func (s *fakeSurface) NewDevice(w, h int) (Device, error) {
	if s.deviceErr != nil {
		return nil, s.deviceErr
	}
	s.device = newFakeDevice(w, h)
	return s.device, nil
}

func (s *fakeSurface) Scheduler() FrameScheduler     { return s.queue }
func (s *fakeSurface) Pointer() camera.PointerSource { return s.pointer }
func (s *fakeSurface) Attach(d Device)               { s.attached[d] = true }
func (s *fakeSurface) Detach(d Device)               { delete(s.attached, d) }

func (s *fakeSurface) ObserveResize(fn func(int, int)) func() {
	id := s.nextObserver
	s.nextObserver++
	s.observers[id] = fn
	return func() { delete(s.observers, id) }
}

// resize simula a janela mudando de tamanho.
func (s *fakeSurface) resize(w, h int) {
	s.width, s.height = w, h
	for _, fn := range s.observers {
		fn(w, h)
	}
}

var errNoGPU = errors.New("sem GPU")

// dragPointer entrega um único arraste e depois fica parado.
type dragPointer struct {
	pending []camera.PointerState
}

func (p *dragPointer) Pointer() camera.PointerState {
	if len(p.pending) == 0 {
		return camera.PointerState{}
	}
	st := p.pending[0]
	p.pending = p.pending[1:]
	return st
}
