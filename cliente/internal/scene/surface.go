package scene

import "VoxelVision/cliente/internal/camera"

// Device é o renderizador ligado a uma superfície: dono do contexto de GPU.
// Faz upload das geometrias sob demanda e libera os buffers quando elas
// recebem Dispose.
type Device interface {
	// SetSize redimensiona o buffer de saída.
	SetSize(width, height int)
	// Size retorna o tamanho atual do buffer de saída.
	Size() (width, height int)
	// Render desenha um frame do mundo visto pela câmera.
	Render(world *World, cam *camera.Perspective)
	// Dispose libera o contexto de GPU e tudo que ainda estiver carregado.
	Dispose()
}

// Surface é a região de desenho que hospeda a cena (a janela, na prática).
type Surface interface {
	// Size retorna o tamanho atual em pixels.
	Size() (width, height int)
	// NewDevice cria um renderizador ligado a esta superfície.
	NewDevice(width, height int) (Device, error)
	// Scheduler é o sinal de refresh da tela.
	Scheduler() FrameScheduler
	// Pointer é o input de ponteiro usado pelos controles de órbita.
	Pointer() camera.PointerSource
	// ObserveResize registra fn para cada mudança de tamanho e retorna a função que remove o observador.
	ObserveResize(fn func(width, height int)) (unobserve func())
	// Attach e Detach ligam/desligam a saída do Device à superfície.
	Attach(d Device)
	Detach(d Device)
}
