package app

import (
	"context"
	"log"

	"VoxelVision/cliente/internal/client"
	"VoxelVision/cliente/internal/render"
	"VoxelVision/cliente/internal/scene"
	"VoxelVision/shared/config"
	"VoxelVision/shared/voxel"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AppState representa os estados possíveis da aplicação.
type AppState int

const (
	StateIdle       AppState = iota // Aguardando um prompt
	StateGenerating                 // Requisição ao backend em andamento
	StateError                      // Última requisição falhou (cena intacta)
)

func (s AppState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateGenerating:
		return "Generating"
	case StateError:
		return "Error"
	}
	return "Unknown"
}

// Generator é o backend texto -> estrutura.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*client.Result, error)
}

// update é o resultado de uma goroutine de rede entregue à thread da UI.
type update struct {
	prompt string
	result *client.Result
	err    error
	stream bool // Veio do WebSocket (modo seguir)
}

// App é a aplicação principal do VoxelVision.
type App struct {
	Config *config.Config
	State  AppState
	Status string

	// Caixa de texto do prompt
	prompt        []rune
	promptFocused bool

	backend Generator
	stream  *client.StreamClient

	// Resultados de rede aguardando a thread da UI
	results chan update
	ctx     context.Context
	cancel  context.CancelFunc

	// Cena
	window   *render.Window
	handle   *scene.Handle
	teardown func()

	// Estrutura atual
	lastPrompt    string
	voxelCount    int
	boundsLo      voxel.Coord
	boundsHi      voxel.Coord
	hasBounds     bool
	schematicPath string
	rebuilds      int
}

// New cria uma nova instância da aplicação.
func New(cfg *config.Config) *App {
	return newApp(cfg, client.NewGenerateClient(cfg.BackendURL, cfg.RequestTimeout()))
}

func newApp(cfg *config.Config, backend Generator) *App {
	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		Config:        cfg,
		State:         StateIdle,
		Status:        "Digite um prompt e pressione Enter",
		promptFocused: true,
		backend:       backend,
		results:       make(chan update, 8),
		ctx:           ctx,
		cancel:        cancel,
	}
}

// Run inicia o loop principal da aplicação.
func (a *App) Run() {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[PANIC] Erro fatal recuperado: %v", r)
			panic(r)
		}
	}()

	// Inicializar janela raylib
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(a.Config.WindowWidth, a.Config.WindowHeight, a.Config.WindowTitle)
	rl.SetTraceLogLevel(rl.LogWarning) // Reduz ruído no terminal

	if a.Config.Fullscreen {
		rl.ToggleFullscreen()
	}

	rl.SetTargetFPS(a.Config.TargetFPS)
	rl.SetExitKey(0) // ESC não fecha a janela (é usado para limpar o prompt)

	log.Println("[VoxelVision] Janela inicializada com sucesso")
	log.Printf("[VoxelVision] Resolução: %dx%d", a.Config.WindowWidth, a.Config.WindowHeight)

	a.window = render.NewWindow()
	if err := a.attach(a.window); err != nil {
		log.Printf("[VoxelVision] ERRO ao montar a cena: %v", err)
		rl.CloseWindow()
		return
	}
	a.applyViewSettings()

	if a.Config.FollowStream {
		a.stream = client.NewStreamClient(a.Config.StreamURL)
		go a.followStream()
	}

	// Loop principal
	for !rl.WindowShouldClose() {
		a.updateInput()
		// Resultados de rede entram antes dos frames: Rebuild sempre termina antes do próximo render
		a.drainResults()
		a.window.Tick(rl.GetFrameTime())
		a.draw()
	}

	// Cleanup
	a.shutdown()
	rl.CloseWindow()
}

// attach monta a cena sobre a superfície.
func (a *App) attach(surface scene.Surface) error {
	h, teardown, err := scene.Init(surface)
	if err != nil {
		return err
	}
	a.handle = h
	a.teardown = teardown
	return nil
}

// applyViewSettings repassa as opções de visualização ao renderizador raylib.
func (a *App) applyViewSettings() {
	if a.handle == nil || a.handle.Closed() {
		return
	}
	if r, ok := a.handle.Device().(*render.Renderer); ok {
		r.ShowGrid = a.Config.ShowGrid
	}
	a.handle.Controls.RotateSpeed = a.Config.RotateSpeed
	a.handle.Controls.ZoomSpeed = a.Config.ZoomSpeed
	a.handle.Controls.PanSpeed = a.Config.PanSpeed
}

// shutdown realiza a limpeza de recursos.
func (a *App) shutdown() {
	log.Println("[App] Finalizando aplicação...")

	a.cancel()
	if a.stream != nil {
		a.stream.Close()
	}
	if a.teardown != nil {
		a.teardown()
	}

	if err := a.Config.Save(); err != nil {
		log.Printf("[VoxelVision] Erro ao salvar configurações: %v", err)
	}
}
