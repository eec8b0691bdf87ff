package scene

// resource controla o ciclo de vida de um recurso que tem contraparte na GPU.
// A GPU não é liberada pelo GC: quem fez o upload registra um callback em
// OnDispose e libera os buffers quando Dispose é chamado.
type resource struct {
	disposed  bool
	onDispose []func()
}

// OnDispose registra um callback executado uma única vez no Dispose.
// Se o recurso já foi liberado, o callback roda imediatamente.
func (r *resource) OnDispose(fn func()) {
	if r.disposed {
		fn()
		return
	}
	r.onDispose = append(r.onDispose, fn)
}

// Dispose libera o recurso. Chamadas repetidas são ignoradas.
func (r *resource) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	fns := r.onDispose
	r.onDispose = nil
	for _, fn := range fns {
		fn()
	}
}

// Disposed informa se o recurso já foi liberado.
func (r *resource) Disposed() bool {
	return r.disposed
}
