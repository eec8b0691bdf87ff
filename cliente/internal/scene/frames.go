package scene

// FrameID identifica um callback agendado. Zero nunca é um id válido.
type FrameID uint64

// FrameFunc recebe o tempo (segundos) desde o frame anterior.
type FrameFunc func(dt float32)

// FrameScheduler agenda callbacks para o próximo sinal de refresh da tela.
// Cada callback roda uma única vez; o loop de render se re-agenda a cada frame.
type FrameScheduler interface {
	RequestFrame(fn FrameFunc) FrameID
	CancelFrame(id FrameID)
}

type pendingFrame struct {
	id FrameID
	fn FrameFunc
}

// FrameQueue é o FrameScheduler cooperativo usado pela janela: quem possui a
// thread de UI chama Pump uma vez por refresh. Não é seguro para uso concorrente.
type FrameQueue struct {
	nextID   FrameID
	pending  []pendingFrame
	inflight map[FrameID]bool // lote em execução no Pump atual
}

// NewFrameQueue cria uma fila vazia.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame agenda fn para o próximo Pump.
func (q *FrameQueue) RequestFrame(fn FrameFunc) FrameID {
	q.nextID++
	q.pending = append(q.pending, pendingFrame{id: q.nextID, fn: fn})
	return q.nextID
}

// CancelFrame remove um callback ainda não executado. Ids desconhecidos são ignorados.
func (q *FrameQueue) CancelFrame(id FrameID) {
	for i, p := range q.pending {
		if p.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	delete(q.inflight, id)
}

// Pending retorna quantos callbacks aguardam o próximo Pump.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Pump executa os callbacks agendados antes desta chamada. Os que forem
// agendados durante a execução ficam para o próximo Pump.
// Retorna quantos callbacks rodaram.
func (q *FrameQueue) Pump(dt float32) int {
	batch := q.pending
	q.pending = nil
	if len(batch) == 0 {
		return 0
	}

	q.inflight = make(map[FrameID]bool, len(batch))
	for _, p := range batch {
		q.inflight[p.id] = true
	}
	defer func() { q.inflight = nil }()

	ran := 0
	for _, p := range batch {
		// Um callback anterior do mesmo lote pode ter cancelado este
		if !q.inflight[p.id] {
			continue
		}
		delete(q.inflight, p.id)
		p.fn(dt)
		ran++
	}
	return ran
}
