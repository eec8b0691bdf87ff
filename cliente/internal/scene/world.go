package scene

// World é o grafo de cena: uma lista ordenada de objetos sem hierarquia.
type World struct {
	Background Color
	objects    []Object
}

// NewWorld cria um mundo vazio.
func NewWorld(background Color) *World {
	return &World{Background: background}
}

// Add insere um objeto no fim da lista. Objetos repetidos são ignorados.
func (w *World) Add(obj Object) {
	if w.Contains(obj) {
		return
	}
	w.objects = append(w.objects, obj)
}

// Remove retira um objeto do mundo. Retorna false se ele não estava presente.
func (w *World) Remove(obj Object) bool {
	for i, o := range w.objects {
		if o == obj {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			return true
		}
	}
	return false
}

// Contains informa se o objeto está no mundo.
func (w *World) Contains(obj Object) bool {
	for _, o := range w.objects {
		if o == obj {
			return true
		}
	}
	return false
}

// Objects retorna uma cópia da lista de objetos, na ordem de inserção.
func (w *World) Objects() []Object {
	out := make([]Object, len(w.objects))
	copy(out, w.objects)
	return out
}

// Count retorna quantos objetos do tipo informado estão no mundo.
func (w *World) Count(kind Kind) int {
	n := 0
	for _, o := range w.objects {
		if o.Kind() == kind {
			n++
		}
	}
	return n
}

// Len retorna o total de objetos.
func (w *World) Len() int {
	return len(w.objects)
}
