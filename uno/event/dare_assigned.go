package event

var DareAssigned = &dareAssignedEmitter{}

type DareAssignedPayload struct {
	GameID     string
	PlayerName string
	Dare       string
}

type DareAssignedListener interface {
	OnDareAssigned(DareAssignedPayload)
}

type dareAssignedEmitter struct {
	listeners []DareAssignedListener
}

func (e *dareAssignedEmitter) AddListener(listener DareAssignedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *dareAssignedEmitter) Emit(payload DareAssignedPayload) {
	for _, listener := range e.listeners {
		listener.OnDareAssigned(payload)
	}
}
