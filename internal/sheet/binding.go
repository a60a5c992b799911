package sheet

// ModeBinding is the host-owned mode cell. The controller reads it to seed a
// drag session and writes it when a release commits a detent.
type ModeBinding interface {
	Mode() Mode
	SetMode(Mode)
}

// Binding is an observable ModeBinding. It is not safe for concurrent use;
// the host mutates it from its event loop.
type Binding struct {
	mode      Mode
	nextID    int
	observers []observer
}

type observer struct {
	id int
	fn func(from, to Mode)
}

// NewBinding returns a binding holding initial.
func NewBinding(initial Mode) *Binding {
	return &Binding{mode: initial}
}

// Mode returns the current value.
func (b *Binding) Mode() Mode {
	return b.mode
}

// SetMode stores mode and notifies observers when the value changed.
// Invalid modes are ignored.
func (b *Binding) SetMode(mode Mode) {
	if !mode.Valid() || mode == b.mode {
		return
	}
	from := b.mode
	b.mode = mode
	// Observers may cancel themselves while being notified.
	snapshot := append([]observer(nil), b.observers...)
	for _, obs := range snapshot {
		obs.fn(from, mode)
	}
}

// Subscribe registers fn to run after every change, in subscription order.
// The returned function removes the subscription.
func (b *Binding) Subscribe(fn func(from, to Mode)) (cancel func()) {
	b.nextID++
	id := b.nextID
	b.observers = append(b.observers, observer{id: id, fn: fn})
	return func() {
		for idx, obs := range b.observers {
			if obs.id == id {
				b.observers = append(b.observers[:idx], b.observers[idx+1:]...)
				return
			}
		}
	}
}
