package tracing

import (
	"sync"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/burger/hooking"
)

// DBTracer is a hook that pairs the placed and served events of each order
// into a record and hands it to a backend.
type DBTracer struct {
	timeTeller hooking.TimeTeller
	backend    TracerBackend

	lock     sync.Mutex
	inflight map[string]OrderRecord
}

// NewDBTracer creates a new DBTracer. Orders that are still open when the
// program exits through atexit are written with the exit time.
func NewDBTracer(
	timeTeller hooking.TimeTeller,
	backend TracerBackend,
) *DBTracer {
	t := &DBTracer{
		timeTeller: timeTeller,
		backend:    backend,
		inflight:   make(map[string]OrderRecord),
	}

	atexit.Register(func() { t.Terminate() })

	return t
}

// Func records the start and the end of an order.
func (t *DBTracer) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case hooking.HookPosOrderPlaced:
		o, ok := ctx.Item.(hooking.OrderPlaced)
		if !ok {
			return
		}

		t.PlaceOrder(o)
	case hooking.HookPosOrderServed:
		o, ok := ctx.Item.(hooking.OrderServed)
		if !ok {
			return
		}

		t.ServeOrder(o)
	}
}

// PlaceOrder marks the start of an order.
func (t *DBTracer) PlaceOrder(o hooking.OrderPlaced) {
	if o.ID == "" {
		panic("order ID must be set")
	}

	r := OrderRecord{
		ID:        o.ID,
		Station:   o.Station,
		Bread:     o.Bread,
		Patty:     o.Patty,
		Cheese:    o.Cheese,
		Lettuce:   o.Lettuce,
		StartTime: t.timeTeller.Now(),
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	t.inflight[r.ID] = r
}

// ServeOrder marks the end of an order and writes its record.
func (t *DBTracer) ServeOrder(o hooking.OrderServed) {
	now := t.timeTeller.Now()

	t.lock.Lock()
	defer t.lock.Unlock()

	r, ok := t.inflight[o.ID]
	if !ok {
		return
	}

	r.Description = o.Description
	r.EndTime = now

	delete(t.inflight, o.ID)

	t.backend.Write(r)
}

// Terminate writes the orders that have not been served and flushes the
// backend.
func (t *DBTracer) Terminate() {
	now := t.timeTeller.Now()

	t.lock.Lock()
	defer t.lock.Unlock()

	for _, r := range t.inflight {
		r.EndTime = now
		t.backend.Write(r)
	}

	t.inflight = make(map[string]OrderRecord)

	t.backend.Flush()
}
