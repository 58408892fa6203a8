package kitchen

import (
	"sync"

	"github.com/sarchlab/burger/hooking"
	"github.com/sarchlab/burger/idgen"
)

// Kitchen is a station that turns orders into burgers. It is safe to prepare
// orders from multiple goroutines.
type Kitchen struct {
	hooking.HookableBase

	name        string
	idGenerator idgen.IDGenerator
	historySize int

	lock      sync.Mutex
	served    []Ticket
	numServed uint64
}

// Name returns the name of the kitchen.
func (k *Kitchen) Name() string {
	return k.name
}

// Prepare assembles the burger for an order.
func (k *Kitchen) Prepare(order Order) Ticket {
	ticket := Ticket{
		ID:    k.idGenerator.Generate(),
		Order: order,
	}

	k.InvokeHook(hooking.HookCtx{
		Domain: k,
		Pos:    hooking.HookPosOrderPlaced,
		Item: hooking.OrderPlaced{
			ID:      ticket.ID,
			Station: k.name,
			Bread:   order.Bread,
			Patty:   order.Patty,
			Cheese:  order.Cheese,
			Lettuce: order.Lettuce,
		},
	})

	ticket.Burger = order.Burger()
	k.record(ticket)

	k.InvokeHook(hooking.HookCtx{
		Domain: k,
		Pos:    hooking.HookPosOrderServed,
		Item: hooking.OrderServed{
			ID:          ticket.ID,
			Description: ticket.Burger.String(),
		},
	})

	return ticket
}

func (k *Kitchen) record(ticket Ticket) {
	k.lock.Lock()
	defer k.lock.Unlock()

	k.numServed++

	if k.historySize <= 0 {
		return
	}

	k.served = append(k.served, ticket)
	if len(k.served) > k.historySize {
		k.served = k.served[len(k.served)-k.historySize:]
	}
}

// Served returns the most recent tickets, oldest first.
func (k *Kitchen) Served() []Ticket {
	k.lock.Lock()
	defer k.lock.Unlock()

	tickets := make([]Ticket, len(k.served))
	copy(tickets, k.served)

	return tickets
}

// NumServed returns the number of orders prepared since the kitchen opened.
func (k *Kitchen) NumServed() uint64 {
	k.lock.Lock()
	defer k.lock.Unlock()

	return k.numServed
}
