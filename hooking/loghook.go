package hooking

import (
	"log"
)

// LogHook prints one line for every order event it sees.
type LogHook struct {
	*log.Logger
}

// NewLogHook returns a new LogHook which will write in to the logger
func NewLogHook(logger *log.Logger) *LogHook {
	h := new(LogHook)
	h.Logger = logger
	return h
}

// Func writes the order information into the logger
func (h *LogHook) Func(ctx HookCtx) {
	switch ctx.Pos {
	case HookPosOrderPlaced:
		o, ok := ctx.Item.(OrderPlaced)
		if !ok {
			return
		}

		h.Printf("order %s placed at %s: bread=%q patty=%q cheese=%t lettuce=%t",
			o.ID, o.Station, o.Bread, o.Patty, o.Cheese, o.Lettuce)
	case HookPosOrderServed:
		o, ok := ctx.Item.(OrderServed)
		if !ok {
			return
		}

		h.Printf("order %s served: %s", o.ID, o.Description)
	}
}
