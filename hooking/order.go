package hooking

import "time"

// A list of hook poses for the hooks to apply to
var (
	HookPosOrderPlaced = &HookPos{Name: "HookPosOrderPlaced"}
	HookPosOrderServed = &HookPos{Name: "HookPosOrderServed"}
)

// OrderPlaced is passed to the hook when a station accepts an order.
type OrderPlaced struct {
	ID      string
	Station string
	Bread   string
	Patty   string
	Cheese  bool
	Lettuce bool
}

// OrderServed is passed to the hook when the burger of an order is ready.
type OrderServed struct {
	ID          string
	Description string
}

// A TimeTeller can tell the current time in seconds.
type TimeTeller interface {
	Now() float64
}

// WallClock tells the time since the Unix epoch.
type WallClock struct{}

// Now returns the current wall time in seconds.
func (WallClock) Now() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}
