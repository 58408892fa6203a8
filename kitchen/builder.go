package kitchen

import (
	"github.com/sarchlab/burger/hooking"
	"github.com/sarchlab/burger/idgen"
)

// Builder can build kitchens.
type Builder struct {
	idGenerator idgen.IDGenerator
	historySize int
	hooks       []hooking.Hook
}

// MakeBuilder returns a new Builder
func MakeBuilder() Builder {
	return Builder{
		historySize: 64,
	}
}

// WithIDGenerator sets the generator of order IDs. Sequential IDs are used if
// not set.
func (b Builder) WithIDGenerator(g idgen.IDGenerator) Builder {
	b.idGenerator = g
	return b
}

// WithHistorySize sets how many served tickets the kitchen remembers.
func (b Builder) WithHistorySize(n int) Builder {
	b.historySize = n
	return b
}

// WithHook registers a hook on the kitchen being built.
func (b Builder) WithHook(hook hooking.Hook) Builder {
	hooks := make([]hooking.Hook, len(b.hooks), len(b.hooks)+1)
	copy(hooks, b.hooks)
	b.hooks = append(hooks, hook)

	return b
}

// Build creates a new Kitchen.
func (b Builder) Build(name string) *Kitchen {
	k := &Kitchen{
		name:        name,
		idGenerator: b.idGenerator,
		historySize: b.historySize,
	}

	if k.idGenerator == nil {
		k.idGenerator = idgen.NewSequentialIDGenerator()
	}

	for _, h := range b.hooks {
		k.AcceptHook(h)
	}

	return k
}
