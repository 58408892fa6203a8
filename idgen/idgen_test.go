package idgen

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/xid"
)

var _ = Describe("SequentialIDGenerator", func() {
	It("should generate sequential IDs", func() {
		g := NewSequentialIDGenerator()

		Expect(g.Generate()).To(Equal("1"))
		Expect(g.Generate()).To(Equal("2"))
		Expect(g.Generate()).To(Equal("3"))
	})

	It("should not repeat IDs across goroutines", func() {
		g := NewSequentialIDGenerator()

		var (
			wg   sync.WaitGroup
			lock sync.Mutex
			ids  = make(map[string]bool)
		)

		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					id := g.Generate()
					lock.Lock()
					ids[id] = true
					lock.Unlock()
				}
			}()
		}
		wg.Wait()

		Expect(ids).To(HaveLen(800))
		Expect(ids).To(HaveKey("800"))
	})
})

var _ = Describe("ParallelIDGenerator", func() {
	It("should generate unique xids", func() {
		g := NewParallelIDGenerator()

		id1 := g.Generate()
		id2 := g.Generate()

		Expect(id1).NotTo(Equal(id2))

		_, err := xid.FromString(id1)
		Expect(err).NotTo(HaveOccurred())
	})
})
