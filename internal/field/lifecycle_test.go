package field

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Animator lifecycle", func() {
	var (
		a     *Animator
		surf  *recordingSurface
		clock *ManualClock
	)

	BeforeEach(func() {
		a, surf, clock = newTestAnimator(DefaultParams())
		a.Init(1280, 720)
	})

	Describe("updates", func() {
		It("never changes the node count", func() {
			for i := 0; i < 500; i++ {
				a.Update()
			}
			Expect(a.Nodes()).To(HaveLen(DefaultNodeCount))
			Expect(a.Generation()).To(Equal(1))
		})

		It("keeps node identities across frames", func() {
			before := a.Nodes()
			a.Start()
			for i := 0; i < 10; i++ {
				Expect(clock.Tick()).To(BeTrue())
			}
			after := a.Nodes()
			for i := range before {
				Expect(after[i].ID).To(Equal(before[i].ID))
			}
		})
	})

	Describe("resize", func() {
		It("recreates exactly NodeCount fresh nodes", func() {
			old := map[uint64]bool{}
			for _, n := range a.Nodes() {
				old[n.ID] = true
			}

			a.Resize(640, 480)

			Expect(surf.width).To(Equal(640.0))
			Expect(surf.height).To(Equal(480.0))
			Expect(a.Nodes()).To(HaveLen(DefaultNodeCount))
			Expect(a.Generation()).To(Equal(2))
			for _, n := range a.Nodes() {
				Expect(old).NotTo(HaveKey(n.ID))
				Expect(n.Pos.X).To(BeNumerically("<", 640))
				Expect(n.Pos.Y).To(BeNumerically("<", 480))
			}
		})
	})

	Describe("idle pointer", func() {
		It("leaves far nodes untouched for the whole session", func() {
			p := DefaultParams()
			p.SpeedRange = 0
			a, _, _ = newTestAnimator(p)
			a.Init(1000, 1000)
			a.nodes = []Node{
				{ID: 1, Pos: Vec{200, 200}, Radius: 1},
				{ID: 2, Pos: Vec{151, 0}, Radius: 1},
				{ID: 3, Pos: Vec{0, 150}, Radius: 1},
			}
			for i := 0; i < 1000; i++ {
				a.Update()
			}
			Expect(a.Pointer()).To(Equal(Vec{}))
			Expect(a.nodes[0].Pos).To(Equal(Vec{200, 200}))
			Expect(a.nodes[1].Pos).To(Equal(Vec{151, 0}))
			Expect(a.nodes[2].Pos).To(Equal(Vec{0, 150}))
		})
	})

	Describe("ticker clock", func() {
		It("drives frames until the context ends", func() {
			tc := NewTickerClock(200)
			var frames int
			tc.OnFrame(func(time.Duration) { frames++ })
			a, _, _ = newTestAnimator(DefaultParams())
			a.clock = tc
			a.Init(300, 300)
			a.Start()

			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()
			err := tc.Run(ctx)

			Expect(err).To(MatchError(context.DeadlineExceeded))
			Expect(frames).To(BeNumerically(">", 0))
			Expect(a.Frames()).To(BeEquivalentTo(frames))
		})

		It("returns once nothing is pending", func() {
			tc := NewTickerClock(500)
			Expect(tc.Run(context.Background())).To(Succeed())
		})
	})
})
