package physics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravbox/internal/body"
	"github.com/san-kum/gravbox/internal/physics"
)

var _ = Describe("Merge", func() {
	var p1, p2 body.Body

	BeforeEach(func() {
		p1 = body.Body{X: 0, Y: 0, VX: 1, VY: -2, Mass: 10, Radius: 8, Color: "#ff0000"}
		p2 = body.Body{X: 5, Y: 0, VX: -0.5, VY: 1, Mass: 20, Radius: 8, Color: "#00ff00"}
	})

	It("conserves mass exactly", func() {
		m := physics.Merge(&p1, &p2)
		Expect(m.Mass).To(Equal(30.0))
	})

	It("conserves momentum", func() {
		m := physics.Merge(&p1, &p2)
		Expect(m.VX * m.Mass).To(BeNumerically("~", p1.VX*p1.Mass+p2.VX*p2.Mass, 1e-12))
		Expect(m.VY * m.Mass).To(BeNumerically("~", p1.VY*p1.Mass+p2.VY*p2.Mass, 1e-12))
	})

	It("places the result at the weighted centroid", func() {
		m := physics.Merge(&p1, &p2)
		Expect(m.X).To(BeNumerically("~", 100.0/30.0, 1e-12))
		Expect(m.Y).To(BeNumerically("~", 0, 1e-12))
	})

	It("adds areas and keeps the first color", func() {
		m := physics.Merge(&p1, &p2)
		Expect(m.Radius).To(BeNumerically("~", math.Sqrt(128), 1e-12))
		Expect(m.Color).To(Equal(body.Color("#ff0000")))
	})

	It("never drops below the radius floor", func() {
		p1.Radius, p2.Radius = 1, 1
		Expect(physics.Merge(&p1, &p2).Radius).To(Equal(body.MinRadius))
	})
})

var _ = Describe("Collide", func() {
	It("merges two overlapping bodies into one", func() {
		bodies := []body.Body{
			{X: 0, Y: 0, Mass: 10, Radius: 8},
			{X: 5, Y: 0, Mass: 20, Radius: 8},
		}
		next, merges := physics.Collide(bodies)

		Expect(next).To(HaveLen(1))
		Expect(merges).To(HaveLen(1))
		Expect(next[0].Mass).To(Equal(30.0))
		Expect(next[0].Radius).To(BeNumerically("~", 11.3137, 1e-4))
		Expect(next[0].X).To(BeNumerically("~", 10.0/3.0, 1e-12))
	})

	It("leaves separated bodies alone and in order", func() {
		bodies := []body.Body{
			{X: 0, Mass: 1, Radius: 8},
			{X: 100, Mass: 2, Radius: 8},
			{X: 200, Mass: 3, Radius: 8},
		}
		next, merges := physics.Collide(bodies)

		Expect(merges).To(BeEmpty())
		Expect(next).To(Equal(bodies))
	})

	It("treats touching bodies as separate", func() {
		bodies := []body.Body{
			{X: 0, Mass: 1, Radius: 8},
			{X: 16, Mass: 1, Radius: 8},
		}
		next, _ := physics.Collide(bodies)
		Expect(next).To(HaveLen(2))
	})

	It("merges only the first pair of a three-way overlap", func() {
		bodies := []body.Body{
			{X: 0, Mass: 1, Radius: 8},
			{X: 2, Mass: 2, Radius: 8},
			{X: 4, Mass: 3, Radius: 8},
		}
		next, merges := physics.Collide(bodies)

		Expect(merges).To(HaveLen(1))
		Expect(merges[0].I).To(Equal(0))
		Expect(merges[0].J).To(Equal(1))
		Expect(next).To(HaveLen(2))
		Expect(next[0].Mass).To(Equal(3.0))
		Expect(next[1]).To(Equal(bodies[2]))
	})

	It("picks the earliest index, not the nearest", func() {
		bodies := []body.Body{
			{X: 0, Mass: 1, Radius: 8},
			{X: 15, Mass: 1, Radius: 8},
			{X: 1, Mass: 1, Radius: 8},
		}
		_, merges := physics.Collide(bodies)

		Expect(merges).To(HaveLen(1))
		Expect(merges[0].J).To(Equal(1))
	})

	It("never consumes a body twice", func() {
		bodies := make([]body.Body, 9)
		for i := range bodies {
			bodies[i] = body.Body{X: float64(i) * 3, Mass: 1, Radius: 8}
		}
		next, merges := physics.Collide(bodies)

		seen := map[int]bool{}
		for _, m := range merges {
			Expect(seen).NotTo(HaveKey(m.I))
			Expect(seen).NotTo(HaveKey(m.J))
			seen[m.I], seen[m.J] = true, true
		}
		Expect(next).To(HaveLen(len(bodies) - len(merges)))

		total := 0.0
		for _, b := range next {
			total += b.Mass
		}
		Expect(total).To(Equal(9.0))
	})

	It("does not modify its input", func() {
		bodies := []body.Body{
			{X: 0, Mass: 1, Radius: 8},
			{X: 1, Mass: 1, Radius: 8},
		}
		before := append([]body.Body(nil), bodies...)
		physics.Collide(bodies)
		Expect(bodies).To(Equal(before))
	})

	It("handles an empty universe", func() {
		next, merges := physics.Collide(nil)
		Expect(next).To(BeEmpty())
		Expect(merges).To(BeEmpty())
	})
})
