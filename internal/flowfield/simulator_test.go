package flowfield_test

import (
	"image/color"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/animgen/internal/flowfield"
	"github.com/san-kum/animgen/internal/raster"
	"github.com/san-kum/animgen/internal/rng"
)

var _ = Describe("Field", func() {
	It("returns the same angle for the same inputs", func() {
		src := flowfield.Waves{}
		for _, t := range []float64{0, 0.1, 5.9} {
			Expect(src.Angle(3, 7, t)).To(Equal(src.Angle(3, 7, t)))
		}
	})

	It("matches the wave formula at the origin", func() {
		// sin(0)cos(0) + 0.5 sin(0) + 0.3 cos(0) = 0.3
		Expect(flowfield.Waves{}.Angle(0, 0, 0)).To(BeNumerically("~", 0.3*2*math.Pi, 1e-12))
	})

	It("is pure for a seeded noise source", func() {
		a := flowfield.NewNoise(9)
		b := flowfield.NewNoise(9)
		Expect(a.Angle(4, 5, 1.5)).To(Equal(b.Angle(4, 5, 1.5)))
	})

	It("sizes the grid by ceiling division", func() {
		f := flowfield.NewField(480, 270, 10, nil)
		Expect(f.Cols).To(Equal(48))
		Expect(f.Rows).To(Equal(27))

		f = flowfield.NewField(485, 271, 10, nil)
		Expect(f.Cols).To(Equal(49))
		Expect(f.Rows).To(Equal(28))
	})

	It("reports positions outside the grid", func() {
		f := flowfield.NewField(480, 270, 10, nil)
		f.Update(0)

		_, ok := f.At(479.9, 269.9)
		Expect(ok).To(BeTrue())
		_, ok = f.At(480, 100)
		Expect(ok).To(BeFalse())
		_, ok = f.At(-0.5, 100)
		Expect(ok).To(BeFalse())

		angle, ok := f.At(15, 25)
		Expect(ok).To(BeTrue())
		Expect(angle).To(Equal(f.Angle(2, 1)))
	})
})

var _ = Describe("Simulator", func() {
	var (
		params flowfield.Params
		sim    *flowfield.Simulator
	)

	BeforeEach(func() {
		params = flowfield.DefaultParams()
		params.Count = 500
		field := flowfield.NewField(params.Width, params.Height, 10, nil)
		sim = flowfield.NewSimulator(params, field, rng.New(11))
	})

	It("spawns every particle in bounds with age 0", func() {
		for _, p := range sim.Particles() {
			Expect(sim.InBounds(p.X, p.Y)).To(BeTrue())
			Expect(p.Age).To(Equal(0))
			Expect(p.MaxAge).To(BeNumerically(">=", 20))
			Expect(p.MaxAge).To(BeNumerically("<", 60))
			Expect(p.VX).To(BeZero())
			Expect(p.VY).To(BeZero())
		}
	})

	It("ages by one per tick or respawns to zero", func() {
		for tick := 0; tick < 80; tick++ {
			before := make([]int, len(sim.Particles()))
			for i, p := range sim.Particles() {
				before[i] = p.Age
			}

			stats := sim.Step(float64(tick) * 0.1)
			Expect(stats.Steered + stats.Drifting).To(Equal(params.Count))

			respawned := 0
			for i, p := range sim.Particles() {
				if p.Age == 0 {
					respawned++
					Expect(sim.InBounds(p.X, p.Y)).To(BeTrue())
					continue
				}
				Expect(p.Age).To(Equal(before[i] + 1))
				Expect(float64(p.Age)).To(BeNumerically("<=", p.MaxAge))
			}
			Expect(stats.Respawned).To(Equal(respawned))
		}
	})

	It("keeps the previous position for segment drawing", func() {
		start := sim.Particles()[0]
		sim.Step(0)
		p := sim.Particles()[0]
		if p.Age == 1 {
			Expect(p.PrevX).To(Equal(start.X))
			Expect(p.PrevY).To(Equal(start.Y))
		}
	})

	It("colors particles from cyan at the center to purple at the edge", func() {
		Expect(sim.ColorAt(240, 135)).To(Equal(color.RGBA{0, 255, 255, 255}))
		Expect(sim.ColorAt(0, 135)).To(Equal(color.RGBA{150, 0, 200, 255}))
		Expect(sim.ColorAt(0, 0)).To(Equal(color.RGBA{150, 0, 200, 255}))
	})

	It("is reproducible for a fixed seed", func() {
		field := flowfield.NewField(params.Width, params.Height, 10, nil)
		other := flowfield.NewSimulator(params, field, rng.New(11))
		for tick := 0; tick < 10; tick++ {
			sim.Step(float64(tick) * 0.1)
			other.Step(float64(tick) * 0.1)
		}
		Expect(other.Particles()).To(Equal(sim.Particles()))
	})
})

var _ = Describe("Opacity", func() {
	DescribeTable("over a lifetime",
		func(age int, maxAge float64, positive bool) {
			o := flowfield.Opacity(flowfield.Particle{Age: age, MaxAge: maxAge})
			if positive {
				Expect(o).To(BeNumerically(">", 0))
				Expect(o).To(BeNumerically("<=", 1))
			} else {
				Expect(o).To(BeZero())
			}
		},
		Entry("at birth", 0, 40.0, false),
		Entry("at max age", 40, 40.0, false),
		Entry("early", 1, 40.0, true),
		Entry("middle", 20, 40.0, true),
		Entry("late", 39, 40.0, true),
		Entry("fractional max age", 25, 25.5, true),
	)
})

var _ = Describe("Compositor", func() {
	It("never brightens the canvas by fading", func() {
		c := flowfield.NewCompositor(32, 16, color.RGBA{200, 150, 100, 255}, 0.9)
		before := c.Snapshot()
		c.Fade()
		after := c.Snapshot()
		for i := range after.Pix {
			if i%4 == 3 {
				Expect(after.Pix[i]).To(Equal(before.Pix[i]))
				continue
			}
			Expect(float64(after.Pix[i])).To(BeNumerically("<=", float64(before.Pix[i])*0.9+1))
		}
	})

	It("skips invisible particles and hands out copies", func() {
		c := flowfield.NewCompositor(32, 32, color.RGBA{5, 5, 10, 255}, 0.9)
		ps := []flowfield.Particle{
			{X: 10, Y: 10, PrevX: 5, PrevY: 10, Age: 0, MaxAge: 30, Color: color.RGBA{0, 255, 255, 255}},
			{X: 20, Y: 20, PrevX: 20, PrevY: 15, Age: 15, MaxAge: 30, Color: color.RGBA{0, 255, 255, 255}},
		}
		Expect(c.Draw(ps)).To(Equal(1))
		Expect(c.Err()).NotTo(HaveOccurred())

		snap := c.Snapshot()
		Expect(snap.RGBAAt(20, 17).G).To(BeNumerically(">", 100))
		Expect(snap.RGBAAt(7, 10)).To(Equal(color.RGBA{5, 5, 10, 255}))

		snap.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})
		Expect(c.Snapshot().RGBAAt(0, 0)).To(Equal(color.RGBA{5, 5, 10, 255}))
	})
})

var _ = Describe("Generator", func() {
	It("renders the configured frame count deterministically", func() {
		cfg := flowfield.DefaultConfig()
		cfg.Width, cfg.Height = 96, 54
		cfg.Frames = 6
		cfg.Particles = 200

		render := func() [][]byte {
			g, err := flowfield.New(cfg)
			Expect(err).NotTo(HaveOccurred())
			var out [][]byte
			for i := 0; i < cfg.Frames; i++ {
				img, err := g.Render(i)
				Expect(err).NotTo(HaveOccurred())
				Expect(img.Bounds().Dx()).To(Equal(96))
				Expect(img.Bounds().Dy()).To(Equal(54))
				out = append(out, raster.Copy(img).Pix)
			}
			Expect(g.History()).To(HaveLen(cfg.Frames))
			return out
		}

		Expect(render()).To(Equal(render()))
	})

	It("rejects out of order frames", func() {
		g, err := flowfield.New(flowfield.DefaultConfig())
		Expect(err).NotTo(HaveOccurred())
		_, err = g.Render(3)
		Expect(err).To(MatchError(flowfield.ErrOutOfOrder))
	})

	It("rejects unknown sources", func() {
		cfg := flowfield.DefaultConfig()
		cfg.Source = "vortex"
		_, err := flowfield.New(cfg)
		Expect(err).To(HaveOccurred())
	})

	It("resets to the first frame", func() {
		cfg := flowfield.DefaultConfig()
		cfg.Width, cfg.Height, cfg.Particles = 64, 32, 50
		cfg.Source = flowfield.SourceNoise
		g, err := flowfield.New(cfg)
		Expect(err).NotTo(HaveOccurred())

		first, err := g.Render(0)
		Expect(err).NotTo(HaveOccurred())
		_, err = g.Render(1)
		Expect(err).NotTo(HaveOccurred())

		g.Reset()
		again, err := g.Render(0)
		Expect(err).NotTo(HaveOccurred())
		Expect(raster.Copy(again).Pix).To(Equal(raster.Copy(first).Pix))
	})
})
