package anim_test

import (
	"bytes"
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bounce/internal/anim"
	"github.com/san-kum/bounce/internal/curve"
)

var _ = Describe("Animator", func() {
	var (
		cfg   anim.Config
		shape curve.Shape
		out   *bytes.Buffer
	)

	BeforeEach(func() {
		cfg = anim.DefaultConfig()
		out = &bytes.Buffer{}
	})

	build := func() *anim.Animator {
		var err error
		shape, err = curve.New("ellipse", cfg.Step(), 75, 50, 1)
		Expect(err).NotTo(HaveOccurred())
		a, err := anim.New(shape, cfg, anim.WithOutput(out), anim.WithPacer(anim.NoPacer{}))
		Expect(err).NotTo(HaveOccurred())
		return a
	}

	Context("when the configuration is illegal", func() {
		It("rejects a resolution wider than the output", func() {
			cfg.Resolution = 50
			cfg.Width = 10
			s, err := curve.New("ellipse", 1)
			Expect(err).NotTo(HaveOccurred())

			_, err = anim.New(s, cfg)
			Expect(err).To(MatchError(anim.ErrInvalidConfig))
			Expect(err.Error()).To(ContainSubstring("resolution 50 exceeds width 10"))
		})

		It("rejects shape parameters of the wrong arity", func() {
			_, err := curve.New("ellipse", 1, 75, 50)
			Expect(err).To(MatchError(curve.ErrInvalidParams))
		})
	})

	Context("with a one second budget at ten frames per second", func() {
		BeforeEach(func() {
			cfg.Duration = 1
			cfg.FrameRate = 10
		})

		It("halts after exactly ten frames", func() {
			a := build()
			result, err := a.Run(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Frames).To(Equal(10))
			Expect(result.State).To(Equal(anim.Stopped))
			Expect(strings.Count(out.String(), "\n")).To(Equal(10))
		})
	})

	Context("with a single point", func() {
		BeforeEach(func() {
			cfg.Points = 1
		})

		It("keeps moving forward until the index reaches the x extent", func() {
			a := build()
			for {
				f := a.Step()
				p := f.Points[0]
				Expect(p.Direction).To(Equal(1.0))
				if p.Index == shape.Params().XExtent {
					break
				}
				Expect(p.Index).To(BeNumerically("<", shape.Params().XExtent))
			}

			f := a.Step()
			Expect(f.Points[0].Direction).To(Equal(-1.0))
			Expect(f.Points[0].Index).To(BeNumerically("<", shape.Params().XExtent))
		})

		It("starts on the lower arc at the first column", func() {
			a := build()
			f := a.Step()
			Expect(f.Reversal).To(Equal(1.0))
			Expect(f.Flipped).To(BeTrue())
			Expect(f.Line.Columns()).To(Equal([]int{0}))
		})
	})

	It("never writes a marker outside the line", func() {
		cfg.Width = 37
		cfg.Resolution = 37
		a := build()
		for i := 0; i < 400; i++ {
			f := a.Step()
			Expect(f.Line).To(HaveLen(37))
			for _, col := range f.Line.Columns() {
				Expect(col).To(BeNumerically(">=", 0))
				Expect(col).To(BeNumerically("<", 37))
			}
		}
	})

	It("yields identical output for identical input", func() {
		s, err := curve.New("parabola", 2)
		Expect(err).NotTo(HaveOccurred())
		p := curve.Point{Index: 12, Render: 4, Direction: -1}
		Expect(s.Advance(p, 1)).To(Equal(s.Advance(p, 1)))
	})
})
