package motion

import (
	"math"

	"github.com/san-kum/animgen/internal/palette"
)

const (
	deg       = math.Pi / 180
	titleSize = 0.75
)

// Script records the plays of a scene.
type Script func(s *Scene)

// StudyScript morphs a circle into a square, then a triangle that spins and
// splits into three dots.
func StudyScript(s *Scene) {
	circle := Circle(1.5, Blue)
	square := Square(2, Red)
	triangle := Triangle(Green).Scale(1.5)
	title := Text("OpenClaw Animation Study", titleSize, White).ToEdge(Up, 0.5)

	s.Play(Write(title))
	s.Play(Create(circle))
	s.Wait(1)

	s.Play(ReplacementTransform(circle, square))
	s.Wait(1)

	s.Play(ReplacementTransform(square, triangle))
	s.PlayWith(2, nil, Rotate(triangle, 2*math.Pi))
	s.Wait(1)

	dots := Group()
	for _, v := range triangle.Vertices() {
		dots.Children = append(dots.Children, Dot(v, 0, Green))
	}
	s.Play(ReplacementTransform(triangle, dots))
	s.PlayWith(2, nil, FadeOut(dots), FadeOut(title))
	s.Wait(1)
}

// SlimeScript bounces a slime in, wobbles it, changes its expression and
// dissolves it into spinning rings.
func SlimeScript(s *Scene) {
	body := Circle(1.5, Pink)
	body.FillOpacity = 0.8
	eyeL := Dot(V(-0.5, 0.3), 0.2, Black)
	eyeR := Dot(V(0.5, 0.3), 0.2, Black)
	mouth := Arc(0.5, 220*deg, 100*deg, Black).Shift(Down.Mul(0.2))
	slime := Group(body, eyeL, eyeR, mouth)
	title := Text("Cartoon Animation Study", titleSize, Yellow).ToEdge(Up, 0.5)

	s.Play(Write(title))
	slime.Shift(Down.Mul(5))
	s.PlayWith(2, EaseOutBack, Shift(slime, Up.Mul(5)))
	s.Wait(1)

	s.PlayWith(1, Spring(12, 0.4), Animate(slime, func(e *Mobject) {
		e.Scale(1.2)
		e.Children[0].SetColor(LightPink)
	}))
	s.PlayWith(0.5, nil, Rotate(slime, 20*deg).About(Bottom))
	s.PlayWith(1, nil, Rotate(slime, -40*deg).About(Bottom))
	s.PlayWith(0.5, nil, Rotate(slime, 20*deg).About(Bottom))
	s.Wait(1)

	surprised := Circle(0.2, Black).Shift(Down.Mul(0.3))
	s.Play(Transform(mouth, surprised))
	s.PlayWith(0.5, ThereAndBack, Shift(slime, Up))
	s.Wait(1.5)

	hues := palette.HueRing(6, 12, 90, 65)
	rings := Group()
	for i, c := range hues {
		ring := Circle(1.5-float64(i)*0.2, c)
		ring.FillOpacity = 0.5
		rings.Children = append(rings.Children, ring)
	}

	s.Play(FadeOut(eyeL), FadeOut(eyeR), FadeOut(mouth))
	s.Play(ReplacementTransform(body, rings))
	s.PlayWith(2, nil, Rotate(rings, 2*math.Pi).Scaling(0), FadeOut(title))
	s.Wait(1)
}
