package game

// scaleAnim grows a freshly placed mark from a starting scale to full size.
type scaleAnim struct {
	from     float64
	elapsed  int
	duration int // 0 when idle
}

func newScaleAnim(from float64, ticks int) scaleAnim {
	return scaleAnim{from: from, duration: ticks}
}

func (a scaleAnim) active() bool {
	return a.duration > 0 && a.elapsed < a.duration
}

// scale returns the current scale in [from, 1]; idle animations are at full size.
func (a scaleAnim) scale() float64 {
	if !a.active() {
		return 1.0
	}
	t := easeOutQuad(float64(a.elapsed) / float64(a.duration))
	return a.from + (1.0-a.from)*t
}

// pulseAnim is the haptic flash on the cell that was just played.
type pulseAnim struct {
	cell      int
	remaining int
}

func (g *Game) advanceAnimations() {
	for i := range g.anims {
		if g.anims[i].active() {
			g.anims[i].elapsed++
		}
	}
	if g.pulse.remaining > 0 {
		g.pulse.remaining--
	}
}

// Animating reports whether any animation is still running.
func (g *Game) Animating() bool {
	if g.pulse.remaining > 0 {
		return true
	}
	for _, a := range g.anims {
		if a.active() {
			return true
		}
	}
	return false
}

// easeOutQuad decelerates smoothly towards t = 1.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
