package anim

import "github.com/charmbracelet/harmonica"

// PulseDepth is how far a pulse dips below the resting scale of 1.0
// before rebounding.
const PulseDepth = 0.8

// Pulse is the symmetric scale-down/scale-up sequence played when an
// icon or option row is activated: the scale springs from 1 toward
// PulseDepth, then back to 1.
type Pulse struct {
	value      *Value
	rebounding bool
}

func NewPulse(spring harmonica.Spring) *Pulse {
	return &Pulse{value: NewValue(spring, 1.0)}
}

// Trigger starts (or restarts) the pulse sequence.
func (p *Pulse) Trigger() {
	p.rebounding = false
	p.value.SetTarget(PulseDepth)
}

// Update advances one frame and returns the current scale. When the
// downward phase settles, the target flips back to the resting scale.
func (p *Pulse) Update() float64 {
	scale := p.value.Update()
	if !p.rebounding && p.value.Settled() {
		p.rebounding = true
		p.value.SetTarget(1.0)
	}
	return scale
}

// Scale returns the current scale without advancing the animation.
func (p *Pulse) Scale() float64 { return p.value.Pos() }

// Active reports whether the pulse is still in motion.
func (p *Pulse) Active() bool {
	return !(p.rebounding && p.value.Settled())
}

// PulseRegistry holds per-key pulses, created on demand the first time
// a key is triggered.
type PulseRegistry[K comparable] struct {
	spring harmonica.Spring
	pulses map[K]*Pulse
}

func NewPulseRegistry[K comparable](spring harmonica.Spring) *PulseRegistry[K] {
	return &PulseRegistry[K]{spring: spring, pulses: map[K]*Pulse{}}
}

func (r *PulseRegistry[K]) Trigger(key K) {
	p, ok := r.pulses[key]
	if !ok {
		p = NewPulse(r.spring)
		r.pulses[key] = p
	}
	p.Trigger()
}

// Scale returns the current scale for a key; untouched keys rest at 1.
func (r *PulseRegistry[K]) Scale(key K) float64 {
	if p, ok := r.pulses[key]; ok {
		return p.Scale()
	}
	return 1.0
}

func (r *PulseRegistry[K]) Update() {
	for _, p := range r.pulses {
		p.Update()
	}
}
