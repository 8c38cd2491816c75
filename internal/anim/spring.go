// Package anim wraps harmonica springs behind scalar values and
// lazily-created typed registries, so the feed can animate per-key
// quantities (scroll offsets, poll fills, icon pulses) without
// stringly-typed animation maps.
package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const settleEpsilon = 0.01

// Value is a spring-driven scalar moving toward a target. One Update
// call advances one animation frame.
type Value struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func NewValue(spring harmonica.Spring, initial float64) *Value {
	return &Value{spring: spring, pos: initial, target: initial}
}

func (v *Value) SetTarget(t float64) { v.target = t }

func (v *Value) Target() float64 { return v.target }

func (v *Value) Pos() float64 { return v.pos }

// Snap jumps to a position with no animation, killing any velocity.
func (v *Value) Snap(pos float64) {
	v.pos = pos
	v.target = pos
	v.vel = 0
}

// Update advances the spring one frame and returns the new position.
func (v *Value) Update() float64 {
	v.pos, v.vel = v.spring.Update(v.pos, v.vel, v.target)
	return v.pos
}

// Settled reports whether the value has effectively come to rest at
// its target.
func (v *Value) Settled() bool {
	return math.Abs(v.pos-v.target) < settleEpsilon && math.Abs(v.vel) < settleEpsilon
}

// Registry is a typed map of animated values, created on first access.
// All values share one spring configuration.
type Registry[K comparable] struct {
	spring  harmonica.Spring
	initial float64
	values  map[K]*Value
}

func NewRegistry[K comparable](spring harmonica.Spring, initial float64) *Registry[K] {
	return &Registry[K]{
		spring:  spring,
		initial: initial,
		values:  map[K]*Value{},
	}
}

// Get returns the value for a key, creating it at the registry's
// initial position on first access.
func (r *Registry[K]) Get(key K) *Value {
	v, ok := r.values[key]
	if !ok {
		v = NewValue(r.spring, r.initial)
		r.values[key] = v
	}
	return v
}

// Has reports whether a key has been touched, without creating it.
func (r *Registry[K]) Has(key K) bool {
	_, ok := r.values[key]
	return ok
}

// Update advances every value one frame.
func (r *Registry[K]) Update() {
	for _, v := range r.values {
		v.Update()
	}
}

// Settled reports whether every value in the registry is at rest.
func (r *Registry[K]) Settled() bool {
	for _, v := range r.values {
		if !v.Settled() {
			return false
		}
	}
	return true
}
