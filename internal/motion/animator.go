// Package motion animates the sheet offset toward its committed detent.
package motion

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	DefaultFPS       = 60
	DefaultFrequency = 7.0
	DefaultDamping   = 0.85

	settleTolerance = 0.01
)

// Config tunes the spring.
type Config struct {
	FPS       int
	Frequency float64
	Damping   float64
}

func (c Config) withDefaults() Config {
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	if c.Frequency <= 0 {
		c.Frequency = DefaultFrequency
	}
	if c.Damping < 0 {
		c.Damping = DefaultDamping
	}
	return c
}

// Animator moves a position toward a target along a damped spring. Changing
// the target mid-flight keeps the current velocity, so motion can be
// interrupted without a jump.
type Animator struct {
	spring   harmonica.Spring
	interval time.Duration

	pos    float64
	vel    float64
	target float64
}

// New returns an animator resting at zero.
func New(cfg Config) *Animator {
	cfg = cfg.withDefaults()
	return &Animator{
		spring:   harmonica.NewSpring(harmonica.FPS(cfg.FPS), cfg.Frequency, cfg.Damping),
		interval: time.Second / time.Duration(cfg.FPS),
	}
}

// Interval is the time between frames.
func (a *Animator) Interval() time.Duration {
	return a.interval
}

// Position is the current animated value.
func (a *Animator) Position() float64 {
	return a.pos
}

// Target is where the animator is heading.
func (a *Animator) Target() float64 {
	return a.target
}

// Settled reports whether the animator rests on its target.
func (a *Animator) Settled() bool {
	return a.pos == a.target && a.vel == 0
}

// Jump places the animator at pos with no motion.
func (a *Animator) Jump(pos float64) {
	a.pos = pos
	a.target = pos
	a.vel = 0
}

// SetTarget redirects the animation.
func (a *Animator) SetTarget(target float64) {
	a.target = target
}

// Step advances one frame and returns the new position.
func (a *Animator) Step() float64 {
	if a.Settled() {
		return a.pos
	}
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
	if math.Abs(a.pos-a.target) < settleTolerance && math.Abs(a.vel) < settleTolerance {
		a.pos = a.target
		a.vel = 0
	}
	return a.pos
}
