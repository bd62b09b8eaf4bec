// Package anim runs the step functions that advance once per frame tick:
// sprite frame loops, floating combat text, reveal and camera movement.
package anim

import "time"

// Tick is the fixed interval between scheduler steps.
const Tick = 40 * time.Millisecond

// Animation is a resumable step. NextFrame does one unit of work and
// reports whether it wants to be called again on the next tick.
type Animation interface {
	NextFrame() bool
}

// Func adapts a plain function to Animation.
type Func func() bool

// NextFrame calls f.
func (f Func) NextFrame() bool { return f() }

// FrameFunc receives the new frame index and reports whether the owner is
// still interested in updates.
type FrameFunc func(frame int) bool

// FwdAndBack ping-pongs a frame counter between Min and Max.
type FwdAndBack struct {
	Min, Max int
	frame    int
	dir      int
	onFrame  FrameFunc
}

// NewFwdAndBack starts at min and walks toward max.
func NewFwdAndBack(onFrame FrameFunc, max, min int) *FwdAndBack {
	return &FwdAndBack{Min: min, Max: max, frame: min, dir: 1, onFrame: onFrame}
}

// NextFrame implements Animation.
func (a *FwdAndBack) NextFrame() bool {
	a.frame += a.dir
	if a.frame >= a.Max || a.frame <= a.Min {
		a.dir = -a.dir
	}
	return a.onFrame(a.frame)
}

// Cyclic counts from Min up to Max-1 and wraps.
type Cyclic struct {
	Min, Max int
	frame    int
	onFrame  FrameFunc
}

// NewCyclic starts at the given frame.
func NewCyclic(onFrame FrameFunc, max, min, start int) *Cyclic {
	return &Cyclic{Min: min, Max: max, frame: start, onFrame: onFrame}
}

// NextFrame implements Animation.
func (a *Cyclic) NextFrame() bool {
	a.frame++
	if a.frame >= a.Max {
		a.frame = a.Min
	}
	return a.onFrame(a.frame)
}

// OneTime plays frames once from start toward last, in either direction,
// and stops on reaching last.
type OneTime struct {
	last    int
	frame   int
	dir     int
	onFrame FrameFunc
}

// NewOneTime creates a single pass animation.
func NewOneTime(onFrame FrameFunc, last, start int) *OneTime {
	dir := 1
	if start > last {
		dir = -1
	}
	return &OneTime{last: last, frame: start, dir: dir, onFrame: onFrame}
}

// NextFrame implements Animation.
func (a *OneTime) NextFrame() bool {
	a.frame += a.dir
	if (a.dir > 0 && a.frame >= a.last) || (a.dir < 0 && a.frame <= a.last) {
		return false
	}
	return a.onFrame(a.frame)
}
