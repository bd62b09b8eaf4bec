package level

import "bytecrawl/internal/geom"

// RunInDir keeps stepping in direction d until something is in the way.
func (l *Level) RunInDir(d geom.Dir) {
	l.run = RunDir
	l.runDir = d
	l.runStep()
}

// RunPath walks the previewed path to its end.
func (l *Level) RunPath() {
	if len(l.path) < 2 {
		return
	}
	l.run = RunPath
	l.runIdx = 1
	l.runStep()
}

// Tick advances run mode by one step.
func (l *Level) Tick() {
	if l.run != RunOff {
		l.runStep()
	}
}

// Cancel ends run mode and drops the path preview.
func (l *Level) Cancel() {
	l.stopRun()
}

func (l *Level) stopRun() {
	l.run = RunOff
	l.resetPath()
}

func (l *Level) runStep() {
	switch l.run {
	case RunDir:
		ti := l.At(l.player.Position().Step(l.runDir))
		if ti == nil || !ti.Walkable() {
			l.stopRun()
			return
		}
		l.step(l.runDir)
	case RunPath:
		if l.runIdx >= len(l.path) {
			l.stopRun()
			return
		}
		d := geom.DirTo(l.player.Position(), l.path[l.runIdx])
		l.runIdx++
		if !l.step(d) {
			l.stopRun()
		}
	}
}

func (l *Level) resetPath() {
	for _, p := range l.path {
		if ti := l.At(p); ti != nil {
			ti.OnPath = false
		}
	}
	l.path = nil
}

// HoverAt previews the route from the player to p. Nothing changes while
// p stays the same or when p is not a map cell.
func (l *Level) HoverAt(p geom.Pos) {
	if l.hovered && p == l.pathDst {
		return
	}
	if l.At(p) == nil {
		return
	}
	l.resetPath()
	src := l.player.Position()
	l.pathSrc, l.pathDst, l.hovered = src, p, true
	if src == p {
		return
	}
	l.path = l.FindPath(src, p)
	for _, c := range l.path {
		l.At(c).OnPath = true
	}
	if l.run != RunOff {
		l.runIdx = 1
	}
}

// Hover returns the last hovered cell.
func (l *Level) Hover() (geom.Pos, bool) { return l.pathDst, l.hovered }

// ClickAt handles a click on cell p. A primary click takes one step along
// the previewed path. A secondary click runs the whole path, or opens the
// ability list when p is the player's own cell.
func (l *Level) ClickAt(p geom.Pos, secondary bool) {
	l.HoverAt(p)
	src := l.player.Position()
	if secondary {
		if p == src {
			l.ShowAbilities()
			return
		}
		l.RunPath()
		return
	}
	if len(l.path) < 2 {
		return
	}
	l.step(geom.DirTo(src, l.path[1]))
	// Force the preview to restart from the new player cell.
	l.pathDst = src
	l.HoverAt(p)
}
