package assets

// Group tracks readiness of a set of handles.
type Group struct {
	handles []*Handle
}

func NewGroup(hs ...*Handle) *Group {
	return &Group{handles: hs}
}

func (g *Group) Add(hs ...*Handle) {
	g.handles = append(g.handles, hs...)
}

// Ready reports whether every handle loaded successfully.
func (g *Group) Ready() bool {
	for _, h := range g.handles {
		if !h.Ready() {
			return false
		}
	}
	return true
}

// Settled reports whether every handle either loaded or gave up.
func (g *Group) Settled() bool {
	for _, h := range g.handles {
		if !h.Settled() {
			return false
		}
	}
	return true
}

// Progress returns how many handles have settled out of the total.
func (g *Group) Progress() (done, total int) {
	for _, h := range g.handles {
		if h.Settled() {
			done++
		}
	}
	return done, len(g.handles)
}
