package field

import (
	"math/rand"
	"time"
)

// Animator owns the node set and the pointer coordinate of one field.
type Animator struct {
	surface Surface
	clock   Clock
	params  Params
	rng     *rand.Rand

	nodes      []Node
	pointer    Vec
	width      float64
	height     float64
	generation int
	nextID     uint64
	frames     uint64
}

// New builds an animator drawing on surface and scheduled by clock.
// A nil rng is replaced by a time-seeded source.
func New(surface Surface, clock Clock, params Params, rng *rand.Rand) (*Animator, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if clock == nil {
		return nil, ErrNoClock
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Animator{
		surface: surface,
		clock:   clock,
		params:  params,
		rng:     rng,
	}, nil
}

// Attach registers the animator's pointer handler on src.
func (a *Animator) Attach(src PointerSource) {
	src.OnMove(a.MovePointer)
}

// MovePointer overwrites the pointer coordinate.
func (a *Animator) MovePointer(x, y float64) {
	a.pointer = Vec{X: x, Y: y}
}

// Init sizes the surface to the viewport and creates the first generation.
func (a *Animator) Init(width, height float64) {
	a.Resize(width, height)
}

// Resize resizes the surface and replaces every node with a fresh one.
// Old nodes are discarded, not rescaled.
func (a *Animator) Resize(width, height float64) {
	a.width, a.height = width, height
	a.surface.Resize(width, height)
	a.populate()
}

func (a *Animator) populate() {
	p := a.params
	nodes := make([]Node, p.NodeCount)
	for i := range nodes {
		a.nextID++
		nodes[i] = Node{
			ID: a.nextID,
			Pos: Vec{
				X: a.rng.Float64() * a.width,
				Y: a.rng.Float64() * a.height,
			},
			Vel: Vec{
				X: (a.rng.Float64() - 0.5) * p.SpeedRange,
				Y: (a.rng.Float64() - 0.5) * p.SpeedRange,
			},
			Radius: p.MinRadius + a.rng.Float64()*(p.MaxRadius-p.MinRadius),
		}
	}
	a.nodes = nodes
	a.generation++
}

// Update advances every node by one frame.
func (a *Animator) Update() {
	r, k := a.params.InfluenceRadius, a.params.RepulsionFactor
	for i := range a.nodes {
		n := &a.nodes[i]
		n.Pos = n.Pos.Add(n.Vel)
		n.Vel.X = reflect(n.Pos.X, n.Vel.X, a.width)
		n.Vel.Y = reflect(n.Pos.Y, n.Vel.Y, a.height)
		n.Pos = n.Pos.Add(Repulsion(n.Pos, a.pointer, r, k))
	}
}

// Render clears the surface, then draws connections and nodes on top.
func (a *Animator) Render() {
	a.surface.Clear()
	for _, e := range a.Edges() {
		na, nb := a.nodes[e.A], a.nodes[e.B]
		a.surface.DrawLine(na.Pos.X, na.Pos.Y, nb.Pos.X, nb.Pos.Y,
			a.params.EdgeColor.WithAlpha(e.Opacity), a.params.EdgeWidth)
	}
	for _, n := range a.nodes {
		a.surface.DrawCircle(n.Pos.X, n.Pos.Y, n.Radius, a.params.NodeColor)
	}
}

// Edges lists the connections of the current frame. The pairwise scan is
// O(N²); N stays in the hundreds.
func (a *Animator) Edges() []Edge {
	r, peak := a.params.InfluenceRadius, a.params.MaxEdgeOpacity
	var edges []Edge
	for i := 0; i < len(a.nodes); i++ {
		for j := i + 1; j < len(a.nodes); j++ {
			dist := a.nodes[i].Pos.Sub(a.nodes[j].Pos).Len()
			if dist < r {
				edges = append(edges, Edge{A: i, B: j, Distance: dist, Opacity: EdgeOpacity(dist, r, peak)})
			}
		}
	}
	return edges
}

// Frame runs one update and render, then asks the clock for the next frame.
func (a *Animator) Frame() {
	a.Update()
	a.Render()
	a.frames++
	a.clock.RequestFrame(a.Frame)
}

// Start requests the first frame. The loop then runs for as long as the
// clock keeps firing.
func (a *Animator) Start() {
	a.clock.RequestFrame(a.Frame)
}

// Nodes returns a copy of the current generation.
func (a *Animator) Nodes() []Node {
	out := make([]Node, len(a.nodes))
	copy(out, a.nodes)
	return out
}

func (a *Animator) Pointer() Vec                  { return a.pointer }
func (a *Animator) Size() (width, height float64) { return a.width, a.height }
func (a *Animator) Generation() int               { return a.generation }
func (a *Animator) Frames() uint64                { return a.frames }
func (a *Animator) Params() Params                { return a.params }

// SetColors changes node and edge colours without touching the node set.
func (a *Animator) SetColors(node, edge Color) {
	a.params.NodeColor = node
	a.params.EdgeColor = edge
}
