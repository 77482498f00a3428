package field

const (
	DefaultNodeCount       = 50
	DefaultInfluenceRadius = 150.0
	DefaultRepulsion       = 0.03
	DefaultSpeedRange      = 0.5
	DefaultMinRadius       = 1.0
	DefaultMaxRadius       = 3.0
	DefaultMaxEdgeOpacity  = 0.3
	DefaultEdgeWidth       = 1.0
)

var (
	DefaultNodeColor = Color{R: 74, G: 74, B: 90, A: 0.6}
	DefaultEdgeColor = Color{R: 90, G: 90, B: 106, A: DefaultMaxEdgeOpacity}
)

// Params are the tunables of one animator. The influence radius governs both
// pointer repulsion and edge visibility.
type Params struct {
	NodeCount       int
	InfluenceRadius float64
	RepulsionFactor float64
	SpeedRange      float64 // velocity components are (rand-0.5)*SpeedRange
	MinRadius       float64
	MaxRadius       float64 // exclusive
	MaxEdgeOpacity  float64
	EdgeWidth       float64
	NodeColor       Color
	EdgeColor       Color
}

func DefaultParams() Params {
	return Params{
		NodeCount:       DefaultNodeCount,
		InfluenceRadius: DefaultInfluenceRadius,
		RepulsionFactor: DefaultRepulsion,
		SpeedRange:      DefaultSpeedRange,
		MinRadius:       DefaultMinRadius,
		MaxRadius:       DefaultMaxRadius,
		MaxEdgeOpacity:  DefaultMaxEdgeOpacity,
		EdgeWidth:       DefaultEdgeWidth,
		NodeColor:       DefaultNodeColor,
		EdgeColor:       DefaultEdgeColor,
	}
}

// Validate reports the first parameter outside its valid range.
func (p Params) Validate() error {
	switch {
	case p.NodeCount < 0:
		return &ParamError{Name: "node_count", Value: float64(p.NodeCount)}
	case p.InfluenceRadius <= 0:
		return &ParamError{Name: "influence_radius", Value: p.InfluenceRadius}
	case p.RepulsionFactor < 0:
		return &ParamError{Name: "repulsion", Value: p.RepulsionFactor}
	case p.SpeedRange < 0:
		return &ParamError{Name: "speed_range", Value: p.SpeedRange}
	case p.MinRadius <= 0:
		return &ParamError{Name: "min_radius", Value: p.MinRadius}
	case p.MaxRadius < p.MinRadius:
		return &ParamError{Name: "max_radius", Value: p.MaxRadius}
	case p.MaxEdgeOpacity < 0 || p.MaxEdgeOpacity > 1:
		return &ParamError{Name: "max_edge_opacity", Value: p.MaxEdgeOpacity}
	case p.EdgeWidth <= 0:
		return &ParamError{Name: "edge_width", Value: p.EdgeWidth}
	}
	return nil
}
