package culture

// Shape enumerates the gross morphology stages a culture passes through.
type Shape uint8

const (
	ShapeRound Shape = iota
	ShapeSlightlyElongated
	ShapeElongated
	ShapeWellElongated
	ShapeFullyElongated
	ShapeFragmenting
	ShapeFragmented
)

// String returns the snake_case stage name.
func (s Shape) String() string {
	switch s {
	case ShapeRound:
		return "round"
	case ShapeSlightlyElongated:
		return "slightly_elongated"
	case ShapeElongated:
		return "elongated"
	case ShapeWellElongated:
		return "well_elongated"
	case ShapeFullyElongated:
		return "fully_elongated"
	case ShapeFragmenting:
		return "fragmenting"
	case ShapeFragmented:
		return "fragmented"
	default:
		return "unknown"
	}
}

// Elongated reports whether the shape belongs to the coherent elongated family.
func (s Shape) Elongated() bool {
	return s >= ShapeSlightlyElongated && s <= ShapeFullyElongated
}

// Fragmented reports whether the shape is one of the breakup stages.
func (s Shape) Fragmented() bool {
	return s == ShapeFragmenting || s == ShapeFragmented
}

// RGB is an 8-bit-per-channel color triple.
type RGB struct {
	R, G, B uint8
}

// Characteristics describes a culture's appearance and behavior at one
// moment. Instances are value objects; interpolation produces fresh copies
// and nothing mutates them afterwards.
type Characteristics struct {
	Title string
	Shape Shape

	Elongation            float64 // >= 1
	Alignment             float64
	Connection            float64
	SarcomereOrganization float64
	BeatingStrength       float64
	BeatingSync           float64
	NucleusSize           float64
	DebrisLevel           float64
	CellClustering        float64

	ColorBase RGB
	CellCount int
}

const (
	// MinDay and MaxDay bound the anchor table.
	MinDay = 1
	MaxDay = 8
)

// anchors holds the hand-authored per-day records, indexed by day-1. The
// table is read-only after init and shared by every interpolator.
var anchors = [MaxDay]Characteristics{
	{
		Title:                 "Immature Stage",
		Shape:                 ShapeRound,
		Elongation:            1.0,
		Alignment:             0.1,
		Connection:            0.1,
		SarcomereOrganization: 0.1,
		BeatingStrength:       0.1,
		BeatingSync:           0.1,
		ColorBase:             RGB{255, 214, 204},
		NucleusSize:           0.7,
		DebrisLevel:           0.1,
		CellCount:             8,
		CellClustering:        0.1,
	},
	{
		Title:                 "Initial Beating",
		Shape:                 ShapeSlightlyElongated,
		Elongation:            1.2,
		Alignment:             0.2,
		Connection:            0.2,
		SarcomereOrganization: 0.2,
		BeatingStrength:       0.3,
		BeatingSync:           0.2,
		ColorBase:             RGB{255, 204, 204},
		NucleusSize:           0.65,
		DebrisLevel:           0.1,
		CellCount:             12,
		CellClustering:        0.3,
	},
	{
		Title:                 "Mean Beating Begins",
		Shape:                 ShapeElongated,
		Elongation:            1.5,
		Alignment:             0.4,
		Connection:            0.3,
		SarcomereOrganization: 0.4,
		BeatingStrength:       0.5,
		BeatingSync:           0.4,
		ColorBase:             RGB{255, 194, 194},
		NucleusSize:           0.5,
		DebrisLevel:           0.2,
		CellCount:             16,
		CellClustering:        0.5,
	},
	{
		Title:                 "Stronger Contractions",
		Shape:                 ShapeWellElongated,
		Elongation:            1.8,
		Alignment:             0.6,
		Connection:            0.5,
		SarcomereOrganization: 0.6,
		BeatingStrength:       0.7,
		BeatingSync:           0.6,
		ColorBase:             RGB{255, 153, 153},
		NucleusSize:           0.45,
		DebrisLevel:           0.2,
		CellCount:             20,
		CellClustering:        0.7,
	},
	{
		Title:                 "Moderate Synchronization",
		Shape:                 ShapeFullyElongated,
		Elongation:            2.0,
		Alignment:             0.8,
		Connection:            0.7,
		SarcomereOrganization: 0.8,
		BeatingStrength:       0.85,
		BeatingSync:           0.8,
		ColorBase:             RGB{255, 102, 102},
		NucleusSize:           0.4,
		DebrisLevel:           0.3,
		CellCount:             24,
		CellClustering:        0.8,
	},
	{
		Title:                 "Peak Contraction Activity",
		Shape:                 ShapeFullyElongated,
		Elongation:            2.2,
		Alignment:             0.9,
		Connection:            0.9,
		SarcomereOrganization: 0.9,
		BeatingStrength:       1.0,
		BeatingSync:           0.9,
		ColorBase:             RGB{255, 51, 51},
		NucleusSize:           0.4,
		DebrisLevel:           0.4,
		CellCount:             28,
		CellClustering:        0.9,
	},
	{
		Title:                 "Damage & Fragmentation Begins",
		Shape:                 ShapeFragmenting,
		Elongation:            1.6,
		Alignment:             0.5,
		Connection:            0.6,
		SarcomereOrganization: 0.5,
		BeatingStrength:       0.6,
		BeatingSync:           0.5,
		ColorBase:             RGB{204, 51, 51},
		NucleusSize:           0.3,
		DebrisLevel:           0.7,
		CellCount:             20,
		CellClustering:        0.6,
	},
	{
		Title:                 "Significant Cell Damage",
		Shape:                 ShapeFragmented,
		Elongation:            1.2,
		Alignment:             0.2,
		Connection:            0.2,
		SarcomereOrganization: 0.1,
		BeatingStrength:       0.2,
		BeatingSync:           0.1,
		ColorBase:             RGB{153, 51, 51},
		NucleusSize:           0.25,
		DebrisLevel:           0.9,
		CellCount:             12,
		CellClustering:        0.2,
	},
}

// Anchor returns the hand-authored record for an integer day. Days outside
// [MinDay, MaxDay] are clamped to the nearest anchor.
func Anchor(day int) Characteristics {
	if day < MinDay {
		day = MinDay
	}
	if day > MaxDay {
		day = MaxDay
	}
	return anchors[day-1]
}
