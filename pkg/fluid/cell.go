package fluid

// CellKind tags the role a grid cell plays in the simulation.
type CellKind uint8

// Cell kinds. Kinds are assigned when the grid is laid out and stay fixed for
// the lifetime of the grid.
const (
	CellVoid CellKind = iota
	CellFluid
	CellNoSlip
	CellFreeSlip
	CellOutflow
	CellInflow
)

// IsBoundary reports whether the kind is one of the wall kinds.
func (k CellKind) IsBoundary() bool { return k >= CellNoSlip }

// String returns a short lowercase name for the kind.
func (k CellKind) String() string {
	switch k {
	case CellVoid:
		return "void"
	case CellFluid:
		return "fluid"
	case CellNoSlip:
		return "no-slip"
	case CellFreeSlip:
		return "free-slip"
	case CellOutflow:
		return "outflow"
	case CellInflow:
		return "inflow"
	}
	return "unknown"
}

// Cell holds the state of one grid point. The velocity is staggered: U sits
// on the cell's right face and V on its top face. Pressure is cell centered
// and Psi belongs to the top right corner.
type Cell struct {
	Kind CellKind

	// U, V are the face velocities; F, G the provisional velocities the
	// momentum predictor writes before the pressure projection.
	U, V float64
	F, G float64

	P   float64
	RHS float64
	Psi float64

	// WallU, WallV prescribe the wall velocity for no-slip and free-slip
	// cells. Inflow cells prescribe their velocity through U and V directly.
	WallU, WallV float64
}
