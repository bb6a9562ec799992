package locate

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Position is a solved 2D coordinate in floorplan units. Positions are
// derived values, recomputed on demand and never stored.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sphere is an anchor position annotated with an estimated range.
type Sphere struct {
	X, Y     float64
	Distance float64
}

// degenerateEps bounds the determinant below which the linearized system is
// treated as singular (collinear or near-collinear anchors).
const degenerateEps = 1e-6

// Trilaterate solves a 2D position from exactly three range spheres. The
// circle equations are linearized by pairwise subtraction (a-b, a-c) and the
// resulting 2x2 system is solved with Cramer's rule. ok is false when the
// system is degenerate; that is an expected outcome, not an error.
func Trilaterate(a, b, c Sphere) (Position, bool) {
	ae := 2 * (a.X - b.X)
	be := 2 * (a.Y - b.Y)
	ce := b.Distance*b.Distance - a.Distance*a.Distance - b.X*b.X + a.X*a.X - b.Y*b.Y + a.Y*a.Y
	de := 2 * (a.X - c.X)
	ee := 2 * (a.Y - c.Y)
	fe := c.Distance*c.Distance - a.Distance*a.Distance - c.X*c.X + a.X*a.X - c.Y*c.Y + a.Y*a.Y

	denom := ae*ee - be*de
	if math.Abs(denom) < degenerateEps {
		return Position{}, false
	}
	return Position{
		X: (ce*ee - be*fe) / denom,
		Y: (ae*fe - ce*de) / denom,
	}, true
}

// ConditionNumber reports the 2-norm condition number of the linearized
// anchor geometry, +Inf for an exactly singular layout. Used to annotate
// degenerate solves so logs can tell truly collinear anchors from merely
// ill-conditioned ones.
func ConditionNumber(a, b, c Sphere) float64 {
	m := mat.NewDense(2, 2, []float64{
		2 * (a.X - b.X), 2 * (a.Y - b.Y),
		2 * (a.X - c.X), 2 * (a.Y - c.Y),
	})
	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDNone) {
		return math.Inf(1)
	}
	s := svd.Values(nil)
	if s[len(s)-1] == 0 {
		return math.Inf(1)
	}
	return s[0] / s[len(s)-1]
}
