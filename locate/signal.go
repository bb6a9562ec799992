package locate

import "math"

// Default propagation parameters for the indoor anchors. Calibrated for the
// floorplan coordinate space, not metres.
const (
	DefaultTxPower  = -45.0
	DefaultPathLoss = 2.2
	DefaultScale    = 50.0
)

// SignalModel converts an RSSI sample into an estimated range using the
// log-distance path loss model.
type SignalModel struct {
	TxPower  float64
	PathLoss float64
	Scale    float64
}

// NewSignalModel returns a model with the default propagation parameters.
func NewSignalModel() SignalModel {
	return SignalModel{TxPower: DefaultTxPower, PathLoss: DefaultPathLoss, Scale: DefaultScale}
}

// EstimateDistance maps a signed dBm reading to a distance in floorplan
// units. Weaker (more negative) rssi yields a larger distance. The result is
// not clamped; callers see whatever the model produces.
func (m SignalModel) EstimateDistance(rssi int) float64 {
	return math.Pow(10, (m.TxPower-float64(rssi))/(10*m.PathLoss)) * m.Scale
}

// RSSIAt inverts the model: the dBm value an anchor at distance d would
// report. Used by the reading simulator; d is floored at one unit to keep the
// logarithm sane.
func (m SignalModel) RSSIAt(d float64) float64 {
	if d < 1 {
		d = 1
	}
	return m.TxPower - 10*m.PathLoss*math.Log10(d/m.Scale)
}
