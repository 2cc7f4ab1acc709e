package mdexport

// mmPerPoint converts between the two length units used throughout the
// layout engine: page geometry is in millimeters, font sizes in points.
const mmPerPoint = 0.3527777778

// lineHeightFactor is the leading multiplier applied to a font size.
const lineHeightFactor = 1.25

func mmToPt(mm float64) float64 {
	return mm / mmPerPoint
}

func ptToMM(pt float64) float64 {
	return pt * mmPerPoint
}

// lineHeightMM returns the vertical advance in millimeters for one line of
// text at the given point size.
func lineHeightMM(fontSize float64) float64 {
	return ptToMM(fontSize * lineHeightFactor)
}
