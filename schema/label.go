package schema

// Label is a qualitative rating on the five-point linguistic scale.
// Values are ordered by preference, so VeryPoor < Poor < ... < VeryGood.
type Label int

// All linguistic labels, in increasing order of preference.
const (
	VeryPoor Label = iota
	Poor
	Fair
	Good
	VeryGood
)

// AllLabels lists every label in increasing order of preference.
var AllLabels = []Label{VeryPoor, Poor, Fair, Good, VeryGood}

var labelCodes = [...]string{"VP", "P", "F", "G", "VG"}

var labelNames = [...]string{"VeryPoor", "Poor", "Fair", "Good", "VeryGood"}

// Code returns the short code used in problem files (e.g. "VG").
func (l Label) Code() string {
	if l < VeryPoor || l > VeryGood {
		return labelCodes[DefaultWeightLabel]
	}
	return labelCodes[l]
}

// String returns the long name of the label.
func (l Label) String() string {
	if l < VeryPoor || l > VeryGood {
		return labelNames[DefaultWeightLabel]
	}
	return labelNames[l]
}
