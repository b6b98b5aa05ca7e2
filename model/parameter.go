package model

// Parameter is one ordered vocal-tract control parameter. Its position
// in Model.Parameters is its stable ParamID, used throughout the
// pipeline instead of repeated name lookups.
type Parameter struct {
	Name    string
	Minimum float64
	Maximum float64
	Default float64
}

// Clamp restricts value to [Minimum, Maximum].
func (p *Parameter) Clamp(value float64) float64 {
	if value < p.Minimum {
		return p.Minimum
	}
	if value > p.Maximum {
		return p.Maximum
	}
	return value
}

// Symbol is one ordered metadata quantity carried by postures (duration,
// transition, qssa, qssb, and their marked variants). It shares the same
// (minimum, maximum, default) value semantics as Parameter.
type Symbol struct {
	Name    string
	Minimum float64
	Maximum float64
	Default float64
}

// Clamp restricts value to [Minimum, Maximum].
func (s *Symbol) Clamp(value float64) float64 {
	if value < s.Minimum {
		return s.Minimum
	}
	if value > s.Maximum {
		return s.Maximum
	}
	return value
}
