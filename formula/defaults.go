package formula

import "github.com/mym-br/gama-tts-sub001/ttserr"

// SetDefaults seeds symbols with reasonable defaults so an equation can be
// evaluated during editor-style preview without a live rule context.
// phases is the transition window size (2, 3, or 4 postures); it
// determines the defaults for rd, mark2, and mark3, the same way the
// original setDefaultFormulaSymbols(TransitionType) does.
func (v *SymbolValues) SetDefaults(phases int) error {
	v[Transition1], v[Transition2], v[Transition3], v[Transition4] = 33.3333, 33.3333, 33.3333, 33.3333
	v[Qssa1], v[Qssa2], v[Qssa3], v[Qssa4] = 33.3333, 33.3333, 33.3333, 33.3333
	v[Qssb1], v[Qssb2], v[Qssb3], v[Qssb4] = 33.3333, 33.3333, 33.3333, 33.3333
	v[Tempo1], v[Tempo2], v[Tempo3], v[Tempo4] = 1.0, 1.0, 1.0, 1.0
	v[Beat] = 33.0
	v[Mark1] = 100.0

	switch phases {
	case 2:
		v[Rd] = 100.0
		v[Mark2] = 0.0
		v[Mark3] = 0.0
	case 3:
		v[Rd] = 200.0
		v[Mark2] = 200.0
		v[Mark3] = 0.0
	case 4:
		v[Rd] = 300.0
		v[Mark2] = 200.0
		v[Mark3] = 300.0
	default:
		return ttserr.NewInvalidModel("SetDefaults: invalid transition phase count")
	}
	return nil
}
