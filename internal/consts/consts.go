package consts

const (
	VBE = 0.7   // BJT base-emitter turn-on voltage (V)
	VT  = 0.026 // Thermal voltage used by the re model (V)
)
