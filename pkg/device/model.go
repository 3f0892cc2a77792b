package device

import (
	"fmt"
	"math"

	"github.com/CanGulmez/transistor-analyzes/internal/consts"
)

// EmitterResistance is the re model resistance VT/Ie.
func EmitterResistance(ie float64) (float64, error) {
	if !(ie > 0) {
		return 0, fmt.Errorf("emitter current %g A is not positive, transistor is not conducting: %w", ie, ErrInvalidParameter)
	}
	return consts.VT / ie, nil
}

// Transconductance is gm of the square-law JFET/D-MOSFET model.
func Transconductance(idss, vp, vgs float64) float64 {
	return (2.0 * idss / math.Abs(vp)) * (1.0 - vgs/vp)
}

// ShockleyCurrent is the drain current Idss(1 - Vgs/Vp)^2.
func ShockleyCurrent(idss, vp, vgs float64) float64 {
	f := 1.0 - vgs/vp
	return idss * f * f
}

// DeviceConstant is the E-MOSFET k = Id(on) / (Vgs(on) - Vgs(th))^2.
func DeviceConstant(idOn, vgsOn, vgsTh float64) (float64, error) {
	d := vgsOn - vgsTh
	if d == 0 {
		return 0, fmt.Errorf("VgsOn must differ from VgsTh (both %g V): %w", vgsOn, ErrInvalidParameter)
	}
	return idOn / (d * d), nil
}

// EnhancementGm is the E-MOSFET transconductance 2k(Vgs - Vgs(th)).
func EnhancementGm(k, vgs, vgsTh float64) float64 {
	return 2 * k * (vgs - vgsTh)
}
