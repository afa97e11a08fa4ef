package transport

import "math"

// VolumeAdapter converts between the volume slider's display scale (0-100)
// and the engine's native [0, 1] scale.  Rounding happens for display only;
// the stored volume keeps full precision.
type VolumeAdapter struct {
	controller *Controller
}

// NewVolumeAdapter creates a volume adapter bound to a transport controller
func NewVolumeAdapter(controller *Controller) *VolumeAdapter {
	return &VolumeAdapter{controller: controller}
}

// SliderValue returns the current volume as a display value in [0, 100],
// rounded to the nearest integer.
func (a *VolumeAdapter) SliderValue() int {
	return int(math.Round(a.controller.State().Volume * 100))
}

// SetSlider sets the volume from a display value, clamped to [0, 100]
func (a *VolumeAdapter) SetSlider(value int) {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}
	a.controller.SetVolume(float64(value) / 100)
}

// AdjustSlider moves the slider by a relative display amount
func (a *VolumeAdapter) AdjustSlider(delta int) {
	a.SetSlider(a.SliderValue() + delta)
}
