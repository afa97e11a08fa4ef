package transport

import (
	"testing"

	"github.com/abhiguop/netflix/internal/player"
	"github.com/stretchr/testify/assert"
)

func TestSliderConvertsDisplayScaleToEngineScale(t *testing.T) {
	engine := newFakeEngine()
	c := readyController(engine, 60)
	adapter := NewVolumeAdapter(c)

	adapter.SetSlider(35)
	assert.Equal(t, []float64{0.35}, engine.volumes)
	assert.Equal(t, 35, adapter.SliderValue())
}

func TestSliderValueRoundsForDisplayOnly(t *testing.T) {
	engine := newFakeEngine()
	c := readyController(engine, 60)
	adapter := NewVolumeAdapter(c)

	// Engine reports a volume that doesn't land on a whole display unit
	engine.volume = 0.666
	c.HandleEvent(player.Event{Type: player.EventReady})

	assert.Equal(t, 67, adapter.SliderValue())
	// The stored value keeps full precision
	assert.Equal(t, 0.666, c.State().Volume)
}

func TestSetSliderClampsDisplayRange(t *testing.T) {
	engine := newFakeEngine()
	c := readyController(engine, 60)
	adapter := NewVolumeAdapter(c)

	adapter.SetSlider(250)
	assert.Equal(t, 100, adapter.SliderValue())

	adapter.SetSlider(-10)
	assert.Equal(t, 0, adapter.SliderValue())
}

func TestAdjustSliderMovesRelative(t *testing.T) {
	engine := newFakeEngine()
	c := readyController(engine, 60)
	adapter := NewVolumeAdapter(c)

	adapter.SetSlider(50)
	adapter.AdjustSlider(5)
	assert.Equal(t, 55, adapter.SliderValue())

	adapter.AdjustSlider(-60)
	assert.Equal(t, 0, adapter.SliderValue())
}

func TestSliderDoesNotTouchMute(t *testing.T) {
	engine := newFakeEngine()
	c := readyController(engine, 60)
	adapter := NewVolumeAdapter(c)

	c.ToggleMute()
	adapter.SetSlider(80)

	assert.True(t, c.State().Muted)
	assert.Equal(t, 80, adapter.SliderValue())
}
