package transport

import (
	"testing"

	"github.com/abhiguop/netflix/internal/player"
	"github.com/stretchr/testify/assert"
)

func TestReadyLatchesOnceAndStaysLatched(t *testing.T) {
	engine := newFakeEngine()
	c := NewController(engine)

	assert.False(t, c.State().Ready)
	assert.Equal(t, PhaseUninitialized, c.Phase())

	c.HandleEvent(player.Event{Type: player.EventReady})
	assert.False(t, c.State().Ready, "ready event alone must not latch readiness")
	assert.Equal(t, PhaseAwaitingDuration, c.Phase())

	engine.duration = 120
	c.HandleEvent(player.Event{Type: player.EventDurationChange})
	assert.True(t, c.State().Ready)
	assert.Equal(t, PhaseReady, c.Phase())
	assert.Equal(t, 120.0, c.State().Duration)

	// A later duration event overwrites only the duration, never the latch
	engine.duration = 95
	c.HandleEvent(player.Event{Type: player.EventDurationChange})
	assert.True(t, c.State().Ready)
	assert.Equal(t, PhaseReady, c.Phase())
	assert.Equal(t, 95.0, c.State().Duration)
}

func TestPauseResumeEventsAreLevelTriggered(t *testing.T) {
	engine := newFakeEngine()
	c := readyController(engine, 60)

	c.HandleEvent(player.Event{Type: player.EventPlay})
	assert.False(t, c.State().Paused)

	// Repeated identical events are idempotent
	c.HandleEvent(player.Event{Type: player.EventPlay})
	assert.False(t, c.State().Paused)

	c.HandleEvent(player.Event{Type: player.EventPause})
	c.HandleEvent(player.Event{Type: player.EventPause})
	assert.True(t, c.State().Paused)
}

func TestSeekOverridesMonotonicTracking(t *testing.T) {
	engine := newFakeEngine()
	c := readyController(engine, 300)

	advanceTime(c, engine, 10)
	advanceTime(c, engine, 20)
	advanceTime(c, engine, 30)
	assert.Equal(t, 30.0, c.State().PlayedSeconds)

	c.SeekTo(200)
	assert.Equal(t, []float64{200}, engine.seeks)
	// No optimistic playhead update: still at the last reported time
	assert.Equal(t, 30.0, c.State().PlayedSeconds)

	// The engine confirms the landing position
	advanceTime(c, engine, 200)
	assert.Equal(t, 200.0, c.State().PlayedSeconds)
}

func TestSeekBeyondDurationIsClamped(t *testing.T) {
	// Scenario: ready -> duration 120 -> time 5 -> seek 200 -> engine lands at 120
	engine := newFakeEngine()
	c := NewController(engine)

	c.HandleEvent(player.Event{Type: player.EventReady})
	engine.duration = 120
	c.HandleEvent(player.Event{Type: player.EventDurationChange})
	advanceTime(c, engine, 5)

	c.SeekTo(200)
	assert.Equal(t, []float64{120}, engine.seeks)

	advanceTime(c, engine, 120)

	state := c.State()
	assert.True(t, state.Ready)
	assert.Equal(t, 120.0, state.Duration)
	assert.Equal(t, 120.0, state.PlayedSeconds)
}

func TestTimeUpdateClampedOnlyWhenDurationKnown(t *testing.T) {
	engine := newFakeEngine()
	c := NewController(engine)
	c.HandleEvent(player.Event{Type: player.EventReady})

	// Duration unknown: values pass through unclamped
	advanceTime(c, engine, 500)
	assert.Equal(t, 500.0, c.State().PlayedSeconds)

	engine.duration = 100
	c.HandleEvent(player.Event{Type: player.EventDurationChange})

	advanceTime(c, engine, 500)
	assert.Equal(t, 100.0, c.State().PlayedSeconds)
}

func TestToggleMuteTwiceRestoresStateAndKeepsVolume(t *testing.T) {
	engine := newFakeEngine()
	engine.volume = 0.73
	c := readyController(engine, 60)
	// Re-sync the snapshot volume captured at ready time
	c.HandleEvent(player.Event{Type: player.EventReady})

	before := c.State()

	c.ToggleMute()
	assert.True(t, c.State().Muted)
	assert.Equal(t, before.Volume, c.State().Volume)

	c.ToggleMute()
	assert.Equal(t, before.Muted, c.State().Muted)
	assert.Equal(t, before.Volume, c.State().Volume)
	assert.Equal(t, []bool{true, false}, engine.mutes)
}

func TestSetVolumeDoesNotTouchMute(t *testing.T) {
	engine := newFakeEngine()
	c := readyController(engine, 60)

	c.ToggleMute()
	assert.True(t, c.State().Muted)

	c.SetVolume(0.4)
	assert.True(t, c.State().Muted, "volume changes must not unmute")
	assert.Equal(t, 0.4, c.State().Volume)
}

func TestOptimisticPlayPauseUpdates(t *testing.T) {
	engine := newFakeEngine()
	c := readyController(engine, 60)

	assert.True(t, c.State().Paused)

	c.Play()
	assert.False(t, c.State().Paused, "state must flip before the confirming event")
	assert.Equal(t, 1, engine.playCalls)

	c.Pause()
	assert.True(t, c.State().Paused)
	assert.Equal(t, 1, engine.pauseCalls)

	// The authoritative event converges an optimistic guess that was wrong:
	// play was predicted, but the engine reports it stayed paused.
	c.Play()
	engine.paused = true
	c.HandleEvent(player.Event{Type: player.EventPause})
	assert.True(t, c.State().Paused)
}

func TestCommandsBeforeReadyAreSilentlyIgnored(t *testing.T) {
	engine := newFakeEngine()
	c := NewController(engine)
	c.HandleEvent(player.Event{Type: player.EventReady})

	c.Play()
	c.Pause()
	c.SeekTo(30)
	c.SetVolume(0.5)
	c.ToggleMute()

	assert.Zero(t, engine.playCalls)
	assert.Zero(t, engine.pauseCalls)
	assert.Empty(t, engine.seeks)
	assert.Empty(t, engine.volumes)
	assert.Empty(t, engine.mutes)
	assert.Equal(t, NewState().withEngineSnapshot(Snapshot{Paused: true, Volume: 1.0}), c.State())
}

func TestEventsAfterDetachAreDropped(t *testing.T) {
	engine := newFakeEngine()
	c := readyController(engine, 120)

	c.SeekTo(30)
	assert.Equal(t, []float64{30}, engine.seeks)

	// Unmount races the confirming timeupdate
	c.Detach()
	frozen := c.State()

	advanceTime(c, engine, 30)
	c.HandleEvent(player.Event{Type: player.EventPlay})
	assert.Equal(t, frozen, c.State(), "post-teardown events must not mutate state")
	assert.Equal(t, PhaseTornDown, c.Phase())

	// Commands after teardown are no-ops too
	c.Play()
	assert.Zero(t, engine.playCalls)
}

func TestDetachIsIdempotent(t *testing.T) {
	engine := newFakeEngine()
	c := readyController(engine, 120)

	c.Detach()
	c.Detach()
	assert.Equal(t, PhaseTornDown, c.Phase())
}

func TestPhaseNeverMovesBackward(t *testing.T) {
	engine := newFakeEngine()
	c := readyController(engine, 120)

	// A stray ready event after readiness must not regress the phase
	c.HandleEvent(player.Event{Type: player.EventReady})
	assert.Equal(t, PhaseReady, c.Phase())
	assert.True(t, c.State().Ready)
}

func TestUnmountBeforeDurationIsLegal(t *testing.T) {
	engine := newFakeEngine()
	c := NewController(engine)
	c.HandleEvent(player.Event{Type: player.EventReady})

	c.Detach()
	assert.Equal(t, PhaseTornDown, c.Phase())
	assert.False(t, c.State().Ready)
}
