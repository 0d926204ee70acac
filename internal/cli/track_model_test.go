package cli

import (
	"testing"
	"time"

	"github.com/alexanderramin/studylog/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock returns base, base+step, base+2*step, ... on successive calls.
func stepClock(base time.Time, step time.Duration) func() time.Time {
	n := 0
	return func() time.Time {
		t := base.Add(time.Duration(n) * step)
		n++
		return t
	}
}

var trackBase = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestTrackModel_StartThenEnd(t *testing.T) {
	d := teatest.New(t, newTrackModel("1b", stepClock(trackBase, 25*time.Minute)))
	d.DrainInit()
	assert.Contains(t, d.View(), "enter/s start")

	d.PressEnter()
	m := d.Model.(trackModel)
	require.Equal(t, trackRunning, m.phase)
	assert.Equal(t, trackBase, m.start)
	assert.Contains(t, d.View(), "enter/e end")

	d.PressEnter()
	m = d.Model.(trackModel)
	assert.Equal(t, trackDone, m.phase)
	assert.True(t, d.Quitting)
	assert.Equal(t, 25*time.Minute, m.end.Sub(m.start))
	assert.Contains(t, d.View(), "00:25:00")
}

func TestTrackModel_LetterKeys(t *testing.T) {
	d := teatest.New(t, newTrackModel("2", stepClock(trackBase, time.Minute)))
	d.DrainInit()

	d.PressKey('e')
	assert.Equal(t, trackReady, d.Model.(trackModel).phase, "e does not start")

	d.PressKey('s')
	assert.Equal(t, trackRunning, d.Model.(trackModel).phase)

	d.PressKey('s')
	assert.Equal(t, trackRunning, d.Model.(trackModel).phase, "s does not end")

	d.PressKey('x')
	assert.Equal(t, trackRunning, d.Model.(trackModel).phase)

	d.PressKey('e')
	assert.Equal(t, trackDone, d.Model.(trackModel).phase)
}

func TestTrackModel_Abort(t *testing.T) {
	for name, press := range map[string]func(*teatest.Driver){
		"q":      func(d *teatest.Driver) { d.PressKey('q') },
		"esc":    func(d *teatest.Driver) { d.PressEsc() },
		"ctrl+c": func(d *teatest.Driver) { d.PressCtrlC() },
	} {
		t.Run(name, func(t *testing.T) {
			d := teatest.New(t, newTrackModel("0", stepClock(trackBase, time.Minute)))
			d.DrainInit()
			d.PressEnter()
			press(d)

			assert.Equal(t, trackAborted, d.Model.(trackModel).phase)
			assert.True(t, d.Quitting)
			assert.Contains(t, d.View(), "Session discarded.")
		})
	}
}
