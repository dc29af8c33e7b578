package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ant-colony/core"
)

// drain streams s to exhaustion and returns every sample
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, w := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		out := drain(t, NewOscillator(440, 100*time.Millisecond, w, rate))
		assert.Len(t, out, rate.N(100*time.Millisecond), "wave %d", w)
		for i, s := range out {
			require.GreaterOrEqual(t, s[0], -1.0, "sample %d", i)
			require.LessOrEqual(t, s[0], 1.0, "sample %d", i)
			require.Equal(t, s[0], s[1])
		}
	}
}

func TestOscillatorSquareLevels(t *testing.T) {
	out := drain(t, NewOscillator(220, 50*time.Millisecond, WaveSquare, beep.SampleRate(44100)))
	for _, s := range out {
		assert.True(t, s[0] == 1 || s[0] == -1)
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	// Constant 1.0 source
	src := NewOscillator(0, time.Second, WaveSquare, rate)
	out := drain(t, NewEnvelope(src, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate))

	require.Len(t, out, 100)
	assert.Equal(t, 0.0, out[0][0])
	assert.InDelta(t, 0.5, out[5][0], 1e-9)
	assert.Equal(t, 1.0, out[50][0])
	assert.InDelta(t, 0.5, out[90][0], 1e-9)
	assert.InDelta(t, 0.05, out[99][0], 1e-9)
}

func TestNewVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	out := drain(t, newVolume(NewOscillator(0, 20*time.Millisecond, WaveSquare, rate), 0))
	for _, s := range out {
		assert.Equal(t, 0.0, s[0])
	}
}

func TestCuesAreBounded(t *testing.T) {
	rate := beep.SampleRate(44100)
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		s := Cue(st, rate, 0.5)
		require.NotNil(t, s, st.String())
		out := drain(t, s)
		assert.Len(t, out, rate.N(CueLength(st)), st.String())

		peak := 0.0
		for _, v := range out {
			peak = max(peak, v[0], -v[0])
		}
		assert.Greater(t, peak, 0.0, st.String())
		assert.LessOrEqual(t, peak, 1.0, st.String())
	}
	assert.Nil(t, Cue(core.SoundTypeCount, rate, 1))
}
