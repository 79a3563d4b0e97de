package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/milk9111/sunnyland/prefabs"
)

const (
	SampleRate = 44100

	attackSamples  = SampleRate / 200
	releaseSamples = SampleRate / 20
)

// floatBuffer is mono samples at unity gain.
type floatBuffer []float64

// sweep renders a waveform whose frequency glides from `from` to `to` over
// the buffer.
func sweep(wave string, from, to float64, samples int, rng *rand.Rand) (floatBuffer, error) {
	buf := make(floatBuffer, samples)
	phase := 0.0
	for i := range buf {
		switch wave {
		case "sine":
			buf[i] = math.Sin(2 * math.Pi * phase)
		case "square":
			if phase < 0.5 {
				buf[i] = 1
			} else {
				buf[i] = -1
			}
		case "triangle":
			buf[i] = 4*math.Abs(phase-0.5) - 1
		case "saw":
			buf[i] = 2 * (phase - 0.5)
		case "noise":
			buf[i] = rng.Float64()*2 - 1
		default:
			return nil, fmt.Errorf("audio: unknown waveform %q", wave)
		}

		t := float64(i) / float64(samples)
		freq := from + (to-from)*t
		phase += freq / SampleRate
		phase -= math.Floor(phase)
	}
	return buf, nil
}

// applyEnvelope applies a linear attack/release envelope in place. Lengths
// are in samples.
func applyEnvelope(buf floatBuffer, attackSamples, releaseSamples int) {
	total := len(buf)

	releaseStart := max(total-releaseSamples, attackSamples)
	for i := range buf {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// Synthesize renders a sound spec to 16-bit little-endian stereo PCM.
func Synthesize(spec prefabs.SoundSpec) ([]byte, error) {
	samples := int(spec.Duration * SampleRate)
	if samples <= 0 {
		return nil, fmt.Errorf("audio: sound %s has no duration", spec.Name)
	}
	rng := rand.New(rand.NewPCG(uint64(len(spec.Name)), 0x5eed))
	buf, err := sweep(spec.Wave, spec.From, spec.To, samples, rng)
	if err != nil {
		return nil, fmt.Errorf("audio: sound %s: %w", spec.Name, err)
	}
	applyEnvelope(buf, attackSamples, releaseSamples)

	vol := spec.Volume
	if vol <= 0 || vol > 1 {
		vol = 1
	}
	pcm := make([]byte, samples*4)
	for i, v := range buf {
		s := int16(math.Max(-1, math.Min(1, v*vol)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(pcm[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(pcm[i*4+2:], uint16(s))
	}
	return pcm, nil
}
