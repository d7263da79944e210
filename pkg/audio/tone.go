package audio

import "math"

// PCM format shared by the tone generator and the global audio context.
const (
	sampleRate = 44100
	channels   = 1
)

// Tone synthesizes a sine wave as signed 16-bit little-endian mono PCM.
func Tone(freq float64, duration float64, volume float64) []byte {
	samples := int(float64(sampleRate) * duration)
	pcm := make([]byte, samples*2)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate

		// Short attack/release ramps avoid clicks at the tone edges.
		envelope := 1.0
		const ramp = 0.01
		if t < ramp {
			envelope = t / ramp
		} else if rem := duration - t; rem < ramp {
			envelope = rem / ramp
		}

		v := int16(volume * envelope * math.MaxInt16 * math.Sin(2*math.Pi*freq*t))
		pcm[i*2] = byte(v)
		pcm[i*2+1] = byte(v >> 8)
	}

	return pcm
}

// silence returns the given length of silent PCM.
func silence(duration float64) []byte {
	return make([]byte, int(float64(sampleRate)*duration)*2)
}

// RingTone is one cycle of the alarm bell pattern: two insistent beeps and
// a pause. PlayLoop repeats it until dismissed.
func RingTone() []byte {
	beep := Tone(880, 0.25, 0.8)
	gap := silence(0.1)

	var pcm []byte
	pcm = append(pcm, beep...)
	pcm = append(pcm, gap...)
	pcm = append(pcm, beep...)
	pcm = append(pcm, silence(0.6)...)
	return pcm
}

// CueTone is the short pre-alarm chime, two rising notes.
func CueTone() []byte {
	var pcm []byte
	pcm = append(pcm, Tone(660, 0.15, 0.5)...)
	pcm = append(pcm, silence(0.05)...)
	pcm = append(pcm, Tone(990, 0.2, 0.5)...)
	return pcm
}
