package assets

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
	clickBytes   []byte
)

func audioCtx() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
		clickBytes = clickPCM(sampleRate, 0.06, 880)
	})
	return audioContext
}

// PlayClick plays the short confirmation tick used for dwell selections.
func PlayClick() {
	ctx := audioCtx()
	if ctx == nil {
		return
	}
	p := ctx.NewPlayerFromBytes(clickBytes)
	p.SetVolume(0.4)
	p.Play()
}

// clickPCM renders a decaying sine as 16-bit little-endian stereo PCM,
// Ebiten's native format.
func clickPCM(rate int, seconds, freq float64) []byte {
	n := int(float64(rate) * seconds)
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(rate)
		env := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*freq*t) * env * env * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
