package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
)

// Init initializes the audio system. Until it succeeds every Play function is a no-op.
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Enabled reports whether sounds will be played
func Enabled() bool {
	return initialized
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// tone generates a sine wave tone at the given frequency for the given duration
func tone(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := 2 * math.Pi * freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := math.Sin(phase) * 0.3 // 0.3 volume
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// gap is a short silence between the notes of a sequence
func gap(d time.Duration) beep.Streamer {
	return beep.Silence(sampleRate.N(d))
}

func paddleHitSound() beep.Streamer {
	return squareWave(880, 50*time.Millisecond)
}

func wallBounceSound() beep.Streamer {
	return squareWave(440, 30*time.Millisecond)
}

// scoreSound is a descending triple
func scoreSound() beep.Streamer {
	return beep.Seq(
		squareWave(660, 100*time.Millisecond),
		squareWave(440, 100*time.Millisecond),
		squareWave(330, 150*time.Millisecond),
	)
}

// gameOverSound is a rising C major arpeggio
func gameOverSound() beep.Streamer {
	return beep.Seq(
		tone(523.25, 120*time.Millisecond),
		gap(30*time.Millisecond),
		tone(659.25, 120*time.Millisecond),
		gap(30*time.Millisecond),
		tone(783.99, 250*time.Millisecond),
	)
}

func play(s beep.Streamer) {
	if !initialized {
		return
	}
	speaker.Play(s)
}

// PlayPaddleHit plays the sound for ball hitting a paddle
func PlayPaddleHit() {
	play(paddleHitSound())
}

// PlayWallBounce plays the sound for ball hitting top/bottom wall
func PlayWallBounce() {
	play(wallBounceSound())
}

// PlayScore plays the sound when a point is scored
func PlayScore() {
	play(scoreSound())
}

// PlayGameOver plays the end of match jingle
func PlayGameOver() {
	play(gameOverSound())
}
