package audio

import (
	"bytes"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Global audio context singleton
var (
	globalAudioCtx     *oto.Context
	globalAudioCtxOnce sync.Once
	audioCtxReady      bool
)

// Player manages looping alarm sound playback with cancellation support
type Player struct {
	stopChan chan struct{}
	player   *oto.Player
	stopped  bool
	mu       sync.Mutex
}

// initAudioContext initializes the global audio context once
func initAudioContext() {
	globalAudioCtxOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			log.Printf("Failed to initialize audio context: %v", err)
			return
		}

		// Wait for the hardware audio devices to be ready
		<-readyChan

		globalAudioCtx = ctx
		audioCtxReady = true
		log.Println("Audio context initialized successfully")
	})
}

// PlayLoop plays the given PCM data on repeat until Stop is called and
// returns a Player for control. Returns nil when no audio device is
// available; callers must treat that as a silent no-op.
func PlayLoop(pcm []byte) *Player {
	initAudioContext()

	if !audioCtxReady || globalAudioCtx == nil {
		log.Printf("Audio context not ready")
		return nil
	}

	p := &Player{
		stopChan: make(chan struct{}),
	}

	// Play the sound in a goroutine so it doesn't block
	go p.playLoop(pcm)

	return p
}

// PlayOnce plays the given PCM data a single time, fire-and-forget.
func PlayOnce(pcm []byte) {
	initAudioContext()

	if !audioCtxReady || globalAudioCtx == nil {
		log.Printf("Audio context not ready")
		return
	}

	go func() {
		player := globalAudioCtx.NewPlayer(bytes.NewReader(pcm))
		player.Play()

		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}

		if err := player.Close(); err != nil {
			log.Printf("Failed to close audio player: %v", err)
		}
	}()
}

func (p *Player) playLoop(pcm []byte) {
	// Loop the alarm sound until stopped
	for {
		// Create a new player for each loop iteration
		p.player = globalAudioCtx.NewPlayer(bytes.NewReader(pcm))

		// Play starts playing the sound and returns without waiting
		p.player.Play()

		// Wait for the sound to finish playing or stop signal
		for p.player.IsPlaying() {
			select {
			case <-p.stopChan:
				// Stop requested, pause and cleanup then exit
				p.player.Pause()
				p.player.Close()
				log.Println("Audio player closed")
				return
			case <-time.After(10 * time.Millisecond):
				// Continue checking
			}
		}

		// Close the player before creating a new one
		if err := p.player.Close(); err != nil {
			log.Printf("Failed to close audio player: %v", err)
		}

		// Check if stop was requested between loops
		select {
		case <-p.stopChan:
			return
		default:
			// Continue looping
		}
	}
}

// Stop stops the audio playback
func (p *Player) Stop() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.stopped {
		p.stopped = true
		close(p.stopChan)

		// Also try to pause the current player if it exists
		if p.player != nil {
			p.player.Pause()
		}

		log.Println("Audio playback stopped")
	}
}
