// Package notify implements the alarm timer's notification sink: a looping
// ring tone while the alarm rings, and one-shot pre-alarm countdown cues.
package notify

import (
	"fmt"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"

	"github.com/borgmon/chime/pkg/alarm"
	"github.com/borgmon/chime/pkg/audio"
)

// Notifier plays alarm audio and posts desktop notifications. Every failure
// degrades to a quieter cue or a log line; nothing here may block a dismiss.
type Notifier struct {
	app fyne.App

	mu        sync.Mutex
	ringing   *audio.Player
	sessionID string

	// Replaceable for tests.
	playLoop func(pcm []byte) *audio.Player
	playOnce func(pcm []byte)
}

var _ alarm.Notifier = (*Notifier)(nil)

// New creates a Notifier. app may be nil; desktop notifications are then
// skipped and only audio cues remain.
func New(app fyne.App) *Notifier {
	return &Notifier{
		app:      app,
		playLoop: audio.PlayLoop,
		playOnce: audio.PlayOnce,
	}
}

// Start begins the repeating ring. Starting while already ringing replaces
// nothing; the existing session keeps playing.
func (n *Notifier) Start() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.sessionID != "" {
		return
	}

	n.sessionID = uuid.New().String()
	log.Printf("Ring session %s started", n.sessionID)

	n.ringing = n.playLoop(audio.RingTone())
	if n.ringing == nil {
		// No audio device. The ring window is still shown by the UI, so the
		// alarm remains dismissable.
		log.Printf("Ring session %s has no audio, visual only", n.sessionID)
	}

	n.send("Alarm", "Wake up! Hold the dismiss button to stop the alarm.")
}

// Stop ends the ring. Idempotent and always safe to call.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.sessionID == "" {
		return
	}

	if n.ringing != nil {
		n.ringing.Stop()
		n.ringing = nil
	}

	log.Printf("Ring session %s stopped", n.sessionID)
	n.sessionID = ""
}

// Announce posts a one-shot pre-alarm countdown notice. Falls back to the
// tone-only cue when notifications are unavailable.
func (n *Notifier) Announce(minutesRemaining int) {
	n.playOnce(audio.CueTone())

	unit := "minutes"
	if minutesRemaining == 1 {
		unit = "minute"
	}
	n.send("Alarm soon", fmt.Sprintf("Alarm in %d %s", minutesRemaining, unit))
}

func (n *Notifier) send(title, content string) {
	if n.app == nil {
		return
	}
	n.app.SendNotification(&fyne.Notification{Title: title, Content: content})
}
