package main

import (
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/borgmon/chime/pkg/alarm"
	"github.com/borgmon/chime/pkg/notify"
	"github.com/borgmon/chime/pkg/store"
)

// uiTickInterval drives hand movement and the countdown label. The alarm
// logic only needs one tick per minute; the rest is cosmetics.
const uiTickInterval = 250 * time.Millisecond

type Chime struct {
	app      fyne.App
	store    *store.PrefStore
	notifier *notify.Notifier
	timer    *alarm.Timer

	clockWindow    *ClockWindow
	ringWindow     *RingWindow
	settingsWindow *SettingsWindow
	wakeLock       *WakeLock

	uiTicker       *time.Ticker
	lastTrayStatus string
}

func main() {
	c := &Chime{
		app: app.NewWithID("com.borgmon.chime"),
	}

	c.initialize()
	c.run()
}

func (c *Chime) initialize() {
	c.store = store.NewPrefStore(c.app)
	c.notifier = notify.New(c.app)
	c.timer = alarm.NewTimer(alarm.SystemClock{}, c.store, c.notifier)
	c.wakeLock = NewWakeLock()

	// Sync autostart state with config on startup
	if err := setupAutostart(c.store.AutoStart()); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}

	c.timer.OnChange = func() {
		c.onTimerChange()
	}

	c.setupSystemTray()
	c.clockWindow = NewClockWindow(c)
	c.startTicking()

	c.applyKeepAwake()
}

func (c *Chime) run() {
	c.clockWindow.Show()
	c.app.Run()
}

func (c *Chime) startTicking() {
	c.uiTicker = time.NewTicker(uiTickInterval)
	go func() {
		for range c.uiTicker.C {
			// All timer mutation happens on the Fyne main thread; the core
			// is single-owner by design.
			fyne.Do(func() {
				c.timer.Tick()
			})
		}
	}()
}

// onTimerChange runs after every tick and lifecycle transition, once state
// has settled, so windows always render a consistent snapshot.
func (c *Chime) onTimerChange() {
	if c.timer.Triggered() && c.ringWindow == nil {
		c.showRingWindow()
	}
	if !c.timer.Triggered() && c.ringWindow != nil {
		c.ringWindow.Close()
		c.ringWindow = nil
	}

	if c.clockWindow != nil {
		c.clockWindow.Refresh()
	}
	c.updateSystemTrayMenu()
}

func (c *Chime) showRingWindow() {
	c.ringWindow = NewRingWindow(c.app, c.store.HoldSeconds(), func() {
		c.ringWindow = nil
		c.timer.Dismiss()
	})
	c.ringWindow.Show()
}

func (c *Chime) showSettingsWindow() {
	// A visible settings window is reused rather than duplicated.
	if c.settingsWindow != nil {
		c.settingsWindow.Focus()
		return
	}

	c.settingsWindow = NewSettingsWindow(c, func() {
		c.settingsWindow = nil
	})
	c.settingsWindow.Show()
}

// applyKeepAwake acquires the display wake lock when the user asked for it,
// and releases it otherwise. Failures only log; the alarm works regardless.
func (c *Chime) applyKeepAwake() {
	if c.store.KeepAwake() {
		c.wakeLock.Acquire()
	} else {
		c.wakeLock.Release()
	}
}

func (c *Chime) quit() {
	if c.uiTicker != nil {
		c.uiTicker.Stop()
	}
	c.notifier.Stop()
	c.wakeLock.Release()
	c.app.Quit()
}
