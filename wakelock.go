package main

import (
	"log"
	"os/exec"
)

// WakeLock keeps the display awake by holding a platform inhibitor process
// while acquired. Platforms without an inhibitor degrade to a logged no-op;
// the alarm itself never depends on the lock.
type WakeLock struct {
	cmd *exec.Cmd
}

func NewWakeLock() *WakeLock {
	return &WakeLock{}
}

// Acquire starts the inhibitor. No-op while already held.
func (w *WakeLock) Acquire() {
	if w.cmd != nil {
		return
	}

	cmd := wakeLockCommand()
	if cmd == nil {
		log.Println("Keep-awake not supported on this platform")
		return
	}

	if err := cmd.Start(); err != nil {
		log.Printf("Failed to acquire wake lock: %v", err)
		return
	}

	w.cmd = cmd
	log.Println("Wake lock acquired")
}

// Release stops the inhibitor. Idempotent.
func (w *WakeLock) Release() {
	if w.cmd == nil {
		return
	}

	if err := w.cmd.Process.Kill(); err != nil {
		log.Printf("Failed to release wake lock: %v", err)
	}
	// Reap the child either way so it cannot linger as a zombie.
	_ = w.cmd.Wait()

	w.cmd = nil
	log.Println("Wake lock released")
}
