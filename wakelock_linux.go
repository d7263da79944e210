//go:build linux

package main

import "os/exec"

func wakeLockCommand() *exec.Cmd {
	// systemd-inhibit holds the idle lock for as long as the wrapped
	// process sleeps.
	return exec.Command("systemd-inhibit",
		"--what=idle", "--who=Chime", "--why=Alarm armed", "--mode=block",
		"sleep", "infinity")
}
