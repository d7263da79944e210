//go:build darwin

package main

import "os/exec"

func wakeLockCommand() *exec.Cmd {
	// caffeinate -d prevents display sleep until the process exits.
	return exec.Command("caffeinate", "-d")
}
