//go:build !darwin && !linux

package main

import "os/exec"

func wakeLockCommand() *exec.Cmd {
	return nil
}
