//go:build !windows

package main

import "os/exec"

// detach is a no-op outside Windows; the process is already independent of
// the launcher once started.
func detach(*exec.Cmd) {}
