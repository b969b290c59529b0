// Launcher starts the tubegrab binary next to it, detached from the current
// console. On Windows this keeps the terminal window from popping up.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

func main() {
	self, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "locate launcher: %v\n", err)
		os.Exit(1)
	}

	binary := "tubegrab"
	if runtime.GOOS == "windows" {
		binary += ".exe"
	}
	target := filepath.Join(filepath.Dir(self), binary)

	if _, err := os.Stat(target); err != nil {
		fmt.Fprintf(os.Stderr, "tubegrab binary not found next to the launcher: %v\n", err)
		os.Exit(1)
	}

	cmd := exec.Command(target)
	cmd.Dir = filepath.Dir(target)
	detach(cmd)

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "start tubegrab: %v\n", err)
		os.Exit(1)
	}
}
