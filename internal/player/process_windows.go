//go:build windows

package player

import (
	"os/exec"
	"syscall"
)

// setupPlayerProcess puts the engine in its own process group so terminal
// signals aimed at the TUI never reach it.
func setupPlayerProcess(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP,
	}
}
