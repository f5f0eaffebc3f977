//go:build windows

package launcher

import (
	"os/exec"
	"syscall"

	"github.com/pkg/errors"
)

const createNewProcessGroup = 0x00000200

func start(exePath, workDir string) error {
	cmd := exec.Command(exePath)
	cmd.Dir = workDir
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: createNewProcessGroup | syscall.CREATE_NEW_CONSOLE,
	}
	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "start launcher")
	}
	// Detach: never wait on the child.
	return cmd.Process.Release()
}
