//go:build !windows

package launcher

import (
	"os/exec"
	"syscall"

	"github.com/pkg/errors"
)

func start(exePath, workDir string) error {
	cmd := exec.Command(exePath)
	cmd.Dir = workDir
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	if err := cmd.Start(); err != nil {
		return errors.Wrap(err, "start launcher")
	}
	return cmd.Process.Release()
}
