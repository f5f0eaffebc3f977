//go:build windows

package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// CreateShortcut places a .lnk for the launcher on the user's desktop via
// WScript.Shell. iconPath is optional; when empty the target's own icon is
// used.
func CreateShortcut(exePath, name, iconPath string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve home dir")
	}
	lnk := filepath.Join(home, "Desktop", name+".lnk")

	var b strings.Builder
	fmt.Fprintf(&b, "$ws = New-Object -ComObject WScript.Shell; ")
	fmt.Fprintf(&b, "$s = $ws.CreateShortcut(%s); ", psQuote(lnk))
	fmt.Fprintf(&b, "$s.TargetPath = %s; ", psQuote(exePath))
	fmt.Fprintf(&b, "$s.WorkingDirectory = %s; ", psQuote(filepath.Dir(exePath)))
	if iconPath != "" {
		fmt.Fprintf(&b, "$s.IconLocation = %s; ", psQuote(iconPath))
	}
	b.WriteString("$s.Save()")

	cmd := exec.Command("powershell", "-NoProfile", "-NonInteractive", "-Command", b.String())
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", errors.Wrapf(err, "create shortcut: %s", strings.TrimSpace(string(out)))
	}
	return lnk, nil
}

// psQuote single-quotes a string for PowerShell, doubling embedded quotes.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
