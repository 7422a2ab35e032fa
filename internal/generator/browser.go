package generator

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// OpenBrowser opens the rendered page in the default viewer. Best-effort: the
// command is started, not waited on.
func OpenBrowser(path string) error {
	path = filepath.Clean(path)
	var cmd string
	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
	case "linux":
		cmd = "xdg-open"
	case "windows":
		cmd = "rundll32"
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
	if runtime.GOOS == "windows" {
		return exec.Command(cmd, "url.dll,FileProtocolHandler", path).Start() // #nosec G204
	}
	return exec.Command(cmd, path).Start() // #nosec G204
}
