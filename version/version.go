package version

import (
	"fmt"
	"io"
	"runtime"
)

// Version information, set with -ldflags "-X".
var (
	BuildTS   = "None"
	GitHash   = "None"
	GitBranch = "None"
	Version   = "None"
)

func GetVersion() string {
	if GitHash != "" && GitHash != "None" {
		h := GitHash
		if len(h) > 7 {
			h = h[:7]
		}
		return fmt.Sprintf("%s-%s", Version, h)
	}
	return Version
}

// Printer writes build information to w.
func Printer(w io.Writer) {
	fmt.Fprintln(w, "Version:          ", GetVersion())
	fmt.Fprintln(w, "Git Branch:       ", GitBranch)
	fmt.Fprintln(w, "Git Commit:       ", GitHash)
	fmt.Fprintln(w, "Build Time (UTC): ", BuildTS)
	fmt.Fprintln(w, "Go Version:       ", runtime.Version())
}
