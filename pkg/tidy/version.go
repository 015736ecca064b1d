package tidy

import (
	"runtime"
	"strings"
)

// version is set at build time with -ldflags "-X".
var version = "5.9.20"

// LibraryVersion returns the processor version.
func LibraryVersion() string {
	return version
}

// PlatformName names the platform the binary was built for, or "" when
// it is not one of the named ones.
func PlatformName() string {
	switch runtime.GOOS {
	case "linux":
		return "Linux"
	case "darwin":
		return "Apple macOS"
	case "windows":
		return "Windows"
	case "freebsd", "openbsd", "netbsd", "dragonfly":
		return strings.ToUpper(runtime.GOOS[:1]) + runtime.GOOS[1:]
	case "solaris", "illumos":
		return "Solaris"
	}
	return ""
}

func generator() string {
	if p := PlatformName(); p != "" {
		return "HTML Tidy for " + p + " version " + LibraryVersion()
	}
	return "HTML Tidy version " + LibraryVersion()
}
