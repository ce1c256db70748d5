package fingerprint

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// SystemEnvironment reads the device attributes from the running process:
// the Go runtime, the locale and terminal environment variables and the
// local time zone.
type SystemEnvironment struct {
	// Product is reported as the user agent product token.
	Product string

	getenv func(string) string
	now    func() time.Time
}

// NewSystemEnvironment returns the environment of the current process.
func NewSystemEnvironment(product string) *SystemEnvironment {
	return &SystemEnvironment{
		Product: product,
		getenv:  os.Getenv,
		now:     time.Now,
	}
}

func (e *SystemEnvironment) UserAgent() string {
	if e.Product == "" {
		return ""
	}
	return fmt.Sprintf("%s (%s; %s) %s", e.Product, runtime.GOOS, runtime.GOARCH, runtime.Version())
}

// Language returns the first locale found in LC_ALL, LC_MESSAGES or LANG,
// without the encoding suffix.
func (e *SystemEnvironment) Language() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		v := e.getenv(name)
		if v == "" || v == "C" || v == "POSIX" {
			continue
		}
		if i := strings.IndexByte(v, '.'); i >= 0 {
			v = v[:i]
		}
		return strings.ReplaceAll(v, "_", "-")
	}
	return ""
}

func (e *SystemEnvironment) ScreenSize() string {
	cols, lines := e.getenv("COLUMNS"), e.getenv("LINES")
	if cols == "" || lines == "" {
		return ""
	}
	return cols + "x" + lines
}

// TimezoneOffset returns the offset from UTC in minutes with the sign
// convention of browsers (positive west of UTC).
func (e *SystemEnvironment) TimezoneOffset() string {
	_, offset := e.now().Zone()
	return strconv.Itoa(-offset / 60)
}

func (e *SystemEnvironment) Platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

func (e *SystemEnvironment) HardwareConcurrency() string {
	return strconv.Itoa(runtime.NumCPU())
}

// DeviceMemory is not available portably.
func (e *SystemEnvironment) DeviceMemory() string {
	return ""
}

func (e *SystemEnvironment) MaxTouchPoints() string {
	return "0"
}
