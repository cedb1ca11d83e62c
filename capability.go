package memtag

import (
	"os"
	"strconv"
)

// disableEnv names the environment variable that, when set to a true value,
// makes Supported report false even on MTE capable hosts. It lets test
// suites that switch on Supported run their emulated branch everywhere.
const disableEnv = "MEMTAG_DISABLE"

// Supported reports whether the native backend can be used: the build
// targets linux/arm64, the kernel advertises MTE, and MEMTAG_DISABLE is not
// set. On every other target the native backend is compiled out.
func Supported() bool {
	if disabled, err := strconv.ParseBool(os.Getenv(disableEnv)); err == nil && disabled {
		return false
	}
	return nativeSupported()
}
