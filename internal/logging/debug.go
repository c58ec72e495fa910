package logging

import (
	"os"
	"strconv"
)

const debugEnv = "TASKBOARD_DEBUG"

// DebugEnabled reports whether TASKBOARD_DEBUG asks for debug output. Every
// Logger created while it is on starts with debug enabled. Values that parse
// as a false boolean ("0", "false") keep it off; any other non-empty value
// turns it on.
func DebugEnabled() bool {
	v := os.Getenv(debugEnv)
	if v == "" {
		return false
	}
	on, err := strconv.ParseBool(v)
	return err != nil || on
}
