package debug

import "os"

const (
	DebugPlainStateKey = "DEBUG_PLAIN_STATE"
	DebugShowSetupKey  = "DEBUG_SHOW_SETUP"
)

func isDebugPlainStateSet() bool {
	return os.Getenv(DebugPlainStateKey) == "true"
}

func isDebugShowSetupSet() bool {
	return os.Getenv(DebugShowSetupKey) == "true"
}
