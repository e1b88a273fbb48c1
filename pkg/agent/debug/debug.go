package debug

const (
	Debug = true
)

func IsDebug() bool {
	return Debug
}

// IsDebugPlainState reports whether sealed state files should be written and
// read as plain JSON.
func IsDebugPlainState() bool {
	return Debug && isDebugPlainStateSet()
}

func IsDebugShowSetup() bool {
	return Debug && isDebugShowSetupSet()
}
