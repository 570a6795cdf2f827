//go:build !debug

package polyclip

func logDebugf(format string, args ...any) {}
