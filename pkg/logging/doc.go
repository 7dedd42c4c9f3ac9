// Package logging provides shlib's diagnostics.
//
// All output goes to the error stream as single lines a calling script can
// grep for:
//
//	message              info, and debug when verbose
//	[warning]: message
//	[error]: message
//	[TODO]: message
//	[dry-run]: message
//
// Diagnostics are backed by zerolog. The console sink renders the tagged
// format above; the optional log file receives the same events as JSON.
// Internal packages log structured events through GetLogger, which only reach
// the console in verbose mode.
package logging
