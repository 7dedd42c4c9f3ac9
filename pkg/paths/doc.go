// Package paths resolves where shlib keeps its own files.
//
// shlib never persists anything on behalf of its callers; the only paths it
// owns are its optional configuration file and its optional log file, both
// placed according to the XDG Base Directory specification.
package paths
