// Package flags implements the common-argument parser shared by every shlib
// command and by the scripts that call it.
//
// The recognized tokens are --verbose/-v, --debug, --dry-run and -h/--help.
// The parser consumes them from an argument vector and returns the rest in
// their original order. --verbose, -v and --debug are consumed only while the
// flags are not already verbose: a second occurrence is passed through, so an
// inner command can receive it as an ordinary argument of its own.
//
// Flags are not exported as process-wide state. A caller that spawns a child
// process propagates them explicitly with Environ, Args or ExportScript, and a
// child recovers them with FromEnv.
package flags

import (
	"strings"
)

// Environment names used to propagate flags to child processes
const (
	EnvVerbose = "verbose"
	EnvDebug   = "debug"
	EnvDryRun  = "dry_run"
	EnvHelp    = "help"
)

// Flags is the state produced by Parse
type Flags struct {
	Verbose bool
	Debug   bool
	DryRun  bool
	Help    bool
}

// Parse scans args left to right, folding the recognized flags into f and
// returning everything else unchanged and in order. It never fails.
func Parse(args []string, f Flags) (Flags, []string) {
	remaining := make([]string, 0, len(args))
	for _, arg := range args {
		switch {
		case !f.Verbose && (arg == "--verbose" || arg == "-v"):
			f.Verbose = true
		case !f.Verbose && arg == "--debug":
			f.Verbose = true
			f.Debug = true
		case arg == "--dry-run":
			f.DryRun = true
		case arg == "-h" || arg == "--help":
			f.Help = true
		default:
			remaining = append(remaining, arg)
		}
	}
	return f, remaining
}

// FromEnv reads flags previously propagated with Environ or ExportScript.
// "true", "1" and "yes" (any case) count as set.
func FromEnv(lookup func(string) (string, bool)) Flags {
	isSet := func(name string) bool {
		v, ok := lookup(name)
		if !ok {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "1", "yes":
			return true
		}
		return false
	}
	f := Flags{
		Verbose: isSet(EnvVerbose),
		Debug:   isSet(EnvDebug),
		DryRun:  isSet(EnvDryRun),
		Help:    isSet(EnvHelp),
	}
	// debug implies verbose, as it does when parsed
	if f.Debug {
		f.Verbose = true
	}
	return f
}

// Environ returns name=value entries for every set flag, suitable for
// appending to exec.Cmd.Env
func (f Flags) Environ() []string {
	var env []string
	for _, v := range f.values() {
		if v.set {
			env = append(env, v.env+"=true")
		}
	}
	return env
}

// Args returns the command-line tokens that reproduce f when parsed by a
// child starting from zero flags
func (f Flags) Args() []string {
	var args []string
	switch {
	case f.Debug:
		args = append(args, "--debug")
	case f.Verbose:
		args = append(args, "--verbose")
	}
	if f.DryRun {
		args = append(args, "--dry-run")
	}
	if f.Help {
		args = append(args, "--help")
	}
	return args
}

// Union returns the flags set in either f or other
func (f Flags) Union(other Flags) Flags {
	return Flags{
		Verbose: f.Verbose || other.Verbose,
		Debug:   f.Debug || other.Debug,
		DryRun:  f.DryRun || other.DryRun,
		Help:    f.Help || other.Help,
	}
}

type flagValue struct {
	env string
	set bool
}

func (f Flags) values() []flagValue {
	return []flagValue{
		{EnvVerbose, f.Verbose},
		{EnvDebug, f.Debug},
		{EnvDryRun, f.DryRun},
		{EnvHelp, f.Help},
	}
}
