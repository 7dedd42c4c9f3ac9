package logging

import (
	"strconv"
	"strings"
)

// DefaultMask replaces secret values when no mask is configured
const DefaultMask = "***"

// RenderArguments renders a call as caller("a", "b", ""). Every argument is
// double-quoted, so an empty one shows up as "". The value following a
// secret flag, or the value after "=" in --flag=value form, is replaced by
// mask.
func RenderArguments(caller string, args []string, secretFlags []string, mask string) string {
	masked := MaskSecrets(args, secretFlags, mask)

	quoted := make([]string, len(masked))
	for i, arg := range masked {
		quoted[i] = strconv.Quote(arg)
	}
	return caller + "(" + strings.Join(quoted, ", ") + ")"
}

// MaskSecrets returns a copy of args with secret values replaced by mask
func MaskSecrets(args []string, secretFlags []string, mask string) []string {
	secret := make(map[string]bool, len(secretFlags))
	for _, f := range secretFlags {
		secret[f] = true
	}

	out := make([]string, len(args))
	maskNext := false
	for i, arg := range args {
		if maskNext {
			out[i] = mask
			maskNext = false
			continue
		}
		if secret[arg] {
			out[i] = arg
			maskNext = true
			continue
		}
		if name, _, found := strings.Cut(arg, "="); found && secret[name] {
			out[i] = name + "=" + mask
			continue
		}
		out[i] = arg
	}
	return out
}
