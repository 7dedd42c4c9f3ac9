package textfile

import (
	"github.com/pmezard/go-difflib/difflib"
)

func unifiedDiff(fromPath, toPath string, original, candidate []byte) string {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(string(candidate)),
		FromFile: fromPath,
		ToFile:   toPath,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}
	return text
}
