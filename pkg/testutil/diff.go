package testutil

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
)

//nolint:gochecknoglobals // Would be 'const'.
var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// Dump renders a value for stable textual comparison.
func Dump(v interface{}) string {
	return spewConfig.Sdump(v)
}

// AssertEqualText compares two rendered files (cube files, parameter files,
// ...) and reports a unified diff on mismatch.
func AssertEqualText(t *testing.T, exp, act string) bool {
	t.Helper()
	if exp == act {
		return true
	}
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(exp),
		B:        difflib.SplitLines(act),
		FromFile: "Expected",
		FromDate: "",
		ToFile:   "Actual",
		ToDate:   "",
		Context:  3,
	})
	t.Errorf("Text diff:\n%s", diff)
	return false
}

// AssertEqualDump compares two values via their Dump rendering, which keeps
// the failure output readable for deeply nested structs.
func AssertEqualDump(t *testing.T, exp, act interface{}) bool {
	t.Helper()
	return AssertEqualText(t, Dump(exp), Dump(act))
}
