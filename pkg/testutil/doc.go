// Package testutil provides fixtures shared by the shlib tests.
//
// Key components:
//   - file fixtures on the real filesystem (CreateFile, ReadFile,
//     AssertDirEntries)
//   - in-memory afero filesystems for failure paths (NewMemFS)
//   - TestEnvironment: isolated XDG directories and a clean SHLIB_*
//     environment, with the global logger restored after the test
package testutil
