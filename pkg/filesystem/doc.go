// Package filesystem provides the filesystem implementations used by the
// text primitives.
//
// FS is the narrow set of operations the primitives need: reading a target,
// staging a candidate in a scratch file that is guaranteed not to collide
// with an existing path, and atomically renaming that scratch file over the
// target. NewOS is backed by the real filesystem; NewAferoFS wraps any
// afero.Fs and is what the tests use to simulate read-only or in-memory trees.
package filesystem
