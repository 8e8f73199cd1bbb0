// Package archiver packs a single file or a directory tree into a ZIP
// archive.
//
// The tree is walked depth-first in the order the file system lists the
// directory contents. Every regular file becomes one entry, named by its path
// relative to the root with forward slashes. Directories never get entries of
// their own, symlinks and special files are skipped.
//
// Entries are written one at a time: at most one input file and one archive
// entry are open at any moment, and file contents are streamed in chunks of
// Options.BufferSize bytes. Archives written to disk are first created as a
// temporary file in the destination directory and only renamed onto the final
// name once complete, so a failed run leaves nothing behind.
package archiver
