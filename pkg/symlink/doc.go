// Package symlink creates symbolic links for dotfile entries and checks
// whether an existing path already links to the expected source.
//
// CreateLink reports failures through its LinkResult rather than through a
// stored "last error", so a single Linker may be shared freely.
package symlink
