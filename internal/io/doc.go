// Package ioutils provides file system utilities for the site generator.
//
// This package contains functions for:
//   - File copying and writing
//   - Directory creation
//   - Output tree access relative to a root directory
//   - Advisory locking of the output tree
//
// # File Operations
//
//	// Write a page, creating output/2020/ on demand
//	err := ioutils.WriteFile(ctx, "output/2020/qat.html", []byte(html))
//
//	// Copy a file
//	err := ioutils.CopyFile(ctx, "output/2024.html", "output/index.html")
//
//	// Ensure directory exists (no error if it already does)
//	err := ioutils.EnsureDir("output/2020")
//
// # Output Tree
//
// OutputTree resolves slash-separated relative paths against a root:
//
//	tree := ioutils.NewOutputTree("output")
//	unlock, err := tree.Lock()
//	if errors.Is(err, ioutils.ErrLocked) {
//	    // another generator is writing to output/
//	}
//	defer unlock()
//
//	err = tree.WriteFile(ctx, "2020.html", []byte(html))
package ioutils
