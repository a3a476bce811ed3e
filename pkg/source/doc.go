// Package source provides access to the raw content of analyzed files.
//
// A File is an immutable handle to a file's bytes plus the character
// encoding used to decode them. Content is decoded lazily, at most once,
// and shared by every check that asks for it. Line-oriented access splits
// on all three newline conventions ("\r\n", "\n" and a lone "\r").
package source
