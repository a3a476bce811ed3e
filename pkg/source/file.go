package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/text/transform"
)

// File is an immutable handle to a source file and its charset.
// It is safe for concurrent use.
type File struct {
	path    string
	charset Charset
	load    func() ([]byte, error)

	once sync.Once
	raw  []byte
	text string
	err  error
}

// Open returns a handle to the file at path. Nothing is read until the
// content is first requested.
func Open(path string, charset Charset) *File {
	return &File{
		path:    path,
		charset: charset,
		load:    func() ([]byte, error) { return os.ReadFile(path) },
	}
}

// FromBytes returns a handle over in-memory content. name is used for
// reporting only.
func FromBytes(name string, content []byte, charset Charset) *File {
	return &File{
		path:    name,
		charset: charset,
		load:    func() ([]byte, error) { return content, nil },
	}
}

// FromString returns a UTF-8 handle over content.
func FromString(name, content string) *File {
	return FromBytes(name, []byte(content), UTF8)
}

// Path returns the file path (or name for in-memory files).
func (f *File) Path() string { return f.path }

// Charset returns the charset used to decode the file.
func (f *File) Charset() Charset { return f.charset }

func (f *File) read() {
	f.once.Do(func() {
		raw, err := f.load()
		if err != nil {
			f.err = fmt.Errorf("read %s: %w", f.path, err)
			return
		}
		decoded, _, err := transform.Bytes(f.charset.encoding().NewDecoder(), raw)
		if err != nil {
			f.err = fmt.Errorf("decode %s as %s: %w", f.path, f.charset.Name(), err)
			return
		}
		f.raw = decoded
		f.text = string(decoded)
	})
}

// Text returns the full decoded content.
func (f *File) Text() (string, error) {
	f.read()
	return f.text, f.err
}

// Reader returns a reader over the decoded content.
func (f *File) Reader() (io.Reader, error) {
	f.read()
	if f.err != nil {
		return nil, f.err
	}
	return bytes.NewReader(f.raw), nil
}

// Lines calls fn for each line of the decoded content in order, with its
// 1-based number, until fn returns false or the content is exhausted.
// Lines end at "\r\n", "\n" or a lone "\r", and a terminator at end of
// content does not produce an extra empty line. Line length is unbounded.
func (f *File) Lines(fn func(line int, text string) bool) error {
	rest, err := f.Text()
	if err != nil {
		return err
	}
	for n := 1; rest != ""; n++ {
		var line string
		line, rest, _ = cutLine(rest)
		if !fn(n, line) {
			return nil
		}
	}
	return nil
}
