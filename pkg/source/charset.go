package source

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// DefaultCharset is used when no charset is configured.
const DefaultCharset = "utf-8"

// Charset is a resolved character encoding.
type Charset struct {
	name string
	enc  encoding.Encoding
}

// UTF8 is the default charset.
var UTF8 = Charset{name: DefaultCharset, enc: unicode.UTF8}

// ResolveCharset looks up a charset by its WHATWG name or label
// (e.g. "utf-8", "latin1", "windows-1252", "shift_jis").
// An empty name resolves to UTF-8.
func ResolveCharset(name string) (Charset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return Charset{}, fmt.Errorf("unknown charset %q: %w", name, err)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = strings.ToLower(name)
	}
	return Charset{name: canonical, enc: enc}, nil
}

// Name returns the canonical charset name.
func (c Charset) Name() string {
	if c.enc == nil {
		return DefaultCharset
	}
	return c.name
}

func (c Charset) encoding() encoding.Encoding {
	if c.enc == nil {
		return unicode.UTF8
	}
	return c.enc
}
