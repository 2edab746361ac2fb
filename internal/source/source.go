package source

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// aliases maps names commonly seen with game clients to WHATWG labels.
var aliases = map[string]string{
	"cp949":  "euc-kr",
	"uhc":    "euc-kr",
	"cp1252": "windows-1252",
}

// Encoding resolves a charset label. An empty label returns nil, which Read
// takes as "pass bytes through untouched".
func Encoding(label string) (encoding.Encoding, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return nil, nil
	}
	if alias, ok := aliases[label]; ok {
		label = alias
	}

	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unknown source encoding %q: %w", label, err)
	}
	return enc, nil
}

// Read loads the whole file at path, decoding it to UTF-8 when enc is set.
// The file is closed before Read returns.
func Read(path string, enc encoding.Encoding) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open source file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if enc != nil {
		r = transform.NewReader(f, enc.NewDecoder())
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read source file %s: %w", path, err)
	}
	return string(data), nil
}
