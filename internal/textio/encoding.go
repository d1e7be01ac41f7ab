package textio

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Encodings lists the accepted input encodings.
var Encodings = []string{"utf8", "cp437", "cp850", "iso-8859-1", "windows-1252"}

var charmaps = map[string]*charmap.Charmap{
	"cp437":        charmap.CodePage437,
	"cp850":        charmap.CodePage850,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
}

func encodingName(name string) string {
	if name == "" {
		return "utf8"
	}
	return strings.ToLower(name)
}

// ValidateEncoding returns ErrUnsupportedEncoding for unknown names.
func ValidateEncoding(name string) error {
	name = encodingName(name)
	if name == "utf8" || name == "utf-8" {
		return nil
	}
	if _, ok := charmaps[name]; ok {
		return nil
	}
	return fmt.Errorf("%w: %s (expected one of: %s)", ErrUnsupportedEncoding, name, strings.Join(Encodings, ", "))
}

// ToUTF8 converts data from the named encoding to UTF-8 and strips a
// leading BOM. Invalid UTF-8 sequences in UTF-8 input are replaced with
// U+FFFD.
func ToUTF8(data []byte, name string) ([]byte, error) {
	if err := ValidateEncoding(name); err != nil {
		return nil, err
	}

	cm, ok := charmaps[encodingName(name)]
	if !ok {
		return bytes.ToValidUTF8(stripUTF8BOM(data), []byte("\uFFFD")), nil
	}

	reader := transform.NewReader(bytes.NewReader(data), cm.NewDecoder())
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}
	return stripUTF8BOM(utf8Data), nil
}
