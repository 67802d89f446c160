package vfs

import (
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/spf13/afero"
)

const (
	// Element names used by the serialized format.
	rootElement      = "vfs"
	directoryElement = "directory"
	fileElement      = "file"
	// The only content encoding that can be decoded. Any other value is treated as undecodable.
	EncodingBase64 = "base64"
	// Stored as the content of files whose encoded content could not be decoded.
	DecodeErrorPlaceholder = "[Binary data - decode error]"
)

// element mirrors every element kind of the serialized format. Which fields are meaningful
// depends on the element name.
type element struct {
	XMLName  xml.Name
	Name     string    `xml:"name,attr"`
	Encoding string    `xml:"encoding,attr"`
	Content  string    `xml:",chardata"`
	Children []element `xml:",any"`
}

// Load reads the serialized tree at path from fsys and decodes it. It returns ErrSourceNotFound
// if there is no such file and ErrMalformedSource if it cannot be decoded.
func Load(fsys afero.Fs, path string) (*Dir, error) {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("checking serialized source %s: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening serialized source %s: %w", path, err)
	}
	defer f.Close()

	root, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

// Decode builds a tree from a serialized description. The returned root directory has an empty
// name. Nothing is returned unless the whole description could be decoded, except that files
// whose encoded content cannot be decoded get DecodeErrorPlaceholder as their content.
func Decode(r io.Reader) (*Dir, error) {
	var doc element
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSource, err)
	}
	if doc.XMLName.Local != rootElement {
		return nil, fmt.Errorf("%w: root element must be <%s>, got <%s>", ErrMalformedSource, rootElement, doc.XMLName.Local)
	}
	root := NewDir("")
	if err := decodeChildren(root, doc.Children); err != nil {
		return nil, err
	}
	return root, nil
}

func decodeChildren(parent *Dir, elements []element) error {
	for _, e := range elements {
		switch e.XMLName.Local {
		case directoryElement:
			if err := validateName(e); err != nil {
				return err
			}
			dir := NewDir(e.Name)
			if err := decodeChildren(dir, e.Children); err != nil {
				return err
			}
			parent.put(dir)
		case fileElement:
			if err := validateName(e); err != nil {
				return err
			}
			parent.put(NewFile(e.Name, decodeContent(e.Encoding, e.Content)))
		default:
			// Unknown elements are skipped together with everything nested inside them.
		}
	}
	return nil
}

func validateName(e element) error {
	if e.Name == "" || e.Name == "." || e.Name == ".." || strings.Contains(e.Name, "/") {
		return fmt.Errorf("%w: <%s> has invalid name %q", ErrMalformedSource, e.XMLName.Local, e.Name)
	}
	return nil
}

// decodeContent returns the stored content for a file element. It never fails, content that
// cannot be decoded is replaced with DecodeErrorPlaceholder.
func decodeContent(encoding string, content string) string {
	if encoding == "" {
		return content
	}
	if encoding != EncodingBase64 {
		return DecodeErrorPlaceholder
	}
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, content)
	decoded, err := base64.StdEncoding.DecodeString(compact)
	if err != nil || !utf8.Valid(decoded) {
		return DecodeErrorPlaceholder
	}
	return string(decoded)
}
