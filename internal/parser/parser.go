package parser

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"panelprompt/internal/library"
)

type Document struct {
	Frontmatter map[string]any
	Title       string
	Kind        library.Kind
	Body        string
	SourceFile  string
}

var (
	ErrNoFrontmatter = errors.New("no frontmatter found")
	ErrInvalidYAML   = errors.New("invalid YAML in frontmatter")
	ErrMissingTitle  = errors.New("frontmatter missing required 'title' field")
	ErrMissingType   = errors.New("frontmatter missing required 'type' field")
	ErrUnknownType   = errors.New("frontmatter 'type' is not an asset kind")
)

func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	doc.SourceFile = path
	return doc, nil
}

func Parse(content []byte) (*Document, error) {
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	trimmed := bytes.TrimLeft(content, "\ufeff\n\r\t ")
	if !bytes.HasPrefix(trimmed, []byte("---\n")) {
		return nil, ErrNoFrontmatter
	}

	rest := trimmed[len("---\n"):]
	end := bytes.Index(rest, []byte("---\n"))
	if end == -1 {
		if !bytes.HasSuffix(rest, []byte("\n---")) {
			return nil, ErrNoFrontmatter
		}
		end = len(rest) - len("---")
	}

	yamlBytes := rest[:end]
	body := ""
	if end+len("---\n") <= len(rest) {
		body = string(rest[end+len("---\n"):])
	}

	var frontmatter map[string]any
	if err := yaml.Unmarshal(yamlBytes, &frontmatter); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	title, ok := frontmatter["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		return nil, ErrMissingTitle
	}

	rawType, ok := frontmatter["type"].(string)
	if !ok || strings.TrimSpace(rawType) == "" {
		return nil, ErrMissingType
	}
	kind, err := library.ParseKind(rawType)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, rawType)
	}

	return &Document{
		Frontmatter: frontmatter,
		Title:       strings.TrimSpace(title),
		Kind:        kind,
		Body:        strings.TrimSpace(body),
	}, nil
}

// String returns a scalar frontmatter field as text. Numbers such as a
// property's year are accepted.
func (d *Document) String(key string) string {
	switch v := d.Frontmatter[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case bool:
		return fmt.Sprintf("%t", v)
	case int, int64, float64:
		return fmt.Sprint(v)
	default:
		return ""
	}
}

func (d *Document) Bool(key string) bool {
	v, _ := d.Frontmatter[key].(bool)
	return v
}

func (d *Document) Strings(key string) ([]string, error) {
	return parseList(key, d.Frontmatter[key])
}

// Description is the body text, or the description field when the body is
// empty.
func (d *Document) Description() string {
	if d.Body != "" {
		return d.Body
	}
	return d.String("description")
}

func parseList(key string, value any) ([]string, error) {
	if value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, nil
		}
		return []string{v}, nil
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s must be strings", key)
			}
			if strings.TrimSpace(s) == "" {
				continue
			}
			items = append(items, s)
		}
		if len(items) == 0 {
			return nil, nil
		}
		return items, nil
	default:
		return nil, fmt.Errorf("%s must be string or list of strings", key)
	}
}
