// Package vault mirrors notes to a directory of markdown files with YAML
// frontmatter, so they can be edited with any text editor.
package vault

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// DefaultPattern matches every markdown file below the vault root
const DefaultPattern = "**/*.md"

// ErrNoTitle is returned for a file whose frontmatter has no title
var ErrNoTitle = errors.New("note file has no title")

// Frontmatter is the YAML header of a note file
type Frontmatter struct {
	ID       types.NoteID `yaml:"id,omitempty"`
	Title    string       `yaml:"title"`
	Tags     []string     `yaml:"tags,omitempty"`
	Created  time.Time    `yaml:"created,omitempty"`
	Modified time.Time    `yaml:"modified,omitempty"`
}

// Record is one parsed note file
type Record struct {
	Frontmatter
	Content string
	Path    string // Relative to the vault root
}

// Export writes one <slug>.md file per note into dir and returns the file
// names in note order. Colliding slugs get a numeric suffix.
func Export(dir string, notes []models.Note) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create vault directory: %w", err)
	}

	used := make(map[string]int)
	names := make([]string, 0, len(notes))
	for _, n := range notes {
		name := uniqueName(used, Slugify(n.Title))
		data, err := Render(n)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", name, err)
		}
		names = append(names, name)
	}
	return names, nil
}

func uniqueName(used map[string]int, slug string) string {
	used[slug]++
	if n := used[slug]; n > 1 {
		return fmt.Sprintf("%s-%d.md", slug, n)
	}
	return slug + ".md"
}

// Render formats a note as a markdown document with frontmatter
func Render(n models.Note) ([]byte, error) {
	fm := Frontmatter{
		ID:       n.ID,
		Title:    n.Title,
		Tags:     n.Tags,
		Created:  n.CreatedAt,
		Modified: n.ModifiedAt,
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(fm); err != nil {
		return nil, fmt.Errorf("failed to encode frontmatter: %w", err)
	}
	encoder.Close()
	buf.WriteString("---\n")
	buf.WriteString(n.Content)
	return buf.Bytes(), nil
}

// Parse reads a note document. A file without frontmatter takes its title
// from fallbackTitle.
func Parse(r io.Reader, fallbackTitle string) (Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Record{}, err
	}

	var rec Record
	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		rec.Title = fallbackTitle
		rec.Content = string(data)
	} else {
		rest := data[3:]
		parts := bytes.SplitN(rest, []byte("\n---"), 2)
		if len(parts) == 1 {
			return Record{}, errors.New("frontmatter started but no closing delimiter found")
		}
		if err := yaml.Unmarshal(parts[0], &rec.Frontmatter); err != nil {
			return Record{}, fmt.Errorf("failed to parse frontmatter: %w", err)
		}
		content := strings.TrimPrefix(string(parts[1]), "\r")
		content = strings.TrimPrefix(content, "\n")
		rec.Content = content
		if rec.Title == "" {
			rec.Title = fallbackTitle
		}
	}

	if rec.Title == "" {
		return Record{}, ErrNoTitle
	}
	return rec, nil
}

// ParseFile reads and parses one note file. The record path is rel.
func ParseFile(root, rel string) (Record, error) {
	f, err := os.Open(filepath.Join(root, rel))
	if err != nil {
		return Record{}, err
	}
	defer f.Close()

	title := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	rec, err := Parse(f, title)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", rel, err)
	}
	rec.Path = filepath.ToSlash(rel)
	return rec, nil
}

// Import parses every file below dir matching pattern, in path order
func Import(dir, pattern string) ([]Record, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid vault pattern %q", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to scan vault: %w", err)
	}
	slices.Sort(matches)

	records := make([]Record, 0, len(matches))
	for _, rel := range matches {
		rec, err := ParseFile(dir, filepath.FromSlash(rel))
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// matches reports whether a path relative to the vault root is selected by pattern
func matches(pattern, rel string) bool {
	ok, err := doublestar.Match(pattern, filepath.ToSlash(rel))
	return err == nil && ok
}

// Slugify turns a title into a file-name-safe slug
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "untitled"
	}
	return slug
}

// isDir is split out for the watcher, which must add new subdirectories
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// walkDirs calls fn for dir and every directory below it
func walkDirs(dir string, fn func(string) error) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fn(path)
		}
		return nil
	})
}
