// Package seed parses noun list files for the import-nouns command.
// File paths in, domain structs out. No database dependencies.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/artikel-backend/internal/domain"
)

// File is the on-disk layout of a noun list:
//
//	nouns:
//	  - word: Haus
//	    article: das
//	    translation: house
//	    category: home
//	    rule: Nouns ending in -chen are neuter.
//	    examples: ["Das Haus ist alt."]
type File struct {
	Nouns []Entry `yaml:"nouns"`
}

// Entry is one noun as written in the file.
type Entry struct {
	Word        string   `yaml:"word"`
	Article     string   `yaml:"article"`
	Translation string   `yaml:"translation"`
	Category    string   `yaml:"category"`
	Rule        string   `yaml:"rule"`
	Examples    []string `yaml:"examples"`
}

// EntryError reports a rejected entry by its 1-based position in the file.
type EntryError struct {
	Index int
	Word  string
	Msg   string
}

func (e *EntryError) Error() string {
	if e.Word == "" {
		return fmt.Sprintf("noun #%d: %s", e.Index, e.Msg)
	}
	return fmt.Sprintf("noun #%d (%s): %s", e.Index, e.Word, e.Msg)
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]domain.Noun, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open noun file: %w", err)
	}
	defer f.Close()

	nouns, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return nouns, nil
}

// Parse decodes a noun list and validates every entry. All entry problems are
// returned together, joined; nothing is returned unless the whole file is
// valid. Unknown keys are rejected.
func Parse(r io.Reader) ([]domain.Noun, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty noun file")
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if len(file.Nouns) == 0 {
		return nil, errors.New("noun file lists no nouns")
	}

	var (
		errs  []error
		seen  = make(map[string]int, len(file.Nouns))
		nouns = make([]domain.Noun, 0, len(file.Nouns))
	)
	for i, e := range file.Nouns {
		n, err := e.toNoun()
		if err != nil {
			errs = append(errs, &EntryError{Index: i + 1, Word: e.Word, Msg: err.Error()})
			continue
		}

		key := strings.ToLower(n.Word) + "|" + n.Article.String()
		if first, dup := seen[key]; dup {
			errs = append(errs, &EntryError{Index: i + 1, Word: n.Word, Msg: fmt.Sprintf("duplicate of #%d", first)})
			continue
		}
		seen[key] = i + 1
		nouns = append(nouns, n)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return nouns, nil
}

func (e Entry) toNoun() (domain.Noun, error) {
	word := strings.TrimSpace(e.Word)
	if word == "" {
		return domain.Noun{}, errors.New("word is required")
	}
	article, ok := domain.ParseArticle(e.Article)
	if !ok {
		return domain.Noun{}, fmt.Errorf("article %q must be der, die or das", e.Article)
	}
	translation := strings.TrimSpace(e.Translation)
	if translation == "" {
		return domain.Noun{}, errors.New("translation is required")
	}

	examples := make([]string, 0, len(e.Examples))
	for _, ex := range e.Examples {
		if ex = strings.TrimSpace(ex); ex != "" {
			examples = append(examples, ex)
		}
	}

	return domain.Noun{
		Word:        word,
		Article:     article,
		Translation: translation,
		Category:    optional(e.Category),
		Rule:        optional(e.Rule),
		Examples:    examples,
	}, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
