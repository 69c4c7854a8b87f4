package markdown

import (
	"bytes"
	"strings"

	"github.com/adrg/frontmatter"
	goerrors "github.com/goliatone/go-errors"
)

// FrontMatter carries the metadata header split off a document before the
// body enters the conversion pipeline. Title travels in its own field because
// the converter drops H1 lines: the title belongs to the post record, not the
// body markup.
type FrontMatter struct {
	Title  string
	Slug   string
	Status string
	Tags   []string
	Custom map[string]any
}

type frontMatterEnvelope struct {
	Title  string         `yaml:"title"`
	Slug   string         `yaml:"slug"`
	Status string         `yaml:"status"`
	Tags   []string       `yaml:"tags"`
	Custom map[string]any `yaml:",inline"`
}

// ParseFrontMatter extracts the metadata header and returns it together with
// the remaining body. Input without a header comes back with an empty
// FrontMatter and the body untouched.
func ParseFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return FrontMatter{}, nil, goerrors.Wrap(err, goerrors.CategoryValidation, "parse frontmatter")
	}

	return FrontMatter{
		Title:  strings.TrimSpace(meta.Title),
		Slug:   strings.TrimSpace(meta.Slug),
		Status: strings.TrimSpace(meta.Status),
		Tags:   append([]string(nil), meta.Tags...),
		Custom: cloneMap(meta.Custom),
	}, body, nil
}

// Meta flattens the frontmatter into the map shape the pipeline result
// exposes. Named fields win over custom entries with the same key.
func (fm FrontMatter) Meta() map[string]any {
	meta := make(map[string]any, len(fm.Custom)+4)
	for key, value := range fm.Custom {
		meta[key] = value
	}
	if fm.Title != "" {
		meta["title"] = fm.Title
	}
	if fm.Slug != "" {
		meta["slug"] = fm.Slug
	}
	if fm.Status != "" {
		meta["status"] = fm.Status
	}
	if len(fm.Tags) > 0 {
		meta["tags"] = append([]string(nil), fm.Tags...)
	}
	return meta
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
