// Package source loads markup to analyze.
//
// Inputs are files, standard input or the built-in sample page. Markdown is
// rendered to HTML before analysis so raw HTML blocks embedded in it are
// checked like any other markup.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyInput is returned when the input holds nothing but whitespace.
var ErrEmptyInput = errors.New("no markup to analyze")

// StdinPath is the display path used for standard input.
const StdinPath = "<stdin>"

// SamplePath is the display path used for the built-in sample page.
const SamplePath = "<sample>"

// Kind identifies the markup language of an input.
type Kind string

// Input kinds.
const (
	KindHTML     Kind = "html"
	KindMarkdown Kind = "markdown"
)

// Options controls how inputs are loaded.
type Options struct {
	// GFM enables GitHub Flavored Markdown extensions when rendering Markdown.
	GFM bool
}

// Input is markup ready for analysis.
type Input struct {
	// Path is the file path, StdinPath or SamplePath.
	Path string

	// Kind is the language the raw content was written in.
	Kind Kind

	// Raw is the content as read.
	Raw []byte

	// Markup is the HTML handed to the engine. For Markdown inputs this is
	// the rendered document.
	Markup string
}

// Load reads and prepares the file at path.
func Load(ctx context.Context, path string, opts Options) (*Input, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return prepare(path, KindForPath(path, raw), raw, opts)
}

// FromReader reads all of r and prepares it. The kind is sniffed from the
// content.
func FromReader(ctx context.Context, r io.Reader, opts Options) (*Input, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", StdinPath, err)
	}

	return prepare(StdinPath, DetectKind(raw), raw, opts)
}

// Sample returns the built-in sample page.
func Sample() *Input {
	return &Input{
		Path:   SamplePath,
		Kind:   KindHTML,
		Raw:    []byte(SampleDocument),
		Markup: SampleDocument,
	}
}

// KindForPath picks the kind from the file extension, sniffing the content
// when the extension is not recognised.
func KindForPath(path string, content []byte) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return KindHTML
	case ".md", ".markdown", ".mdown", ".mkd":
		return KindMarkdown
	default:
		return DetectKind(content)
	}
}

func prepare(path string, kind Kind, raw []byte, opts Options) (*Input, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyInput)
	}

	input := &Input{Path: path, Kind: kind, Raw: raw}

	if kind == KindMarkdown {
		rendered, err := RenderMarkdown(raw, opts.GFM)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", path, err)
		}
		input.Markup = rendered
		return input, nil
	}

	input.Markup = string(raw)
	return input, nil
}
