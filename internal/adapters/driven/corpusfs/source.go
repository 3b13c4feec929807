package corpusfs

import (
	"os"
	"path/filepath"

	"github.com/daisy-days/daisyd/internal/core/ports/driven"
	"github.com/daisy-days/daisyd/internal/corpus"
)

// componentsFile and conceptsFile are the file names a corpus override
// directory may contain. Missing files fall back to the embedded text.
const (
	componentsFile = "components.txt"
	conceptsFile   = "concepts.txt"
)

// Ensure both sources implement the interface.
var (
	_ driven.CorpusSource = (*EmbeddedSource)(nil)
	_ driven.CorpusSource = (*FileSource)(nil)
)

// EmbeddedSource serves the corpus text embedded at build time.
// It never fails.
type EmbeddedSource struct{}

// NewEmbeddedSource creates the default corpus source.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

// Components returns the embedded component documentation text.
func (*EmbeddedSource) Components() ([]byte, error) {
	return corpus.Components(), nil
}

// Concepts returns the embedded design-concept text.
func (*EmbeddedSource) Concepts() ([]byte, error) {
	return corpus.Concepts(), nil
}

// FileSource serves corpus text from an override directory, falling
// back to the embedded text for files the directory does not contain.
type FileSource struct {
	dir      string
	fallback driven.CorpusSource
}

// NewFileSource creates a file-backed corpus source rooted at dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir, fallback: NewEmbeddedSource()}
}

// Components returns the override components text, or the embedded text
// if the override file does not exist.
func (s *FileSource) Components() ([]byte, error) {
	return s.read(componentsFile, s.fallback.Components)
}

// Concepts returns the override concepts text, or the embedded text if
// the override file does not exist.
func (s *FileSource) Concepts() ([]byte, error) {
	return s.read(conceptsFile, s.fallback.Concepts)
}

func (s *FileSource) read(name string, fallback func() ([]byte, error)) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return fallback()
		}
		return nil, err
	}
	return data, nil
}
