// Package yaml loads pattern sets from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/pagecheck"
	"gopkg.in/yaml.v3"
)

// LoadPatternSet reads and validates the pattern set stored at path.
// Returns ENOTFOUND if the file does not exist and EINVALID if it cannot be
// decoded or fails validation.
func LoadPatternSet(path string) (pagecheck.PatternSet, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided pattern file is intentional
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return pagecheck.PatternSet{}, pagecheck.Errorf(pagecheck.ENOTFOUND, "pattern file %q not found", path)
		}
		return pagecheck.PatternSet{}, fmt.Errorf("read pattern file: %w", err)
	}
	return DecodePatternSet(bytes.NewReader(data))
}

// DecodePatternSet decodes a single pattern set document. Unknown fields are
// rejected.
func DecodePatternSet(r io.Reader) (pagecheck.PatternSet, error) {
	var set pagecheck.PatternSet
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&set); err != nil {
		if errors.Is(err, io.EOF) {
			return pagecheck.PatternSet{}, pagecheck.Errorf(pagecheck.EINVALID, "pattern file is empty")
		}
		return pagecheck.PatternSet{}, pagecheck.Errorf(pagecheck.EINVALID, "decode pattern file: %v", err)
	}
	if err := set.Validate(); err != nil {
		return pagecheck.PatternSet{}, err
	}
	return set, nil
}

// EncodePatternSet writes set as a YAML document.
func EncodePatternSet(w io.Writer, set pagecheck.PatternSet) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode pattern set: %w", err)
	}
	return enc.Close()
}
