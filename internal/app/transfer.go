package app

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Export writes all four documents to w as YAML.
func (a *ProfileApp) Export(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(a.session.Snapshot()); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding export: %w", err)
	}
	a.logger.Info("documents exported")
	return nil
}

// Import applies the YAML read from r over the current documents. Sections
// and fields the input leaves out keep their current values. Unknown keys are
// rejected; the import is all or nothing.
func (a *ProfileApp) Import(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	snap := a.session.Snapshot()
	if err := dec.Decode(&snap); err != nil {
		if err == io.EOF {
			return fmt.Errorf("decoding import: empty input")
		}
		return fmt.Errorf("decoding import: %w", err)
	}
	a.session.Restore(snap)
	a.logger.Info("documents imported", "posts", len(snap.Profile.Posts))
	return nil
}
