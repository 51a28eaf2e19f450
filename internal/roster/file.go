package roster

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/rapbattle/internal/errors"
	"gopkg.in/yaml.v3"
)

// File is the on-disk roster format.
//
//	competitors:
//	  - name: MC Flow
//	    style: Smooth Flow
//	    lines:
//	      - "I'm the architect of rhyme, building verses all the time"
type File struct {
	Competitors []Entry `yaml:"competitors"`
}

// Entry is one competitor in a roster file.
type Entry struct {
	Name  string   `yaml:"name"`
	Style string   `yaml:"style"`
	Lines []string `yaml:"lines"`
}

// LoadFile reads and validates a YAML roster.
func LoadFile(path string) (Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to read roster", fmt.Errorf("%w: %v", errors.ErrRosterFile, err)).
			WithField("roster.file", path)
	}

	r, err := Parse(data)
	if err != nil {
		var cfgErr *errors.ConfigurationError
		if errors.As(err, &cfgErr) && cfgErr.Field == "" {
			cfgErr.WithField("roster.file", path)
		}
		return nil, err
	}
	return r, nil
}

// Parse decodes a YAML roster and validates it.
func Parse(data []byte) (Roster, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.NewConfigurationError("failed to parse roster", fmt.Errorf("%w: %v", errors.ErrRosterFile, err))
	}

	r := make(Roster, 0, len(f.Competitors))
	for _, e := range f.Competitors {
		r = append(r, NewCompetitor(e.Name, e.Style, e.Lines))
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// ToFile converts a roster back into its on-disk form.
func (r Roster) ToFile() File {
	f := File{Competitors: make([]Entry, 0, len(r))}
	for _, c := range r {
		f.Competitors = append(f.Competitors, Entry{
			Name:  c.Name(),
			Style: c.Style(),
			Lines: c.Lines(),
		})
	}
	return f
}
