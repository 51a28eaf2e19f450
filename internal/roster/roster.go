package roster

import (
	"strings"

	"github.com/Iron-Ham/rapbattle/internal/errors"
	"github.com/Iron-Ham/rapbattle/internal/random"
)

// MinCompetitors is the smallest roster a battle can be drawn from.
const MinCompetitors = 2

// Roster is an ordered set of competitors.
type Roster []*Competitor

// Validate checks that the roster can host a battle: at least two
// competitors, each with a name and at least one line, and no duplicate
// names (compared case-insensitively).
func (r Roster) Validate() error {
	if len(r) < MinCompetitors {
		return errors.NewConfigurationError("roster needs at least two competitors", errors.ErrNotEnoughCompetitors).
			WithField("roster.size", len(r))
	}

	seen := make(map[string]bool, len(r))
	for i, c := range r {
		if c == nil || strings.TrimSpace(c.Name()) == "" {
			return errors.NewConfigurationError("every competitor needs a name", errors.ErrEmptyName).
				WithField("roster.index", i)
		}
		if err := ValidateCompetitor(c); err != nil {
			return err
		}
		key := strings.ToLower(strings.TrimSpace(c.Name()))
		if seen[key] {
			return errors.NewConfigurationError("competitor names must be unique", errors.ErrDuplicateCompetitor).
				WithField("competitor", c.Name())
		}
		seen[key] = true
	}
	return nil
}

// ValidateCompetitor checks that a single competitor has lines to drop.
func ValidateCompetitor(c *Competitor) error {
	if c == nil {
		return errors.NewConfigurationError("competitor is nil", errors.ErrMissingCompetitor)
	}
	if c.LineCount() == 0 {
		return errors.NewConfigurationError("competitor has nothing to say", errors.ErrNoLines).
			WithField("competitor", c.Name())
	}
	return nil
}

// Draw picks two distinct competitors uniformly at random, without
// replacement. The first return value is the challenger, who drops the
// first line of every round.
func (r Roster) Draw(src random.Source) (*Competitor, *Competitor, error) {
	if len(r) < MinCompetitors {
		return nil, nil, errors.NewConfigurationError("cannot draw a battle", errors.ErrNotEnoughCompetitors).
			WithField("roster.size", len(r))
	}
	i, j := random.Pair(src, len(r))
	return r[i], r[j], nil
}

// Find returns the competitor with the given name, ignoring case.
func (r Roster) Find(name string) (*Competitor, bool) {
	for _, c := range r {
		if strings.EqualFold(c.Name(), name) {
			return c, true
		}
	}
	return nil, false
}
