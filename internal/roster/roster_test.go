package roster

import (
	"testing"

	"github.com/Iron-Ham/rapbattle/internal/errors"
	"github.com/Iron-Ham/rapbattle/internal/random"
	"github.com/Iron-Ham/rapbattle/internal/testutil"
)

func TestDefault(t *testing.T) {
	r := Default()

	if len(r) != 4 {
		t.Fatalf("len(Default()) = %d, want 4", len(r))
	}
	if err := r.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}

	wantNames := []string{"MC Flow", "Rhythm King", "Lyric Ace", "Beat Boxer"}
	for i, c := range r {
		if c.Name() != wantNames[i] {
			t.Errorf("Default()[%d].Name() = %q, want %q", i, c.Name(), wantNames[i])
		}
		if c.LineCount() < 1 {
			t.Errorf("%s has %d lines, want at least 1", c.Name(), c.LineCount())
		}
		if c.Score() != 0 {
			t.Errorf("%s starts with score %d, want 0", c.Name(), c.Score())
		}
	}
}

func TestDefault_FreshEachCall(t *testing.T) {
	first := Default()
	first[0].Award()

	second := Default()
	if second[0].Score() != 0 {
		t.Errorf("second Default()[0].Score() = %d, want 0", second[0].Score())
	}
	if first[0] == second[0] {
		t.Error("Default() returned shared competitor pointers")
	}
}

func TestCompetitor_LinesAreCopied(t *testing.T) {
	lines := []string{"one", "two"}
	c := NewCompetitor("A", "Style", lines)

	lines[0] = "mutated"
	if got := c.Lines()[0]; got != "one" {
		t.Errorf("Lines()[0] = %q after caller mutation, want %q", got, "one")
	}

	out := c.Lines()
	out[1] = "mutated"
	if got := c.Lines()[1]; got != "two" {
		t.Errorf("Lines()[1] = %q after result mutation, want %q", got, "two")
	}
}

func TestCompetitor_Award(t *testing.T) {
	c := NewCompetitor("A", "Style", []string{"x"})
	for i := 1; i <= 3; i++ {
		c.Award()
		if c.Score() != i {
			t.Errorf("Score() = %d, want %d", c.Score(), i)
		}
	}
}

func TestCompetitor_Line(t *testing.T) {
	c := NewCompetitor("A", "Style", []string{"first", "second", "third"})
	src := testutil.NewScriptedSource(t, 2, 0, 2)

	want := []string{"third", "first", "third"}
	for i, w := range want {
		if got := c.Line(src); got != w {
			t.Errorf("Line() call %d = %q, want %q", i, got, w)
		}
	}
}

func TestCompetitor_LineStaysInSet(t *testing.T) {
	c := Default()[2]
	allowed := make(map[string]bool)
	for _, l := range c.Lines() {
		allowed[l] = true
	}

	src := random.New(3)
	for i := 0; i < 200; i++ {
		if l := c.Line(src); !allowed[l] {
			t.Fatalf("Line() = %q, not one of the competitor's lines", l)
		}
	}
}

func TestCompetitor_String(t *testing.T) {
	c := NewCompetitor("MC Flow", "Smooth Flow", []string{"x"})
	if got := c.String(); got != "MC Flow (Smooth Flow)" {
		t.Errorf("String() = %q, want %q", got, "MC Flow (Smooth Flow)")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		roster  Roster
		wantErr error
	}{
		{
			name:    "empty",
			roster:  Roster{},
			wantErr: errors.ErrNotEnoughCompetitors,
		},
		{
			name:    "single",
			roster:  Roster{NewCompetitor("A", "s", []string{"x"})},
			wantErr: errors.ErrNotEnoughCompetitors,
		},
		{
			name:    "no lines",
			roster:  Roster{NewCompetitor("A", "s", []string{"x"}), NewCompetitor("B", "s", nil)},
			wantErr: errors.ErrNoLines,
		},
		{
			name:    "blank name",
			roster:  Roster{NewCompetitor("A", "s", []string{"x"}), NewCompetitor("  ", "s", []string{"y"})},
			wantErr: errors.ErrEmptyName,
		},
		{
			name:    "nil entry",
			roster:  Roster{NewCompetitor("A", "s", []string{"x"}), nil},
			wantErr: errors.ErrEmptyName,
		},
		{
			name:    "duplicate names",
			roster:  Roster{NewCompetitor("Ace", "s", []string{"x"}), NewCompetitor("ace", "s", []string{"y"})},
			wantErr: errors.ErrDuplicateCompetitor,
		},
		{
			name:   "valid",
			roster: Roster{NewCompetitor("A", "s", []string{"x"}), NewCompetitor("B", "s", []string{"yy"})},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.roster.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.IsConfigurationError(err) {
				t.Errorf("Validate() error %T is not a ConfigurationError", err)
			}
		})
	}
}

func TestDraw(t *testing.T) {
	r := Default()
	src := testutil.NewScriptedSource(t, 3, 0)

	a, b, err := r.Draw(src)
	if err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if a.Name() != "Beat Boxer" {
		t.Errorf("challenger = %q, want %q", a.Name(), "Beat Boxer")
	}
	if b.Name() != "MC Flow" {
		t.Errorf("opponent = %q, want %q", b.Name(), "MC Flow")
	}
}

func TestDraw_AlwaysDistinct(t *testing.T) {
	r := Default()
	src := random.New(11)
	counts := make(map[string]int)

	for i := 0; i < 500; i++ {
		a, b, err := r.Draw(src)
		if err != nil {
			t.Fatalf("Draw() error = %v", err)
		}
		if a == b {
			t.Fatalf("Draw() returned %q twice", a.Name())
		}
		counts[a.Name()]++
		counts[b.Name()]++
	}
	for _, c := range r {
		if counts[c.Name()] == 0 {
			t.Errorf("%s was never drawn in 500 battles", c.Name())
		}
	}
}

func TestDraw_TooFew(t *testing.T) {
	r := Roster{NewCompetitor("Solo", "s", []string{"x"})}
	_, _, err := r.Draw(random.New(1))
	if !errors.Is(err, errors.ErrNotEnoughCompetitors) {
		t.Errorf("Draw() error = %v, want ErrNotEnoughCompetitors", err)
	}
}

func TestFind(t *testing.T) {
	r := Default()
	c, ok := r.Find("lyric ace")
	if !ok || c.Name() != "Lyric Ace" {
		t.Errorf("Find(%q) = %v, %v", "lyric ace", c, ok)
	}
	if _, ok := r.Find("Nobody"); ok {
		t.Error("Find(\"Nobody\") ok = true, want false")
	}
}
