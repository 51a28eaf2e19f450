package cmd

import (
	"fmt"

	"github.com/Iron-Ham/rapbattle/internal/config"
	"github.com/Iron-Ham/rapbattle/internal/report"
	"github.com/Iron-Ham/rapbattle/internal/roster"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// builtinRoster names the default roster in logs and output.
const builtinRoster = "built-in"

func newRosterCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "roster",
		Short: "List the rappers available for battle",
		Long: `List the rappers in the active roster.

The built-in roster is used unless --roster or roster.file names a YAML file.
Use --yaml to print the roster in that file format, ready to edit.`,
		Args: cobra.NoArgs,
		RunE: runRoster,
	}
	c.Flags().Bool("lines", false, "show every line of each rapper")
	c.Flags().Bool("yaml", false, "print the roster as a YAML roster file")
	return c
}

func runRoster(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	r, source, err := loadRoster(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		data, err := yaml.Marshal(r.ToFile())
		if err != nil {
			return fmt.Errorf("failed to encode roster: %w", err)
		}
		_, err = out.Write(data)
		return err
	}

	st := report.NewStyles(out)
	showLines, _ := cmd.Flags().GetBool("lines")

	_, _ = fmt.Fprintln(out, st.Title.Render(fmt.Sprintf("Roster (%s)", source)))
	_, _ = fmt.Fprintln(out)
	for i, c := range r {
		_, _ = fmt.Fprintf(out, "%d. %s %s %s\n", i+1, st.Speaker.Render(c.Name()),
			st.Muted.Render("("+c.Style()+")"),
			st.Muted.Render(fmt.Sprintf("%d lines", c.LineCount())))
		if showLines {
			for _, line := range c.Lines() {
				_, _ = fmt.Fprintf(out, "   %s\n", st.Verse.Render(`"`+line+`"`))
			}
		}
	}
	return nil
}

// loadRoster returns the configured roster and a label for where it came
// from. The roster is always validated.
func loadRoster(cfg *config.Config) (roster.Roster, string, error) {
	if cfg.Roster.File == "" {
		r := roster.Default()
		if err := r.Validate(); err != nil {
			return nil, "", err
		}
		return r, builtinRoster, nil
	}

	r, err := roster.LoadFile(cfg.Roster.File)
	if err != nil {
		return nil, "", err
	}
	return r, cfg.Roster.File, nil
}
