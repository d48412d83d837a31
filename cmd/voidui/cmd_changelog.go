package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mnove/voidui/internal/changelog"
)

func newChangelogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "changelog <component>",
		Short: "Author a new changelog entry for a component",
		Long: `Changelog prepends a release entry to the component's changelog file.
With --version and --message the entry is created directly; otherwise an
interactive prompt collects the changes. History is append-only: existing
entries are never rewritten.`,
		Args: cobra.ExactArgs(1),
		RunE: runChangelog,
	}
	cmd.Flags().String("version", "", "Version of the new entry")
	cmd.Flags().String("type", string(changelog.TypeChanged), "Change type (added, changed, deprecated, removed, fixed, security)")
	cmd.Flags().String("message", "", "Change description")
	cmd.Flags().Bool("breaking", false, "Mark the entry as breaking")
	return cmd
}

func runChangelog(cmd *cobra.Command, args []string) error {
	component := args[0]
	versionFlag, _ := cmd.Flags().GetString("version")
	typeFlag, _ := cmd.Flags().GetString("type")
	message, _ := cmd.Flags().GetString("message")
	breaking, _ := cmd.Flags().GetBool("breaking")

	ctx, err := loadProject(cmd)
	if err != nil {
		return err
	}

	path := ctx.ChangelogPath(component)
	cl, err := changelog.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cl = &changelog.Changelog{Component: component}
	} else if err != nil {
		if errors.Is(err, changelog.ErrCorrupt) {
			return fmt.Errorf("%v\nfix %s by hand; history is never rewritten automatically", err, path)
		}
		return err
	}

	var entry changelog.Entry
	if versionFlag != "" && message != "" {
		entry = changelog.Entry{
			Version:  versionFlag,
			Date:     time.Now().UTC().Format(time.RFC3339),
			Breaking: breaking,
			Changes: []changelog.Change{
				{Type: changelog.ChangeType(typeFlag), Description: message},
			},
		}
	} else {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("stdin is not a TTY; provide --version and --message")
		}
		entry, err = promptEntry(cl)
		if err != nil {
			return fmt.Errorf("interactive changelog: %w", err)
		}
	}

	var out *changelog.Changelog
	if len(cl.Entries) == 0 && cl.CurrentVersion == "" {
		out = &changelog.Changelog{
			Component:      component,
			CurrentVersion: entry.Version,
			Entries:        []changelog.Entry{entry},
		}
		if err := changelog.Validate(out); err != nil {
			return err
		}
	} else {
		out, err = changelog.Prepend(cl, entry)
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating changelog directory: %w", err)
	}
	if err := changelog.Save(path, out); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s %s (%d change(s)).\n",
		component, entry.Version, len(entry.Changes))
	return nil
}
