package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mnove/voidui/internal/changelog"
	"github.com/mnove/voidui/internal/checksum"
	"github.com/mnove/voidui/internal/diffutil"
	"github.com/mnove/voidui/internal/project"
	"github.com/mnove/voidui/internal/registry"
	"github.com/mnove/voidui/internal/ui"
)

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <name>",
		Short: "Show changelog entries and code changes between versions",
		Args:  cobra.ExactArgs(1),
		RunE:  runDiff,
	}
	cmd.Flags().String("to", "", "Target version (default: registry current)")
	cmd.Flags().Bool("code", false, "Also show a unified diff of the local file against upstream")
	cmd.Flags().Int("context", diffutil.DefaultContext, "Context lines in the code diff")
	return cmd
}

func runDiff(cmd *cobra.Command, args []string) error {
	name := args[0]
	to, _ := cmd.Flags().GetString("to")
	showCode, _ := cmd.Flags().GetBool("code")
	contextLines, _ := cmd.Flags().GetInt("context")

	ctx, err := loadProject(cmd)
	if err != nil {
		return err
	}

	rec, ok := ctx.Lock.Get(name)
	if !ok {
		return fmt.Errorf("component %s is not tracked", name)
	}

	client := registry.New(ctx.RegistryURL(name))
	item, err := client.FetchItem(cmd.Context(), name)
	if err != nil {
		return err
	}
	if to == "" {
		to = item.CurrentVersion
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, ui.HeaderStyle.Render(fmt.Sprintf("%s: %s -> %s", name, rec.InstalledVersion, to)))

	entries := changelog.EntriesBetween(item.Changelog, rec.InstalledVersion, to)
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(out, "No changelog data available for this version range.")
	} else {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprint(out, changelog.SummarizeRange(entries))
	}

	if !showCode {
		return nil
	}
	return printCodeDiff(cmd, ctx, client, name, to, item.CurrentVersion, item.Source, contextLines)
}

func printCodeDiff(cmd *cobra.Command, ctx *project.Context, client *registry.Client, name, to, currentVersion, currentSource string, contextLines int) error {
	local, err := ctx.ReadComponent(name)
	if err != nil {
		return err
	}

	upstream := currentSource
	if to != currentVersion {
		upstream, err = client.FetchSource(cmd.Context(), name, to)
		if errors.Is(err, registry.ErrNotFound) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nSource for %s@%s is not available.\n", name, to)
			return nil
		}
		if err != nil {
			return err
		}
	}

	text, err := diffutil.Unified(
		checksum.Normalize(local),
		checksum.Normalize(upstream),
		fmt.Sprintf("%s (local)", name),
		fmt.Sprintf("%s@%s", name, to),
		contextLines,
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if text == "" {
		_, _ = fmt.Fprintln(out, "\nLocal file matches upstream.")
		return nil
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprint(out, text)
	return nil
}
