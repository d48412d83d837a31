package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mnove/voidui/internal/checksum"
	"github.com/mnove/voidui/internal/lock"
	"github.com/mnove/voidui/internal/merge"
	"github.com/mnove/voidui/internal/project"
	"github.com/mnove/voidui/internal/registry"
	"github.com/mnove/voidui/internal/ui"
)

func newUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [name ...]",
		Short: "Reconcile tracked components with their upstream versions",
		Long: `Update rewrites tracked components to the registry's current version.
Locally modified files are reconciled with a three-way merge against the
originally installed version; conflicting regions are written with
conflict markers for manual resolution.`,
		RunE: runUpdate,
	}
	cmd.Flags().Bool("force", false, "Overwrite local modifications when no merge base is available")
	cmd.Flags().String("ours-label", merge.DefaultOursLabel, "Conflict marker label for local changes")
	cmd.Flags().String("theirs-label", merge.DefaultTheirsLabel, "Conflict marker label for upstream changes")
	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	oursLabel, _ := cmd.Flags().GetString("ours-label")
	theirsLabel, _ := cmd.Flags().GetString("theirs-label")

	ctx, err := loadProject(cmd)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		for name := range ctx.Lock.Components {
			names = append(names, name)
		}
		sort.Strings(names)
	}
	if len(names) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tracked components.")
		return nil
	}

	opts := merge.Options{OursLabel: oursLabel, TheirsLabel: theirsLabel}
	progress := ui.NewProgress(cmd.ErrOrStderr(), len(names))
	store := ctx.Lock
	totalConflicts := 0

	for _, name := range names {
		updated, err := updateComponent(cmd, ctx, &store, name, opts, force, progress)
		if err != nil {
			return fmt.Errorf("component %s: %w", name, err)
		}
		totalConflicts += updated
	}

	if err := ctx.SaveLock(store); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if totalConflicts > 0 {
		_, _ = fmt.Fprintln(out, ui.Warn(fmt.Sprintf(
			"Update finished with %d unresolved conflict(s); search for <<<<<<< markers and resolve them.", totalConflicts)))
		return nil
	}
	_, _ = fmt.Fprintln(out, "Update complete.")
	return nil
}

// updateComponent reconciles one component and returns how many
// conflict regions were written for it.
func updateComponent(cmd *cobra.Command, ctx *project.Context, store *lock.Store, name string, opts merge.Options, force bool, progress *ui.Progress) (int, error) {
	rec, ok := store.Get(name)
	if !ok {
		return 0, fmt.Errorf("not tracked; run 'voidui add %s' first", name)
	}

	client := registry.New(ctx.RegistryURL(name))
	item, err := client.FetchItem(cmd.Context(), name)
	if errors.Is(err, registry.ErrNotFound) {
		progress.Warn("%s no longer exists in the registry; skipping", name)
		progress.Done(name + " skipped")
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	if item.CurrentVersion == rec.InstalledVersion {
		progress.Done(fmt.Sprintf("%s already at %s", name, rec.InstalledVersion))
		return 0, nil
	}

	theirs := checksum.Normalize(item.Source)

	local, err := ctx.ReadComponent(name)
	if errors.Is(err, os.ErrNotExist) {
		// File was deleted locally; reinstall upstream content.
		if err := writeAndRecord(ctx, store, name, rec, theirs, item.CurrentVersion); err != nil {
			return 0, err
		}
		progress.Done(fmt.Sprintf("%s restored @ %s", name, item.CurrentVersion))
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	ours := checksum.Normalize(local)

	if !checksum.Modified(rec.Checksum, local) {
		// No drift: plain overwrite is safe.
		if err := writeAndRecord(ctx, store, name, rec, theirs, item.CurrentVersion); err != nil {
			return 0, err
		}
		progress.Done(fmt.Sprintf("%s updated %s -> %s", name, rec.InstalledVersion, item.CurrentVersion))
		return 0, nil
	}

	base, err := client.FetchSource(cmd.Context(), name, rec.InstalledVersion)
	if errors.Is(err, registry.ErrNotFound) {
		// No merge base: fall back to overwrite, but only with explicit consent.
		okToOverwrite, err := confirmOverwrite(cmd, name, rec.InstalledVersion, force)
		if err != nil {
			return 0, err
		}
		if !okToOverwrite {
			progress.Done(name + " skipped (kept local modifications)")
			return 0, nil
		}
		if err := writeAndRecord(ctx, store, name, rec, theirs, item.CurrentVersion); err != nil {
			return 0, err
		}
		progress.Done(fmt.Sprintf("%s overwritten @ %s (local modifications lost)", name, item.CurrentVersion))
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	res := merge.Merge(checksum.Normalize(base), ours, theirs, opts)
	if err := writeAndRecord(ctx, store, name, rec, res.Content, item.CurrentVersion); err != nil {
		return 0, err
	}

	if res.Conflicts > 0 {
		progress.Warn("%s merged with %d conflict(s)", name, res.Conflicts)
	}
	progress.Done(fmt.Sprintf("%s merged %s -> %s", name, rec.InstalledVersion, item.CurrentVersion))
	return res.Conflicts, nil
}

// writeAndRecord writes the component content and updates the lock
// snapshot with the checksum of exactly what was written.
func writeAndRecord(ctx *project.Context, store *lock.Store, name string, rec lock.Record, content, newVersion string) error {
	if err := ctx.WriteComponent(name, content); err != nil {
		return err
	}
	rec.InstalledVersion = newVersion
	rec.InstalledAt = time.Now().UTC().Format(time.RFC3339)
	rec.Checksum = checksum.Sum(content)
	*store = store.Upsert(name, rec)
	return nil
}

func confirmOverwrite(cmd *cobra.Command, name, baseVersion string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf(
			"version %s is no longer available as a merge base and the file has local modifications; re-run with --force to overwrite them",
			baseVersion)
	}
	return promptConfirm(fmt.Sprintf(
		"%s: no merge base for %s; overwrite local modifications?", name, baseVersion))
}
