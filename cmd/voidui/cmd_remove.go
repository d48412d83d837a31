package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <name>...",
		Short: "Stop tracking components",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runRemove,
	}
	cmd.Flags().Bool("delete", false, "Also delete the component source files")
	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	del, _ := cmd.Flags().GetBool("delete")

	ctx, err := loadProject(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	store := ctx.Lock

	for _, name := range args {
		if !store.IsTracked(name) {
			_, _ = fmt.Fprintf(out, "%s is not tracked; nothing to do.\n", name)
			continue
		}
		store = store.Remove(name)
		_, _ = fmt.Fprintf(out, "Untracked %s.\n", name)

		if del {
			if err := os.Remove(ctx.ComponentPath(name)); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("deleting %s: %w", ctx.ComponentPath(name), err)
			}
			_, _ = fmt.Fprintf(out, "Deleted %s.\n", ctx.ComponentPath(name))
		}
	}

	return ctx.SaveLock(store)
}
