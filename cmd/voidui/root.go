package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mnove/voidui/internal/lock"
	"github.com/mnove/voidui/internal/project"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "voidui",
		Short:   "Track, diff and update copy-pasted UI components",
		Version: version,
	}

	cmd.PersistentFlags().String("root", ".", "Project root directory")

	cmd.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newStatusCmd(),
		newUpdateCmd(),
		newDiffCmd(),
		newRemoveCmd(),
		newChangelogCmd(),
	)

	return cmd
}

// loadProject resolves the project for a command, attaching a
// remediation hint when the lock file is corrupt.
func loadProject(cmd *cobra.Command) (*project.Context, error) {
	root, _ := cmd.Flags().GetString("root")
	ctx, err := project.Load(root)
	if err != nil {
		if errors.Is(err, lock.ErrCorrupt) {
			return nil, fmt.Errorf("%v\nfix %s by hand or delete it and re-add your components", err, project.LockFileName)
		}
		return nil, err
	}
	return ctx, nil
}
