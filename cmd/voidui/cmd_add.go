package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mnove/voidui/internal/checksum"
	"github.com/mnove/voidui/internal/installer"
	"github.com/mnove/voidui/internal/lock"
	"github.com/mnove/voidui/internal/registry"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>...",
		Short: "Install components and start tracking them",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAdd,
	}
	cmd.Flags().String("registry", "", "Registry URL override recorded for these components")
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx, err := loadProject(cmd)
	if err != nil {
		return err
	}
	registryOverride, _ := cmd.Flags().GetString("registry")

	run, err := installer.New(ctx.Root, ctx.Config.Installer, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	store := ctx.Lock

	for _, name := range args {
		registryURL := ctx.Config.RegistryURL
		if registryOverride != "" {
			registryURL = registryOverride
		}
		client := registry.New(registryURL)

		item, err := client.FetchItem(cmd.Context(), name)
		if err != nil {
			return err
		}

		if err := run.Install(name); err != nil {
			return err
		}

		// Checksum what the installer actually wrote, not what the
		// registry claims: that snapshot is the drift baseline.
		content, err := ctx.ReadComponent(name)
		if err != nil {
			return fmt.Errorf("installer did not produce %s: %w", ctx.ComponentPath(name), err)
		}

		store = store.Upsert(name, lock.Record{
			InstalledVersion: item.CurrentVersion,
			InstalledAt:      time.Now().UTC().Format(time.RFC3339),
			Checksum:         checksum.Sum(content),
			RegistryURL:      registryOverride,
		})
		_, _ = fmt.Fprintf(out, "Added %s @ %s\n", name, item.CurrentVersion)
	}

	if err := ctx.SaveLock(store); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Tracking %d component(s).\n", len(store.Components))
	return nil
}
