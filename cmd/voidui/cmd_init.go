package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mnove/voidui/internal/lock"
	"github.com/mnove/voidui/internal/project"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter config and empty lock file",
		RunE:  runInit,
	}
	cmd.Flags().String("registry", "", "Component registry base URL (required)")
	cmd.Flags().String("components-dir", "components/ui", "Directory for component source files")
	cmd.Flags().String("extension", ".tsx", "Component file extension")
	return cmd
}

func runInit(cmd *cobra.Command, _ []string) error {
	root, _ := cmd.Flags().GetString("root")
	registryURL, _ := cmd.Flags().GetString("registry")
	componentsDir, _ := cmd.Flags().GetString("components-dir")
	extension, _ := cmd.Flags().GetString("extension")

	if registryURL == "" {
		return fmt.Errorf("--registry is required")
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving project root: %w", err)
	}

	configPath := filepath.Join(root, project.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", project.ConfigFileName)
	}

	cfg := project.DefaultConfig(registryURL)
	cfg.ComponentsDir = componentsDir
	cfg.Extension = extension
	if err := project.SaveConfig(configPath, cfg); err != nil {
		return err
	}

	lockPath := filepath.Join(root, project.LockFileName)
	if _, err := os.Stat(lockPath); os.IsNotExist(err) {
		if err := lock.Save(lockPath, lock.NewStore()); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Initialized voidui project in %s\n", root)
	_, _ = fmt.Fprintf(out, "  config: %s\n  lock:   %s\n", project.ConfigFileName, project.LockFileName)
	return nil
}
