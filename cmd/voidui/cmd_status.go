package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/spf13/cobra"

	"github.com/mnove/voidui/internal/checksum"
	"github.com/mnove/voidui/internal/project"
	"github.com/mnove/voidui/internal/registry"
	"github.com/mnove/voidui/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show tracked components, their versions and local drift",
		RunE:  runStatus,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	cmd.Flags().Int("jobs", 4, "Number of parallel registry fetches")
	return cmd
}

type componentStatus struct {
	Name      string `json:"name"`
	Installed string `json:"installed"`
	Latest    string `json:"latest,omitempty"`
	Modified  bool   `json:"modified"`
	Missing   bool   `json:"missing,omitempty"`
	Error     string `json:"error,omitempty"`
}

func runStatus(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	jobs, _ := cmd.Flags().GetInt("jobs")
	if jobs < 1 {
		return fmt.Errorf("--jobs must be >= 1 (got %d)", jobs)
	}

	ctx, err := loadProject(cmd)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(ctx.Lock.Components))
	for name := range ctx.Lock.Components {
		names = append(names, name)
	}
	sort.Strings(names)

	statuses := collectStatuses(cmd, ctx, names, jobs)

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(statuses)
	}

	tbl := ui.NewTable(out, "COMPONENT", "INSTALLED", "LATEST", "STATE")
	for _, s := range statuses {
		tbl.Row(s.Name, s.Installed, orDash(s.Latest), renderState(s))
	}
	return tbl.Flush()
}

func collectStatuses(cmd *cobra.Command, ctx *project.Context, names []string, jobs int) []componentStatus {
	statuses := make([]componentStatus, len(names))
	sem := make(chan struct{}, jobs)
	var wg sync.WaitGroup

	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			statuses[i] = collectStatus(cmd, ctx, name)
		}(i, name)
	}
	wg.Wait()
	return statuses
}

func collectStatus(cmd *cobra.Command, ctx *project.Context, name string) componentStatus {
	rec, _ := ctx.Lock.Get(name)
	s := componentStatus{Name: name, Installed: rec.InstalledVersion}

	content, err := ctx.ReadComponent(name)
	switch {
	case errors.Is(err, os.ErrNotExist):
		s.Missing = true
	case err != nil:
		s.Error = err.Error()
	default:
		s.Modified = checksum.Modified(rec.Checksum, content)
	}

	client := registry.New(ctx.RegistryURL(name))
	item, err := client.FetchItem(cmd.Context(), name)
	switch {
	case errors.Is(err, registry.ErrNotFound):
		// Component vanished upstream; not an error.
	case err != nil:
		s.Error = err.Error()
	default:
		s.Latest = item.CurrentVersion
	}
	return s
}

func renderState(s componentStatus) string {
	switch {
	case s.Error != "":
		return ui.ErrorStyle.Render("error")
	case s.Missing:
		return ui.ErrorStyle.Render("missing")
	case s.Modified && s.Latest != "" && s.Latest != s.Installed:
		return ui.Warn("modified, update available")
	case s.Modified:
		return ui.Warn("modified")
	case s.Latest != "" && s.Latest != s.Installed:
		return "update available"
	default:
		return ui.Ok("clean")
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
