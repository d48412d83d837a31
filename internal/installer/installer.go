// Package installer invokes the external installer process that
// physically writes component source files into the project. The tool
// never inspects the installer's output, only whether it succeeded.
package installer

import (
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// NamePlaceholder is replaced with the component name in the command template.
const NamePlaceholder = "{name}"

// Runner executes a configured installer command per component.
type Runner struct {
	dir    string
	argv   []string
	stdout io.Writer
	stderr io.Writer
}

// New creates a Runner that executes argv (with NamePlaceholder
// substitution) in dir. Output streams to the given writers.
func New(dir string, argv []string, stdout, stderr io.Writer) (*Runner, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("installer: command is empty")
	}
	return &Runner{dir: dir, argv: argv, stdout: stdout, stderr: stderr}, nil
}

// Install runs the installer for one component. No shell expansion.
func (r *Runner) Install(name string) error {
	argv := make([]string, len(r.argv))
	for i, a := range r.argv {
		argv[i] = strings.ReplaceAll(a, NamePlaceholder, name)
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = r.dir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("installing %s: %w", name, err)
	}
	return nil
}
