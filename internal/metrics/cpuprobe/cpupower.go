package cpuprobe

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// ParseError reports cpupower output that was produced successfully but
// does not match the expected grammar. Unlike a missing or failing tool
// it is surfaced to the caller, since it signals a tool version the
// probe does not understand.
type ParseError struct {
	Output string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse cpupower output: %q", e.Output)
}

// CommandRunner launches an external command and returns its combined
// output. It exists so tests can count and fake tool invocations.
type CommandRunner interface {
	CombinedOutput(ctx context.Context, name string, args []string, env []string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) CombinedOutput(ctx context.Context, name string, args []string, env []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = env
	return cmd.CombinedOutput()
}

// BoostTool probes per-core boost support via `cpupower -c <cpu>
// frequency-info`. The first launch failure or non-zero exit disables
// the tool for the rest of the process: it is either installed and
// working or not installed for the whole host, and retrying a broken
// tool once per core would spawn tens of doomed processes.
type BoostTool struct {
	path   string
	runner CommandRunner
	log    *logrus.Entry

	mu       sync.Mutex
	disabled bool
}

// NewBoostTool creates a boost prober invoking the tool at path.
func NewBoostTool(path string, log *logrus.Entry) *BoostTool {
	return &BoostTool{
		path:   path,
		runner: execRunner{},
		log:    log,
	}
}

// NewBoostToolWithRunner creates a boost prober with an injected runner.
func NewBoostToolWithRunner(path string, runner CommandRunner, log *logrus.Entry) *BoostTool {
	return &BoostTool{
		path:   path,
		runner: runner,
		log:    log,
	}
}

// Probe reports whether boost is supported on the given core. ok is
// false when the tool is disabled or unavailable; err is non-nil only
// for a *ParseError on successful tool output.
func (b *BoostTool) Probe(ctx context.Context, cpu int) (supported bool, ok bool, err error) {
	b.mu.Lock()
	disabled := b.disabled
	b.mu.Unlock()
	if disabled {
		return false, false, nil
	}

	// Force an unambiguous locale so the output grammar is stable.
	env := append(os.Environ(), "LC_ALL=C")
	args := []string{"-c", strconv.Itoa(cpu), "frequency-info"}

	out, runErr := b.runner.CombinedOutput(ctx, b.path, args, env)
	if runErr != nil {
		// Launch failure or non-zero exit: assume the tool is not
		// installed or not working on this host and never try again.
		b.mu.Lock()
		b.disabled = true
		b.mu.Unlock()
		b.log.WithError(runErr).Debug("cpupower unavailable, disabling boost probe")
		return false, false, nil
	}

	supported, err = parseBoostOutput(string(out))
	if err != nil {
		return false, false, err
	}
	return supported, true, nil
}

// parseBoostOutput extracts the "Supported:" value from the "boost
// state support" section of cpupower frequency-info output.
func parseBoostOutput(out string) (bool, error) {
	inBoost := false
	for _, line := range strings.Split(out, "\n") {
		if inBoost {
			if strings.Contains(line, "Supported:") {
				_, value, _ := strings.Cut(line, ":")
				switch strings.TrimSpace(value) {
				case "yes":
					return true, nil
				case "no":
					return false, nil
				}
				return false, &ParseError{Output: line}
			}
		} else if strings.Contains(line, "boost state support") {
			inBoost = true
		}
	}
	return false, &ParseError{Output: out}
}
