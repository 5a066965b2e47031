// Package launcher resolves the radux-menu binary and invokes it at a screen
// position. The menu itself lives in a separate compiled binary; this package
// only decides where to open it and spawns the process.
package launcher

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/radux/radux-launch/internal/platform"
)

// menuBinaryName is the radial menu executable, built from the C++ tree into
// <install root>/bin.
const menuBinaryName = "radux-menu"

// Status classifies the outcome of a menu invocation. Failures the operator
// can act on are statuses, not errors: the caller always gets an Outcome back
// unless coordinate acquisition itself failed.
type Status int

const (
	StatusOK Status = iota
	StatusMissingBinary
	StatusExitError
)

// Outcome describes one invocation: the position the menu was opened at, the
// argv that was (or would have been) executed, and the failure detail for
// non-OK statuses.
type Outcome struct {
	Status Status
	X, Y   int
	Args   []string
	Detail string
}

// Config locates the menu binary. InstallRoot is computed once at startup
// from the launcher's own path and never from the working directory or $PATH.
type Config struct {
	InstallRoot string
	MenuBin     string // absolute override; empty = <InstallRoot>/bin/radux-menu
}

// DefaultConfig derives the install root from the running executable. The
// launcher ships in <root>/bin alongside radux-menu, so the root is two
// levels up from the binary itself.
func DefaultConfig() (Config, error) {
	exe, err := os.Executable()
	if err != nil {
		return Config{}, fmt.Errorf("locate launcher executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return Config{InstallRoot: filepath.Dir(filepath.Dir(exe))}, nil
}

// MenuBinary is the resolved path of the menu executable.
func (c Config) MenuBinary() string {
	if c.MenuBin != "" {
		return c.MenuBin
	}
	return filepath.Join(c.InstallRoot, "bin", menuBinaryName)
}

// RunOptions selects where and how to open the menu. A nil X or Y means the
// position comes from the pointer locator; the pair is always queried
// together, never half supplied and half queried.
type RunOptions struct {
	X, Y           *int
	ConfigOverride string // forwarded as `--cli <value>` when non-empty
}

// Launcher invokes the menu binary. Informational lines (resolved position,
// assembled command, failure detail) go to the info writer, stderr by default,
// keeping stdout free for structured output.
type Launcher struct {
	cfg     Config
	locator platform.PointerLocator
	info    io.Writer
}

func New(cfg Config, locator platform.PointerLocator) *Launcher {
	return &Launcher{cfg: cfg, locator: locator, info: os.Stderr}
}

// Run invokes the menu once and waits for it to exit. A missing binary or a
// non-zero exit is reported in the Outcome with a nil error; only a failed
// pointer query returns an error, unmodified.
func (l *Launcher) Run(opts RunOptions) (Outcome, error) {
	var x, y int
	if opts.X == nil || opts.Y == nil {
		var err error
		x, y, err = l.locator.PointerPosition()
		if err != nil {
			return Outcome{}, err
		}
		fmt.Fprintf(l.info, "Pointer position: %d, %d\n", x, y)
	} else {
		x, y = *opts.X, *opts.Y
	}

	args := buildArgs(l.cfg.MenuBinary(), x, y, opts.ConfigOverride)
	fmt.Fprintf(l.info, "Running: %s\n", strings.Join(args, " "))

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return Outcome{Status: StatusOK, X: x, Y: y, Args: args}, nil
	case errors.As(err, &exitErr):
		detail := fmt.Sprintf("radial menu failed: %v", exitErr)
		fmt.Fprintln(l.info, detail)
		return Outcome{Status: StatusExitError, X: x, Y: y, Args: args, Detail: detail}, nil
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		detail := missingBinaryDetail(args[0])
		fmt.Fprintln(l.info, detail)
		return Outcome{Status: StatusMissingBinary, X: x, Y: y, Args: args, Detail: detail}, nil
	default:
		return Outcome{}, err
	}
}

// buildArgs assembles the child argv: binary path, decimal coordinates, then
// the optional --cli override as the final pair.
func buildArgs(bin string, x, y int, override string) []string {
	args := []string{bin, strconv.Itoa(x), strconv.Itoa(y)}
	if override != "" {
		args = append(args, "--cli", override)
	}
	return args
}

func missingBinaryDetail(bin string) string {
	return fmt.Sprintf("radux-menu not found at %s\nPlease build the menu binary first:\n  cmake -B build -S .\n  cmake --build build", bin)
}
