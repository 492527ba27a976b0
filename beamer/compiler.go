package beamer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrCompilerNotFound reports that no LaTeX compiler is available on PATH.
var ErrCompilerNotFound = errors.New("pdflatex not found in PATH")

// auxExtensions are the intermediate files pdflatex leaves behind. They
// are removed after a successful run.
var auxExtensions = []string{".aux", ".log", ".out", ".nav", ".snm", ".toc"}

// Compiler runs an external LaTeX compiler over a rendered .tex file.
// The zero value uses pdflatex with two passes, which is enough for
// Beamer's frame numbering and outline to converge.
type Compiler struct {
	// Command is the compiler binary. Defaults to "pdflatex".
	Command string

	// Runs is the number of compile passes. Defaults to 2.
	Runs int
}

func (c *Compiler) command() string {
	if c.Command == "" {
		return "pdflatex"
	}
	return c.Command
}

func (c *Compiler) runs() int {
	if c.Runs <= 0 {
		return 2
	}
	return c.Runs
}

// Compile compiles texPath and places the resulting PDF in pdfDir,
// returning the PDF path. An empty pdfDir leaves the PDF next to the
// .tex file. The compiler runs in the .tex file's directory so that
// intermediate files land next to the source; they are cleaned up on
// success. A missing compiler binary is reported as ErrCompilerNotFound.
func (c *Compiler) Compile(ctx context.Context, texPath, pdfDir string) (string, error) {
	bin, err := exec.LookPath(c.command())
	if err != nil {
		return "", fmt.Errorf("%w (looked for %q)", ErrCompilerNotFound, c.command())
	}

	texDir := filepath.Dir(texPath)
	base := filepath.Base(texPath)

	for i := 0; i < c.runs(); i++ {
		cmd := exec.CommandContext(ctx, bin, "-interaction=nonstopmode", base)
		cmd.Dir = texDir
		if out, err := cmd.CombinedOutput(); err != nil {
			return "", fmt.Errorf("%s pass %d on %s: %w\n%s",
				c.command(), i+1, base, err, tail(out, 20))
		}
	}

	stem := strings.TrimSuffix(base, filepath.Ext(base))
	built := filepath.Join(texDir, stem+".pdf")
	if _, err := os.Stat(built); err != nil {
		return "", fmt.Errorf("%s produced no PDF for %s: %w", c.command(), base, err)
	}

	cleanAux(texDir, stem)

	if pdfDir == "" {
		return built, nil
	}
	target := filepath.Join(pdfDir, stem+".pdf")
	if sameFile(built, target) {
		return built, nil
	}
	if err := os.MkdirAll(pdfDir, 0o755); err != nil {
		return "", fmt.Errorf("creating PDF directory: %w", err)
	}
	if err := moveFile(built, target); err != nil {
		return "", fmt.Errorf("placing PDF: %w", err)
	}
	return target, nil
}

func cleanAux(dir, stem string) {
	for _, ext := range auxExtensions {
		os.Remove(filepath.Join(dir, stem+ext))
	}
}

func sameFile(a, b string) bool {
	aAbs, err1 := filepath.Abs(a)
	bAbs, err2 := filepath.Abs(b)
	return err1 == nil && err2 == nil && aAbs == bAbs
}

// moveFile renames when possible and falls back to copy-and-remove for
// cross-device targets.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}

// tail returns the last n lines of compiler output, which is where
// pdflatex reports its errors.
func tail(out []byte, n int) string {
	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
