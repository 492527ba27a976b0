// Command lectern converts YAML lesson documents into PowerPoint decks
// and LaTeX Beamer documents.
//
// Usage:
//
//	lectern [flags] [files or globs...]
//
// With no positional arguments, lectern walks -base looking for lesson
// files. Output paths mirror each input's position relative to -base
// under the configured output directories.
package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tsawler/lectern"
	"github.com/tsawler/lectern/format"
)

type config struct {
	pptxDir   string
	texDir    string
	pdfDir    string
	themePath string
	base      string
	mode      string
	compile   bool
	verbose   bool
}

type result struct {
	input   string
	outputs []string
	err     error
}

func main() {
	cfg, patterns := parseFlags()

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lectern:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	files, err := discover(patterns, cfg.base)
	if err != nil {
		logger.Fatal("discovering lesson files", zap.Error(err))
	}
	if len(files) == 0 {
		logger.Fatal("no lesson files found", zap.String("base", cfg.base))
	}
	logger.Info("starting conversion",
		zap.Int("documents", len(files)),
		zap.String("mode", cfg.mode))

	results := convertAll(context.Background(), cfg, files, logger)

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
		}
	}
	printSummary(cfg, len(files)-failed, failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func parseFlags() (config, []string) {
	var cfg config
	flag.StringVar(&cfg.pptxDir, "pptx-dir", "salida/pptx", "output directory for .pptx files")
	flag.StringVar(&cfg.texDir, "tex-dir", "salida/tex", "output directory for .tex files")
	flag.StringVar(&cfg.pdfDir, "pdf-dir", "salida/pdf", "output directory for compiled PDFs")
	flag.StringVar(&cfg.themePath, "theme", "", "TOML theme file overlaying the default palette")
	flag.StringVar(&cfg.base, "base", ".", "root directory mirrored into the output directories")
	flag.StringVar(&cfg.mode, "mode", "both", "outputs to produce: pptx, beamer, or both")
	flag.BoolVar(&cfg.compile, "compile", false, "run pdflatex over generated .tex files")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	flag.Parse()

	switch cfg.mode {
	case "pptx", "beamer", "both":
	default:
		fmt.Fprintf(os.Stderr, "lectern: invalid -mode %q (want pptx, beamer, or both)\n", cfg.mode)
		os.Exit(2)
	}
	return cfg, flag.Args()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zcfg.Build()
}

// discover expands the positional patterns, or walks base for lesson
// files when none were given.
func discover(patterns []string, base string) ([]string, error) {
	if len(patterns) == 0 {
		return walkLessons(base)
	}

	var files []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := expandPattern(pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("pattern %q matched nothing", pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

func walkLessons(base string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && format.IsTopicFile(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// expandPattern expands a glob, additionally supporting ** for matching
// across directories.
func expandPattern(pattern string) ([]string, error) {
	if !strings.Contains(pattern, "**") {
		return filepath.Glob(pattern)
	}

	prefix, suffix, _ := strings.Cut(pattern, "**")
	root := filepath.Dir(prefix + "x") // "dir/**..." -> "dir", "**..." -> "."
	suffix = strings.TrimPrefix(suffix, "/")

	var matches []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ok, merr := filepath.Match(suffix, filepath.Base(path))
		if merr != nil {
			return merr
		}
		if ok {
			matches = append(matches, path)
		}
		return nil
	})
	return matches, err
}

// convertAll processes every document, isolating failures so one bad
// lesson never stops its siblings.
func convertAll(ctx context.Context, cfg config, files []string, logger *zap.Logger) []result {
	results := make([]result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			r := convertOne(ctx, cfg, file)
			results[i] = r
			if r.err != nil {
				logger.Error("conversion failed",
					zap.String("input", r.input),
					zap.Error(r.err))
				return nil // isolate: siblings keep going
			}
			logger.Info("converted",
				zap.String("input", r.input),
				zap.Strings("outputs", r.outputs))
			return nil
		})
	}
	_ = g.Wait() // workers report per-document, never fail the group
	return results
}

func convertOne(ctx context.Context, cfg config, file string) result {
	r := result{input: file}

	conv := lectern.Load(file)
	if cfg.themePath != "" {
		conv = conv.ThemeFile(cfg.themePath)
	}
	if cfg.compile {
		conv = conv.CompilePDF(outputPath(cfg.pdfDir, cfg.base, file, ""))
	}

	if cfg.mode == "pptx" || cfg.mode == "both" {
		out := outputPath(cfg.pptxDir, cfg.base, file, ".pptx")
		if err := conv.PPTX(out); err != nil {
			r.err = err
			return r
		}
		r.outputs = append(r.outputs, out)
	}

	if cfg.mode == "beamer" || cfg.mode == "both" {
		out := outputPath(cfg.texDir, cfg.base, file, ".tex")
		if err := conv.BeamerContext(ctx, out); err != nil {
			r.err = err
			return r
		}
		r.outputs = append(r.outputs, out)
	}
	return r
}

// outputPath mirrors file's position under base into dir, swapping the
// extension. An empty ext keeps only the directory mirroring, for
// per-document PDF directories.
func outputPath(dir, base, file, ext string) string {
	rel, err := filepath.Rel(base, file)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(file)
	}
	if ext == "" {
		return filepath.Join(dir, filepath.Dir(rel))
	}
	stem := strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.Join(dir, stem+ext)
}

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func printSummary(cfg config, ok, failed int) {
	fmt.Println()
	fmt.Println(okStyle.Render(fmt.Sprintf("  %d convertidos", ok)))
	if failed > 0 {
		fmt.Println(failStyle.Render(fmt.Sprintf("  %d fallidos", failed)))
	}
	dirs := []string{}
	if cfg.mode != "beamer" {
		dirs = append(dirs, cfg.pptxDir)
	}
	if cfg.mode != "pptx" {
		dirs = append(dirs, cfg.texDir)
		if cfg.compile {
			dirs = append(dirs, cfg.pdfDir)
		}
	}
	fmt.Println(dimStyle.Render("  salida: " + strings.Join(dirs, ", ")))
}
