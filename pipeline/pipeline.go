// Package pipeline runs the per-language stages of a locale build:
// fetch, end-block injection, extraction, coverage report and write.
//
// Languages run concurrently and independently. A failing language is
// reported and recorded; it never stops the others.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/scratchblocks/sblocales/aliases"
	"github.com/scratchblocks/sblocales/console"
	"github.com/scratchblocks/sblocales/coverage"
	"github.com/scratchblocks/sblocales/extract"
	"github.com/scratchblocks/sblocales/fetch"
	"github.com/scratchblocks/sblocales/localefile"
	"github.com/scratchblocks/sblocales/specs"
)

// Fetcher downloads the catalogs of one language.
type Fetcher interface {
	Fetch(ctx context.Context, lang string) (*fetch.Bundle, error)
}

// Runner holds everything a run needs. The tables are shared read-only
// between pipelines.
type Runner struct {
	Fetcher Fetcher
	Tables  *specs.Tables
	Aliases aliases.Table
	Dir     string
	Console *console.Printer
	// Concurrency caps the pipelines in flight; 0 runs all at once.
	Concurrency int
	// Progress, when set, receives a progress bar of finished languages.
	Progress io.Writer
	Logger   *slog.Logger
}

// Result describes a written locale file.
type Result struct {
	Lang     string
	Path     string
	Coverage coverage.Report
	Warnings []extract.Warning
}

// Failure is a language that produced no file.
type Failure struct {
	Lang string
	Err  error
}

// Summary lists the outcome of every language, in request order.
type Summary struct {
	Written []Result
	Failed  []Failure
}

// AddEnd makes the localized end-of-block word available as the "end" spec
// of the blocks catalog, taken from the language's alias table.
func AddEnd(b *fetch.Bundle, a aliases.Table) {
	m, ok := a.For(b.Lang)
	if !ok {
		return
	}
	end := aliases.EndBlock(m)
	if end == "" {
		return
	}
	if b.Blocks == nil {
		b.Blocks = make(map[string]string)
	}
	b.Blocks[aliases.EndSpec] = end
}

// Run clears the output directory once, then builds every language. It
// returns an error only when the directory cannot be prepared; per-language
// failures end up in the Summary.
func (r *Runner) Run(ctx context.Context, langs []string) (*Summary, error) {
	removed, err := localefile.Clean(r.Dir)
	if err != nil {
		return nil, fmt.Errorf("cleaning %s: %w", r.Dir, err)
	}
	r.logger().Debug("Cleaned locales", "dir", r.Dir, "removed", len(removed))

	bar := r.progressBar(len(langs))

	results := make([]*Result, len(langs))
	errs := make([]error, len(langs))

	var g errgroup.Group
	if r.Concurrency > 0 {
		g.SetLimit(r.Concurrency)
	}
	for i, lang := range langs {
		g.Go(func() error {
			res, err := r.Process(ctx, lang)
			if err != nil {
				r.Console.Error("%v", err)
				errs[i] = err
			} else {
				results[i] = res
			}
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	s := &Summary{}
	for i, lang := range langs {
		if errs[i] != nil {
			s.Failed = append(s.Failed, Failure{Lang: lang, Err: errs[i]})
			continue
		}
		s.Written = append(s.Written, *results[i])
	}
	return s, nil
}

// Process runs the stages for one language in order.
func (r *Runner) Process(ctx context.Context, lang string) (*Result, error) {
	b, err := r.Fetcher.Fetch(ctx, lang)
	if err != nil {
		return nil, err
	}

	AddEnd(b, r.Aliases)

	tr, warnings := extract.Transform(b, r.Aliases, r.Tables)
	for _, w := range warnings {
		r.Console.Warn("%s", w)
	}

	report := coverage.Compute(tr, r.Tables)
	if report.Complete() {
		r.Console.Success("%s", report)
	} else {
		r.Console.Warn("%s", report)
	}

	path, err := localefile.Write(r.Dir, tr)
	if err != nil {
		return nil, err
	}
	r.logger().Debug("Wrote locale", "lang", lang, "path", path)

	return &Result{Lang: lang, Path: path, Coverage: report, Warnings: warnings}, nil
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func (r *Runner) progressBar(n int) *progressbar.ProgressBar {
	if r.Progress == nil || n == 0 {
		return nil
	}
	w := r.Progress
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan]languages[reset]"),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(w) }),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
