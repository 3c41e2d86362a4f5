package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/apexcompile/apexcompile/ast"
	"github.com/apexcompile/apexcompile/astjson"
	"github.com/apexcompile/apexcompile/parser"
	"github.com/apexcompile/apexcompile/reporter"
	"github.com/apexcompile/apexcompile/resolver"
	"github.com/apexcompile/apexcompile/translate"
)

// translateOptions are the translate command's settings. The yaml tags
// bind them to the optional config file; explicit flags win over it.
type translateOptions struct {
	Include       []string `yaml:"include"`
	Workers       int      `yaml:"workers"`
	JSONDir       string   `yaml:"json_dir"`
	OmitLocations bool     `yaml:"omit_locations"`
}

func newTranslateCmd(e *env) *cobra.Command {
	opts := translateOptions{
		Include: []string{"**/*.cls", "**/*.trigger"},
		Workers: runtime.NumCPU(),
	}
	var configPath string
	cmd := &cobra.Command{
		Use:   "translate [paths]",
		Short: "Parse and translate Apex sources under the given paths",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				if err := loadConfig(e.fs, configPath, &opts, cmd.Flags()); err != nil {
					return err
				}
			}
			if opts.Workers < 1 {
				opts.Workers = 1
			}
			if len(args) == 0 {
				args = []string{"."}
			}
			files, err := discover(e.fs, args, opts.Include)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				e.log.Warn("no source files matched")
				return nil
			}
			return runBatch(e, files, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Include, "include", opts.Include, "patterns source files must match")
	cmd.Flags().IntVar(&opts.Workers, "workers", opts.Workers, "parallel translation workers")
	cmd.Flags().StringVar(&opts.JSONDir, "json-dir", "", "write serialized ASTs into this directory")
	cmd.Flags().BoolVar(&opts.OmitLocations, "omit-locations", false, "omit source locations from serialized ASTs")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML file with flag defaults")
	return cmd
}

// loadConfig fills opts from a YAML file for every flag the user left at
// its default.
func loadConfig(fs afero.Fs, path string, opts *translateOptions, flags *pflag.FlagSet) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}
	var c translateOptions
	if err := yaml.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if !flags.Changed("include") && len(c.Include) > 0 {
		opts.Include = c.Include
	}
	if !flags.Changed("workers") && c.Workers > 0 {
		opts.Workers = c.Workers
	}
	if !flags.Changed("json-dir") && c.JSONDir != "" {
		opts.JSONDir = c.JSONDir
	}
	if !flags.Changed("omit-locations") && c.OmitLocations {
		opts.OmitLocations = true
	}
	return nil
}

// discover walks the given roots and returns the files matching any of
// the include patterns, sorted. A root that is itself a file is taken
// as-is.
func discover(fs afero.Fs, roots, patterns []string) ([]string, error) {
	var files []string
	for _, root := range roots {
		info, err := fs.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, root)
			continue
		}
		err = afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return err
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			rel = filepath.ToSlash(rel)
			for _, pat := range patterns {
				ok, err := doublestar.Match(pat, rel)
				if err != nil {
					return fmt.Errorf("pattern %q: %w", pat, err)
				}
				if ok {
					files = append(files, path)
					break
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

type fileResult struct {
	file string
	unit *ast.CompilationUnit
	src  string
	errs []reporter.ErrorWithLoc
	err  error
}

// runBatch translates every file on a bounded worker pool. A file that
// fails never aborts the batch; failures are counted and reported at the
// end.
func runBatch(e *env, files []string, opts translateOptions) error {
	results := make([]fileResult, len(files))
	var g errgroup.Group
	g.SetLimit(opts.Workers)
	for i, f := range files {
		g.Go(func() error {
			results[i] = translateFile(e.fs, f)
			return nil
		})
	}
	g.Wait()

	var units []*ast.CompilationUnit
	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
			e.log.WithField("file", r.file).Error(r.err)
			if e.log.IsLevelEnabled(logrus.DebugLevel) {
				for _, we := range r.errs {
					e.log.Debug("\n" + reporter.Snippet(r.src, we.Location()))
				}
			}
			continue
		}
		units = append(units, r.unit)
		if opts.JSONDir != "" {
			if err := writeJSON(e.fs, opts, r.unit); err != nil {
				return err
			}
		}
	}

	if table, err := resolver.Collect(units...); err != nil {
		e.log.Warn(err)
	} else {
		e.log.WithField("symbols", table.Len()).Debug("built symbol table")
	}

	e.log.WithFields(logrus.Fields{
		"translated": len(units),
		"failed":     failed,
	}).Info("done")
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

func translateFile(fs afero.Fs, path string) fileResult {
	r := fileResult{file: path}
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		r.err = err
		return r
	}
	r.src = string(src)

	rep := reporter.NewReporter(func(err reporter.ErrorWithLoc) error {
		r.errs = append(r.errs, err)
		return nil
	}, nil)
	cst, toks, err := parser.Parse(path, src, reporter.NewHandler(rep))
	if err != nil {
		r.err = errors.Join(append([]error{err}, toErrs(r.errs)...)...)
		return r
	}
	r.unit, r.err = translate.CompilationUnit(path, cst, toks)
	return r
}

func toErrs(errs []reporter.ErrorWithLoc) []error {
	out := make([]error, len(errs))
	for i, e := range errs {
		out[i] = e
	}
	return out
}

func writeJSON(fs afero.Fs, opts translateOptions, unit *ast.CompilationUnit) error {
	var mopts []astjson.Option
	if opts.OmitLocations {
		mopts = append(mopts, astjson.WithoutLocations())
	}
	data, err := astjson.Marshal(unit, mopts...)
	if err != nil {
		return err
	}
	if err := fs.MkdirAll(opts.JSONDir, 0o755); err != nil {
		return err
	}
	out := filepath.Join(opts.JSONDir, filepath.Base(unit.File())+".json")
	return afero.WriteFile(fs, out, data, 0o644)
}
