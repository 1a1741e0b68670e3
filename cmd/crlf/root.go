// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/crlf/cmd/crlf/commands"
	"github.com/walteh/crlf/cmd/crlf/opts"
	"github.com/walteh/crlf/pkg/config"
	"github.com/walteh/crlf/pkg/log"
)

// rootFlags holds the persistent flags
type rootFlags struct {
	configFile string
	indexPath  string
	noIndex    bool
	debug      bool
	verbose    bool
	summary    bool
	extensions []string
	exclude    []string
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, f *rootFlags) {
	cmd.PersistentFlags().StringVarP(&f.configFile, "config", "c", "", "config file path (.json, .yaml or .hcl)")
	cmd.PersistentFlags().StringVar(&f.indexPath, "index", "", "index file path (default \"index.bin\")")
	cmd.PersistentFlags().BoolVar(&f.noIndex, "no-index", false, "do not load or save the index")
	cmd.PersistentFlags().BoolVarP(&f.debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "print every processed file")
	cmd.PersistentFlags().BoolVar(&f.summary, "summary", false, "print a table of outcomes after the run")
	cmd.PersistentFlags().StringSliceVar(&f.extensions, "extensions", nil, "file extensions to process")
	cmd.PersistentFlags().StringSliceVar(&f.exclude, "exclude", nil, "folder names to skip")
}

// newRootCmd wires the commands around o
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "crlf",
		Short: "Normalize or validate line endings in a directory tree",
		Long: `crlf walks a directory and either rewrites (fix) or checks (validate) the
line endings of text files with a configured set of extensions. Results are
cached per file in an index so unchanged files are skipped on the next run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.NewUsageError()
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zl := setupLogging(o.Stderr, f.debug, f.verbose)

			o.Logger = log.New(o.Stdout, o.Stderr, zl)
			o.Logger.SetVerbose(f.verbose)
			o.Verbose = f.verbose

			ctx := log.NewContext(zl.WithContext(cmd.Context()), o.Logger)
			cmd.SetContext(ctx)

			// version does not read the config
			if cmd.Name() == versionCmdName {
				return nil
			}

			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			o.Config = cfg
			o.NoIndex = f.noIndex
			o.Summary = f.summary
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &commands.UsageError{Msg: commands.Usage + "\n" + err.Error()}
	})

	addRootFlags(cmd, f)

	cmd.AddCommand(
		commands.NewFixCmd(o),
		commands.NewValidateCmd(o),
		newVersionCmd(o),
	)

	return cmd
}

// loadConfig loads the config file and environment, then applies flag overrides
func loadConfig(cmd *cobra.Command, f *rootFlags) (*config.Config, error) {
	ctx := cmd.Context()

	cfg, err := config.Load(ctx, f.configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	cfg.Merge(&config.Config{
		Extensions:     f.extensions,
		ExcludeFolders: f.exclude,
		IndexPath:      f.indexPath,
	})

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating flags: %w", err)
	}

	return cfg, nil
}

// setupLogging builds the zerolog logger. Terminals get the console writer,
// anything else gets JSON.
func setupLogging(w io.Writer, debug, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.InfoLevel
	}
	if debug {
		level = zerolog.DebugLevel
	}

	out := w
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

const versionCmdName = "version"

func newVersionCmd(o *opts.RootOpts) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   versionCmdName,
		Short: "Print version information",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return commands.NewUsageError()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := FormatVersion()
			if asJSON {
				var err error
				if out, err = FormatVersionJSON(); err != nil {
					return errors.Errorf("encoding version: %w", err)
				}
			}
			_, err := io.WriteString(o.Stdout, out)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
