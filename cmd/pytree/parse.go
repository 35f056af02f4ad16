package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/pytree/pkg/builder"
	"github.com/Sumatoshi-tech/pytree/pkg/config"
	"github.com/Sumatoshi-tech/pytree/pkg/nodes"
)

func parseCmd() *cobra.Command {
	var output, modname string
	var positions, ids, derived bool
	var maxDepth, maxWidth int

	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Build Python files and dump their trees",
		Long: `Build Python source files into canonical syntax trees and dump them.

Examples:
  pytree parse main.py                  # Dump a single file
  pytree parse pkg/*.py                 # Dump several files
  cat main.py | pytree parse -          # Build from stdin
  pytree parse --positions main.py      # Include line/column pairs
  pytree parse -o tree.txt main.py      # Save the dump to a file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			opts := dumpOptions(cfg)

			flags := cmd.Flags()
			if flags.Changed("positions") {
				opts.ShowPosition = positions
			}

			if flags.Changed("ids") {
				opts.ShowIDs = ids
			}

			if flags.Changed("derived") {
				opts.ShowDerived = derived
			}

			if flags.Changed("max-depth") {
				opts.MaxDepth = maxDepth
			}

			if flags.Changed("max-width") {
				opts.MaxWidth = maxWidth
			}

			if modname == "" {
				modname = cfg.Build.Modname
			}

			return runParse(args, modname, output, opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&modname, "modname", "m", "", "module name (default: derived from the file name)")
	cmd.Flags().BoolVar(&positions, "positions", false, "include line/column pairs in the dump")
	cmd.Flags().BoolVar(&ids, "ids", false, "include per-node identity tags in the dump")
	cmd.Flags().BoolVar(&derived, "derived", false, "include derived views (qualified names, parameter lists)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "truncate nesting past this depth (0: unlimited)")
	cmd.Flags().IntVar(&maxWidth, "max-width", 0, "truncate sequences past this entry count (0: unlimited)")

	return cmd
}

func dumpOptions(cfg *config.Config) nodes.DumpOptions {
	return nodes.DumpOptions{
		ShowIDs:      cfg.Dump.ShowIDs,
		ShowPosition: cfg.Dump.ShowPositions,
		ShowDerived:  cfg.Dump.ShowDerived,
		Indent:       strings.Repeat(" ", cfg.Dump.Indent),
		MaxDepth:     cfg.Dump.MaxDepth,
		MaxWidth:     cfg.Dump.MaxWidth,
	}
}

func runParse(files []string, modname, output string, opts nodes.DumpOptions, writer io.Writer) error {
	if output != "" {
		outputFile, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer outputFile.Close()

		writer = outputFile
	}

	if len(files) == 0 || (len(files) == 1 && files[0] == "-") {
		return parseStdin(modname, opts, writer)
	}

	b := builder.New()

	for _, file := range files {
		err := dumpFile(b, file, modname, opts, writer)
		if err != nil {
			return err
		}
	}

	return nil
}

func parseStdin(modname string, opts nodes.DumpOptions, writer io.Writer) error {
	code, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read stdin: %w", err)
	}

	module, err := builder.New().BuildString(context.Background(), string(code), modname, "")
	if err != nil {
		return fmt.Errorf("build error: %w", err)
	}

	fmt.Fprintln(writer, nodes.ReprTree(module, opts))

	return nil
}

func dumpFile(b *builder.Builder, file, modname string, opts nodes.DumpOptions, writer io.Writer) error {
	resolved, err := resolveUserFilePath(file)
	if err != nil {
		return fmt.Errorf("resolve path %q: %w", file, err)
	}

	if modname == "" {
		modname = moduleName(resolved)
	}

	start := time.Now()

	module, err := b.BuildFile(context.Background(), resolved, modname)
	if err != nil {
		return fmt.Errorf("build error in %s: %w", file, err)
	}

	slog.Debug("built module", "file", file, "modname", modname, "elapsed", time.Since(start))

	fmt.Fprintln(writer, nodes.ReprTree(module, opts))

	return nil
}
