package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/pytree/pkg/builder"
	"github.com/Sumatoshi-tech/pytree/pkg/nodes"
)

// diffArgCount is the number of arguments expected by the diff command.
const diffArgCount = 2

func diffCmd() *cobra.Command {
	var output string
	var contextLines int
	var summary bool

	cmd := &cobra.Command{
		Use:   "diff file1 file2",
		Short: "Compare the trees of two Python files",
		Long: `Build both files and compare their tree dumps line by line, so the
differences reported are structural rather than textual.

Examples:
  pytree diff old.py new.py             # Structural diff
  pytree diff -C 1 old.py new.py        # One context line around changes
  pytree diff --summary old.py new.py   # Change counts only`,
		Args: cobra.ExactArgs(diffArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("context") {
				contextLines = cfg.Diff.ContextLines
			}

			if !cfg.Diff.Color {
				color.NoColor = true
			}

			return runDiff(args[0], args[1], output, contextLines, summary)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVarP(&contextLines, "context", "C", 3, "unchanged lines kept around each change")
	cmd.Flags().BoolVar(&summary, "summary", false, "print change counts instead of the diff")

	return cmd
}

func runDiff(file1, file2, output string, contextLines int, summary bool) error {
	dump1, err := buildDump(file1)
	if err != nil {
		return err
	}

	dump2, err := buildDump(file2)
	if err != nil {
		return err
	}

	var writer io.Writer = os.Stdout

	if output != "" {
		outputFile, createErr := os.Create(output)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer outputFile.Close()

		writer = outputFile
	}

	diffs := lineDiff(dump1, dump2)

	if summary {
		printDiffSummary(diffs, file1, file2, writer)

		return nil
	}

	if len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual {
		fmt.Fprintf(writer, "%s and %s have identical trees\n", file1, file2)

		return nil
	}

	fmt.Fprintf(writer, "--- %s\n+++ %s\n", file1, file2)
	printLineDiff(diffs, contextLines, writer)

	return nil
}

func buildDump(file string) (string, error) {
	resolved, err := resolveUserFilePath(file)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", file, err)
	}

	module, err := builder.New().BuildFile(context.Background(), resolved, moduleName(resolved))
	if err != nil {
		return "", fmt.Errorf("build error in %s: %w", file, err)
	}

	return nodes.ReprTree(module, nodes.DumpOptions{}), nil
}

// lineDiff produces a line-granularity diff of the two dumps.
func lineDiff(a, b string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()

	chars1, chars2, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(chars1, chars2, false)

	return dmp.DiffCharsToLines(diffs, lines)
}

func printLineDiff(diffs []diffmatchpatch.Diff, contextLines int, writer io.Writer) {
	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)

	for i, d := range diffs {
		lines := splitDiffLines(d.Text)

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, line := range lines {
				removed.Fprintf(writer, "-%s\n", line)
			}
		case diffmatchpatch.DiffInsert:
			for _, line := range lines {
				added.Fprintf(writer, "+%s\n", line)
			}
		case diffmatchpatch.DiffEqual:
			for _, line := range trimContext(lines, contextLines, i == 0, i == len(diffs)-1) {
				fmt.Fprintf(writer, " %s\n", line)
			}
		}
	}
}

// trimContext keeps up to n lines on each cut edge of an equal block,
// replacing the elided middle with a marker. The leading edge of the
// first block and the trailing edge of the last never show context.
func trimContext(lines []string, n int, first, last bool) []string {
	head, tail := n, n
	if first {
		head = 0
	}

	if last {
		tail = 0
	}

	if len(lines) <= head+tail {
		return lines
	}

	out := make([]string, 0, head+tail+1)
	out = append(out, lines[:head]...)
	out = append(out, fmt.Sprintf("... %d lines elided ...", len(lines)-head-tail))
	out = append(out, lines[len(lines)-tail:]...)

	return out
}

func splitDiffLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func printDiffSummary(diffs []diffmatchpatch.Diff, file1, file2 string, writer io.Writer) {
	var inserted, deleted int

	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			inserted += len(splitDiffLines(d.Text))
		case diffmatchpatch.DiffDelete:
			deleted += len(splitDiffLines(d.Text))
		case diffmatchpatch.DiffEqual:
		}
	}

	fmt.Fprintf(writer, "%s -> %s: +%d -%d dump lines\n", file1, file2, inserted, deleted)
}
