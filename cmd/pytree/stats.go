package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/pytree/pkg/builder"
	"github.com/Sumatoshi-tech/pytree/pkg/nodes"
	"github.com/Sumatoshi-tech/pytree/pkg/zipper"
)

func statsCmd() *cobra.Command {
	var output string
	var top int

	cmd := &cobra.Command{
		Use:   "stats [files...]",
		Short: "Summarize node statistics for Python files",
		Long: `Build Python files and print a per-kind node count table.

Examples:
  pytree stats main.py                  # Node counts for one file
  pytree stats --top 5 pkg/*.py         # Five most frequent kinds per file`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("top") {
				top = cfg.Stats.Top
			}

			return runStats(args, output, top)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&top, "top", 0, "number of kinds to list (0: config default)")

	return cmd
}

type kindCount struct {
	kind  nodes.Kind
	count int
}

func runStats(files []string, output string, top int) error {
	var writer io.Writer = os.Stdout

	if output != "" {
		outputFile, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer outputFile.Close()

		writer = outputFile
	}

	b := builder.New()

	for _, file := range files {
		err := statsForFile(b, file, top, writer)
		if err != nil {
			return err
		}
	}

	return nil
}

func statsForFile(b *builder.Builder, file string, top int, writer io.Writer) error {
	resolved, err := resolveUserFilePath(file)
	if err != nil {
		return fmt.Errorf("resolve path %q: %w", file, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return fmt.Errorf("stat %s: %w", file, err)
	}

	module, err := b.BuildFile(context.Background(), resolved, moduleName(resolved))
	if err != nil {
		return fmt.Errorf("build error in %s: %w", file, err)
	}

	counts, total := countKinds(module)

	fmt.Fprintf(writer, "%s (%s, %s nodes)\n",
		file, humanize.Bytes(uint64(info.Size())), humanize.Comma(int64(total)))

	renderKindTable(counts, total, top, writer)

	return nil
}

// countKinds tallies every node in the module by kind.
func countKinds(module *nodes.Module) ([]kindCount, int) {
	tally := map[nodes.Kind]int{}
	total := 0

	w := zipper.Walk(zipper.New(module), zipper.Preorder, nil)
	for c := w.Next(); c != nil; c = w.Next() {
		if c.IsSeq() {
			continue
		}

		tally[c.Node().Kind()]++
		total++
	}

	counts := make([]kindCount, 0, len(tally))
	for k, n := range tally {
		counts = append(counts, kindCount{kind: k, count: n})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}

		return counts[i].kind < counts[j].kind
	})

	return counts, total
}

func renderKindTable(counts []kindCount, total, top int, writer io.Writer) {
	if top > 0 && top < len(counts) {
		counts = counts[:top]
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(writer)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Kind", "Count", "Share"})

	for _, kc := range counts {
		share := float64(kc.count) / float64(total) * 100
		tw.AppendRow(table.Row{string(kc.kind), kc.count, fmt.Sprintf("%.1f%%", share)})
	}

	tw.Render()
}
