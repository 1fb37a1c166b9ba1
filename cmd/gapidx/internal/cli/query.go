package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/textidx/gapidx"
)

var listPairs bool

var queryCmd = &cobra.Command{
	Use:   "query <file>",
	Short: "Build an index over a text file and answer queries read from stdin",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().BoolVar(&listPairs, "list", false, "also print each (a, b) match pair")
}

func runQuery(cmd *cobra.Command, args []string) error {
	path := args[0]
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	cfg, err := loadConfig(cfgFile)
	if err != nil {
		return err
	}

	start := time.Now()
	idx, err := gapidx.New(text)
	if err != nil {
		return fmt.Errorf("build index over %s: %w", path, err)
	}
	buildElapsed := time.Since(start)

	fmt.Fprintf(cmd.OutOrStdout(), "indexed %s (%s) in %s\n",
		path, humanize.Bytes(uint64(len(text))), buildElapsed.Round(time.Microsecond))

	tbl := table.NewWriter()
	tbl.SetOutputMirror(cmd.OutOrStdout())
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"s1", "s2", "gmin", "gmax", "matches"})

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		s1, s2, gMin, gMax, err := parseQueryLine(line, cfg)
		if err != nil {
			return fmt.Errorf("parse query %q: %w", line, err)
		}

		it, err := idx.Matches([]byte(s1), []byte(s2), gMin, gMax)
		if err != nil {
			return fmt.Errorf("query %q: %w", line, err)
		}

		count := 0
		var pairs []string
		for it.Valid() {
			a, b := it.Current()
			count++
			if listPairs {
				pairs = append(pairs, fmt.Sprintf("(%d,%d)", a, b))
			}
			it.Advance()
		}

		countCell := fmt.Sprintf("%d", count)
		if count == 0 {
			countCell = color.RedString(countCell)
		} else {
			countCell = color.GreenString(countCell)
		}
		tbl.AppendRow(table.Row{s1, s2, gMin, gMax, countCell})

		if listPairs && count > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", strings.Join(pairs, " "))
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read queries: %w", err)
	}

	tbl.Render()
	return nil
}

// parseQueryLine parses "s1 s2 [gmin gmax]", filling omitted bounds from
// cfg (spec §6 CLI contract, [EXPANSION] default-via-config clause).
func parseQueryLine(line string, cfg *Config) (s1, s2 string, gMin, gMax int, err error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 2:
		return fields[0], fields[1], cfg.GMin, cfg.GMax, nil
	case 4:
		gMin, err = strconv.Atoi(fields[2])
		if err != nil {
			return "", "", 0, 0, fmt.Errorf("gmin: %w", err)
		}
		gMax, err = strconv.Atoi(fields[3])
		if err != nil {
			return "", "", 0, 0, fmt.Errorf("gmax: %w", err)
		}
		return fields[0], fields[1], gMin, gMax, nil
	default:
		return "", "", 0, 0, fmt.Errorf("expected \"s1 s2\" or \"s1 s2 gmin gmax\", got %d fields", len(fields))
	}
}
