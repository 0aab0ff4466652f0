// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ik5/audsys/format"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>...",
		Short: "Describe audio files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, len(args))
			failed := 0
			for _, path := range args {
				ff, err := ctx.system.DescribeFile(path)
				if err != nil {
					ctx.logger.Warn("describe failed", "path", path, "error", err)
					rows = append(rows, []string{filepath.Base(path), "-", err.Error()})
					failed++
					continue
				}
				rows = append(rows, infoRow(path, ff))
			}

			headers := []string{"File", "Type", "Format", "Duration", "Size", "Title"}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, 3, 4))

			if failed > 0 {
				return fmt.Errorf("%d of %d files could not be described", failed, len(args))
			}
			return nil
		},
	}
}

func infoRow(path string, ff *format.ExtendedFileFormat) []string {
	duration := "?"
	if us, ok := ff.Property(format.PropDuration); ok {
		if n, ok := us.(int64); ok {
			duration = (time.Duration(n) * time.Microsecond).Round(time.Millisecond).String()
		}
	}

	size := "?"
	if n := ff.ByteLengthLong(); n >= 0 {
		size = humanize.IBytes(uint64(n))
	}

	title := ""
	if v, ok := ff.Property(format.PropTitle); ok {
		title = fmt.Sprint(v)
	}

	return []string{filepath.Base(path), ff.Type().Name(), ff.Format().String(), duration, size, title}
}
