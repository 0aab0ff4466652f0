// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

func newTypesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the file types and encodings the providers support",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := ctx.system
			rows := [][]string{
				{"read", joinNames(s.ReaderTypes()), joinNames(s.ReaderEncodings())},
				{"write", joinNames(s.WriterTypes()), joinNames(s.WriterEncodings())},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"", "Types", "Encodings"}, rows))
			return nil
		},
	}
}

func joinNames[T fmt.Stringer](items []T) string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.String()
	}
	slices.Sort(names)
	return strings.Join(names, ", ")
}
