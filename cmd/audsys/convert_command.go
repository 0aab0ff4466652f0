// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ik5/audsys"
	"github.com/ik5/audsys/audio"
	"github.com/ik5/audsys/format"
)

type convertOptions struct {
	typeName string
	quality  float32
	rate     int
	mono     bool
}

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Decode a file and write it as another type",
		Long: `Decode <in> with whichever reader accepts it and write it to <out>.

The output type is taken from --type, then from the suffix of <out>, then
from write.type in the configuration.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("quality") {
				opts.quality = ctx.config.Write.Quality
			}
			if !flags.Changed("rate") {
				opts.rate = ctx.config.Convert.SampleRate
			}
			if !flags.Changed("mono") {
				opts.mono = ctx.config.Convert.Mono
			}
			return runConvert(cmd, ctx, args[0], args[1], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.typeName, "type", "t", "", "Output file type, e.g. WAVE or AU")
	cmd.Flags().Float32VarP(&opts.quality, "quality", "q", 1, "Quality hint between 0 and 1")
	cmd.Flags().IntVarP(&opts.rate, "rate", "r", 0, "Output sample rate in Hz, 0 keeps the input rate")
	cmd.Flags().BoolVar(&opts.mono, "mono", false, "Mix down to one channel")
	return cmd
}

func runConvert(cmd *cobra.Command, ctx *commandContext, in, out string, opts convertOptions) error {
	s := ctx.system

	t, err := outputType(s, opts.typeName, out, ctx.config.Write.Type)
	if err != nil {
		return err
	}

	stream, err := s.DecodeFile(in)
	if err != nil {
		return fmt.Errorf("decode %s: %w", in, err)
	}
	defer stream.Close()

	var src audio.Stream = stream
	if opts.rate > 0 || opts.mono {
		rate, channels := float32(format.NotSpecified), format.NotSpecified
		if opts.rate > 0 {
			rate = float32(opts.rate)
		}
		if opts.mono {
			channels = 1
		}
		target := format.New(format.Encoding{}, rate, format.NotSpecified, channels,
			format.NotSpecified, format.NotSpecified, stream.Format().BigEndian(), nil)
		if src, err = s.Convert(target, stream); err != nil {
			return err
		}
	}

	n, err := s.WriteFile(src, t, opts.quality, out)
	if err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s to %s (%s)\n", humanize.IBytes(uint64(n)), out, t.Name())
	return nil
}

var errUnknownType = errors.New("unknown file type")

// outputType resolves the written type from the flag, the output suffix and
// the configured default, in that order.
func outputType(s *audsys.System, flag, out, fallback string) (format.Type, error) {
	if flag != "" {
		if t, ok := s.TypeByName(flag); ok {
			return t, nil
		}
		return format.Type{}, fmt.Errorf("%w: %q", errUnknownType, flag)
	}
	if ext := filepath.Ext(out); ext != "" {
		if t, ok := s.TypeBySuffix(ext); ok {
			return t, nil
		}
	}
	if t, ok := s.TypeByName(fallback); ok {
		return t, nil
	}
	return format.Type{}, fmt.Errorf("%w: %q", errUnknownType, fallback)
}
