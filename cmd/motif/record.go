package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/vsariola/motif/recording"
	"gopkg.in/yaml.v3"
)

type recordOptions struct {
	input    string
	bpm      float64
	duration time.Duration
}

func NewRecordCommand() *cobra.Command {
	opts := &recordOptions{}
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a MIDI input into a sequence",
		Long: `Record notes, control and program changes from a MIDI input and print them as
a sequence in YAML. Recording stops after --duration, or on interrupt when the
duration is zero.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runRecord(ctx, opts, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "use the first MIDI input whose name starts with this")
	cmd.Flags().Float64Var(&opts.bpm, "bpm", 120, "tempo used to convert time to ticks")
	cmd.Flags().DurationVarP(&opts.duration, "duration", "d", 0, "stop recording after this long")
	return cmd
}

func runRecord(ctx context.Context, opts *recordOptions, w io.Writer) error {
	if opts.bpm <= 0 {
		return fmt.Errorf("invalid bpm %v: must be positive", opts.bpm)
	}
	source, closer, err := openInput(opts.input)
	if err != nil {
		return err
	}
	defer closer()
	return record(ctx, recording.FixedTempo{BPM: opts.bpm}, source, opts.duration, w)
}

// record captures from source until ctx is done or duration has passed, then
// writes the sequence to w.
func record(ctx context.Context, conv recording.Converter, source recording.Source, duration time.Duration, w io.Writer) error {
	rec, err := recording.New(conv, source)
	if err != nil {
		return err
	}
	defer rec.Dispose()
	if err := rec.Start(); err != nil {
		return err
	}
	log.Printf("recording from %v", source)
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}
	<-ctx.Done()
	rec.Stop()
	log.Printf("recorded %d events in %v", len(rec.Events()), rec.Elapsed().Round(time.Millisecond))
	seq, err := rec.Sequence()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seq); err != nil {
		return err
	}
	return enc.Close()
}
