package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vsariola/motif/render"
	"gitlab.com/gomidi/midi/v2"
)

type eventsOptions struct {
	pattern string
	channel int
}

func NewEventsCommand() *cobra.Command {
	opts := &eventsOptions{}
	cmd := &cobra.Command{
		Use:   "events FILE",
		Short: "Print the MIDI events of a compiled script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvents(opts, args[0], cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&opts.pattern, "pattern", "p", "", "print this pattern instead of the main steps")
	cmd.Flags().IntVarP(&opts.channel, "channel", "c", -1, "move every event to this channel")
	return cmd
}

func runEvents(opts *eventsOptions, path string, w io.Writer) error {
	seq, err := compile(path, opts.pattern)
	if err != nil {
		return err
	}
	events, err := render.Events(seq)
	if err != nil {
		return err
	}
	if opts.channel >= 0 {
		if opts.channel > 15 {
			return fmt.Errorf("invalid channel %d: must be in 0..15", opts.channel)
		}
		if events, err = render.Channelize(events, uint8(opts.channel)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%6s %6s  %s\n", "time", "delta", "message"); err != nil {
		return err
	}
	for i, delta := range render.Deltas(events) {
		if _, err := fmt.Fprintf(w, "%6d %6d  %s\n", events[i].Time, delta, describe(events[i].Message)); err != nil {
			return err
		}
	}
	return nil
}

func describe(msg midi.Message) string {
	var ch, key, vel, controller, value, program uint8
	switch {
	case msg.GetNoteOn(&ch, &key, &vel):
		return fmt.Sprintf("note-on ch=%d key=%d vel=%d", ch, key, vel)
	case msg.GetNoteOff(&ch, &key, &vel):
		return fmt.Sprintf("note-off ch=%d key=%d", ch, key)
	case msg.GetControlChange(&ch, &controller, &value):
		return fmt.Sprintf("control ch=%d cc=%d value=%d", ch, controller, value)
	case msg.GetProgramChange(&ch, &program):
		return fmt.Sprintf("program ch=%d number=%d", ch, program)
	}
	return fmt.Sprintf("% X", []byte(msg))
}
