package config

import (
	"flag"
	"time"
)

const (
	WindowWidth  = 1000
	WindowHeight = 1000

	// Edge
	EdgeRadius        = 420
	EdgeWidth         = 40
	InnerShadowRadius = 400
	ShadowBlur        = 15
	ShadowOffsetX     = 10
	ShadowOffsetY     = 10

	// Pieces
	PieceRadius      = 400
	PieceStrokeWidth = 20
	LabelOffset      = 100
	LabelFontSize    = 50
	LabelMaxWidth    = 250
	PieceSaturation  = 1.0
	PieceLightness   = 0.66

	// Shaft
	ShaftRadius      = 50
	ShaftStrokeWidth = 30
	PlaySignSide     = 30

	// Spin physics, per frame
	SpinBase      = 0.75
	SpinDecay     = 0.966
	SpinThreshold = 0.005

	// Tick sound
	TickDuration  = 15 * time.Millisecond
	TickFrequency = 1800
	TickVolume    = 0.25
)

// Options are the command-line settings of the wheel window.
type Options struct {
	Query    string
	File     string
	Seed     uint64
	Announce bool
	Mute     bool
	Verbose  bool
}

// Parse reads Options from args (without the program name).
func Parse(args []string) (Options, error) {
	var o Options
	fs := flag.NewFlagSet("prize-wheel", flag.ContinueOnError)
	fs.StringVar(&o.Query, "query", "", "entries as a URL query, e.g. \"entry=A&entry=B\" or \"entries=A,B\"")
	fs.StringVar(&o.File, "file", "", "file with one entry label per line")
	fs.Uint64Var(&o.Seed, "seed", 0, "random seed for spins (0 picks one from the clock)")
	fs.BoolVar(&o.Announce, "announce", false, "show the winner in a dialog when the wheel stops")
	fs.BoolVar(&o.Mute, "mute", false, "disable the tick sound")
	fs.BoolVar(&o.Verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if o.Seed == 0 {
		o.Seed = uint64(time.Now().UnixNano())
	}
	return o, nil
}
