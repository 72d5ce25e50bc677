package config

import (
	"errors"
	"time"

	goflags "github.com/jessevdk/go-flags"

	"pomodoross/internal/settings"
)

// ErrHelp is returned when usage was requested; the error text is the usage.
var ErrHelp = errors.New("help requested")

// Options holds command line flags. Non-zero values override the settings file.
type Options struct {
	Config      string        `long:"config" short:"c" description:"Path to settings file"`
	Work        time.Duration `long:"work" description:"Work phase duration (e.g. 25m)"`
	Break       time.Duration `long:"break" description:"Break phase duration (e.g. 5m)"`
	Tick        time.Duration `long:"tick" description:"Main loop tick interval (e.g. 100ms)"`
	NoBlock     bool          `long:"no-block" description:"Notify only, do not cover the screen during breaks"`
	NoIdleReset bool          `long:"no-idle-reset" description:"Keep counting work time while the user is away"`
	Headless    bool          `long:"headless" description:"Run without tray or overlay, logging transitions"`
	WriteConfig bool          `long:"write-config" description:"Write the effective settings file and exit"`
	Version     bool          `long:"version" short:"v" description:"Show version and exit"`
}

type helpError struct {
	usage string
}

func (err helpError) Error() string {
	return err.usage
}

func (err helpError) Unwrap() error {
	return ErrHelp
}

// Parse reads flags from args.
func Parse(args []string) (Options, error) {
	var options Options
	parser := goflags.NewParser(&options, goflags.HelpFlag|goflags.PassDoubleDash)
	parser.Name = "pomodoross"
	parser.LongDescription = "Focus and break reminder that watches input activity."

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *goflags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == goflags.ErrHelp {
			return options, helpError{usage: flagsErr.Message}
		}
		return options, err
	}
	return options, nil
}

// Apply overrides loaded settings with explicitly set flags.
func (options Options) Apply(target *settings.Settings) {
	if options.Work > 0 {
		target.WorkDuration = options.Work
	}
	if options.Break > 0 {
		target.BreakDuration = options.Break
	}
	if options.Tick > 0 {
		target.TickInterval = options.Tick
	}
	if options.NoBlock {
		target.BlockInput = false
	}
	if options.NoIdleReset {
		target.IdleResetEnabled = false
	}
}
