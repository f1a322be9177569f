// Package config holds the emulator settings and the command line parser.
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Default values used when an option is not given on the command line.
const (
	DefaultClockSpeed   = 600
	DefaultWindowWidth  = 640
	DefaultWindowHeight = 320
)

// An UnknownArgumentError is returned for an option that is not in the
// accepted set.
type UnknownArgumentError struct {
	Arg string
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q", e.Arg)
}

// An ArgumentFormatError is returned when an option has the wrong number of
// colon-separated values.
type ArgumentFormatError struct {
	Arg string
}

func (e *ArgumentFormatError) Error() string {
	return fmt.Sprintf("invalid argument %q format", e.Arg)
}

// An OptionValueError is returned when an option value does not parse as a
// number.
type OptionValueError struct {
	Arg   string
	Value string
}

func (e *OptionValueError) Error() string {
	return fmt.Sprintf("unable to parse argument %q option %q", e.Arg, e.Value)
}

// Settings are the resolved emulator options.
type Settings struct {
	ROMPath      string
	SoundEnabled bool
	ClockSpeed   uint64 // instructions per second
	WindowWidth  uint32
	WindowHeight uint32
}

// Default returns the settings used when no options are given.
func Default() Settings {
	return Settings{
		SoundEnabled: true,
		ClockSpeed:   DefaultClockSpeed,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
	}
}

// Parse builds Settings from the full argument vector: program name first,
// ROM path second, options after. Options carry their values inline,
// separated by colons: -no_sound, -clock_speed:<n>, -window_size:<w>:<h>.
func Parse(args []string) (Settings, error) {
	settings := Default()
	if len(args) < 2 {
		return settings, nil
	}
	settings.ROMPath = args[1]

	for _, arg := range args[2:] {
		tokens := strings.Split(arg, ":")

		switch tokens[0] {
		case "-no_sound":
			if len(tokens) != 1 {
				return Settings{}, &ArgumentFormatError{Arg: arg}
			}
			settings.SoundEnabled = false

		case "-clock_speed":
			if len(tokens) != 2 {
				return Settings{}, &ArgumentFormatError{Arg: arg}
			}
			speed, err := strconv.ParseUint(tokens[1], 10, 64)
			if err != nil {
				return Settings{}, &OptionValueError{Arg: arg, Value: tokens[1]}
			}
			settings.ClockSpeed = speed

		case "-window_size":
			if len(tokens) != 3 {
				return Settings{}, &ArgumentFormatError{Arg: arg}
			}
			width, err := strconv.ParseUint(tokens[1], 10, 32)
			if err != nil {
				return Settings{}, &OptionValueError{Arg: arg, Value: tokens[1]}
			}
			height, err := strconv.ParseUint(tokens[2], 10, 32)
			if err != nil {
				return Settings{}, &OptionValueError{Arg: arg, Value: tokens[2]}
			}
			settings.WindowWidth = uint32(width)
			settings.WindowHeight = uint32(height)

		default:
			return Settings{}, &UnknownArgumentError{Arg: arg}
		}
	}

	return settings, nil
}
