// Command nextday prints the next occurrence of a weekday strictly after a
// given date.
//
// The date is either parsed with the configured input layout or, when it is
// an integer, taken as milliseconds since the Unix epoch. The weekday is an
// index (0 = Sunday … 6 = Saturday) or an English day name.
//
// Usage:
//
//	nextday 2020-03-20 monday
//	nextday --output-layout RFC3339 1584662400000 2
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rabitt1ove/datefns"
	"github.com/rabitt1ove/datefns/internal/config"
)

// weekdayNames maps lower-case names and abbreviations to weekday indexes.
var weekdayNames = map[string]int{
	"sunday": 0, "sun": 0,
	"monday": 1, "mon": 1,
	"tuesday": 2, "tue": 2,
	"wednesday": 3, "wed": 3,
	"thursday": 4, "thu": 4,
	"friday": 5, "fri": 5,
	"saturday": 6, "sat": 6,
}

// namedLayouts lets flags and config name the standard library layouts.
var namedLayouts = map[string]string{
	"RFC3339":  time.RFC3339,
	"RFC1123":  time.RFC1123,
	"DateOnly": time.DateOnly,
	"DateTime": time.DateTime,
}

type options struct {
	configPath   string
	inputLayout  string
	outputLayout string
	logLevel     string
}

func main() {
	log := logrus.New()
	if err := newRootCmd(os.Stdout, log).Execute(); err != nil {
		log.Error(err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd(stdout io.Writer, log *logrus.Logger) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "nextday [flags] <date> <weekday>",
		Short: "Print the next occurrence of a weekday after a date",
		Args: func(cmd *cobra.Command, args []string) error {
			present := make([]any, len(args))
			for i, a := range args {
				present[i] = a
			}
			if err := datefns.RequiredArgs(2, present); err != nil {
				return err
			}
			return cobra.MaximumNArgs(2)(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			log.SetLevel(cfg.Level())

			next, err := resolve(args[0], args[1], cfg.InputLayout, log)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(stdout, next.Format(layout(cfg.OutputLayout)))
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "config file (default $"+config.EnvPath+" or "+config.DefaultPath+")")
	f.StringVar(&opts.inputLayout, "input-layout", "", "Go time layout used to parse <date>")
	f.StringVar(&opts.outputLayout, "output-layout", "", "Go time layout used to print the result")
	f.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	return cmd
}

// loadConfig applies explicitly set flags over the file and environment.
func loadConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	f := cmd.Flags()
	if f.Changed("input-layout") {
		cfg.InputLayout = opts.inputLayout
	}
	if f.Changed("output-layout") {
		cfg.OutputLayout = opts.outputLayout
	}
	if f.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// resolve parses both arguments and computes the next occurrence. An
// unparseable date is passed on as the zero time so that the weekday is
// still validated first.
func resolve(dateArg, dayArg, inputLayout string, log *logrus.Logger) (time.Time, error) {
	day, err := parseWeekday(dayArg)
	if err != nil {
		return time.Time{}, err
	}

	entry := log.WithFields(logrus.Fields{"date": dateArg, "weekday": day})

	var (
		t     time.Time
		parse error
	)
	if ms, err := strconv.ParseInt(dateArg, 10, 64); err == nil {
		entry.Debug("date is an epoch timestamp")
		t = datefns.ToDate(ms)
	} else {
		t, parse = time.Parse(layout(inputLayout), dateArg)
	}

	next, err := datefns.NextDay(t, day)
	if err != nil {
		if parse != nil && errors.Is(err, datefns.ErrInvalidDate) {
			return time.Time{}, fmt.Errorf("%w: %q does not match layout %q", err, dateArg, inputLayout)
		}
		return time.Time{}, err
	}

	entry.WithField("result", next.Format(time.RFC3339)).Debug("computed next weekday")
	return next, nil
}

// parseWeekday accepts an integer index or an English weekday name.
// Integers are passed through unchecked so that range validation stays in
// one place.
func parseWeekday(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if n, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %q", datefns.ErrInvalidDay, s)
}

func layout(name string) string {
	if l, ok := namedLayouts[name]; ok {
		return l
	}
	return name
}

// exitCode maps an error to the process exit status used by scripts.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, datefns.ErrArgumentsRequired):
		return 2
	default:
		return 1
	}
}
