package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-roozh"
)

var gregorianInputLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

func (c *cli) newNowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current Jalali date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.cfg.Converter().Now()
			if err != nil {
				return err
			}
			c.log.WithField("date", d.String()).Debug("converted current time")
			return c.render(cmd, d, c.layout())
		},
	}
}

func (c *cli) newJalaliCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "jalali <gregorian-date>",
		Short:   "Convert a Gregorian date (YYYY-MM-DD[ HH:MM[:SS]] or RFC 3339) to Jalali",
		Example: "  roozh jalali 2024-03-20\n  roozh jalali '2024-03-20 12:00' --layout 'EEEE d MMMM yyyy'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseGregorian(args[0], c.cfg.Location)
			if err != nil {
				return err
			}
			d, err := c.cfg.Converter().GregorianToJalali(t)
			if err != nil {
				return err
			}
			c.log.WithFields(logrus.Fields{
				"input": args[0],
				"jdn":   int(d.JDN()),
			}).Debug("converted gregorian date")
			return c.render(cmd, d, c.layout())
		},
	}
}

func (c *cli) newGregorianCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "gregorian <jalali-date>",
		Short:   "Convert a Jalali date (YYYY/MM/DD or YYYY-MM-DD) to Gregorian",
		Example: "  roozh gregorian 1403/01/01",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, day, err := parseJalali(args[0])
			if err != nil {
				return err
			}
			conv := c.cfg.Converter()
			d, err := conv.Date(roozh.Jalali, year, month, day, roozh.Clock{})
			if err != nil {
				return err
			}
			g, err := conv.JalaliToGregorian(d)
			if err != nil {
				return err
			}
			c.log.WithFields(logrus.Fields{
				"input": args[0],
				"jdn":   int(g.JDN()),
			}).Debug("converted jalali date")
			return c.render(cmd, g, "yyyy-MM-dd")
		},
	}
}

func (c *cli) newYearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "year <jalali-year>",
		Short: "Show leap status and the Gregorian date of Nowruz for a Jalali year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jy, err := strconv.Atoi(strings.TrimSpace(args[0]))
			if err != nil {
				return fmt.Errorf("%w: year %q", roozh.ErrInvalidArgument, args[0])
			}
			info, err := roozh.Resolve(jy)
			if err != nil {
				return err
			}
			days := 365
			if info.IsLeap() {
				days = 366
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "year: %d\n", info.Year)
			fmt.Fprintf(out, "leap: %t\n", info.IsLeap())
			fmt.Fprintf(out, "days: %d\n", days)
			fmt.Fprintf(out, "nowruz: %04d-03-%02d\n", info.GregorianYear, info.MarchDay)
			fmt.Fprintf(out, "years since leap: %d\n", info.YearsSinceLeap)
			return nil
		},
	}
}

func (c *cli) newLocalesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List supported locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := c.cfg.Catalog()
			out := cmd.OutOrStdout()
			for _, locale := range roozh.Locales() {
				names, err := catalog.Names(locale)
				if err != nil {
					return err
				}
				marker := " "
				if locale == c.cfg.DefaultLocale {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %-4s %-8s %s (%s)\n",
					marker, locale.Code(), locale.String(), names.DisplayName, names.Months[0])
			}
			return nil
		},
	}
}

func parseGregorian(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range gregorianInputLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: gregorian date %q", roozh.ErrInvalidArgument, value)
}

func parseJalali(value string) (year, month, day int, err error) {
	fields := strings.FieldsFunc(strings.TrimSpace(value), func(r rune) bool {
		return r == '/' || r == '-' || r == '.'
	})
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: jalali date %q", roozh.ErrInvalidArgument, value)
	}
	parts := make([]int, 3)
	for i, field := range fields {
		n, convErr := strconv.Atoi(field)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("%w: jalali date %q", roozh.ErrInvalidArgument, value)
		}
		parts[i] = n
	}
	return parts[0], parts[1], parts[2], nil
}
