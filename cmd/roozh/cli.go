package main

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-roozh"
)

const defaultLayout = "d MMMM yyyy\nhh:mm:ss.S a"

type cli struct {
	root *cobra.Command
	v    *viper.Viper
	log  *logrus.Logger
	cfg  *roozh.Config
}

func newCLI(stdout, stderr io.Writer) *cli {
	c := &cli{
		v:   viper.New(),
		log: newLogger(stderr),
	}

	root := &cobra.Command{
		Use:           "roozh",
		Short:         "Convert and format Jalali (Solar Hijri) dates",
		Long:          "roozh converts between the Gregorian and the Jalali calendars and renders dates with localized month, weekday and meridiem names.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringP("locale", "l", "", "Locale for names (persian, dari, pashto, kurdish, english, or a BCP 47 tag)")
	flags.String("layout", defaultLayout, "Output pattern (y M d h H m s S E a, 'quoted' literals)")
	flags.String("zone", roozh.TehranZone, "Time zone conversions read wall-clock time in")
	flags.StringSlice("locale-file", nil, "YAML or JSON file overriding locale names (repeatable)")
	flags.Bool("native-digits", false, "Render numbers with the locale's digits")
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")

	c.v.SetEnvPrefix("ROOZH")
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	_ = c.v.BindPFlags(flags)

	root.AddCommand(
		c.newNowCommand(),
		c.newJalaliCommand(),
		c.newGregorianCommand(),
		c.newYearCommand(),
		c.newLocalesCommand(),
	)

	c.root = root
	return c
}

func newLogger(out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	log.SetLevel(logrus.WarnLevel)
	return log
}

func (c *cli) setup() error {
	if level, err := logrus.ParseLevel(c.v.GetString("log-level")); err == nil {
		c.log.SetLevel(level)
	} else {
		c.log.WithField("level", c.v.GetString("log-level")).Warn("unknown log level, keeping warn")
	}

	cfg, err := roozh.NewConfig(
		roozh.WithDefaultLocale(c.v.GetString("locale")),
		roozh.WithLocaleFiles(c.v.GetStringSlice("locale-file")...),
		roozh.WithZoneName(c.v.GetString("zone")),
		roozh.WithNativeDigitsEnabled(c.v.GetBool("native-digits")),
	)
	if err != nil {
		return err
	}
	c.cfg = cfg

	c.log.WithFields(logrus.Fields{
		"locale": cfg.DefaultLocale.String(),
		"zone":   cfg.Location.String(),
	}).Debug("configuration loaded")
	return nil
}

// layout returns the configured pattern with "\n" escapes expanded.
func (c *cli) layout() string {
	return strings.ReplaceAll(c.v.GetString("layout"), `\n`, "\n")
}

func (c *cli) render(cmd *cobra.Command, d roozh.CalendarDate, pattern string) error {
	text, err := c.cfg.Format(d, c.cfg.DefaultLocale, pattern)
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), text+"\n")
	return err
}
