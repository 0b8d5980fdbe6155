package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/incinfo/internal/app"
	"go.trai.ch/incinfo/internal/core/domain"
	"go.trai.ch/zerr"
)

// addSearchFlags registers the flags that extend the include search path.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("include-dir", "I", nil, "Search dir for includes before the configured ones (repeatable)")
	cmd.Flags().StringArray("system-dir", nil, "Search dir after the include dirs (repeatable)")
	cmd.Flags().Duration("timeout", 0, "Bound a single resolution, e.g. 500ms")
}

// addFormatFlags registers the flags that change the annotation text.
func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("recursive", "r", false, "Sum sizes and lines over all transitive includes")
	cmd.Flags().String("unit", "", "Size unit: Bytes, KB, MB or Auto")
	cmd.Flags().Int("digits", domain.DefaultDecimalDigits, "Decimal digits of sizes")
	cmd.Flags().String("separator", "", "Thousands separator: Comma, Backtick, Space or None")
}

// readOverrides collects the flags the user set explicitly. Flags left at
// their default do not override the settings file.
func readOverrides(cmd *cobra.Command) (app.Overrides, error) {
	var o app.Overrides
	flags := cmd.Flags()

	if flags.Changed("include-dir") {
		o.IncludeDirs, _ = flags.GetStringArray("include-dir")
	}
	if flags.Changed("system-dir") {
		o.SystemDirs, _ = flags.GetStringArray("system-dir")
	}
	if flags.Changed("timeout") {
		v, _ := flags.GetDuration("timeout")
		o.Timeout = &v
	}
	if flags.Changed("recursive") {
		v, _ := flags.GetBool("recursive")
		o.Recursive = &v
	}
	if flags.Changed("unit") {
		s, _ := flags.GetString("unit")
		unit, err := domain.ParseSizeUnit(s)
		if err != nil {
			return app.Overrides{}, err
		}
		o.SizeUnit = &unit
	}
	if flags.Changed("digits") {
		v, _ := flags.GetInt("digits")
		if v < 0 {
			return app.Overrides{}, zerr.With(zerr.Wrap(domain.ErrInvalidDecimalDigits, "parse --digits"), "value", v)
		}
		o.DecimalDigits = &v
	}
	if flags.Changed("separator") {
		s, _ := flags.GetString("separator")
		sep, err := domain.ParseDigitSeparator(s)
		if err != nil {
			return app.Overrides{}, err
		}
		o.Separator = &sep
	}
	return o, nil
}
