package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dixxanta08/dixxanta-portfoilio/internal/config"
)

// applyConfigFlagOverrides copies changed flags onto v, the highest
// precedence layer. Flags named after a config key map to it directly; extra
// maps other flag names to keys.
func applyConfigFlagOverrides(cmd *cobra.Command, v *viper.Viper, extra map[string]string) {
	known := make(map[string]bool)
	for _, opt := range config.GetConfigOptions() {
		known[opt.Key] = true
	}
	flags := cmd.Flags()
	flags.Visit(func(f *pflag.Flag) {
		key, ok := extra[f.Name]
		if !ok {
			if !known[f.Name] {
				return
			}
			key = f.Name
		}
		v.Set(key, flagValue(flags, f))
	})
}

func flagValue(flags *pflag.FlagSet, f *pflag.Flag) any {
	switch f.Value.Type() {
	case "bool":
		val, _ := flags.GetBool(f.Name)
		return val
	case "int":
		val, _ := flags.GetInt(f.Name)
		return val
	case "stringSlice":
		val, _ := flags.GetStringSlice(f.Name)
		return val
	default:
		return f.Value.String()
	}
}
