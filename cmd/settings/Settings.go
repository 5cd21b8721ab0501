package settings

import (
	"fmt"
	"io"
	"sort"

	"github.com/bsv-blockchain/ledger-validator/settings"
	"github.com/ordishs/gocore"
)

// CmdSettings prints the effective settings, one key per line, followed by the gocore stats.
func CmdSettings(w io.Writer, tSettings *settings.Settings, version string, commit string) error {
	values := tSettings.Values()

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	if _, err := fmt.Fprintf(w, "SETTINGS\n--------\n"); err != nil {
		return err
	}

	for _, key := range keys {
		if _, err := fmt.Fprintf(w, "%-30s %s\n", key, values[key]); err != nil {
			return err
		}
	}

	if tSettings.ConfigFile != "" {
		if _, err := fmt.Fprintf(w, "\nread from %s\n", tSettings.ConfigFile); err != nil {
			return err
		}
	}

	stats := gocore.Config().Stats()
	_, err := fmt.Fprintf(w, "\nSTATS\n%s\nVERSION\n-------\n%s (%s)\n\n", stats, version, commit)

	return err
}
