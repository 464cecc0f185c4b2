// Package version tracks the application release: the running version, the
// newest published one, and the comparison between them.
package version

import (
	"github.com/anibridge/anibridge/constant"
	"github.com/anibridge/anibridge/key"
	"github.com/anibridge/anibridge/log"
	"github.com/spf13/viper"
)

// Notify logs an update hint when a newer stable release is published.
// Gated by the cli.version_check configuration key; lookup failures are
// silent since the check is a courtesy, not a feature.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	latest, err := Latest()
	if err != nil {
		log.Debugf("Version check failed: %v", err)
		return
	}

	newer, err := Compare(latest, constant.Version)
	if err != nil || newer <= 0 {
		return
	}

	log.Infof("New version %s is available (you're on %s): https://github.com/anibridge/anibridge/releases/tag/v%s",
		latest, constant.Version, latest)
}
