package config

import (
	"strings"

	"github.com/spf13/viper"
)

// NewViper reads from the environment; "web.port" maps to WEB_PORT.
// Defaults are set in main so the binary documents its own knobs.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}
