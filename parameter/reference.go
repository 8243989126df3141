package parameter

import (
	"github.com/lixenwraith/spacegame/asset"
)

// Reference returns the tuning shipped in asset/settings.toml
// Panics if the embedded file is broken, which only a bad build can cause
func Reference() *Config {
	cfg, err := Parse(asset.SettingsTOML, FormatTOML)
	if err != nil {
		panic("embedded settings: " + err.Error())
	}
	return cfg
}
