// Package asset embeds the data files shipped with the binary
package asset

import _ "embed"

// SettingsTOML is the reference tuning, used when no -config is given
//
//go:embed settings.toml
var SettingsTOML []byte
