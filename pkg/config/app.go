package config

var AppVersion = "DEVELOPMENT"

const (
	AppName   = "rgbkb"
	LogFile   = "core.log"
	CfgFile   = "config.toml"
	StateFile = "state.json"
)
