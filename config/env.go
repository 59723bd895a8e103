package config

import (
	"volscan/pkg/types"
	"volscan/pkg/utils"

	"strings"

	"github.com/joho/godotenv"
)

var Env = Environment{}

type Environment struct {
	EnvName    types.EnvName
	ConfigFile string // explicit path, overrides the per-environment file
	Debug      bool
}

func init() {
	godotenv.Load()
	Env = loadEnvironment()
}

func loadEnvironment() Environment {
	var env Environment
	switch name := strings.ToLower(utils.LoadEnvWithDefault("ENVIRONMENT", "local")); name {
	case "prod", "production":
		env.EnvName = types.EnvProd
	case "dev", "staging":
		env.EnvName = types.EnvDev
	default:
		env.EnvName = types.EnvLocal
	}
	env.ConfigFile = utils.LoadEnvWithDefault("VOLSCAN_CONFIG", "")
	env.Debug = utils.LoadBoolEnvWithDefault("VOLSCAN_DEBUG")
	return env
}
