package config

import (
	"log/slog"
	"os"

	"github.com/sunthewhat/easy-event-api/common"
	"github.com/sunthewhat/easy-event-api/common/util"
	"github.com/sunthewhat/easy-event-api/type/shared"
	"gopkg.in/yaml.v3"
)

func LoadConfig() {
	config, err := Parse("config.yml")
	if err != nil {
		slog.Error("Failed to load config.yml", "error", err)
		os.Exit(1)
	}

	common.Config = config
}

// Parse reads and validates a YAML config file.
func Parse(path string) (*shared.Config, error) {
	config := new(shared.Config)

	yml, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, readErr
	}

	if unmarshalErr := yaml.Unmarshal(yml, config); unmarshalErr != nil {
		return nil, unmarshalErr
	}

	if validateErr := util.ValidateStruct(config); validateErr != nil {
		return nil, validateErr
	}

	return config, nil
}
