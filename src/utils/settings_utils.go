package utils

import (
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/username/finreport/src/logger"
	"github.com/username/finreport/src/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// LoadUserSettings reads the user settings file. A missing or malformed
// file yields empty settings, never an error.
func LoadUserSettings(filePath string) models.UserSettings {
	var settings models.UserSettings

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.L.Warn("Could not read user settings, using empty settings", "path", filePath, "error", err)
		return models.UserSettings{}
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		logger.L.Warn("Could not parse user settings, using empty settings", "path", filePath, "error", err)
		return models.UserSettings{}
	}

	logger.L.Info("User settings loaded", "path", filePath,
		"currencies", len(settings.UserCurrencies), "stocks", len(settings.UserStocks))
	return settings
}
