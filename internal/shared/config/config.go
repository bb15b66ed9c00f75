package config

import (
	"os"
	"strconv"

	"gopkg.in/ini.v1"

	"edgeip_curator/internal/shared/types"
)

// LoadIni 加载 curator.ini 行为配置文件。
func LoadIni(cfg *types.Config, fileName string) error {
	iniFile, err := ini.Load(fileName)
	if err != nil {
		return err
	}
	if err := iniFile.MapTo(cfg); err != nil {
		return err
	}
	overrideFromEnvStr(&cfg.SourceConf.URL, "CURATOR_SOURCE_URL")
	overrideFromEnvStr(&cfg.SinkConf.OutputDir, "CURATOR_OUTPUT_DIR")
	overrideFromEnvInt(&cfg.SourceConf.TimeoutSeconds, "CURATOR_TIMEOUT_SECONDS")
	return nil
}

func overrideFromEnvStr(target *string, envName string) {
	if envValue := os.Getenv(envName); envValue != "" {
		*target = envValue
	}
}

func overrideFromEnvInt(target *int, envName string) {
	envValue := os.Getenv(envName)
	if envValue != "" {
		if intValue, err := strconv.Atoi(envValue); err == nil {
			*target = intValue
		}
	}
}
