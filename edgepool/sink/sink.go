package sink

import (
	"fmt"
	"path/filepath"
	"time"

	"edgeip_curator/edgepool/model"
	"edgeip_curator/internal/shared/logger"
	"edgeip_curator/internal/shared/types"
)

const headerTimeFormat = "2006-01-02 15:04:05"

// Sink 接口定义了持久化 CuratedList 的行为。序列化格式由实现决定。
type Sink interface {
	Write(list *model.CuratedList) error
	Name() string
}

// FromConfig 根据 [sink] 配置段构造启用的输出端集合。
func FromConfig(cfg types.SinkConf) ([]Sink, error) {
	l := logger.WithComponent("EdgePool/Sink")

	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	formats := cfg.FormatList()
	if len(formats) == 0 {
		formats = []string{"lines"}
	}

	tz := cfg.HeaderTimezone
	if tz == "" {
		tz = "Asia/Shanghai"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		l.Warn().Err(err).Str("timezone", tz).Msg("Unknown timezone, falling back to UTC.")
		loc = time.UTC
	}

	var sinks []Sink
	for _, format := range formats {
		switch format {
		case "lines":
			sinks = append(sinks, NewLinesSink(filepath.Join(outputDir, fileOrDefault(cfg.LinesFile, "telecom_ips.txt")), loc))
		case "comma":
			sinks = append(sinks, NewCommaSink(filepath.Join(outputDir, fileOrDefault(cfg.CommaFile, "telecom_ips.csv"))))
		case "json":
			sinks = append(sinks, NewJSONSink(filepath.Join(outputDir, fileOrDefault(cfg.JSONFile, "telecom_ips.json")), loc))
		default:
			return nil, fmt.Errorf("unknown sink format %q", format)
		}
	}
	return sinks, nil
}

func fileOrDefault(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
