package config

import (
	"os"
	"path/filepath"
	"testing"

	"edgeip_curator/internal/shared/types"
)

const sampleIni = `[carrier]
keywords = 电信,China Telecom,CT,telecom

[pipeline]
min_yield = 5
order_policy = first-seen
exclude_prefixes = 127.0.0.0/8, 10.0.0.0/8

[source]
url = https://api.example.com/edge.html
timeout_seconds = 15

[sink]
output_dir = /tmp/out
formats = lines,json
header_timezone = Asia/Shanghai

[log]
level = debug
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "curator.ini")
	if err := os.WriteFile(path, []byte(sampleIni), 0644); err != nil {
		t.Fatalf("write sample ini: %v", err)
	}
	return path
}

func TestLoadIni(t *testing.T) {
	cfg := new(types.Config)
	if err := LoadIni(cfg, writeSample(t)); err != nil {
		t.Fatalf("LoadIni failed: %v", err)
	}

	kws := cfg.KeywordList()
	if len(kws) != 4 || kws[0] != "电信" || kws[3] != "telecom" {
		t.Errorf("KeywordList = %v", kws)
	}
	if cfg.MinYield != 5 || cfg.OrderPolicy != "first-seen" {
		t.Errorf("pipeline section mismatch: %+v", cfg.PipelineConf)
	}
	ex := cfg.ExcludeList()
	if len(ex) != 2 || ex[1] != "10.0.0.0/8" {
		t.Errorf("ExcludeList = %v", ex)
	}
	if cfg.SourceConf.URL != "https://api.example.com/edge.html" || cfg.TimeoutSeconds != 15 {
		t.Errorf("source section mismatch: %+v", cfg.SourceConf)
	}
	if got := cfg.FormatList(); len(got) != 2 || got[0] != "lines" || got[1] != "json" {
		t.Errorf("FormatList = %v", got)
	}
	if cfg.LogConf.Level != "debug" {
		t.Errorf("log level = %q", cfg.LogConf.Level)
	}
}

func TestLoadIniEnvOverride(t *testing.T) {
	t.Setenv("CURATOR_SOURCE_URL", "https://mirror.example.com/edge.html")
	t.Setenv("CURATOR_TIMEOUT_SECONDS", "60")

	cfg := new(types.Config)
	if err := LoadIni(cfg, writeSample(t)); err != nil {
		t.Fatalf("LoadIni failed: %v", err)
	}
	if cfg.SourceConf.URL != "https://mirror.example.com/edge.html" {
		t.Errorf("env override for url not applied: %q", cfg.SourceConf.URL)
	}
	if cfg.TimeoutSeconds != 60 {
		t.Errorf("env override for timeout not applied: %d", cfg.TimeoutSeconds)
	}
}

func TestLoadIniMissingFile(t *testing.T) {
	cfg := new(types.Config)
	if err := LoadIni(cfg, filepath.Join(t.TempDir(), "absent.ini")); err == nil {
		t.Error("missing config file must return an error")
	}
}
