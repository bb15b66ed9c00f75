package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"edgeip_curator/edgepool"
	"edgeip_curator/internal/shared/config"
	"edgeip_curator/internal/shared/logger"
	"edgeip_curator/internal/shared/types"
)

func main() {
	configDir := flag.String("configdir", "configs", "Path to config directory")
	flag.Parse()

	iniPath := filepath.Join(*configDir, "curator.ini")

	// 1. 加载 .ini 行为配置
	cfg := new(types.Config)
	if err := config.LoadIni(cfg, iniPath); err != nil {
		// Use standard fmt before logger is initialized.
		fmt.Fprintf(os.Stderr, "Fatal: Failed to load config file '%s': %v\n", iniPath, err)
		os.Exit(1)
	}

	// 1.1 初始化日志系统
	if err := logger.Init(cfg.LogConf); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// 2. 构建并执行一轮流水线
	mgr, err := edgepool.NewManager(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build pipeline from config.")
	}

	list, err := mgr.Run()
	if err != nil {
		logger.Error().Err(err).Msg("Curation run failed.")
		os.Exit(1)
	}

	// 空列表是合法的可上报结果，由调用方（CI 任务等）决定是否当作失败
	logger.Info().Int("count", list.Count).Str("run_id", list.RunID).Msg("Done.")
}
