package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/sysu-ecnc-dev/oncall-rotation/internal/config"
)

func main() {
	/**********************************************
	 * 加载配置
	 **********************************************/
	// .env 文件不存在时忽略错误，环境变量仍然可以直接提供
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("无法加载配置", "error", err)
		os.Exit(1)
	}

	/**********************************************
	 * 创建 logger
	 **********************************************/
	logger := slog.New(newLogHandler(cfg))
	slog.SetDefault(logger)

	/**********************************************
	 * 执行命令
	 **********************************************/
	if err := newRootCmd(cfg).Execute(); err != nil {
		logger.Error("命令执行失败", "error", err)
		os.Exit(1)
	}
}

func newLogHandler(cfg *config.Config) slog.Handler {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = slog.LevelInfo
	}

	// 日志写到 stderr，stdout 留给计算结果
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == "json" {
		return slog.NewJSONHandler(os.Stderr, opts)
	}
	return slog.NewTextHandler(os.Stderr, opts)
}
