package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/sysu-ecnc-dev/oncall-rotation/internal/selftest"
)

func newSelftestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest [fixture]",
		Short: "使用内置或指定的用例对计算流水线做自检",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}

			if err := selftest.Run(path); err != nil {
				return fmt.Errorf("自检失败: %w", err)
			}

			slog.Info("自检通过")
			return nil
		},
	}
	return cmd
}
