package main

import (
	"github.com/spf13/cobra"
	"github.com/sysu-ecnc-dev/oncall-rotation/internal/config"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "oncall",
		Short:         "根据轮值规则和覆盖区间计算值班表",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newComputeCmd(cfg))
	cmd.AddCommand(newSelftestCmd())
	return cmd
}
