package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/sysu-ecnc-dev/oncall-rotation/internal/config"
	"github.com/sysu-ecnc-dev/oncall-rotation/internal/domain"
	"github.com/sysu-ecnc-dev/oncall-rotation/internal/loader"
	"github.com/sysu-ecnc-dev/oncall-rotation/internal/rotation"
)

func newComputeCmd(cfg *config.Config) *cobra.Command {
	var (
		schedulePath string
		fromArg      string
		untilArg     string
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "计算窗口内的值班表并以 JSON 输出到 stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			ldr, err := loader.NewLoader()
			if err != nil {
				return err
			}

			doc, err := ldr.LoadSchedule(schedulePath)
			if err != nil {
				return err
			}

			// 窗口下界的优先级：命令行参数 > 文件中的 from > 规则的锚点
			from := doc.Rule.AnchorStart
			if doc.From != nil {
				from = *doc.From
			}
			if fromArg != "" {
				if from, err = time.Parse(domain.TimeLayout, fromArg); err != nil {
					return fmt.Errorf("无效的 --from: %w", err)
				}
			}

			// 窗口上界必须显式给出
			var until time.Time
			switch {
			case untilArg != "":
				if until, err = time.Parse(domain.TimeLayout, untilArg); err != nil {
					return fmt.Errorf("无效的 --until: %w", err)
				}
			case doc.Until != nil:
				until = *doc.Until
			default:
				return errors.New("必须通过 --until 或排班文件中的 until 提供窗口上界")
			}

			shifts, err := rotation.Compute(&doc.Rule, doc.Overrides, from, until)
			if err != nil {
				return err
			}

			slog.Info("值班表计算完成",
				"shifts", len(shifts),
				"overrides", len(doc.Overrides),
				"from", from.Format(domain.TimeLayout),
				"until", until.Format(domain.TimeLayout),
			)
			return writeJSON(cmd.OutOrStdout(), shifts)
		},
	}

	cmd.Flags().StringVar(&schedulePath, "schedule", cfg.Schedule.Path, "排班文件路径")
	cmd.Flags().StringVar(&fromArg, "from", "", "窗口下界（UTC，格式 2006-01-02T15:04:05Z），默认为规则的锚点")
	cmd.Flags().StringVar(&untilArg, "until", "", "窗口上界（UTC，格式 2006-01-02T15:04:05Z）")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
