package rotation

import (
	"time"

	"github.com/sysu-ecnc-dev/oncall-rotation/internal/domain"
)

// Clip 把班次序列裁剪到窗口 [fromDate, untilDate) 内
// 完全落在窗口外的班次被丢弃，跨越边界的班次截断到边界而不是丢弃
// 对已经裁剪过的序列再次裁剪不会产生任何变化
func Clip(shifts []domain.Shift, fromDate, untilDate time.Time) []domain.Shift {
	if !untilDate.After(fromDate) {
		return []domain.Shift{}
	}

	clipped := make([]domain.Shift, 0, len(shifts))
	for _, s := range shifts {
		if !s.End.After(fromDate) || !s.Start.Before(untilDate) {
			continue
		}

		if s.Start.Before(fromDate) {
			s.Start = fromDate
		}
		if s.End.After(untilDate) {
			s.End = untilDate
		}

		clipped = append(clipped, s)
	}

	return clipped
}
