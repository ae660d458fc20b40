package rotation

import (
	"time"

	"github.com/sysu-ecnc-dev/oncall-rotation/internal/domain"
)

// Generate 从规则的锚点开始按固定周期展开班次，直到 untilDate
// 结束时间严格早于 fromDate 的周期会被跳过，并且不消耗轮值顺序：
// 用户下标只在实际生成班次时递增，因此窗口下界会影响第一个班次分到谁
// 最后一个班次可能越过 untilDate，由下游的裁剪负责截断
func Generate(rule *domain.RotationRule, fromDate, untilDate time.Time) []domain.Shift {
	period := time.Duration(rule.IntervalDays) * 24 * time.Hour

	shifts := make([]domain.Shift, 0)
	index := 0
	for start := rule.AnchorStart; start.Before(untilDate); start = start.Add(period) {
		end := start.Add(period)
		if end.Before(fromDate) {
			continue
		}

		shifts = append(shifts, domain.Shift{
			User:  rule.Users[index%len(rule.Users)],
			Start: start,
			End:   end,
		})
		index++
	}

	return shifts
}
