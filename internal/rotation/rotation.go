// Package rotation 实现值班表的核心计算：把周期性的轮值规则展开为班次序列，
// 合并手动指定的覆盖区间（重叠时段内覆盖区间优先），最后裁剪到请求的时间窗口。
// 整个计算是输入的纯函数，不持有任何状态，也不做任何 I/O。
package rotation

import (
	"errors"
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/oncall-rotation/internal/domain"
)

var (
	ErrEmptyUsers          = errors.New("轮值规则中没有任何用户")
	ErrNonPositiveInterval = errors.New("轮值规则的间隔天数必须为正数")
)

// ValidateRule 检查轮值规则是否满足生成算法的前提条件
// 这两项检查如果不通过，生成算法会出现除零或者死循环，所以必须尽早失败
func ValidateRule(rule *domain.RotationRule) error {
	if len(rule.Users) == 0 {
		return ErrEmptyUsers
	}
	if rule.IntervalDays <= 0 {
		return ErrNonPositiveInterval
	}
	return nil
}

// ValidateOverrides 检查每个覆盖区间的起止时间，以及覆盖区间之间是否存在重叠
// 要求传入的覆盖区间已经按开始时间升序排序；乱序的序列一定会命中重叠检查
func ValidateOverrides(overrides []domain.Override) error {
	for i, o := range overrides {
		if !o.Start.Before(o.End) {
			return fmt.Errorf("覆盖区间 %d 的结束时间必须晚于开始时间", i+1)
		}
	}

	for i := 1; i < len(overrides); i++ {
		if overrides[i].Start.Before(overrides[i-1].End) {
			return fmt.Errorf("覆盖区间 %d 和覆盖区间 %d 之间的时间重叠", i, i+1)
		}
	}

	return nil
}

// Compute 计算窗口 [fromDate, untilDate) 内的值班表
// 流程：校验输入 -> 展开轮值规则 -> 合并覆盖区间 -> 裁剪到窗口
// untilDate 不晚于 fromDate 时返回空列表，这是正常结果而不是错误
func Compute(rule *domain.RotationRule, overrides []domain.Override, fromDate, untilDate time.Time) ([]domain.Shift, error) {
	if err := ValidateRule(rule); err != nil {
		return nil, err
	}
	if err := ValidateOverrides(overrides); err != nil {
		return nil, err
	}

	if !untilDate.After(fromDate) {
		return []domain.Shift{}, nil
	}

	shifts := Generate(rule, fromDate, untilDate)
	if len(overrides) > 0 {
		// 覆盖区间为空时跳过合并，两者等价：空序列合并本身就是恒等变换
		shifts = Merge(shifts, overrides)
	}

	return Clip(shifts, fromDate, untilDate), nil
}
