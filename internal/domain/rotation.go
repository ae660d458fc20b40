package domain

import "time"

// 时间戳的统一格式：UTC、秒级精度，例如 2023-01-01T00:00:00Z
const TimeLayout = "2006-01-02T15:04:05Z"

// RotationRule 周期性的轮值规则
type RotationRule struct {
	AnchorStart  time.Time `json:"anchorStart" validate:"required"`
	IntervalDays int       `json:"intervalDays" validate:"required,gte=1"`
	Users        []string  `json:"users" validate:"required,min=1,dive,required"`
}

// Override 手动指定的覆盖区间，重叠时段内优先于轮值规则的计算结果
type Override struct {
	User  string    `json:"user" validate:"required"`
	Start time.Time `json:"start" validate:"required"`
	End   time.Time `json:"end" validate:"required"`
}

// Shift 一段连续的值班区间，分配给一个用户
type Shift struct {
	User  string    `json:"user"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
