package rotation

import "github.com/sysu-ecnc-dev/oncall-rotation/internal/domain"

// Merge 把覆盖区间合并进班次序列，重叠时段内始终以覆盖区间为准
// 要求两个序列都已按开始时间升序排序，且覆盖区间之间互不重叠
// 被覆盖的班次会按需截断或拆分；一个班次内部包含多个覆盖区间时会被拆成多段
// 已追加到结果中的值不会再被修改，传入的两个切片也不会被修改
func Merge(shifts []domain.Shift, overrides []domain.Override) []domain.Shift {
	merged := make([]domain.Shift, 0, len(shifts)+len(overrides))

	i, j := 0, 0
	var cur domain.Shift
	if i < len(shifts) {
		cur = shifts[i]
	}

	for i < len(shifts) && j < len(overrides) {
		o := overrides[j]

		switch {
		case !cur.End.After(o.Start):
			// 班次完全在覆盖区间之前
			merged = append(merged, cur)
			i++
			if i < len(shifts) {
				cur = shifts[i]
			}
		case !cur.Start.Before(o.End):
			// 覆盖区间完全在班次之前
			merged = append(merged, overrideShift(o))
			j++
		default:
			// 存在重叠：覆盖区间之前如果还有班次的头部，先保留头部
			if cur.Start.Before(o.Start) {
				merged = append(merged, domain.Shift{User: cur.User, Start: cur.Start, End: o.Start})
			}

			if cur.End.After(o.End) {
				// 覆盖区间结束后班次还有剩余，写入覆盖区间，
				// 剩余的尾部在下一轮继续和后面的覆盖区间比较
				merged = append(merged, overrideShift(o))
				j++
				cur = domain.Shift{User: cur.User, Start: o.End, End: cur.End}
			} else {
				// 班次的剩余部分完全被覆盖
				i++
				if i < len(shifts) {
					cur = shifts[i]
				}
			}
		}
	}

	// 其中一个序列耗尽后，原样追加另一个序列的剩余部分
	if i < len(shifts) {
		merged = append(merged, cur)
		merged = append(merged, shifts[i+1:]...)
	}
	for ; j < len(overrides); j++ {
		merged = append(merged, overrideShift(overrides[j]))
	}

	return merged
}

// overrideShift 覆盖区间在输出中原样表现为一个班次
func overrideShift(o domain.Override) domain.Shift {
	return domain.Shift{User: o.User, Start: o.Start, End: o.End}
}
