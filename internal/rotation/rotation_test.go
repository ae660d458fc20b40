package rotation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/oncall-rotation/internal/domain"
)

func weeklyRule(t *testing.T, users ...string) *domain.RotationRule {
	t.Helper()
	return &domain.RotationRule{
		AnchorStart:  day(t, 1),
		IntervalDays: 7,
		Users:        users,
	}
}

func TestComputeWithoutOverrides(t *testing.T) {
	shifts, err := Compute(weeklyRule(t, "A", "B"), nil, day(t, 1), day(t, 15))
	require.NoError(t, err)

	require.Equal(t, []domain.Shift{
		{User: "A", Start: day(t, 1), End: day(t, 8)},
		{User: "B", Start: day(t, 8), End: day(t, 15)},
	}, shifts)
}

func TestComputeWithInteriorOverride(t *testing.T) {
	overrides := []domain.Override{
		{User: "C", Start: day(t, 3), End: day(t, 5)},
	}

	shifts, err := Compute(weeklyRule(t, "A", "B"), overrides, day(t, 1), day(t, 15))
	require.NoError(t, err)

	require.Equal(t, []domain.Shift{
		{User: "A", Start: day(t, 1), End: day(t, 3)},
		{User: "C", Start: day(t, 3), End: day(t, 5)},
		{User: "A", Start: day(t, 5), End: day(t, 8)},
		{User: "B", Start: day(t, 8), End: day(t, 15)},
	}, shifts)
}

func TestComputeOverrideReplacingWholeShift(t *testing.T) {
	overrides := []domain.Override{
		{User: "C", Start: day(t, 8), End: day(t, 15)},
	}

	shifts, err := Compute(weeklyRule(t, "A", "B"), overrides, day(t, 1), day(t, 15))
	require.NoError(t, err)

	require.Equal(t, []domain.Shift{
		{User: "A", Start: day(t, 1), End: day(t, 8)},
		{User: "C", Start: day(t, 8), End: day(t, 15)},
	}, shifts)
}

func TestComputeWindowStartingMidShift(t *testing.T) {
	shifts, err := Compute(weeklyRule(t, "A", "B"), nil, day(t, 4), day(t, 15))
	require.NoError(t, err)

	require.Equal(t, day(t, 4), shifts[0].Start)
	require.Equal(t, "A", shifts[0].User)
}

func TestComputeEmptyWindow(t *testing.T) {
	shifts, err := Compute(weeklyRule(t, "A", "B"), nil, day(t, 15), day(t, 15))
	require.NoError(t, err)
	require.Empty(t, shifts)

	shifts, err = Compute(weeklyRule(t, "A", "B"), nil, day(t, 15), day(t, 8))
	require.NoError(t, err)
	require.Empty(t, shifts)
}

func TestComputeSingleUserRule(t *testing.T) {
	shifts, err := Compute(weeklyRule(t, "A"), nil, day(t, 1), day(t, 29))
	require.NoError(t, err)

	require.Len(t, shifts, 4)
	for _, s := range shifts {
		require.Equal(t, "A", s.User)
	}
}

func TestComputeValidationErrors(t *testing.T) {
	t.Run("没有任何用户", func(t *testing.T) {
		_, err := Compute(weeklyRule(t), nil, day(t, 1), day(t, 15))
		require.ErrorIs(t, err, ErrEmptyUsers)
	})

	t.Run("间隔天数不为正数", func(t *testing.T) {
		rule := weeklyRule(t, "A")
		rule.IntervalDays = 0
		_, err := Compute(rule, nil, day(t, 1), day(t, 15))
		require.ErrorIs(t, err, ErrNonPositiveInterval)
	})

	t.Run("覆盖区间起止时间颠倒", func(t *testing.T) {
		overrides := []domain.Override{
			{User: "C", Start: day(t, 5), End: day(t, 3)},
		}
		_, err := Compute(weeklyRule(t, "A"), overrides, day(t, 1), day(t, 15))
		require.ErrorContains(t, err, "结束时间必须晚于开始时间")
	})

	t.Run("覆盖区间之间重叠", func(t *testing.T) {
		overrides := []domain.Override{
			{User: "C", Start: day(t, 3), End: day(t, 6)},
			{User: "D", Start: day(t, 5), End: day(t, 8)},
		}
		_, err := Compute(weeklyRule(t, "A"), overrides, day(t, 1), day(t, 15))
		require.ErrorContains(t, err, "时间重叠")
	})
}

// 在一个覆盖较多的场景下检查输出的结构性质：
// 按时间排序、互不重叠、完全落在窗口内、覆盖区间优先
func TestComputeStructuralProperties(t *testing.T) {
	rule := &domain.RotationRule{
		AnchorStart:  day(t, 1),
		IntervalDays: 2,
		Users:        []string{"A", "B", "C"},
	}
	overrides := []domain.Override{
		{User: "X", Start: day(t, 4), End: day(t, 6)},
		{User: "Y", Start: day(t, 9), End: day(t, 10)},
	}
	from, until := day(t, 2), day(t, 14)

	shifts, err := Compute(rule, overrides, from, until)
	require.NoError(t, err)
	require.NotEmpty(t, shifts)

	for i, s := range shifts {
		require.True(t, s.Start.Before(s.End), "第 %d 个班次的区间为空", i+1)
		require.False(t, s.Start.Before(from), "第 %d 个班次越过了窗口下界", i+1)
		require.False(t, s.End.After(until), "第 %d 个班次越过了窗口上界", i+1)

		if i > 0 {
			require.False(t, s.Start.Before(shifts[i-1].End),
				"第 %d 个班次和第 %d 个班次重叠", i, i+1)
		}
	}

	// 覆盖区间内的任何时刻都必须由覆盖区间的用户值班
	for _, o := range overrides {
		for _, at := range []time.Time{o.Start, o.Start.Add(12 * time.Hour), o.End.Add(-time.Second)} {
			covered := false
			for _, s := range shifts {
				if !at.Before(s.Start) && at.Before(s.End) {
					require.Equal(t, o.User, s.User, "时刻 %s 没有由覆盖区间的用户值班", at)
					covered = true
				}
			}
			require.True(t, covered, "时刻 %s 没有任何班次覆盖", at)
		}
	}
}
