// Package selftest 用固定的用例对计算流水线做黑盒自检
package selftest

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/sysu-ecnc-dev/oncall-rotation/internal/domain"
	"github.com/sysu-ecnc-dev/oncall-rotation/internal/rotation"
)

// Fixture 自检用例：一组输入和期望的输出班次列表
type Fixture struct {
	Rule      domain.RotationRule `json:"rule"`
	Overrides []domain.Override   `json:"overrides"`
	From      *time.Time          `json:"from"`
	Until     time.Time           `json:"until"`
	Expected  []domain.Shift      `json:"expected"`
}

//go:embed testdata/default.json
var defaultFixture []byte

// Run 加载用例并逐项比较流水线的输出和期望结果
// path 为空时使用内置的默认用例
func Run(path string) error {
	raw := defaultFixture
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("无法读取自检用例: %w", err)
		}
	}

	fixture := &Fixture{}
	if err := json.Unmarshal(raw, fixture); err != nil {
		return fmt.Errorf("无法解析自检用例: %w", err)
	}

	sort.Slice(fixture.Overrides, func(i, j int) bool {
		return fixture.Overrides[i].Start.Before(fixture.Overrides[j].Start)
	})

	// 用例没有指定窗口下界时默认使用规则的锚点
	from := fixture.Rule.AnchorStart
	if fixture.From != nil {
		from = *fixture.From
	}

	got, err := rotation.Compute(&fixture.Rule, fixture.Overrides, from, fixture.Until)
	if err != nil {
		return err
	}

	return compareShifts(got, fixture.Expected)
}

func compareShifts(got, expected []domain.Shift) error {
	if len(got) != len(expected) {
		return fmt.Errorf("班次数量不匹配: 计算得到 %d 个，期望 %d 个", len(got), len(expected))
	}

	for i := range expected {
		switch {
		case got[i].User != expected[i].User:
			return fmt.Errorf("第 %d 个班次的用户不匹配: 计算得到 %s，期望 %s", i+1, got[i].User, expected[i].User)
		case !got[i].Start.Equal(expected[i].Start):
			return fmt.Errorf("第 %d 个班次的开始时间不匹配: 计算得到 %s，期望 %s",
				i+1, got[i].Start.Format(domain.TimeLayout), expected[i].Start.Format(domain.TimeLayout))
		case !got[i].End.Equal(expected[i].End):
			return fmt.Errorf("第 %d 个班次的结束时间不匹配: 计算得到 %s，期望 %s",
				i+1, got[i].End.Format(domain.TimeLayout), expected[i].End.Format(domain.TimeLayout))
		}
	}

	return nil
}
