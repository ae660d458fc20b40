// Package loader 负责读取并校验排班文件，核心计算只接受这里产出的已解析输入
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	"github.com/sysu-ecnc-dev/oncall-rotation/internal/domain"
)

// ScheduleDocument 排班文件的顶层结构
// from 和 until 可以写在文件里，也可以由命令行参数提供（命令行参数优先）
type ScheduleDocument struct {
	Rule      domain.RotationRule `json:"rule" validate:"required"`
	Overrides []domain.Override   `json:"overrides" validate:"omitempty,dive"`
	From      *time.Time          `json:"from"`
	Until     *time.Time          `json:"until"`
}

type Loader struct {
	validate   *validator.Validate
	translator ut.Translator
}

func NewLoader() (*Loader, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Loader{
		validate:   validate,
		translator: trans,
	}, nil
}

func (l *Loader) LoadSchedule(path string) (*ScheduleDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开排班文件: %w", err)
	}
	defer f.Close()

	return l.Decode(f)
}

func (l *Loader) Decode(r io.Reader) (*ScheduleDocument, error) {
	doc := &ScheduleDocument{}
	if err := json.NewDecoder(r).Decode(doc); err != nil {
		return nil, fmt.Errorf("无法解析排班文件: %w", err)
	}

	if err := l.validate.Struct(doc); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, err
		}
		// 只返回第一个校验错误使得提示更清晰
		return nil, errors.New(validationErrors[0].Translate(l.translator))
	}

	// 合并算法要求覆盖区间按开始时间升序排序，文件中的顺序不做要求
	sort.Slice(doc.Overrides, func(i, j int) bool {
		return doc.Overrides[i].Start.Before(doc.Overrides[j].Start)
	})

	return doc, nil
}
