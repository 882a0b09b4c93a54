package locale

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads label overrides from a YAML file. Tables missing from the
// file keep their builtin values. The merged labels are validated.
func LoadFile(path string) (*Labels, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read labels %s: %w", path, err)
	}
	var over Labels
	if err := yaml.Unmarshal(data, &over); err != nil {
		return nil, fmt.Errorf("parse labels %s: %w", path, err)
	}
	merged := &Labels{
		EN: merge(english, over.EN),
		NP: merge(nepali, over.NP),
	}
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("invalid labels %s: %w", path, err)
	}
	return merged, nil
}

func merge(base, over *Set) *Set {
	out := *base
	if over == nil {
		return &out
	}
	pickSlice := func(dst *[]string, src []string) {
		if len(src) > 0 {
			*dst = src
		}
	}
	pickSlice(&out.Digits, over.Digits)
	pickSlice(&out.Months, over.Months)
	pickSlice(&out.MonthsShort, over.MonthsShort)
	pickSlice(&out.ADMonths, over.ADMonths)
	pickSlice(&out.ADMonthsShort, over.ADMonthsShort)
	pickSlice(&out.Weekdays, over.Weekdays)
	pickSlice(&out.WeekdaysShort, over.WeekdaysShort)
	pickSlice(&out.WeekdaysMin, over.WeekdaysMin)
	if over.Today != "" {
		out.Today = over.Today
	}
	return &out
}
