package sommelier

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var codeFence = regexp.MustCompile("```(?:json)?\\s*([\\s\\S]*?)```")

// stripCodeFence returns the body of the first fenced block, or the trimmed input when there is none.
func stripCodeFence(content string) string {
	if match := codeFence.FindStringSubmatch(content); match != nil {
		return strings.TrimSpace(match[1])
	}

	return strings.TrimSpace(content)
}

// flexibleYear accepts 2019, "2019", null and non-numeric strings such as "NV".
type flexibleYear int

func (y *flexibleYear) UnmarshalJSON(data []byte) error {
	var number int
	if err := json.Unmarshal(data, &number); err == nil {
		*y = flexibleYear(number)

		return nil
	}

	var text *string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}

	*y = 0

	if text == nil {
		return nil
	}

	if parsed, err := strconv.Atoi(strings.TrimSpace(*text)); err == nil {
		*y = flexibleYear(parsed)
	}

	return nil
}

func optionalString(value *string) *string {
	if value == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*value)
	if trimmed == "" || strings.EqualFold(trimmed, "null") {
		return nil
	}

	return &trimmed
}
