package resource

import "strconv"

// ScalarText converts a scalar value to its verbatim text form.
func ScalarText(value Value) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case int64:
		return formatInt(typed), true
	case float64:
		return formatFloat(typed), true
	}
	return "", false
}

func formatInt(value int64) string {
	return strconv.FormatInt(value, 10)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
