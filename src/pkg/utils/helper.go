package utils

import (
	"encoding/json"
	"fmt"
)

// ConvertString renders any value for log metadata. Structs are marshalled
// so log lines stay grep-able.
func ConvertString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case error:
		return val.Error()
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}
