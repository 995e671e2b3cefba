package utility

import (
	"encoding/json"
	"fmt"
)

// MapToJSON chuyển đổi map thành chuỗi JSON
func MapToJSON(m map[string]interface{}) (string, error) {
	jsonBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("lỗi khi chuyển đổi map thành JSON: %v", err)
	}
	return string(jsonBytes), nil
}

// JSONToMap chuyển đổi chuỗi JSON thành map
func JSONToMap(jsonStr string) (map[string]interface{}, error) {
	var result map[string]interface{}
	err := json.Unmarshal([]byte(jsonStr), &result)
	if err != nil {
		return nil, fmt.Errorf("lỗi khi chuyển đổi JSON thành map: %v", err)
	}
	return result, nil
}

// ToMap chuyển đổi một struct thành map thông qua JSON marshal/unmarshal
func ToMap(data interface{}) (map[string]interface{}, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("lỗi khi chuyển đổi struct thành JSON: %v", err)
	}
	var result map[string]interface{}
	if err := json.Unmarshal(jsonBytes, &result); err != nil {
		return nil, fmt.Errorf("lỗi khi chuyển đổi JSON thành map: %v", err)
	}
	return result, nil
}
