package util

import (
	"github.com/goccy/go-json"
)

// DecodePatch 把 PATCH 请求体解析成字段集合，空体解析为空集合
func DecodePatch(body []byte) (map[string]interface{}, error) {
	if len(body) == 0 {
		return map[string]interface{}{}, nil
	}
	fields := make(map[string]interface{})
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
