// Package convert 提供字符串与基础类型的转换助手
package convert

import (
	"strconv"
)

// StrTo 字符串类型转换器
type StrTo string

func (s StrTo) String() string {
	return string(s)
}

func (s StrTo) Int() (int, error) {
	v, err := strconv.Atoi(s.String())
	return v, err
}

// MustInt ignores the conversion error and returns zero on failure
// MustInt 忽略转换错误，失败时返回零值
func (s StrTo) MustInt() int {
	v, _ := s.Int()
	return v
}

func (s StrTo) UInt32() (uint32, error) {
	v, err := strconv.ParseUint(s.String(), 10, 32)
	return uint32(v), err
}

func (s StrTo) MustUInt32() uint32 {
	v, _ := s.UInt32()
	return v
}

func (s StrTo) Int64() (int64, error) {
	v, err := strconv.ParseInt(s.String(), 10, 64)
	return v, err
}

func (s StrTo) MustInt64() int64 {
	v, _ := s.Int64()
	return v
}

func (s StrTo) Float64() (float64, error) {
	v, err := strconv.ParseFloat(s.String(), 64)
	return v, err
}

func (s StrTo) MustFloat64() float64 {
	v, _ := s.Float64()
	return v
}

// Bool2Int converts a boolean to an integer
// Bool2Int 将布尔值转换为整数，true 返回 1，false 返回 0
func Bool2Int(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
