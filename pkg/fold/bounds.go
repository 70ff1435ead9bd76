package fold

import (
	"math"
	"reflect"
)

// Number covers the built-in numeric types with a defined top and bottom
// bound. Floats use the infinities as bounds.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Ordered covers types comparable with < and >.
type Ordered interface {
	Number | ~string
}

// Addable covers types that support the + operator.
type Addable interface {
	Number | ~string | ~complex64 | ~complex128
}

// MaxBound returns the largest value representable by T.
func MaxBound[T Number]() T {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(math.Inf(1))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		rv.SetUint(^uint64(0) >> uint(64-rv.Type().Bits()))
	default:
		rv.SetInt(int64(^uint64(0) >> uint(64-rv.Type().Bits()) >> 1))
	}
	return v
}

// MinBound returns the smallest value representable by T.
func MinBound[T Number]() T {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(math.Inf(-1))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		rv.SetUint(0)
	default:
		rv.SetInt(-1 << uint(rv.Type().Bits()-1))
	}
	return v
}
