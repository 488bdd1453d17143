// Package footprint answers layout questions about capture types:
// how many bytes a placed adapter occupies, and whether its layout is
// free of pointer words the garbage collector would need to trace.
package footprint

import (
	"reflect"
	"sync"
)

// Of reports the byte footprint of T.
func Of[T any]() uintptr {
	return reflect.TypeFor[T]().Size()
}

// Verdicts are immutable per type, so the cache only ever grows.
var verdicts sync.Map // reflect.Type -> bool

// PointerFree reports whether T's layout contains no pointer words.
// The walk runs once per type; later calls hit the cache.
func PointerFree[T any]() bool {
	t := reflect.TypeFor[T]()
	if v, ok := verdicts.Load(t); ok {
		return v.(bool)
	}
	v := pointerFree(t)
	verdicts.Store(t, v)
	return v
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Pointers, strings, slices, maps, channels, funcs, interfaces.
		return false
	}
}
