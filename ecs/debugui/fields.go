package debugui

import (
	"fmt"
	"reflect"
	"sync"
)

type fieldInfo struct {
	Name  string
	Index int
}

type fieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]fieldInfo
}

var componentFields = &fieldCache{fields: make(map[reflect.Type][]fieldInfo)}

// get returns the exported fields of struct type t.
func (fc *fieldCache) get(t reflect.Type) []fieldInfo {
	fc.mu.RLock()
	cached, ok := fc.fields[t]
	fc.mu.RUnlock()
	if ok {
		return cached
	}

	var fields []fieldInfo
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			if f := t.Field(i); f.IsExported() {
				fields = append(fields, fieldInfo{Name: f.Name, Index: i})
			}
		}
	}

	fc.mu.Lock()
	fc.fields[t] = fields
	fc.mu.Unlock()
	return fields
}

type fieldLine struct {
	Name  string
	Value string
}

// describe formats every exported field of component, which may be a
// pointer. Non-struct components yield a single line named after the type.
func describe(component any) []fieldLine {
	v := reflect.Indirect(reflect.ValueOf(component))
	if !v.IsValid() {
		return nil
	}
	if v.Kind() != reflect.Struct {
		return []fieldLine{{Name: v.Type().Name(), Value: formatValue(v)}}
	}

	infos := componentFields.get(v.Type())
	lines := make([]fieldLine, 0, len(infos))
	for _, f := range infos {
		lines = append(lines, fieldLine{Name: f.Name, Value: formatValue(v.Field(f.Index))})
	}
	return lines
}

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return "nil"
		}
		return formatValue(v.Elem())
	case reflect.Pointer:
		if v.IsNil() {
			return "nil"
		}
		if v.Elem().Kind() != reflect.Struct {
			return formatValue(v.Elem())
		}
		return fmt.Sprintf("%s@0x%x", v.Type(), v.Pointer())
	case reflect.Func:
		if v.IsNil() {
			return "nil"
		}
		return "func"
	case reflect.Slice:
		return fmt.Sprintf("[%d items]", v.Len())
	case reflect.Map:
		return fmt.Sprintf("map[%d items]", v.Len())
	case reflect.Float32, reflect.Float64:
		return fmt.Sprintf("%.3f", v.Float())
	}
	if v.CanInterface() {
		return fmt.Sprintf("%v", v.Interface())
	}
	return v.String()
}
