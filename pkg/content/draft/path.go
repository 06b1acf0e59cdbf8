package draft

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// UpdateAt navigates root by a dotted field path with optional slice
// indices, e.g. "CourseHistory[2].Courses[5].Code", and replaces the leaf
// with value. root must be a pointer to a struct; the walk addresses the
// pointed-to data, so callers pass a draft's working copy, never a shared
// snapshot.
func UpdateAt(root interface{}, path string, value interface{}) error {
	leaf, err := resolve(root, path)
	if err != nil {
		return err
	}
	v := reflect.ValueOf(value)
	if !v.Type().AssignableTo(leaf.Type()) {
		return fmt.Errorf("draft: cannot assign %s to %s at %q", v.Type(), leaf.Type(), path)
	}
	leaf.Set(v)
	return nil
}

// StringAt reads a string leaf by path. Used by editors to seed their
// buffer from the draft.
func StringAt(root interface{}, path string) (string, error) {
	leaf, err := resolve(root, path)
	if err != nil {
		return "", err
	}
	if leaf.Kind() != reflect.String {
		return "", fmt.Errorf("draft: %q is %s, not string", path, leaf.Kind())
	}
	return leaf.String(), nil
}

func resolve(root interface{}, path string) (reflect.Value, error) {
	v := reflect.ValueOf(root)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return reflect.Value{}, fmt.Errorf("draft: root must be a non-nil pointer")
	}
	v = v.Elem()

	for _, seg := range strings.Split(path, ".") {
		name, indices, err := splitSegment(seg)
		if err != nil {
			return reflect.Value{}, err
		}
		if v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return reflect.Value{}, fmt.Errorf("draft: nil pointer at %q", name)
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("draft: %q is %s, expected struct", name, v.Kind())
		}
		v = v.FieldByName(name)
		if !v.IsValid() {
			return reflect.Value{}, fmt.Errorf("draft: no field %q in path %q", name, path)
		}
		for _, idx := range indices {
			if v.Kind() != reflect.Slice {
				return reflect.Value{}, fmt.Errorf("draft: %q[%d] indexes a %s", name, idx, v.Kind())
			}
			if idx < 0 || idx >= v.Len() {
				return reflect.Value{}, fmt.Errorf("draft: index %d out of range for %q (len %d)", idx, name, v.Len())
			}
			v = v.Index(idx)
		}
	}

	if !v.CanSet() {
		return reflect.Value{}, fmt.Errorf("draft: %q is not settable", path)
	}
	return v, nil
}

func pathf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

func splitSegment(seg string) (string, []int, error) {
	open := strings.IndexByte(seg, '[')
	if open < 0 {
		return seg, nil, nil
	}
	name := seg[:open]
	var indices []int
	rest := seg[open:]
	for rest != "" {
		if rest[0] != '[' {
			return "", nil, fmt.Errorf("draft: malformed segment %q", seg)
		}
		close := strings.IndexByte(rest, ']')
		if close < 0 {
			return "", nil, fmt.Errorf("draft: malformed segment %q", seg)
		}
		idx, err := strconv.Atoi(rest[1:close])
		if err != nil {
			return "", nil, fmt.Errorf("draft: malformed index in %q", seg)
		}
		indices = append(indices, idx)
		rest = rest[close+1:]
	}
	return name, indices, nil
}
