package diff

import (
	"fmt"
	"strconv"
	"strings"
)

// Deleted is the sentinel recorded as the new value when an array shrinks.
// It distinguishes a removed element from one explicitly set to null.
const Deleted = "[deleted]"

// Field records one change at a dot/bracket path, e.g. "execs[2].name".
type Field struct {
	Key      string `json:"key"`
	OldValue Value  `json:"oldValue"`
	NewValue Value  `json:"newValue"`
}

// IsFilteredKey reports whether a key is internal bookkeeping and must never
// be diffed or recursed into: any name ending in "id" (case-insensitive),
// plus "history" and "repeatEnd".
func IsFilteredKey(key string) bool {
	if key == "history" || key == "repeatEnd" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(key), "id")
}

// Creation emits one field per unfiltered top-level key of a newly created
// document, with a null old value. Field order is the document's key order.
func Creation(obj *Object) []Field {
	var fields []Field
	for _, key := range obj.Keys() {
		if IsFilteredKey(key) {
			continue
		}
		v, _ := obj.Get(key)
		fields = append(fields, Field{Key: key, OldValue: Null(), NewValue: v})
	}
	return fields
}

// Compare produces the flattened change set between two versions of a
// document. Keys are enumerated from the new version; a key missing from the
// old version compares against null (or an empty container when recursing),
// which keeps shape mismatches permissive rather than fatal.
func Compare(oldObj, newObj *Object) []Field {
	var fields []Field
	for _, key := range newObj.Keys() {
		if IsFilteredKey(key) {
			continue
		}
		newV, _ := newObj.Get(key)
		oldV, _ := oldObj.Get(key)

		switch newV.Kind() {
		case KindArray:
			var oldArr []Value
			if oldV.Kind() == KindArray {
				oldArr = oldV.ArrayVal()
			}
			fields = append(fields, CompareArray(oldArr, newV.ArrayVal(), key)...)
		case KindObject:
			oldSub := oldV.ObjectVal()
			if oldSub == nil {
				oldSub = NewObject()
			}
			for _, sub := range Compare(oldSub, newV.ObjectVal()) {
				sub.Key = key + "." + sub.Key
				fields = append(fields, sub)
			}
		default:
			if !Equal(oldV, newV) {
				fields = append(fields, Field{Key: key, OldValue: oldV, NewValue: newV})
			}
		}
	}
	return fields
}

// CompareArray diffs two arrays element-wise. Index position is the sole
// correlation key, so a reorder reads as a rewrite rather than a move.
func CompareArray(oldArr, newArr []Value, prefix string) []Field {
	var fields []Field
	n := len(oldArr)
	if len(newArr) > n {
		n = len(newArr)
	}
	for i := 0; i < n; i++ {
		key := prefix + "[" + strconv.Itoa(i) + "]"
		switch {
		case i >= len(newArr):
			fields = append(fields, Field{Key: key, OldValue: oldArr[i], NewValue: String(Deleted)})
		case i >= len(oldArr):
			fields = append(fields, Field{Key: key, OldValue: Null(), NewValue: newArr[i]})
		default:
			oldE, newE := oldArr[i], newArr[i]
			if Equal(oldE, newE) {
				continue
			}
			if oldE.Kind() == KindArray && newE.Kind() == KindArray {
				fields = append(fields, CompareArray(oldE.ArrayVal(), newE.ArrayVal(), key)...)
			} else if oldE.Kind() == KindObject && newE.Kind() == KindObject {
				for _, sub := range Compare(oldE.ObjectVal(), newE.ObjectVal()) {
					sub.Key = key + "." + sub.Key
					fields = append(fields, sub)
				}
			} else {
				fields = append(fields, Field{Key: key, OldValue: oldE, NewValue: newE})
			}
		}
	}
	return fields
}

// Apply writes a value at a dot/bracket path inside obj, creating
// intermediate objects and extending arrays by at most one slot as needed.
// Applying every NewValue of Compare(A, B) to a clone of A reproduces B for
// all unfiltered keys.
func Apply(obj *Object, path string, v Value) error {
	segs, err := splitPath(path)
	if err != nil {
		return err
	}
	return applySegs(obj, segs, v)
}

type pathSeg struct {
	key   string
	index int
	isIdx bool
}

func splitPath(path string) ([]pathSeg, error) {
	var segs []pathSeg
	i := 0
	for i < len(path) {
		switch path[i] {
		case '.':
			i++
		case '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("diff: unterminated index in path %q", path)
			}
			idx, err := strconv.Atoi(path[i+1 : i+end])
			if err != nil {
				return nil, fmt.Errorf("diff: bad index in path %q: %w", path, err)
			}
			segs = append(segs, pathSeg{index: idx, isIdx: true})
			i += end + 1
		default:
			j := i
			for j < len(path) && path[j] != '.' && path[j] != '[' {
				j++
			}
			segs = append(segs, pathSeg{key: path[i:j]})
			i = j
		}
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("diff: empty path")
	}
	return segs, nil
}

func applySegs(obj *Object, segs []pathSeg, v Value) error {
	if obj == nil {
		return fmt.Errorf("diff: apply into nil object")
	}
	seg := segs[0]
	if seg.isIdx {
		return fmt.Errorf("diff: path starts with an index")
	}
	if len(segs) == 1 {
		obj.Set(seg.key, v)
		return nil
	}

	cur, _ := obj.Get(seg.key)
	next := segs[1]
	if next.isIdx {
		arr := cur.ArrayVal()
		arr, err := applyIndex(arr, segs[1:], v)
		if err != nil {
			return err
		}
		obj.Set(seg.key, Array(arr))
		return nil
	}
	child := cur.ObjectVal()
	if child == nil {
		child = NewObject()
		obj.Set(seg.key, ObjectValue(child))
	}
	return applySegs(child, segs[1:], v)
}

func applyIndex(arr []Value, segs []pathSeg, v Value) ([]Value, error) {
	idx := segs[0].index
	if idx < 0 || idx > len(arr) {
		return nil, fmt.Errorf("diff: index %d out of range (len %d)", idx, len(arr))
	}
	if idx == len(arr) {
		arr = append(arr, Null())
	}
	if len(segs) == 1 {
		arr[idx] = v
		return arr, nil
	}

	next := segs[1]
	if next.isIdx {
		inner, err := applyIndex(arr[idx].ArrayVal(), segs[1:], v)
		if err != nil {
			return nil, err
		}
		arr[idx] = Array(inner)
		return arr, nil
	}
	child := arr[idx].ObjectVal()
	if child == nil {
		child = NewObject()
		arr[idx] = ObjectValue(child)
	}
	if err := applySegs(child, segs[1:], v); err != nil {
		return nil, err
	}
	return arr, nil
}
