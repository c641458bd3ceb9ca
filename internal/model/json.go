package model

import (
	"database/sql/driver"
	"fmt"

	"github.com/bytedance/sonic"
)

// JSONColumn stores an arbitrary JSON-serializable value in a TEXT column.
// Nested lists and objects (club execs, history fields) live inside their
// parent row rather than in join tables.
type JSONColumn[T any] struct {
	Data T
}

func NewJSONColumn[T any](data T) JSONColumn[T] {
	return JSONColumn[T]{Data: data}
}

func (j JSONColumn[T]) Value() (driver.Value, error) {
	data, err := sonic.Marshal(j.Data)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (j *JSONColumn[T]) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("model: cannot scan %T into JSONColumn", src)
	}
	if len(raw) == 0 {
		return nil
	}
	return sonic.Unmarshal(raw, &j.Data)
}

func (j JSONColumn[T]) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(j.Data)
}

func (j *JSONColumn[T]) UnmarshalJSON(data []byte) error {
	return sonic.Unmarshal(data, &j.Data)
}
