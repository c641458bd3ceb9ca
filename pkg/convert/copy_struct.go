package convert

import (
	"github.com/bytedance/sonic"
	"github.com/jinzhu/copier"
)

// StructAssign copies same-named fields from source into target and returns
// target. Used for model <-> domain <-> DTO mapping.
func StructAssign(source any, target any) any {
	_ = copier.Copy(target, source)
	return target
}

// StructAssignJSON copies through JSON tags instead of field names, for
// shapes whose Go names diverge.
func StructAssignJSON(source any, target any) any {
	data, err := sonic.Marshal(source)
	if err != nil {
		return target
	}
	_ = sonic.Unmarshal(data, target)
	return target
}
