package convert

import (
	"github.com/jinzhu/copier"
)

// StructAssign copies same-named fields from source to target.
// target must be a pointer.
// StructAssign 将 source 中同名字段复制到 target，target 必须是指针
func StructAssign(target any, source any) error {
	return copier.CopyWithOption(target, source, copier.Option{
		IgnoreEmpty: false,
		DeepCopy:    true,
	})
}
