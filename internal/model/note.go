package model

import (
	"database/sql/driver"
	"fmt"

	"github.com/haierkeys/note-recall-service/pkg/timex"

	"github.com/bytedance/sonic"
)

const TableNameNote = "note"

// TagList stores a note's tags as a JSON array in a single text column.
// TagList 以 JSON 数组形式存储笔记标签
type TagList []string

// Value 实现 driver.Valuer
func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		return "[]", nil
	}
	buf, err := sonic.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(buf), nil
}

// Scan 实现 sql.Scanner
func (t *TagList) Scan(v interface{}) error {
	var buf []byte
	switch value := v.(type) {
	case []byte:
		buf = value
	case string:
		buf = []byte(value)
	case nil:
		*t = TagList{}
		return nil
	default:
		return fmt.Errorf("cannot convert %v to TagList", v)
	}
	if len(buf) == 0 {
		*t = TagList{}
		return nil
	}
	return sonic.Unmarshal(buf, (*[]string)(t))
}

// Note mapped from table <note>
// Keybinding 为空串表示未绑定快捷键
type Note struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	UID         int64      `gorm:"column:uid;not null;index:idx_note_uid" json:"uid" form:"uid"`
	SessionID   int64      `gorm:"column:session_id;not null;index:idx_note_session" json:"sessionId" form:"sessionId"`
	Title       string     `gorm:"column:title;not null" json:"title" form:"title"`
	Content     string     `gorm:"column:content" json:"content" form:"content"`
	Tags        TagList    `gorm:"column:tags;type:text" json:"tags" form:"tags"`
	Keybinding  string     `gorm:"column:keybinding;not null;default:''" json:"keybinding" form:"keybinding"`
	OrderKey    float64    `gorm:"column:order_key;not null;default:0;index:idx_note_order" json:"orderKey" form:"orderKey"`
	IsDeleted   int64      `gorm:"column:is_deleted;not null;default:0" json:"-"`
	CreatedAt   timex.Time `gorm:"column:created_at;type:datetime;default:NULL;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt   timex.Time `gorm:"column:updated_at;type:datetime;default:NULL;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName Note's table name
func (*Note) TableName() string {
	return TableNameNote
}
