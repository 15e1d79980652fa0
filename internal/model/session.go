package model

import "github.com/haierkeys/note-recall-service/pkg/timex"

const TableNameSession = "session"

// Session mapped from table <session>
// Session 是用户用于组织笔记的命名分组
type Session struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	UID       int64      `gorm:"column:uid;not null;index:idx_session_uid" json:"uid" form:"uid"`
	Name      string     `gorm:"column:name;not null" json:"name" form:"name"`
	IsDeleted int64      `gorm:"column:is_deleted;not null;default:0" json:"-"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;default:NULL;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at;type:datetime;default:NULL;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName Session's table name
func (*Session) TableName() string {
	return TableNameSession
}
