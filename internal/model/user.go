package model

import "github.com/haierkeys/note-recall-service/pkg/timex"

const TableNameUser = "user"

// User mapped from table <user>
type User struct {
	UID       int64      `gorm:"column:uid;primaryKey;autoIncrement" json:"uid" form:"uid"`
	Email     string     `gorm:"column:email;not null;uniqueIndex:idx_user_email" json:"email" form:"email"`
	Username  string     `gorm:"column:username;not null" json:"username" form:"username"`
	Password  string     `gorm:"column:password;not null" json:"-"`
	IsDeleted int64      `gorm:"column:is_deleted;not null;default:0" json:"-"`
	CreatedAt timex.Time `gorm:"column:created_at;type:datetime;default:NULL;autoCreateTime:false" json:"createdAt" form:"createdAt"`
	UpdatedAt timex.Time `gorm:"column:updated_at;type:datetime;default:NULL;autoUpdateTime:false" json:"updatedAt" form:"updatedAt"`
}

// TableName User's table name
func (*User) TableName() string {
	return TableNameUser
}
