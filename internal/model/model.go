// Package model 定义数据模型
package model

import (
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB, key string) error {
	switch key {

	case "User":
		return db.AutoMigrate(User{})

	case "Session":
		return db.AutoMigrate(Session{})

	case "Note":
		return db.AutoMigrate(Note{})
	}
	return nil
}
