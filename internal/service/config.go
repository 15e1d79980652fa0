// Package service implements the business logic layer
// Package service 实现业务逻辑层
package service

import "github.com/haierkeys/note-recall-service/internal/domain"

// ServiceConfig service layer configuration
// ServiceConfig 服务层配置
type ServiceConfig struct {
	User UserServiceConfig // User related config // 用户相关配置
	App  AppServiceConfig  // App related config // 应用相关配置
}

// UserServiceConfig user service configuration
// UserServiceConfig 用户服务配置
type UserServiceConfig struct {
	RegisterIsEnable bool // Whether registration is enabled // 注册是否启用
}

// AppServiceConfig app service configuration
// AppServiceConfig 应用服务配置
type AppServiceConfig struct {
	// KeybindingScope 快捷键唯一性检查范围：session/user/none
	KeybindingScope domain.KeybindingScope
}
