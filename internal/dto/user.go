// Package dto 定义数据传输对象（请求参数和响应结构体）
package dto

import "github.com/haierkeys/note-recall-service/pkg/timex"

// UserSignupRequest 用户注册请求参数
type UserSignupRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
	Name     string `json:"name" form:"name"`
}

// UserLoginRequest 用户登录请求参数
type UserLoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// UserSignupDTO 注册响应
type UserSignupDTO struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// UserLoginDTO 登录响应，携带后续请求所用 Token
type UserLoginDTO struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

// UserDTO 用户信息
type UserDTO struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	CreatedAt timex.Time `json:"createdAt"`
}
