package code

import "net/http"

// Success codes
// 成功码
var (
	Success          = NewSuss(0, http.StatusOK, lang{"Success", "成功"})
	SuccessCreate    = NewSuss(1, http.StatusCreated, lang{"Created", "创建成功"})
	SuccessNoContent = NewSuss(2, http.StatusNoContent, lang{"No Content", "无内容"})
)

// Common error codes
// 通用错误码
var (
	Failed              = NewError(1, http.StatusInternalServerError, lang{"Failed", "失败"})
	ErrorServerInternal = NewError(10000000, http.StatusInternalServerError, lang{"Internal Server Error", "服务内部错误"})
	ErrorInvalidParams  = NewError(10000001, http.StatusBadRequest, lang{"Invalid Params", "入参错误"})
	ErrorNotFoundAPI    = NewError(10000002, http.StatusNotFound, lang{"Not Found API", "接口不存在"})
	ErrorMethodNotAllow = NewError(10000003, http.StatusMethodNotAllowed, lang{"Method Not Allowed", "方法不被允许"})
	ErrorTooManyRequests = NewError(10000004, http.StatusTooManyRequests, lang{"Too Many Requests", "请求过多"})
	ErrorDBQuery        = NewError(10000005, http.StatusInternalServerError, lang{"Database Query Error", "数据库查询错误"})
)

// User / auth error codes
// 用户与认证错误码
var (
	ErrorNotUserAuthToken     = NewError(10010001, http.StatusUnauthorized, lang{"Not Authenticated", "未认证"})
	ErrorInvalidUserAuthToken = NewError(10010002, http.StatusUnauthorized, lang{"Invalid Auth Token", "认证 Token 无效"})
	ErrorTokenGenerate        = NewError(10010003, http.StatusInternalServerError, lang{"Token Generate Failed", "Token 生成失败"})
	ErrorUserRegister         = NewError(10010004, http.StatusInternalServerError, lang{"User Register Failed", "用户注册失败"})
	ErrorUserEmailAlreadyExists = NewError(10010005, http.StatusConflict, lang{"User Already Exists", "用户已存在"})
	ErrorUserLoginFailed      = NewError(10010006, http.StatusUnauthorized, lang{"Email Or Password Incorrect", "邮箱或密码错误"})
	ErrorUserNotFound         = NewError(10010007, http.StatusNotFound, lang{"User Not Found", "用户不存在"})
	ErrorUserRegisterDisabled = NewError(10010008, http.StatusBadRequest, lang{"User Register Is Disabled", "用户注册已关闭"})
)

// Session error codes
// 笔记分组错误码
var (
	ErrorSessionNotFound  = NewError(10020001, http.StatusNotFound, lang{"Session Not Found", "笔记分组不存在"})
	ErrorSessionForbidden = NewError(10020002, http.StatusForbidden, lang{"Not Session Owner", "非笔记分组所有者"})
)

// Note error codes
// 笔记错误码
var (
	ErrorNoteNotFound       = NewError(10030001, http.StatusNotFound, lang{"Note Not Found", "笔记不存在"})
	ErrorNoteForbidden      = NewError(10030002, http.StatusForbidden, lang{"Not Note Owner", "非笔记所有者"})
	ErrorKeybindingInvalid  = NewError(10030003, http.StatusBadRequest, lang{"Keybinding Must Be A Single Character", "快捷键必须是单个字符"})
	ErrorKeybindingConflict = NewError(10030004, http.StatusBadRequest, lang{"Keybinding Already Used In This Session", "快捷键在当前分组中已被占用"})
)
