package logger

// 统一的日志字段命名常量
// 用于保证整个项目日志字段命名一致，便于查询与分析
const (
	// FieldTraceID 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldUID 用户 ID 字段
	FieldUID = "uid"

	// FieldAction 操作类型字段
	FieldAction = "action"

	// FieldSessionID 会话 ID 字段
	FieldSessionID = "sessionId"

	// FieldNoteID 笔记 ID 字段
	FieldNoteID = "noteId"

	// FieldTag 标签字段
	FieldTag = "tag"

	// FieldKeybinding 快捷键字段
	FieldKeybinding = "keybinding"

	// FieldEmail 邮箱字段
	FieldEmail = "email"

	// FieldDuration 耗时字段
	FieldDuration = "duration"

	// FieldMethod 方法名称字段
	FieldMethod = "method"

	// FieldError 错误信息字段
	FieldError = "error"

	// FieldCount 结果数量字段
	FieldCount = "count"
)
