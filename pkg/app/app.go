package app

import (
	"net/http"
	"strings"

	"github.com/haierkeys/note-recall-service/pkg/code"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Ctx *gin.Context
}

func NewResponse(ctx *gin.Context) *Response {
	return &Response{
		Ctx: ctx,
	}
}

// GetRequestIP gets the request IP
// GetRequestIP 获取ip
func GetRequestIP(c *gin.Context) string {
	reqIP := c.ClientIP()
	if reqIP == "::1" {
		reqIP = "127.0.0.1"
	}
	return reqIP
}

// ToResponse output to browser
// Success codes write their data directly (or {"success": true} when there is
// none); error codes write the {"error": "..."} body. The HTTP status always
// comes from the code object.
// ToResponse 输出到浏览器：成功码直接输出数据，错误码输出 {"error": "..."}
func (r *Response) ToResponse(codeObj *code.Code) {
	status := codeObj.StatusCode()
	r.Ctx.Set("status_code", status)

	if codeObj.Status() {
		if status == http.StatusNoContent {
			r.Ctx.Status(status)
			return
		}
		if codeObj.HaveData() {
			r.send(status, codeObj.Data())
			return
		}
		r.send(status, gin.H{"success": true})
		return
	}

	content := gin.H{"error": codeObj.Msg()}
	if codeObj.HaveDetails() {
		content["details"] = strings.Join(codeObj.Details(), ",")
	}
	r.send(status, content)
}

func (r *Response) send(statusCode int, content interface{}) {
	r.Ctx.JSON(statusCode, content)
}
