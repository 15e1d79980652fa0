package global

import (
	"github.com/haierkeys/note-recall-service/pkg/fileurl"
)

var (
	// 程序执行目录
	ROOT string
	Name string = "Note Recall Service"
)

func init() {

	filename := fileurl.GetExePath()
	ROOT = filename + "/"

}
