package util

import (
	"os"
	"sync"

	"github.com/denisbrodbeck/machineid"
)

var (
	machineIDOnce sync.Once
	machineID     string
)

// GetMachineID returns a stable identifier for this machine, used to salt the
// token signing key so tokens do not survive a host move.
// GetMachineID 返回本机稳定标识，用于混入 Token 签名密钥
func GetMachineID() string {
	machineIDOnce.Do(func() {
		id, err := machineid.ProtectedID("note-recall-service")
		if err != nil {
			// Fall back to hostname when the platform has no machine id
			// 平台不支持机器码时回退到主机名
			host, herr := os.Hostname()
			if herr != nil {
				machineID = "unknown"
				return
			}
			machineID = host
			return
		}
		machineID = id
	})
	return machineID
}
