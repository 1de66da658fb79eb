package debugs

import (
	"github.com/nanolang/nano/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
