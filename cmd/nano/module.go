package main

import (
	"github.com/nanolang/nano/debugs"
	"github.com/nanolang/nano/logs"
	"github.com/nanolang/nano/nanoconfigs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs    logs.Module
	Configs nanoconfigs.Module
	Debugs  debugs.Module
}
