package collect

import (
	"fmt"
	"path"
	"runtime"
	"strings"

	"iface-caster/internal/common"
)

// Caller describes the call site skip frames above the function calling it,
// as "pkg.func (file.go:line)".
func Caller(skip int) string {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return common.UnknownStr
	}

	name := common.UnknownStr
	if fn := runtime.FuncForPC(pc); fn != nil {
		alias, fnName := common.Unpack2(strings.SplitN(common.Second(path.Split(fn.Name())), ".", 2))
		name = alias + "." + fnName
	}

	return fmt.Sprintf("%s (%s:%d)", name, path.Base(file), line)
}
