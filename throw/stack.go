// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/groundkit/blob/master/LICENSE.md.

package throw

import (
	"runtime"
	"strconv"
	"strings"
)

const maxStackDepth = 32

type StackTrace []uintptr

func CaptureStack(skipFrames int) StackTrace {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skipFrames+2, pcs)
	if n == 0 {
		return nil
	}
	return pcs[:n]
}

func (v StackTrace) IsEmpty() bool {
	return len(v) == 0
}

func (v StackTrace) String() string {
	if len(v) == 0 {
		return ""
	}
	b := strings.Builder{}
	frames := runtime.CallersFrames(v)
	for {
		fr, more := frames.Next()
		if fr.Function != "" {
			b.WriteString(fr.Function)
			b.WriteString("()\n\t")
			b.WriteString(fr.File)
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(fr.Line))
			b.WriteByte('\n')
		}
		if !more {
			return b.String()
		}
	}
}

// StackOf extracts the deepest captured stack of the given error chain, if any.
func StackOf(err error) StackTrace {
	var st StackTrace
	for err != nil {
		if sh, ok := err.(stackHolder); ok {
			if s := sh.StackTrace(); !s.IsEmpty() {
				st = s
			}
		}
		err = errUnwrap(err)
	}
	return st
}

type stackHolder interface {
	StackTrace() StackTrace
}
