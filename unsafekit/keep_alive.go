package unsafekit

import (
	"runtime"
	"unsafe"
)

// KeepAliveWhile guarantees that the allocation behind (p) stays reachable
// for the duration of (fn), even when (fn) only retains uintptr-typed
// derivatives of it.
func KeepAliveWhile(p unsafe.Pointer, fn func(unsafe.Pointer) uintptr) uintptr {
	res := fn(p)
	runtime.KeepAlive(p)
	return res
}
