package unsafekit

import "unsafe"

const PtrSize = 4 << (^uintptr(0) >> 63) // unsafe.Sizeof(uintptr(0)) but an ideal const

// IsAligned reports whether (p) is aligned to (align). Align must be a power of two.
func IsAligned(p unsafe.Pointer, align uintptr) bool {
	if align == 0 || align&(align-1) != 0 {
		panic("illegal value")
	}
	return uintptr(p)&(align-1) == 0
}
