package ecs

import "unsafe"

// eface mirrors the runtime layout of an empty interface so the data word of
// a boxed component pointer can be read without reflection.
type eface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

func dataPointer(v any) unsafe.Pointer {
	return (*eface)(unsafe.Pointer(&v)).data
}
