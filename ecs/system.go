package ecs

// System is one unit of per-frame behavior. Query, Singleton and Events
// fields of a system struct are bound to the storage when the system is
// registered; any other fields are the system's own state across frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}
