// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package cl

import "unsafe"

// WaitForEvents blocks until every event in the list completes.
func WaitForEvents(events []Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.waitForEvents.get()
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return Status(InvalidValue)
	}
	return statusErr(fn(uint32(len(events)), &events[0]))
}

// GetEventInfo returns the raw value of the given event parameter.
func GetEventInfo(ev Event, param uint32) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getEventInfo.get()
	if err != nil {
		return nil, err
	}
	return objInfo(fn, ev, param)
}

// CreateUserEvent creates an event whose status is controlled by
// the host through SetUserEventStatus.
func CreateUserEvent(ctx Context) (Event, error) {
	rt, err := loadRuntime()
	if err != nil {
		return 0, err
	}
	fn, err := rt.createUserEvent.get()
	if err != nil {
		return 0, err
	}
	var st int32
	ev := fn(ctx, &st)
	if st != Success {
		return 0, Status(st)
	}
	return ev, nil
}

// RetainEvent increments the reference count of ev.
func RetainEvent(ev Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.retainEvent.get()
	if err != nil {
		return err
	}
	return statusErr(fn(ev))
}

// ReleaseEvent decrements the reference count of ev.
func ReleaseEvent(ev Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.releaseEvent.get()
	if err != nil {
		return err
	}
	return statusErr(fn(ev))
}

// SetUserEventStatus sets the execution status of a user event to
// Complete or a negative error code. It can be called only once per
// event.
func SetUserEventStatus(ev Event, execStatus int32) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.setUserEventStatus.get()
	if err != nil {
		return err
	}
	return statusErr(fn(ev, execStatus))
}

// SetEventCallback registers a callback for when ev reaches the
// given execution status. pfnNotify must come from NewCallback and
// may be invoked from any thread.
func SetEventCallback(ev Event, callbackType int32, pfnNotify uintptr, userData unsafe.Pointer) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.setEventCallback.get()
	if err != nil {
		return err
	}
	return statusErr(fn(ev, callbackType, pfnNotify, userData))
}

// GetEventProfilingInfo returns the raw value of the given
// profiling counter. The queue must have been created with
// QueueProfilingEnable.
func GetEventProfilingInfo(ev Event, param uint32) ([]byte, error) {
	rt, err := loadRuntime()
	if err != nil {
		return nil, err
	}
	fn, err := rt.getEventProfilingInfo.get()
	if err != nil {
		return nil, err
	}
	return objInfo(fn, ev, param)
}

// EnqueueMarkerWithWaitList enqueues a marker that completes when
// the wait list does (or when all prior commands do, for an empty
// list).
func EnqueueMarkerWithWaitList(queue CommandQueue, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueMarkerWithWaitList.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, n, wl, event))
}

// EnqueueBarrierWithWaitList enqueues a barrier that blocks later
// commands until the wait list completes (or all prior commands,
// for an empty list).
func EnqueueBarrierWithWaitList(queue CommandQueue, waitList []Event, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueBarrierWithWaitList.get()
	if err != nil {
		return err
	}
	n, wl := waitListArgs(waitList)
	return statusErr(fn(queue, n, wl, event))
}

// EnqueueMarker enqueues a marker event.
//
// Deprecated: as of OpenCL 1.2, use EnqueueMarkerWithWaitList.
func EnqueueMarker(queue CommandQueue, event *Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueMarker.get()
	if err != nil {
		return err
	}
	return statusErr(fn(queue, event))
}

// EnqueueWaitForEvents makes queue wait for the given events.
//
// Deprecated: as of OpenCL 1.2, use EnqueueBarrierWithWaitList.
func EnqueueWaitForEvents(queue CommandQueue, events []Event) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueWaitForEvents.get()
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return Status(InvalidValue)
	}
	return statusErr(fn(queue, uint32(len(events)), &events[0]))
}

// EnqueueBarrier enqueues a barrier.
//
// Deprecated: as of OpenCL 1.2, use EnqueueBarrierWithWaitList.
func EnqueueBarrier(queue CommandQueue) error {
	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	fn, err := rt.enqueueBarrier.get()
	if err != nil {
		return err
	}
	return statusErr(fn(queue))
}
