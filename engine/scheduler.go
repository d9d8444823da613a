package engine

// FrameScheduler is the host's request-next-frame primitive
// The callback runs once, before the next repaint; callers re-request to keep looping
type FrameScheduler interface {
	RequestFrame(fn func())
}

// FrameSlot is a single pending-callback holder hosts embed to implement FrameScheduler
// A newer request replaces an unserved one
type FrameSlot struct {
	pending func()
}

func (f *FrameSlot) RequestFrame(fn func()) {
	f.pending = fn
}

// Run invokes and clears the pending callback, returns false if none was queued
func (f *FrameSlot) Run() bool {
	fn := f.pending
	if fn == nil {
		return false
	}
	f.pending = nil
	fn()
	return true
}
