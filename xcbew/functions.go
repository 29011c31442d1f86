package xcbew

import (
	"github.com/ebitengine/purego"
)

var registerFunc = purego.RegisterFunc

// functions are the typed Go call-throughs bound to entries of XcbApi. Only the
// entry points with scalar signatures are bound; the rest of the table is
// reachable through purego.SyscallN.
type functions struct {
	connect                 func(displayName *byte, screen *int32) uintptr
	connectionHasError      func(c uintptr) int32
	disconnect              func(c uintptr)
	flush                   func(c uintptr) int32
	generateID              func(c uintptr) uint32
	getFileDescriptor       func(c uintptr) int32
	getMaximumRequestLength func(c uintptr) uint32
	totalRead               func(c uintptr) uint64
	totalWritten            func(c uintptr) uint64
	parseDisplay            func(name *byte, host **byte, display, screen *int32) int32

	// free is the C allocator's free, used for strings libxcb returns. It
	// stays nil when the library handle does not expose it.
	free func(p *byte)
}

func (f *functions) bind(api *XcbApi) {
	registerFunc(&f.connect, api.Connect)
	registerFunc(&f.connectionHasError, api.ConnectionHasError)
	registerFunc(&f.disconnect, api.Disconnect)
	registerFunc(&f.flush, api.Flush)
	registerFunc(&f.generateID, api.GenerateID)
	registerFunc(&f.getFileDescriptor, api.GetFileDescriptor)
	registerFunc(&f.getMaximumRequestLength, api.GetMaximumRequestLength)
	registerFunc(&f.totalRead, api.TotalRead)
	registerFunc(&f.totalWritten, api.TotalWritten)
	registerFunc(&f.parseDisplay, api.ParseDisplay)
}

func (f *functions) bindFree(addr uintptr) {
	registerFunc(&f.free, addr)
}
