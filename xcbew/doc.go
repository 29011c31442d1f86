// Package xcbew loads libxcb at runtime without cgo.
//
// Init searches an ordered list of candidate library names, opens the first one
// the OS loader accepts and resolves every symbol of the XcbApi table against
// it. The table is published process-wide only when every symbol resolved, so
// callers observe either no table at all or a complete one:
//
//	if xcbew.Init() != xcbew.StatusSuccess {
//		// libxcb is not usable on this host
//	}
//	api := xcbew.Api()
//
// Addresses in XcbApi may be invoked with purego.SyscallN. A handful of entry
// points are also exposed as typed Go functions (Connect, ParseDisplay,
// Connection.Flush, ...). The integer XCB_* macros of xcb.h are generated
// alongside the table.
//
// The library search can be steered with environment variables:
//
//	XCBEW_LIB_PATH               explicit path, disables every other candidate
//	XCBEW_LIBRARY_DIRS           extra directories searched before the system names, ${VAR} expanded
//	XCBEW_DISABLE_SYSTEM_SEARCH  skip the platform library names
package xcbew
