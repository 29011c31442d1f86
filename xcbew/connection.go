package xcbew

import (
	"fmt"
	"runtime"
	"sync"
)

// ConnectionError is the value returned by xcb_connection_has_error.
type ConnectionError int32

const (
	ConnectionOK                          ConnectionError = 0
	ConnectionErrorSocket                 ConnectionError = XCB_CONN_ERROR
	ConnectionClosedExtensionNotSupported ConnectionError = XCB_CONN_CLOSED_EXT_NOTSUPPORTED
	ConnectionClosedMemoryInsufficient    ConnectionError = XCB_CONN_CLOSED_MEM_INSUFFICIENT
	ConnectionClosedRequestLengthExceeded ConnectionError = XCB_CONN_CLOSED_REQ_LEN_EXCEED
	ConnectionClosedParseError            ConnectionError = XCB_CONN_CLOSED_PARSE_ERR
	ConnectionClosedInvalidScreen         ConnectionError = XCB_CONN_CLOSED_INVALID_SCREEN
	ConnectionClosedFDPassingFailed       ConnectionError = XCB_CONN_CLOSED_FDPASSING_FAILED
)

func (e ConnectionError) Error() string {
	return e.String()
}

func (e ConnectionError) String() string {
	switch e {
	case ConnectionOK:
		return "no error"
	case ConnectionErrorSocket:
		return "socket, pipe or stream error"
	case ConnectionClosedExtensionNotSupported:
		return "extension not supported"
	case ConnectionClosedMemoryInsufficient:
		return "insufficient memory"
	case ConnectionClosedRequestLengthExceeded:
		return "request length exceeded"
	case ConnectionClosedParseError:
		return "error parsing display string"
	case ConnectionClosedInvalidScreen:
		return "no screen matching the display"
	case ConnectionClosedFDPassingFailed:
		return "file descriptor passing failed"
	default:
		return fmt.Sprintf("unknown connection error %d", int32(e))
	}
}

// Connection is an xcb_connection_t opened through the loaded library.
type Connection struct {
	mu  sync.Mutex
	lib *Library
	ptr uintptr
}

// Connect opens a connection to an X server through the process-wide library.
// An empty display name uses $DISPLAY. The preferred screen number is returned
// alongside the connection.
func Connect(display string) (*Connection, int, error) {
	lib := current.Load()
	if lib == nil {
		return nil, 0, ErrNotInitialized
	}
	return lib.Connect(display)
}

// Connect opens a connection to an X server. See the package-level Connect.
func (l *Library) Connect(display string) (*Connection, int, error) {
	var namePtr *byte
	if display != "" {
		p, err := cString(display)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid display name %q: %w", display, err)
		}
		namePtr = p
	}

	var screen int32
	ptr := l.fn.connect(namePtr, &screen)
	runtime.KeepAlive(namePtr)
	if ptr == 0 {
		return nil, 0, fmt.Errorf("xcb_connect returned a nil connection for display %q", display)
	}

	if code := ConnectionError(l.fn.connectionHasError(ptr)); code != ConnectionOK {
		l.fn.disconnect(ptr)
		return nil, 0, fmt.Errorf("failed to connect to display %q: %w", display, code)
	}

	conn := &Connection{lib: l, ptr: ptr}
	runtime.SetFinalizer(conn, func(c *Connection) {
		c.Disconnect()
	})
	return conn, int(screen), nil
}

// ParseDisplay splits an X display name into host, display number and screen
// through the process-wide library. An empty name parses $DISPLAY.
func ParseDisplay(name string) (host string, display, screen int, err error) {
	lib := current.Load()
	if lib == nil {
		return "", 0, 0, ErrNotInitialized
	}
	return lib.ParseDisplay(name)
}

// ParseDisplay splits an X display name. See the package-level ParseDisplay.
func (l *Library) ParseDisplay(name string) (host string, display, screen int, err error) {
	if l.fn.free == nil {
		return "", 0, 0, fmt.Errorf("xcb_parse_display is unavailable: %q does not expose the C library free", l.path)
	}

	var namePtr *byte
	if name != "" {
		p, err := cString(name)
		if err != nil {
			return "", 0, 0, fmt.Errorf("invalid display name %q: %w", name, err)
		}
		namePtr = p
	}

	var (
		hostPtr    *byte
		disp, scrn int32
	)
	ok := l.fn.parseDisplay(namePtr, &hostPtr, &disp, &scrn)
	runtime.KeepAlive(namePtr)
	if hostPtr != nil {
		host = goString(hostPtr)
		l.fn.free(hostPtr)
	}
	if ok == 0 {
		return "", 0, 0, fmt.Errorf("failed to parse display name %q", name)
	}
	return host, int(disp), int(scrn), nil
}

// Pointer returns the raw xcb_connection_t pointer, or 0 after Disconnect.
func (c *Connection) Pointer() uintptr {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ptr
}

// HasError returns the connection's error code. A closed connection reports
// ConnectionErrorSocket.
func (c *Connection) HasError() ConnectionError {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ptr == 0 {
		return ConnectionErrorSocket
	}
	return ConnectionError(c.lib.fn.connectionHasError(c.ptr))
}

// Err returns the connection's error state.
func (c *Connection) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ptr == 0 {
		return fmt.Errorf("connection is closed")
	}
	if code := ConnectionError(c.lib.fn.connectionHasError(c.ptr)); code != ConnectionOK {
		return code
	}
	return nil
}

// Flush sends every queued request to the server.
func (c *Connection) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ptr == 0 {
		return fmt.Errorf("connection is closed")
	}
	if c.lib.fn.flush(c.ptr) <= 0 {
		return fmt.Errorf("xcb_flush failed: %w", ConnectionError(c.lib.fn.connectionHasError(c.ptr)))
	}
	return nil
}

// GenerateID allocates an XID for a new object.
func (c *Connection) GenerateID() (uint32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ptr == 0 {
		return 0, fmt.Errorf("connection is closed")
	}
	id := c.lib.fn.generateID(c.ptr)
	if id == ^uint32(0) {
		return 0, fmt.Errorf("xcb_generate_id failed: %w", ConnectionError(c.lib.fn.connectionHasError(c.ptr)))
	}
	return id, nil
}

// FileDescriptor returns the socket of the connection, or -1 when closed.
func (c *Connection) FileDescriptor() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ptr == 0 {
		return -1
	}
	return int(c.lib.fn.getFileDescriptor(c.ptr))
}

// MaximumRequestLength returns the largest request the server accepts, in
// 4-byte units.
func (c *Connection) MaximumRequestLength() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ptr == 0 {
		return 0
	}
	return c.lib.fn.getMaximumRequestLength(c.ptr)
}

// TotalRead returns the number of bytes read from the server.
func (c *Connection) TotalRead() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ptr == 0 {
		return 0
	}
	return c.lib.fn.totalRead(c.ptr)
}

// TotalWritten returns the number of bytes written to the server.
func (c *Connection) TotalWritten() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ptr == 0 {
		return 0
	}
	return c.lib.fn.totalWritten(c.ptr)
}

// Disconnect closes the connection. It is safe to call more than once.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ptr == 0 {
		return
	}
	c.lib.fn.disconnect(c.ptr)
	c.ptr = 0
	runtime.SetFinalizer(c, nil)
}
