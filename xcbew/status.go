package xcbew

// Status is the outcome of Init.
type Status int

const (
	// StatusSuccess means libxcb was opened and every symbol resolved.
	StatusSuccess Status = iota
	// StatusNotFound means no usable libxcb was found. A library that opened
	// but lacks a required symbol is reported the same way.
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNotFound:
		return "not found"
	default:
		return "unknown"
	}
}
