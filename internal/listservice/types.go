package listservice

// SimpleConfig describes where the list service listens.
type SimpleConfig struct {
	IPAddr   string
	PortAddr string
}

// IP returns the IP address from SimpleConfig
func (scfg *SimpleConfig) IP() string {
	return scfg.IPAddr
}

// Port returns the port from SimpleConfig.
func (scfg *SimpleConfig) Port() string {
	return scfg.PortAddr
}

// NewSimpleConfig returns a new simple configuration
func NewSimpleConfig(IPAddr, PortAddr string) *SimpleConfig {
	return &SimpleConfig{
		IPAddr:   IPAddr,
		PortAddr: PortAddr,
	}
}

// PushRequest is the body of every push call.
type PushRequest struct {
	Value string `json:"Value"`
}

// PopResponse carries a value popped from an end of a list. Present is
// false when the pop found the list empty.
type PopResponse struct {
	Value   string `json:"Value"`
	Present bool   `json:"Present"`
}

// ValueResponse carries a value read or removed at an index. A bad index
// is reported as an error, so there is no absent case.
type ValueResponse struct {
	Value string `json:"Value"`
}

// CreateResponse carries the ID of a newly created list.
type CreateResponse struct {
	ListID string `json:"ListID"`
}

// SizeResponse carries the size of a list.
type SizeResponse struct {
	Size int `json:"Size"`
}

// ValuesResponse carries the full content of a list.
type ValuesResponse struct {
	Values []string `json:"Values"`
	Size   int      `json:"Size"`
}
