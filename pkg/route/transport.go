package route

// TransportKind is a closed set of known transport modes plus an Unknown
// variant that keeps whatever string the service sent.
type TransportKind struct {
	mode Mode
	raw  string
}

// Mode enumerates the transport modes the client knows how to display
type Mode int

const (
	ModeUnknown Mode = iota
	ModePlane
	ModeTrain
	ModeBus
	ModeCar
)

// ParseTransport classifies a raw transport string from the service
func ParseTransport(s string) TransportKind {
	switch s {
	case "plane":
		return TransportKind{mode: ModePlane, raw: s}
	case "train":
		return TransportKind{mode: ModeTrain, raw: s}
	case "bus":
		return TransportKind{mode: ModeBus, raw: s}
	case "car":
		return TransportKind{mode: ModeCar, raw: s}
	}
	return TransportKind{mode: ModeUnknown, raw: s}
}

// Mode returns the known mode, or ModeUnknown
func (k TransportKind) Mode() Mode {
	return k.mode
}

// Raw returns the string as received
func (k TransportKind) Raw() string {
	return k.raw
}

func (k TransportKind) String() string {
	return k.raw
}

// Kinds returns the classified transport chain of a route
func (r Route) Kinds() []TransportKind {
	kinds := make([]TransportKind, 0, len(r.Transport))
	for _, t := range r.Transport {
		kinds = append(kinds, ParseTransport(t))
	}
	return kinds
}
