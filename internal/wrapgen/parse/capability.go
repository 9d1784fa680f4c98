package parse

import (
	"fmt"

	"github.com/emirpasic/gods/maps/hashbidimap"
)

// Capability is a behavior a wrapper can request.
type Capability int

const (
	AsRef Capability = iota + 1
	AsMut
	ConstAsMut
	Borrow
	BorrowMut
	Deref
	DerefMut
	From
	Debug
	DebugName
)

// capabilityNames maps capability names in directives to capabilities and
// vice versa.
var capabilityNames = func() *hashbidimap.Map {
	m := hashbidimap.New()
	m.Put("AsRef", AsRef)
	m.Put("AsMut", AsMut)
	m.Put("ConstAsMut", ConstAsMut)
	m.Put("Borrow", Borrow)
	m.Put("BorrowMut", BorrowMut)
	m.Put("Deref", Deref)
	m.Put("DerefMut", DerefMut)
	m.Put("From", From)
	m.Put("Debug", Debug)
	m.Put("DebugName", DebugName)
	return m
}()

// LookupCapability finds the capability by its name in directives.
func LookupCapability(name string) (Capability, bool) {
	c, ok := capabilityNames.Get(name)
	if !ok {
		return 0, false
	}
	return c.(Capability), true
}

// CapabilityNames returns all capability names in declaration order.
func CapabilityNames() []string {
	names := make([]string, 0, capabilityNames.Size())
	for c := AsRef; c <= DebugName; c++ {
		names = append(names, c.String())
	}
	return names
}

func (c Capability) String() string {
	name, ok := capabilityNames.GetKey(c)
	if !ok {
		return fmt.Sprintf("Capability(%d)", int(c))
	}
	return name.(string)
}

// Targetable reports whether the capability accepts a target type, e.g.,
// AsRef[[]byte].
func (c Capability) Targetable() bool {
	switch c {
	case From, Debug, DebugName:
		return false
	}
	return true
}

// general is the preset of "//wrapgen:preset general".
var general = []Capability{AsRef, Borrow, From}
