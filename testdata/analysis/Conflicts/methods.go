package testdata

// AsInner is declared by hand.
func (D) AsInner() string { return "" }

func newG() {}

var HFrom = 0
