package wrapgen

// CachePad pads a struct to keep its fields off the cache lines of whatever
// precedes and follows it in memory. "//wrapgen:repr align(cache)" puts one
// before and one after the fields of a wrapper as blank fields.
//
// Go cannot align a struct to a cache line boundary. The padding on both sides
// gives the same isolation at the cost of two extra cache lines.
type CachePad struct {
	_ [CacheLineSize]byte
}
