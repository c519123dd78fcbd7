package components

// Body holds the physical size of a fruit.
type Body struct {
	Radius int32
}
