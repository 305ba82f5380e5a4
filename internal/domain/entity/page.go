package entity

type Screenshot struct {
	Data   []byte
	Format string
	Width  int
	Height int
}

// HintView is the read-only projection of a hint record handed to the host.
type HintView struct {
	Code     string
	Tag      string
	Text     string
	URL      string
	Position Point
	Active   bool
	Focused  bool
}
