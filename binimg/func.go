package binimg

// Func is a binary image whose pixels are classified by a predicate.
type Func struct {
	W, H int
	F    func(x, y int) bool
}

// FromFunc returns a width x height binary image classified by f.
func FromFunc(width, height int, f func(x, y int) bool) *Func {
	return &Func{W: width, H: height, F: f}
}

func (img *Func) Width() int           { return img.W }
func (img *Func) Height() int          { return img.H }
func (img *Func) Inside(x, y int) bool { return img.F(x, y) }
