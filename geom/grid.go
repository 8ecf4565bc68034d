package geom

import "iter"

// Grid yields numcells rectangles of size cell, arranged in rows of at
// most cols cells starting at origin. Cells are separated by gap on
// both axes. A cols value less than 1 is treated as 1.
//
// For example,
//
//	for r := range geom.Grid(5, 2, geom.Pt(0, 0), geom.Pt(10, 10), 1) { ... }
//
// will produce
//
//	-------------
//	|    | |    |
//	-------------
//	|    | |    |
//	-------------
//	|    |
//	------
func Grid[T Scalar](numcells, cols int, origin, cell Point[T], gap T) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		cols = max(cols, 1)
		first := Rect[T]{Min: origin}.Resize(cell)
		stride := cell.Add(Pt(gap, gap))
		for i := range numcells {
			col, row := T(i%cols), T(i/cols)
			if !yield(first.Add(Pt(col*stride.X, row*stride.Y))) {
				return
			}
		}
	}
}

// GridBounds returns the smallest rectangle containing every cell
// yielded by Grid for the same arguments.
func GridBounds[T Scalar](numcells, cols int, origin, cell Point[T], gap T) Rect[T] {
	if numcells <= 0 {
		return Rect[T]{Min: origin, Max: origin}
	}
	cols = max(cols, 1)
	rows := (numcells + cols - 1) / cols
	cols = min(cols, numcells)

	size := Pt(
		T(cols)*cell.X+T(cols-1)*gap,
		T(rows)*cell.Y+T(rows-1)*gap,
	)
	return Rect[T]{Min: origin}.Resize(size)
}
