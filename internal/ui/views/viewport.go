package views

// Viewport is the window of rows shown for a vertical list. Rows taken by
// the "more above" and "more below" indicators come out of Height.
type Viewport struct {
	Offset int
	Height int
}

// EnsureVisible scrolls the viewport so the row at index is shown
func (v *Viewport) EnsureVisible(index, total int) {
	if v.Height <= 0 || total <= v.Height {
		v.Offset = 0
		return
	}

	if index < 0 {
		index = 0
	}
	if index >= total {
		index = total - 1
	}

	// If the row is above the viewport, scroll up
	if index < v.Offset {
		v.Offset = index
	}

	// Scrolling down can make the top indicator appear, which shrinks the
	// visible area by one, so settle over a couple of passes.
	for i := 0; i < 3; i++ {
		effective, _, _ := v.layout(total)
		if index < v.Offset+effective {
			break
		}
		v.Offset = index - effective + 1
	}

	// At the bottom only the top indicator is needed
	maxOffset := total - (v.Height - 1)
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}

// Window returns the half-open range of rows to render
func (v Viewport) Window(total int) (start, end int) {
	if v.Height <= 0 || total <= v.Height {
		return 0, total
	}
	effective, _, _ := v.layout(total)
	start = min(v.Offset, total)
	end = min(start+effective, total)
	return start, end
}

func (v Viewport) layout(total int) (effective int, top, bottom bool) {
	top = v.Offset > 0
	bottom = v.Offset+v.Height < total

	// Even without overflowing Height, the rows left may not fit beside a top indicator
	if !bottom && top && total-v.Offset > v.Height-1 {
		bottom = true
	}

	effective = v.Height
	if top {
		effective--
	}
	if bottom {
		effective--
	}
	if effective < 1 {
		effective = 1
	}
	return effective, top, bottom
}
