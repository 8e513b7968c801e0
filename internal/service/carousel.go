package service

// Carousel tracks which question of a review is on screen. It never wraps.
type Carousel struct {
	Index int
	Total int
}

func NewCarousel(total, index int) Carousel {
	c := Carousel{Total: total}
	c.Index = c.clamp(index)
	return c
}

func (c Carousel) clamp(i int) int {
	if c.Total <= 0 || i < 0 {
		return 0
	}
	if i >= c.Total {
		return c.Total - 1
	}
	return i
}

func (c Carousel) HasPrev() bool { return c.Index > 0 }

func (c Carousel) HasNext() bool { return c.Index < c.Total-1 }

func (c Carousel) Prev() Carousel {
	return Carousel{Index: c.clamp(c.Index - 1), Total: c.Total}
}

func (c Carousel) Next() Carousel {
	return Carousel{Index: c.clamp(c.Index + 1), Total: c.Total}
}
