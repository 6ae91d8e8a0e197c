package tracer

// Target is an indexed pixel sink.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, index uint8)
}

// IndexedImage is an in-memory Target.
type IndexedImage struct {
	W, H int
	Pix  []uint8
}

func NewIndexedImage(w, h int) *IndexedImage {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &IndexedImage{W: w, H: h, Pix: make([]uint8, w*h)}
}

func (m *IndexedImage) Size() (w, h int) { return m.W, m.H }

func (m *IndexedImage) SetPixel(x, y int, index uint8) {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	m.Pix[y*m.W+x] = index
}

func (m *IndexedImage) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return PalBlack
	}
	return m.Pix[y*m.W+x]
}
