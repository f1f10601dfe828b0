package mask

// Ships finds all contiguous foreground regions of the bitmap — for a
// ship-segmentation mask, the individual ships — according to the given
// connectivity. Returns one slice per region holding row-major pixel
// indices in arbitrary order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (b *Bitmap) Ships(conn Connectivity) ([][]int, error) {
	if b == nil {
		return nil, ErrNilBitmap
	}
	total := b.width * b.height
	seen := make([]bool, total)
	var ships [][]int
	offsets := conn.offsets()

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.pix[y*b.width+x] == 0 {
				continue // background
			}
			i0 := y*b.width + x
			if seen[i0] {
				continue
			}
			// BFS to collect the region
			queue := []int{i0}
			seen[i0] = true
			var ship []int

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				ship = append(ship, u)
				ux, uy := b.Coordinate(u)
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !b.InBounds(vx, vy) || b.pix[vy*b.width+vx] == 0 {
						continue
					}
					vi := vy*b.width + vx
					if seen[vi] {
						continue
					}
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
			ships = append(ships, ship)
		}
	}

	return ships, nil
}
