package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"chopsticks/solver"
)

// Options bound the drawn tree.
type Options struct {
	// DepthLimit is the last depth that is still drawn.
	DepthLimit int
	// StopAtDecided keeps the picture readable: positions already decided
	// as WIN or LOSE are drawn but not expanded.
	StopAtDecided bool
}

const (
	cellW  = 46
	cellH  = 64
	boxW   = 36
	boxH   = 24
	margin = 24
)

type placed struct {
	slot, depth int
	fill        color.RGBA
}

type segment struct {
	from, to int64
}

// DrawPNG lays the graph out level by level from the root, each depth a
// row and each node in the next free slot of its row, and writes the
// picture to path. Loop edges point back at the node they reference, so
// cycles show up as upward lines.
func DrawPNG(root solver.Node, statuses solver.StatusMap, opts Options, path string) error {
	nodes := make(map[int64]placed)
	var edges []segment

	type item struct {
		node  solver.Node
		depth int
	}
	queue := []item{{node: root}}
	slots := make(map[int]int)
	maxSlot, maxDepth := 0, 0

	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		if it.depth > opts.DepthLimit {
			continue
		}

		resolved := solver.Resolve(it.node)
		id := solver.ID(resolved)
		if _, ok := nodes[id]; ok {
			continue
		}

		slot := slots[it.depth]
		slots[it.depth] = slot + 1
		nodes[id] = placed{slot: slot, depth: it.depth, fill: nodeFill(resolved, statuses)}
		if slot > maxSlot {
			maxSlot = slot
		}
		if it.depth > maxDepth {
			maxDepth = it.depth
		}

		std, ok := resolved.(*solver.Standard)
		if !ok || it.depth == opts.DepthLimit {
			continue
		}
		if opts.StopAtDecided {
			if s := statuses[std]; s == solver.StatusWin || s == solver.StatusLose {
				continue
			}
		}
		for _, tr := range std.Transitions {
			edges = append(edges, segment{from: id, to: solver.ID(tr.Next)})
			queue = append(queue, item{node: tr.Next, depth: it.depth + 1})
		}
	}

	width := margin*2 + maxSlot*cellW + boxW
	height := margin*2 + maxDepth*cellH + boxH
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	center := func(p placed) (int, int) {
		return margin + p.slot*cellW + boxW/2, margin + p.depth*cellH + boxH/2
	}

	grey := color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	for _, e := range edges {
		from, ok := nodes[e.from]
		if !ok {
			continue
		}
		to, ok := nodes[e.to]
		if !ok {
			// The endpoint fell beyond the depth limit.
			continue
		}
		x0, y0 := center(from)
		x1, y1 := center(to)
		drawLine(img, x0, y0, x1, y1, grey)
	}

	for _, p := range nodes {
		x := margin + p.slot*cellW
		y := margin + p.depth*cellH
		draw.Draw(img, image.Rect(x, y, x+boxW, y+boxH), image.NewUniform(p.fill), image.Point{}, draw.Src)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode image: %w", err)
	}
	return nil
}

func nodeFill(n solver.Node, statuses solver.StatusMap) color.RGBA {
	switch n := n.(type) {
	case *solver.Terminal:
		return color.RGBA{R: 0xad, G: 0xd8, B: 0xe6, A: 0xff}
	case *solver.Standard:
		switch statuses[n] {
		case solver.StatusWin:
			return color.RGBA{G: 0xa8, B: 0x30, A: 0xff}
		case solver.StatusLose:
			return color.RGBA{R: 0xd0, G: 0x30, B: 0x30, A: 0xff}
		case solver.StatusDraw:
			return color.RGBA{R: 0xe8, G: 0xd4, B: 0x30, A: 0xff}
		default:
			return color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}
		}
	default:
		panic("unexpected node type")
	}
}

// drawLine is a plain Bresenham segment.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		img.SetRGBA(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
