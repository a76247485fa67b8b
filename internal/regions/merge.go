package regions

import (
	"github.com/plateaulabs/menuscan/internal/utils"
)

// mergeCells groups marked cells into clusters: a greedy union where
// a seed cell absorbs every not-yet-merged cell whose center lies
// within mergeRadius of any member of the growing cluster. Each cell
// is merged at most once.
func mergeCells(marked []cell, cellSize int, mergeRadius float64) [][]cell {
	used := make([]bool, len(marked))
	var clusters [][]cell

	for i := range marked {
		if used[i] {
			continue
		}
		used[i] = true
		cluster := []cell{marked[i]}

		for grew := true; grew; {
			grew = false
			for j := range marked {
				if used[j] {
					continue
				}
				for _, member := range cluster {
					if cellCenterDist(marked[j], member, cellSize) <= mergeRadius {
						used[j] = true
						cluster = append(cluster, marked[j])
						grew = true
						break
					}
				}
			}
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}

func cellBox(c cell, cellSize int) utils.Box {
	x := float64(c.col * cellSize)
	y := float64(c.row * cellSize)
	return utils.NewBox(x, y, x+float64(cellSize), y+float64(cellSize))
}

func cellCenterDist(a, b cell, cellSize int) float64 {
	return cellBox(a, cellSize).Centroid().Distance(cellBox(b, cellSize).Centroid())
}

// clusterBox is the bounding rectangle of all member cells.
func clusterBox(cluster []cell, cellSize int) utils.Box {
	box := cellBox(cluster[0], cellSize)
	for _, c := range cluster[1:] {
		box = box.Union(cellBox(c, cellSize))
	}
	return box
}

// clusterScore averages the member cell scores, clamped to [0, 1].
func clusterScore(cluster []cell) float64 {
	if len(cluster) == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range cluster {
		sum += c.score
	}
	s := sum / float64(len(cluster))
	if s > 1 {
		s = 1
	}
	return s
}
