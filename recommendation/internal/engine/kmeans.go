package engine

// Clustering is the result of KMeans.
type Clustering struct {
	// K is the number of non-empty clusters; labels are 0..K-1.
	K           int
	Assignments map[int]int
	Centroids   [][]float64
	Iterations  int
	Converged   bool
}

// KMeans partitions the vectors into at most k clusters.
//
// Seeding is deterministic: the first vector (lowest student id) is the first
// centroid and each further centroid is the vector farthest from all chosen
// ones. k is reduced to the number of distinct vectors so that no seed is
// duplicated. A cluster that empties during an iteration is re-seeded with the
// vector farthest from its own centroid. Distance ties go to the lower index.
// Labels are renumbered in order of first appearance by student id.
func KMeans(vectors []FeatureVector, k, maxIter int) Clustering {
	n := len(vectors)
	if n == 0 {
		return Clustering{Assignments: map[int]int{}, Converged: true}
	}
	if maxIter < 1 {
		maxIter = 1
	}
	if k < 1 {
		k = 1
	}
	k = distinctUpTo(vectors, k)

	centroids := seed(vectors, k)
	assign := make([]int, n)
	for i := range assign {
		assign[i] = -1
	}

	res := Clustering{}
	for iter := 1; iter <= maxIter; iter++ {
		res.Iterations = iter
		changed := false
		for i, v := range vectors {
			best := nearest(v.Values, centroids)
			if assign[i] != best {
				assign[i] = best
				changed = true
			}
		}

		sizes := recompute(vectors, assign, centroids)
		if reseedEmpty(vectors, assign, centroids, sizes) {
			changed = true
		}
		if !changed {
			res.Converged = true
			break
		}
	}

	// Final pass so every assignment matches the last centroids.
	for i, v := range vectors {
		assign[i] = nearest(v.Values, centroids)
	}
	recompute(vectors, assign, centroids)

	labels := make(map[int]int, k)
	res.Assignments = make(map[int]int, n)
	for i, v := range vectors {
		label, ok := labels[assign[i]]
		if !ok {
			label = len(labels)
			labels[assign[i]] = label
			res.Centroids = append(res.Centroids, centroids[assign[i]])
		}
		res.Assignments[v.StudentID] = label
	}
	res.K = len(labels)
	return res
}

func seed(vectors []FeatureVector, k int) [][]float64 {
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, clone(vectors[0].Values))
	for len(centroids) < k {
		bestIdx, bestDist := 0, -1.0
		for i, v := range vectors {
			d := sqDist(v.Values, centroids[nearest(v.Values, centroids)])
			if d > bestDist {
				bestIdx, bestDist = i, d
			}
		}
		centroids = append(centroids, clone(vectors[bestIdx].Values))
	}
	return centroids
}

func recompute(vectors []FeatureVector, assign []int, centroids [][]float64) []int {
	sizes := make([]int, len(centroids))
	sums := make([][]float64, len(centroids))
	for c := range sums {
		sums[c] = make([]float64, len(centroids[c]))
	}
	for i, v := range vectors {
		c := assign[i]
		sizes[c]++
		for j, x := range v.Values {
			sums[c][j] += x
		}
	}
	for c := range centroids {
		if sizes[c] == 0 {
			continue
		}
		for j := range sums[c] {
			centroids[c][j] = sums[c][j] / float64(sizes[c])
		}
	}
	return sizes
}

// reseedEmpty moves the worst-fitting vector of a multi-member cluster into
// every empty cluster. It reports whether anything moved.
func reseedEmpty(vectors []FeatureVector, assign []int, centroids [][]float64, sizes []int) bool {
	moved := false
	for c := range centroids {
		if sizes[c] != 0 {
			continue
		}
		bestIdx, bestDist := -1, -1.0
		for i, v := range vectors {
			if sizes[assign[i]] < 2 {
				continue
			}
			d := sqDist(v.Values, centroids[assign[i]])
			if d > bestDist {
				bestIdx, bestDist = i, d
			}
		}
		if bestIdx < 0 {
			continue
		}
		sizes[assign[bestIdx]]--
		assign[bestIdx] = c
		sizes[c] = 1
		centroids[c] = clone(vectors[bestIdx].Values)
		moved = true
	}
	return moved
}

func nearest(v []float64, centroids [][]float64) int {
	best, bestDist := 0, -1.0
	for c, centroid := range centroids {
		d := sqDist(v, centroid)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// distinctUpTo counts distinct vectors, stopping once limit is reached.
func distinctUpTo(vectors []FeatureVector, limit int) int {
	distinct := make([][]float64, 0, limit)
outer:
	for _, v := range vectors {
		if len(distinct) >= limit {
			break
		}
		for _, d := range distinct {
			if sqDist(v.Values, d) == 0 {
				continue outer
			}
		}
		distinct = append(distinct, v.Values)
	}
	return len(distinct)
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
