package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
)

// KMeansExtractor implements colour extraction using k-means clustering.
// The random source is seeded explicitly so a given image and seed always
// produce the same palette.
type KMeansExtractor struct {
	maxIterations int
	convergence   float64
	rng           *rand.Rand
}

// NewKMeansExtractor creates a new KMeansExtractor with the given seed.
func NewKMeansExtractor(seed int64) *KMeansExtractor {
	return &KMeansExtractor{
		maxIterations: 20,
		convergence:   2.0,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// Extract extracts representative colours from an image using k-means
// clustering over sampled pixels.
func (e *KMeansExtractor) Extract(img image.Image, count int) ([]RGB, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if count > 256 {
		return nil, fmt.Errorf("colour count too large: %d (maximum: 256)", count)
	}

	pixels := samplePixels(img)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	// Collect unique colours first.
	unique := make([]RGB, 0, len(pixels))
	seen := make(map[RGB]bool)
	for _, p := range pixels {
		if !seen[p] {
			unique = append(unique, p)
			seen[p] = true
		}
	}

	// If we want more colours than unique colours exist, return them all.
	if count >= len(unique) {
		return unique, nil
	}

	centroids := e.kmeans(pixels, count)

	colours := make([]RGB, len(centroids))
	for i, c := range centroids {
		colours[i] = NewRGB(int(math.Round(c.r)), int(math.Round(c.g)), int(math.Round(c.b)))
	}
	return colours, nil
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	r, g, b float64
}

// distance calculates the Euclidean distance between two points in RGB space.
func (p point3D) distance(other point3D) float64 {
	dr := p.r - other.r
	dg := p.g - other.g
	db := p.b - other.b
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// samplePixels samples pixels from the image on a regular grid.
// Large images are subsampled for performance.
func samplePixels(img image.Image) []RGB {
	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()

	const maxSamples = 2000

	step := 1
	if totalPixels > maxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(maxSamples))), 1)
	}

	pixels := make([]RGB, 0, min(totalPixels, maxSamples))
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			r, g, b, _ := img.At(x, y).RGBA()
			pixels = append(pixels, RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
			if len(pixels) >= maxSamples {
				return pixels
			}
		}
	}
	return pixels
}

// kmeans performs k-means clustering on the pixel data and returns the
// final centroids.
func (e *KMeansExtractor) kmeans(pixels []RGB, k int) []point3D {
	points := make([]point3D, len(pixels))
	for i, p := range pixels {
		points[i] = point3D{r: float64(p.R), g: float64(p.G), b: float64(p.B)}
	}

	centroids := e.initCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		changed := 0
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// Converged once under 1% of assignments move.
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		next := recalculateCentroids(points, assignments, k)

		movement := 0.0
		for i := range centroids {
			movement += centroids[i].distance(next[i])
		}
		centroids = next

		if movement/float64(k) < e.convergence {
			break
		}
	}

	return centroids
}

// initCentroids chooses initial centroids with the k-means++ strategy:
// each new centroid is picked with probability proportional to its squared
// distance from the nearest existing centroid.
func (e *KMeansExtractor) initCentroids(points []point3D, k int) []point3D {
	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[e.rng.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		total := 0.0
		for i, point := range points {
			minDist := math.MaxFloat64
			for _, c := range centroids {
				if d := point.distance(c); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			total += distances[i]
		}

		if total == 0 {
			// Remaining points duplicate existing centroids; perturb the last.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{r: last.r + 0.1, g: last.g + 0.1, b: last.b + 0.1})
			continue
		}

		target := e.rng.Float64() * total
		cumulative := 0.0
		for i, d := range distances {
			cumulative += d
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// nearestCentroid returns the index of the centroid closest to the point.
func nearestCentroid(point point3D, centroids []point3D) int {
	nearest := 0
	minDist := math.MaxFloat64
	for i, c := range centroids {
		if d := point.distance(c); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recalculateCentroids moves each centroid to the mean of its assigned points.
func recalculateCentroids(points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)

	for i, point := range points {
		c := assignments[i]
		sums[c].r += point.r
		sums[c].g += point.g
		sums[c].b += point.b
		counts[c]++
	}

	centroids := make([]point3D, k)
	for i := range centroids {
		if counts[i] == 0 {
			continue
		}
		n := float64(counts[i])
		centroids[i] = point3D{r: sums[i].r / n, g: sums[i].g / n, b: sums[i].b / n}
	}
	return centroids
}
