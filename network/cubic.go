package network

import "fmt"

// NewCubic constructs a regular cubic lattice network of shape[0]×shape[1]×
// shape[2] pores with the given grid spacing. Pores sit at integer lattice
// points scaled by spacing; throats connect each pore to its +x, +y and +z
// lattice neighbor. Pore ids are row-major ((i·ny)+j)·nz+k, so pore 0 is
// the corner at the origin. "pore.coords" is written on the store.
// Returns ErrCubicShape or ErrCubicSpacing on invalid parameters.
// Complexity: O(P + T).
func NewCubic(shape [3]int, spacing float64) (*Network, error) {
	nx, ny, nz := shape[0], shape[1], shape[2]
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("shape %v: %w", shape, ErrCubicShape)
	}
	if spacing <= 0 {
		return nil, fmt.Errorf("spacing %v: %w", spacing, ErrCubicSpacing)
	}

	index := func(i, j, k int) int { return (i*ny+j)*nz + k }

	coords := make([][3]float64, 0, nx*ny*nz)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				coords = append(coords, [3]float64{
					float64(i) * spacing,
					float64(j) * spacing,
					float64(k) * spacing,
				})
			}
		}
	}

	// Emit throats in pore-major order, one per +axis neighbor, so
	// conns[t][0] < conns[t][1] and throat ids are deterministic.
	conns := make([][2]int, 0, 3*nx*ny*nz)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				p := index(i, j, k)
				if i+1 < nx {
					conns = append(conns, [2]int{p, index(i + 1, j, k)})
				}
				if j+1 < ny {
					conns = append(conns, [2]int{p, index(i, j + 1, k)})
				}
				if k+1 < nz {
					conns = append(conns, [2]int{p, index(i, j, k + 1)})
				}
			}
		}
	}

	return New(coords, conns)
}
