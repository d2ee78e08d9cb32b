package geomodels

import (
	"fmt"

	"github.com/katalvlaran/porenet/geometry"
	"github.com/katalvlaran/porenet/network"
)

// centroidConfig collects PoreCentroid parameters.
type centroidConfig struct {
	sourceKey string
}

// CentroidOption configures PoreCentroid.
type CentroidOption func(*centroidConfig)

// WithCentroidSource overrides the vector property averaged per pore
// (default DefaultCentroidKey, read from the geometry's local store).
func WithCentroidSource(key string) CentroidOption {
	return func(c *centroidConfig) { c.sourceKey = key }
}

// PoreCentroid computes one 3-component centroid per local pore of geom:
// the column-wise mean of the source vectors of all throats incident to
// that pore in the parent network and also held by geom.
//
// Per local pore:
//  1. Resolve the network-global pore id through the pore mapper.
//  2. Collect the throats incident to it in the network.
//  3. Keep the subset the geometry's throat mapper holds.
//  4. Drop source rows that are exactly the zero vector ("not computed").
//  5. Mean the remainder; with nothing left the output row stays the
//     zero-vector sentinel.
//
// The result is indexed by local pore id. A missing source property is an
// error (no fallback is defined for this pass); a pore without qualifying
// throats is not. Complexity: O(P_local·degree).
func PoreCentroid(net *network.Network, geom *geometry.Geometry, opts ...CentroidOption) ([][3]float64, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	if geom == nil {
		return nil, ErrNilGeometry
	}
	cfg := centroidConfig{sourceKey: DefaultCentroidKey}
	for _, opt := range opts {
		opt(&cfg)
	}

	source, err := geom.Props().Require(cfg.sourceKey)
	if err != nil {
		return nil, fmt.Errorf("pore centroid: %w", err)
	}
	if source.Width() != 3 {
		return nil, fmt.Errorf("pore centroid %q (width %d): %w", cfg.sourceKey, source.Width(), ErrVectorProperty)
	}

	out := make([][3]float64, geom.NumPores())
	poreMap := geom.MapPores(geom.Pores(), geometry.Local)
	for i, netPore := range poreMap.Target {
		local := poreMap.Source[i]
		incident, err := net.FindNeighborThroats(netPore)
		if err != nil {
			return nil, fmt.Errorf("pore centroid: %w", err)
		}
		held := geom.MapThroats(incident, geometry.Global).Target

		var sum [3]float64
		count := 0
		for _, lt := range held {
			if source.IsZeroRow(lt) {
				continue
			}
			row := source.Row(lt)
			sum[0] += row[0]
			sum[1] += row[1]
			sum[2] += row[2]
			count++
		}
		if count > 0 {
			f := float64(count)
			out[local] = [3]float64{sum[0] / f, sum[1] / f, sum[2] / f}
		}
	}

	return out, nil
}
