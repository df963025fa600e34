// Copyright (C) 2020-2022  CGE Lab
//
// SPDX-License-Identifier: Apache-2.0

package mdft

// AssignSites fills in the ID of each site and returns the number of
// distinct interaction-parameter sets.  Sites with equal (charge, sigma,
// epsilon) share an id; ids are 1-based in order of first appearance.
func AssignSites(sites []Site) int {
	type key struct {
		charge, sigma, epsilon float64
	}
	seen := make(map[key]int, len(sites))
	for i := range sites {
		k := key{sites[i].Charge, sites[i].Sigma, sites[i].Epsilon}
		id, ok := seen[k]
		if !ok {
			id = len(seen) + 1
			seen[k] = id
		}
		sites[i].ID = id
	}
	return len(seen)
}
