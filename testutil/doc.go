// Package testutil provides testing utilities for hasharray.
//
// This package is intended for use in tests, examples and benchmarks only.
//
// # Deterministic Randomness
//
//	rng := testutil.NewRNG(seed)
//	ha, _ := hasharray.New[*testutil.Record](keypath.Fields("id"), hasharray.WithRandom(rng))
//	ha.Sample(3, nil) // reproducible draw
//
// # Fixtures
//
//	recs := rng.Records("r", 100, "red", "green")
package testutil
