/*
Package chainmap provides a generic separate-chaining hash map built from two
layers: ArrayMapOf, a small array-backed map that resolves collisions by
linear scan, and ChainedMapOf, which routes every key to one of many
ArrayMapOf chains.

Basic usage:

	m, err := chainmap.NewChainedMapOf[string, int](
		chainmap.WithChainCount(16),
		chainmap.WithLoadFactor(0.75),
	)
	if err != nil {
		log.Fatal(err)
	}

	m.Store("a", 1)
	prev, loaded := m.Swap("a", 2) // 1, true
	v, ok := m.Load("a")           // 2, true

	for k, v := range m.All() {
		fmt.Println(k, v)
	}

Features:

  - Per-instance configuration via functional options
  - Chains are created on first insertion and dropped when they become empty
  - The chain array doubles and rehashes once the load factor is exceeded
    (disable with WithFixedChainCount)
  - Explicit cursor (ChainIterator) plus range-over-func iteration
  - Nil pointer and nil interface keys are supported and always live in chain 0

Notes:

  - Neither type is safe for concurrent use. Mutating a map while an
    iteration is in progress gives undefined results.
  - ArrayMapOf removes by moving the last entry into the freed slot, so the
    physical order of a chain is stable only until the first removal.
  - Iteration order across chains follows the hash distribution and is not
    part of the contract.
*/
package chainmap
