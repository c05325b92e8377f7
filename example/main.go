package main

import (
	"fmt"
	"log"

	"github.com/llxisdsh/chainmap"
)

func main() {
	m, err := chainmap.NewChainedMapOf[string, int](
		chainmap.WithChainCount(5),
		chainmap.WithChainCapacity(5),
		chainmap.WithLoadFactor(0.75),
	)
	if err != nil {
		log.Fatalf("Failed to create map: %v", err)
	}

	for i := 0; i < 20; i++ {
		m.Store(fmt.Sprintf("key-%02d", i), i*100)
	}
	log.Printf("Inserted 20 keys, %d chains", m.ChainCount())

	if prev, loaded := m.Swap("key-03", 333); loaded {
		log.Printf("Replaced key-03: %d -> 333", prev)
	}

	for i := 0; i < 20; i += 2 {
		m.Delete(fmt.Sprintf("key-%02d", i))
	}
	log.Printf("Deleted even keys, %d left", m.Size())

	for k, v := range m.All() {
		fmt.Printf("%s = %d\n", k, v)
	}

	fmt.Print(m.Stats().ToString())

	if _, err := chainmap.NewChainedMapOf[string, int](chainmap.WithChainCount(0)); err != nil {
		log.Printf("Expected error: %v", err)
	}
}
