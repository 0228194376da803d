package shopinsight

// MergeProducts appends hero products to the catalog list, skipping any
// whose URL is already present. A catalog entry whose URL a hero link also
// points at keeps its title, price and source but is returned as a copy
// flagged Hero. The inputs are not modified.
func MergeProducts(catalog, hero []*Product) []*Product {
	merged := make([]*Product, 0, len(catalog)+len(hero))
	index := make(map[string]int, len(catalog)+len(hero))

	for _, p := range catalog {
		if _, ok := index[p.URL]; ok {
			continue
		}
		index[p.URL] = len(merged)
		merged = append(merged, p)
	}
	for _, p := range hero {
		if i, ok := index[p.URL]; ok {
			if !merged[i].Hero {
				featured := *merged[i]
				featured.Hero = true
				merged[i] = &featured
			}
			continue
		}
		index[p.URL] = len(merged)
		merged = append(merged, p)
	}
	return merged
}
