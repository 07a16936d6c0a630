package render

import "github.com/halbind/halbind/resource"

// photoSizeRank is the fixed ordinal ranking of photo size classes; the
// highest-ranked qualifying entry wins the set.
var photoSizeRank = map[string]int{
	"tiny":      1,
	"thumbnail": 2,
	"large":     3,
}

// PickPhoto selects the href of the best-ranked photo entry in the list.
// Entries missing href or name, or named outside the size classes, are
// ignored. ok is false when no entry qualifies, which sends the caller back
// to plain list rendering.
func PickPhoto(items []any) (string, bool) {
	bestRank := 0
	bestHref := ""
	for _, item := range items {
		fields, isObject := resource.AsObject(item)
		if !isObject {
			continue
		}
		href, hasHref := fields["href"].(string)
		name, hasName := fields["name"].(string)
		if !hasHref || !hasName || href == "" {
			continue
		}
		rank, ok := photoSizeRank[name]
		if !ok || rank <= bestRank {
			continue
		}
		bestRank = rank
		bestHref = href
	}
	return bestHref, bestRank > 0
}
