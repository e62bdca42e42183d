package utils

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortNatural сортирует строки с учетом чисел внутри ("9M" раньше "10M").
// Collator не потокобезопасен, поэтому создается на каждый вызов.
func SortNatural[T any](items []T, key func(T) string) {
	c := collate.New(language.Und, collate.Numeric)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(key(items[i]), key(items[j])) < 0
	})
}
