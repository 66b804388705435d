package collation

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// The product is used with Cyrillic names, so every user-facing string sort
// goes through a Russian-locale collator. Plain byte comparison misorders
// letters like "Ё".
var (
	mu  sync.Mutex
	col = collate.New(language.Russian, collate.IgnoreCase)
)

// Compare returns -1, 0 or 1 per locale collation order.
func Compare(a, b string) int {
	mu.Lock()
	defer mu.Unlock()
	return col.CompareString(a, b)
}

func Less(a, b string) bool {
	return Compare(a, b) < 0
}
