package soundex_test

import (
	"fmt"

	"github.com/arloliu/soundex"
	"github.com/arloliu/soundex/format"
	"github.com/arloliu/soundex/index"
)

func ExampleEncode() {
	for _, word := range []string{"Robert", "Rupert", "Jbob", "A"} {
		code, _ := soundex.Encode(word)
		fmt.Println(word, code)
	}
	// Output:
	// Robert R163
	// Rupert R163
	// Jbob J110
	// A A000
}

func ExampleNewIndex() {
	idx, _ := soundex.NewIndex(index.WithCompression(format.CompressionZstd))
	_ = idx.Add("Robert", "Rupert", "Rubin")

	words, _ := idx.Lookup("Robbert")
	fmt.Println(words)
	// Output: [Robert Rupert]
}
