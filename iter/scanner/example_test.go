package scanner_test

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jake-scott/go-nonempty"
	"github.com/jake-scott/go-nonempty/iter/scanner"
)

func ExampleIterator() {
	f, err := os.Open("/etc/passwd")
	if err != nil {
		panic(err)
	}

	s := bufio.NewScanner(f)
	ctx := context.Background()
	iter := scanner.New(s)

	for iter.Next(ctx) {
		fmt.Printf("Line: <%s>\n", iter.Get())
	}

	if err := iter.Error(); err != nil {
		panic(err)
	}
}

func ExampleTryNonEmpty() {
	input := strings.NewReader("the quick brown fox jumps over the lazy dog")

	ne, err := scanner.TryNonEmpty(context.Background(), scanner.Words(input))
	if err != nil {
		panic(err)
	}

	ne.IfPresent(func(words nonempty.Adapter[string]) {
		fmt.Println("first:", nonempty.Min[string](words))
	})

	// output:
	// first: brown
}
