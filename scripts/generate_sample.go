package main

import (
	"fmt"
	mrand "math/rand"
)

// Emits a sample document covering every markup construct, sized for
// exercising wrap, scroll, and search:
//
//	go run scripts/generate_sample.go > sample.md
//	marktext render sample.md

var (
	subjects = []string{"The renderer", "A panel", "Each window", "The parser", "This block"}
	verbs    = []string{"wraps", "aligns", "styles", "scrolls", "copies"}
	objects  = []string{"long paragraphs", "styled spans", "heading rows", "selected lines", "justified text"}

	wrappers = []func(string) string{
		func(s string) string { return s },
		func(s string) string { return "*" + s + "*" },
		func(s string) string { return "**" + s + "**" },
		func(s string) string { return "***" + s + "***" },
		func(s string) string { return "__" + s + "__" },
	}

	alignments = []string{"left", "center", "right"}
)

func main() {
	// Deterministic seed for reproducible output
	mr := mrand.New(mrand.NewSource(42))

	fmt.Println("# Sample Document")
	fmt.Println()
	for i := 1; i <= 12; i++ {
		switch i % 3 {
		case 1:
			fmt.Printf("## Section %d\n", i)
		case 2:
			fmt.Printf("### Section %d\n", i)
		default:
			fmt.Printf("# Section %d\n", i)
		}
		fmt.Println()

		for p := 2 + mr.Intn(2); p > 0; p-- {
			fmt.Println(sentence(mr))
		}
		if i%4 == 0 {
			fmt.Printf("\n[justify:%s]\n%s\n[/justify]\n", alignments[mr.Intn(len(alignments))], sentence(mr))
		}
		fmt.Println()
	}
}

func sentence(mr *mrand.Rand) string {
	subj := subjects[mr.Intn(len(subjects))]
	verb := verbs[mr.Intn(len(verbs))]
	obj := wrappers[mr.Intn(len(wrappers))](objects[mr.Intn(len(objects))])
	return fmt.Sprintf("%s %s %s.", subj, verb, obj)
}
