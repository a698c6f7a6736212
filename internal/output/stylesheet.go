// Package output renders resolved palettes and semantic components to files
// and to the terminal.
package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/yacobolo/radixtw/internal/semantic"
)

// StylesheetHeader opens every generated stylesheet.
const StylesheetHeader = "/* Code generated by radixtw. DO NOT EDIT. */\n"

// WriteStylesheet renders components as Tailwind source, one rule per
// selector inside @layer components:
//
//	@layer components {
//	  .bg-red-app {
//	    @apply bg-red-1 dark:bg-red-dark-1;
//	  }
//	}
//
// With no components only the header is written.
func WriteStylesheet(w io.Writer, comps []semantic.Components) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, StylesheetHeader)

	if countRules(comps) > 0 {
		fmt.Fprint(bw, "\n@layer components {\n")
		first := true
		for _, c := range comps {
			if len(c.Rules) == 0 {
				continue
			}
			if !first {
				fmt.Fprintln(bw)
			}
			first = false

			fmt.Fprintf(bw, "  /* %s */\n", c.Name)
			for _, rule := range c.Rules {
				fmt.Fprintf(bw, "  %s {\n    %s;\n  }\n", rule.Selector, rule.Apply)
			}
		}
		fmt.Fprint(bw, "}\n")
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write stylesheet: %w", err)
	}
	return nil
}

func countRules(comps []semantic.Components) int {
	n := 0
	for _, c := range comps {
		n += len(c.Rules)
	}
	return n
}
