package semantic

import "strings"

// Rule is one composite class: a selector and the single @apply
// declaration that makes up its body.
type Rule struct {
	Selector string // ".bg-red-solid"
	Apply    string // "@apply bg-red-9 hover:bg-red-10 dark:bg-red-dark-9 ..."
}

// Components are the semantic rules generated for one color family.
type Components struct {
	Name       string // "red", "red-p3", "black-a"
	Dark       string // "red-dark"
	Foreground string // "mauve-dark", or "" when not applied
	Rules      []Rule
}

// DarkVariant returns the dark mode variant marker, honouring the host's
// class prefix: "" -> "dark:", "tw-" -> "tw-dark:".
func DarkVariant(prefix string) string {
	return prefix + "dark:"
}

// Apply joins utility classes into one @apply declaration. Empty classes
// are dropped, and spaces inside a class become underscores since @apply
// splits on whitespace.
func Apply(classes ...string) string {
	kept := make([]string, 0, len(classes))
	for _, class := range classes {
		if class == "" {
			continue
		}
		kept = append(kept, strings.ReplaceAll(class, " ", "_"))
	}
	return "@apply " + strings.Join(kept, " ")
}

// buildRules expands the fixed semantic class template for one family.
// fg is empty when no foreground should be applied.
func buildRules(name, dark, fg, prefix string) []Rule {
	d := DarkVariant(prefix)
	text := ""
	if fg != "" {
		text = "text-" + fg + "-12"
	}

	return []Rule{
		{
			Selector: ".bg-" + name + "-action",
			Apply: Apply(
				"bg-"+name+"-4",
				"hover:bg-"+name+"-5",
				"active:bg-"+name+"-6",
				d+"bg-"+dark+"-4",
				d+"hover:bg-"+dark+"-5",
				d+"active:bg-"+dark+"-6",
			),
		},
		{
			Selector: ".bg-" + name + "-app",
			Apply:    Apply("bg-"+name+"-1", d+"bg-"+dark+"-1"),
		},
		{
			Selector: ".bg-" + name + "-ghost",
			Apply: Apply(
				"bg-transparent",
				"hover:bg-"+name+"-4",
				"active:bg-"+name+"-5",
				d+"bg-transparent",
				d+"hover:bg-"+dark+"-4",
				d+"active:bg-"+dark+"-5",
			),
		},
		{
			Selector: ".bg-" + name + "-solid",
			Apply: Apply(
				"bg-"+name+"-9",
				"hover:bg-"+name+"-10",
				d+"bg-"+dark+"-9",
				d+"hover:bg-"+dark+"-10",
				text,
			),
		},
		{
			Selector: ".bg-" + name + "-subtle",
			Apply:    Apply("bg-"+name+"-2", d+"bg-"+dark+"-2"),
		},
		{
			Selector: ".bg-" + name + "-ui",
			Apply: Apply(
				"bg-"+name+"-3",
				"hover:bg-"+name+"-4",
				"active:bg-"+name+"-5",
				d+"bg-"+dark+"-3",
				d+"hover:bg-"+dark+"-4",
				d+"active:bg-"+dark+"-5",
			),
		},
		{
			Selector: ".border-" + name + "-dim",
			Apply:    Apply("border-"+name+"-6", d+"border-"+dark+"-6"),
		},
		{
			Selector: ".border-" + name + "-normal",
			Apply: Apply(
				"border-"+name+"-7",
				"hover:border-"+name+"-8",
				d+"border-"+dark+"-7",
				d+"hover:border-"+dark+"-8",
			),
		},
		{
			Selector: ".divide-" + name + "-dim",
			Apply:    Apply("divide-"+name+"-6", d+"divide-"+dark+"-6"),
		},
		{
			Selector: ".divide-" + name + "-normal",
			Apply: Apply(
				"divide-"+name+"-7",
				"hover:divide-"+name+"-8",
				d+"divide-"+dark+"-7",
				d+"hover:divide-"+dark+"-8",
			),
		},
		{
			Selector: ".text-" + name + "-dim",
			Apply:    Apply("text-"+name+"-11", d+"text-"+dark+"-11"),
		},
		{
			Selector: ".text-" + name + "-normal",
			Apply:    Apply("text-"+name+"-12", d+"text-"+dark+"-12"),
		},
	}
}
