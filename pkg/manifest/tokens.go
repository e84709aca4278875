package manifest

import "strings"

// Selection tokens recognized in free-text arguments. Matching is by
// substring, mirroring the historical `[[ "$*" =~ token ]]` behavior, so a
// token embedded in a longer argument still selects its category.
const (
	TokenDebug       = "include-debug"
	TokenDevelopment = "include-development"
	TokenTest        = "include-test"
)

// CategoriesFromArgs scans free-text arguments for selection tokens and
// returns the matched optional categories in install order. Unrecognized
// arguments are ignored without error; duplicates collapse.
func CategoriesFromArgs(args []string) []Category {
	joined := strings.Join(args, " ")

	var selected []Category
	if strings.Contains(joined, TokenDebug) {
		selected = append(selected, CategoryDebug)
	}
	if strings.Contains(joined, TokenDevelopment) {
		selected = append(selected, CategoryDevelopment)
	}
	if strings.Contains(joined, TokenTest) {
		selected = append(selected, CategoryTest)
	}
	return selected
}
