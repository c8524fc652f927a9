package resolver

// localeIndependent lists the categories served from the default locale when
// the requested locale has no copy of its own.
var localeIndependent = map[string]struct{}{
	"useragents":        {},
	"pro_lang":          {},
	"currency":          {},
	"emoji":             {},
	"math_formula":      {},
	"github_repos":      {},
	"chemical_elements": {},
	"email":             {},
	"domains":           {},
	"subreddits":        {},
	"nsfw_subreddits":   {},
	"frontend":          {},
	"backend":           {},
	"os":                {},
	"phone_models":      {},
}

// IsLocaleIndependent reports whether category falls back to the default
// locale when missing from the requested one.
func IsLocaleIndependent(category string) bool {
	_, ok := localeIndependent[category]
	return ok
}
