package sales

import "strings"

// KeywordRule assigns a category when any of its keywords appears in the
// lowercased product name. Rules are evaluated in slice order, first hit wins.
type KeywordRule struct {
	Category string
	Keywords []string
}

// FallbackCategory is the bucket for items no catalog entry or rule matches.
const FallbackCategory = "Outros"

// DefaultKeywordRules covers the house menu vocabulary. The keywords are
// Portuguese because that is what the storefront sells under.
var DefaultKeywordRules = []KeywordRule{
	{Category: "Lanches", Keywords: []string{"burger", "smash", "red"}},
	{Category: "Acompanhamentos", Keywords: []string{"batata", "frita", "porção"}},
	{Category: "Bebidas", Keywords: []string{"coca", "refrigerante", "suco", "água"}},
	{Category: "Sobremesas", Keywords: []string{"sobremesa", "doce"}},
}

// Classify runs the rule list against a product name. The boolean is false
// when no rule matched and the caller should use FallbackCategory.
func Classify(rules []KeywordRule, name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, rule := range rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Category, true
			}
		}
	}
	return "", false
}
