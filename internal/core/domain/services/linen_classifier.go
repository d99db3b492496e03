package services

import (
	"strings"

	"linenflow/internal/core/domain/model/order"
)

// getEligibleCategories returns the catalog categories whose items are
// always pickup-eligible linen.
func getEligibleCategories() map[string]struct{} {
	return map[string]struct{}{
		"bed-linen":  {},
		"bath-linen": {},
	}
}

// getExcludedIdentifiers returns the category and type tags that exclude an
// item from pickup regardless of anything else. Both the dashed and the
// underscored spellings occur in catalog data, so both are recognized for
// either field.
func getExcludedIdentifiers() map[string]struct{} {
	return map[string]struct{}{
		"courtesy-kit":     {},
		"kit_cortesia":     {},
		"cleaning-product": {},
		"cleaning_product": {},
	}
}

// getEligibleNameKeywords returns the fixed keyword set denoting linen kinds
// that are retrieved dirty: sheets, towels, mats, pillowcases, rugs.
func getEligibleNameKeywords() []string {
	return []string{"sheet", "towel", "mat", "pillowcase", "rug"}
}

// getExcludedNameKeywords returns the keywords denoting consumables that are
// delivered but never picked up.
func getExcludedNameKeywords() []string {
	return []string{"soap", "shampoo", "bath gel", "cream", "detergent"}
}

// LinenClassifier decides whether a line item is dirty-linen that a courier
// should retrieve on a later visit, or a consumable that stays at the
// property (courtesy kits, cleaning products).
//
// Classification is a pure, total, deterministic function over any item
// shape: it performs no I/O, and items with missing category or type fall
// back to name-keyword matching. Exclusion always overrides eligibility.
type LinenClassifier struct{}

// NewLinenClassifier creates a classifier. The classifier is stateless and
// safe for concurrent use.
func NewLinenClassifier() *LinenClassifier {
	return &LinenClassifier{}
}

// IsPickupEligible reports whether the item represents linen that should be
// reclaimed dirty from the property.
//
// Rules, in order:
//   - excluded if its category or type is a courtesy-kit or cleaning-product
//     tag, or its lower-cased name contains a consumable keyword
//   - otherwise eligible if its category is bed-linen or bath-linen, or its
//     lower-cased name contains a linen keyword
//   - otherwise not eligible
func (c *LinenClassifier) IsPickupEligible(item order.Item) bool {
	name := strings.ToLower(item.Name())

	excluded := getExcludedIdentifiers()
	if _, ok := excluded[item.CategoryID()]; ok {
		return false
	}
	if _, ok := excluded[item.ItemType()]; ok {
		return false
	}
	for _, keyword := range getExcludedNameKeywords() {
		if strings.Contains(name, keyword) {
			return false
		}
	}

	if _, ok := getEligibleCategories()[item.CategoryID()]; ok {
		return true
	}
	for _, keyword := range getEligibleNameKeywords() {
		if strings.Contains(name, keyword) {
			return true
		}
	}

	return false
}
