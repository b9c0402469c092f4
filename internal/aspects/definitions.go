package aspects

import "strings"

// Industry selects which aspect definitions are active on top of the base
// set. Resolved once at analyzer construction.
type Industry string

const (
	IndustryGeneral     Industry = "general"
	IndustryFashion     Industry = "fashion"
	IndustryBeauty      Industry = "beauty"
	IndustryElectronics Industry = "electronics"
	IndustryFood        Industry = "food"
)

// Industries lists the available industry configurations.
func Industries() []Industry {
	return []Industry{IndustryGeneral, IndustryFashion, IndustryBeauty, IndustryElectronics, IndustryFood}
}

// ParseIndustry resolves an industry string. Unknown values fall back to
// the base configuration rather than failing.
func ParseIndustry(s string) Industry {
	switch Industry(strings.ToLower(strings.TrimSpace(s))) {
	case IndustryFashion:
		return IndustryFashion
	case IndustryBeauty:
		return IndustryBeauty
	case IndustryElectronics:
		return IndustryElectronics
	case IndustryFood:
		return IndustryFood
	default:
		return IndustryGeneral
	}
}

// Definition is one aspect's static configuration: a stable key, a display
// label, and the keywords that attribute a sentence to it. Keywords match
// as case-insensitive substrings, first hit wins per sentence.
type Definition struct {
	Key      string
	Label    string
	Keywords []string
}

// baseDefinitions apply to every industry.
var baseDefinitions = []Definition{
	{
		Key:   "product_quality",
		Label: "Product Quality",
		Keywords: []string{
			"quality", "material", "made", "construction", "build",
			"craftsmanship", "durable", "durability", "sturdy", "flimsy",
			"cheap", "premium", "well-made", "poorly made", "authentic",
			"genuine", "fake", "real", "solid",
		},
	},
	{
		Key:   "shipping",
		Label: "Shipping & Delivery",
		Keywords: []string{
			"shipping", "delivery", "arrived", "package", "packaging",
			"shipped", "deliver", "courier", "carrier", "tracking",
			"fast", "slow", "late", "early", "on time", "delayed",
			"lost", "damaged in transit", "box", "wrapped",
		},
	},
	{
		Key:   "customer_service",
		Label: "Customer Service",
		Keywords: []string{
			"customer service", "support", "response", "help", "helpful",
			"representative", "rep", "contact", "refund", "return",
			"exchange", "warranty", "replacement", "resolved", "issue",
			"problem", "complaint", "responsive", "rude", "friendly",
		},
	},
	{
		Key:   "value",
		Label: "Value for Money",
		Keywords: []string{
			"price", "value", "worth", "money", "expensive", "cheap",
			"affordable", "overpriced", "bargain", "deal", "discount",
			"cost", "pay", "paid", "budget", "premium price",
		},
	},
	{
		Key:   "description_accuracy",
		Label: "Description Accuracy",
		Keywords: []string{
			"description", "described", "picture", "photo", "image",
			"expected", "expect", "advertised", "shown", "looks like",
			"different", "same as", "accurate", "misleading", "false",
		},
	},
}

// industryDefinitions are added on top of the base set.
var industryDefinitions = map[Industry][]Definition{
	IndustryFashion: {
		{
			Key:   "fit_sizing",
			Label: "Fit & Sizing",
			Keywords: []string{
				"fit", "fits", "size", "sizing", "small", "large", "big",
				"tight", "loose", "comfortable", "uncomfortable", "true to size",
				"runs small", "runs large", "length", "width", "waist",
				"measurements", "petite", "plus size",
			},
		},
		{
			Key:   "appearance",
			Label: "Appearance & Style",
			Keywords: []string{
				"color", "colour", "looks", "style", "design", "pattern",
				"beautiful", "ugly", "cute", "gorgeous", "stunning",
				"flattering", "fashionable", "trendy", "classic",
			},
		},
		{
			Key:   "fabric",
			Label: "Fabric & Material",
			Keywords: []string{
				"fabric", "material", "cotton", "polyester", "silk", "linen",
				"soft", "scratchy", "itchy", "breathable", "stretchy",
				"texture", "feel", "lightweight", "heavy",
			},
		},
	},
	IndustryBeauty: {
		{
			Key:   "efficacy",
			Label: "Efficacy & Results",
			Keywords: []string{
				"works", "effective", "results", "improvement", "difference",
				"before after", "visible", "noticeable", "miracle", "amazing results",
			},
		},
		{
			Key:   "skin_reaction",
			Label: "Skin Compatibility",
			Keywords: []string{
				"skin", "reaction", "irritation", "breakout", "sensitive",
				"allergy", "allergic", "rash", "redness", "burning",
				"gentle", "harsh", "moisturizing", "drying",
			},
		},
		{
			Key:   "application",
			Label: "Application & Texture",
			Keywords: []string{
				"apply", "application", "blend", "blends", "smooth",
				"streaky", "coverage", "pigment", "buildable", "easy to use",
			},
		},
	},
	IndustryElectronics: {
		{
			Key:   "performance",
			Label: "Performance",
			Keywords: []string{
				"performance", "fast", "slow", "speed", "powerful",
				"lag", "laggy", "smooth", "responsive", "efficient",
				"battery", "battery life", "processor", "memory",
			},
		},
		{
			Key:   "ease_of_use",
			Label: "Ease of Use",
			Keywords: []string{
				"easy", "difficult", "intuitive", "complicated", "setup",
				"install", "user-friendly", "confusing", "simple",
				"instructions", "manual", "learning curve",
			},
		},
		{
			Key:   "connectivity",
			Label: "Connectivity",
			Keywords: []string{
				"connect", "connection", "bluetooth", "wifi", "wireless",
				"pair", "pairing", "compatible", "compatibility", "sync",
			},
		},
	},
	IndustryFood: {
		{
			Key:   "taste",
			Label: "Taste & Flavor",
			Keywords: []string{
				"taste", "flavor", "delicious", "tasty", "yummy",
				"disgusting", "bland", "sweet", "salty", "spicy",
				"fresh", "stale", "rich", "light",
			},
		},
		{
			Key:   "freshness",
			Label: "Freshness",
			Keywords: []string{
				"fresh", "freshness", "expired", "shelf life", "stale",
				"mold", "spoiled", "rotten", "preservatives",
			},
		},
		{
			Key:   "packaging_food",
			Label: "Food Packaging",
			Keywords: []string{
				"sealed", "leak", "leaking", "spill", "crushed",
				"intact", "damaged", "broken seal", "vacuum sealed",
			},
		},
	},
}

// definitionsFor returns the active definitions for an industry, base set
// first, in declaration order.
func definitionsFor(industry Industry) []Definition {
	defs := make([]Definition, 0, len(baseDefinitions)+3)
	defs = append(defs, baseDefinitions...)
	defs = append(defs, industryDefinitions[industry]...)
	return defs
}
