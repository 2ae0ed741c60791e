package synonyms

// Entry maps one canonical term to its synonyms. The table is kept as an
// ordered slice so query expansion order is deterministic; a Go map would
// randomize variant order between runs.
type Entry struct {
	Term     string
	Synonyms []string
}

// productSynonyms maps common customer phrasing to product-related words.
// The mapping is asymmetric on purpose: lookups take the one-hop closure
// over both directions.
var productSynonyms = []Entry{
	// Footwear
	{"shoes", []string{"shoe", "sneakers", "sneaker", "canvas", "kicks", "trainers", "trainer", "joggers", "footwear"}},
	{"sneakers", []string{"sneaker", "canvas", "kicks", "trainers", "shoes", "shoe", "joggers"}},
	{"canvas", []string{"sneakers", "kicks", "shoes", "trainers"}},
	{"kicks", []string{"sneakers", "canvas", "shoes", "trainers"}},
	{"trainers", []string{"sneakers", "canvas", "shoes", "kicks"}},
	{"slippers", []string{"slides", "sandals", "flip flops", "pam slippers"}},

	// Clothing
	{"shirt", []string{"shirts", "top", "tops", "blouse", "polo"}},
	{"t-shirt", []string{"tshirt", "tee", "top", "polo", "round neck"}},
	{"trouser", []string{"trousers", "pants", "jeans", "slacks", "chinos"}},
	{"jeans", []string{"jean", "denim", "trouser", "pants"}},
	{"shorts", []string{"short", "knickers", "boxers"}},

	// Accessories
	{"bag", []string{"bags", "handbag", "purse", "backpack", "satchel"}},
	{"purse", []string{"bag", "handbag", "wallet"}},
	{"wallet", []string{"purse", "money holder", "card holder"}},
	{"chain", []string{"necklace", "neck piece", "pendant", "jewelry"}},
	{"glasses", []string{"sunglasses", "shades", "specs", "eyewear"}},
	{"shades", []string{"sunglasses", "glasses", "specs"}},

	// Electronics
	{"charger", []string{"charging cable", "cable", "wire", "charging wire", "power cable"}},
	{"phone", []string{"mobile", "cell", "smartphone"}},
	{"earphones", []string{"earbuds", "headphones", "airpods", "pods"}},

	// Colors
	{"red", []string{"crimson", "scarlet", "maroon", "burgundy"}},
	{"blue", []string{"navy", "azure", "royal blue", "sky blue"}},
	{"white", []string{"cream", "off-white", "ivory"}},
	{"black", []string{"dark", "ebony", "jet black"}},
	{"gold", []string{"golden", "yellow gold"}},
}
