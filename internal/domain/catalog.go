package domain

// CatalogEntry is one service on a contract type's rate card. The ranges
// are indicative pricing shown on the contract document, not billed values.
type CatalogEntry struct {
	Label  string `json:"label"`
	GHSMin int    `json:"ghsMin"`
	GHSMax int    `json:"ghsMax"`
	USDMin int    `json:"usdMin"`
	USDMax int    `json:"usdMax"`
}

// ContractCatalog describes one contract type and its rate card
type ContractCatalog struct {
	Type     ContractType   `json:"type"`
	Label    string         `json:"label"`
	Services []CatalogEntry `json:"services"`
}

var graphicDesignServices = []CatalogEntry{
	{Label: "Logo Design", GHSMin: 650, GHSMax: 1800, USDMin: 60, USDMax: 165},
	{Label: "Full Brand Identity (Brand Guide + Assets)", GHSMin: 2500, GHSMax: 6000, USDMin: 200, USDMax: 650},
	{Label: "Flyer / Poster", GHSMin: 250, GHSMax: 650, USDMin: 30, USDMax: 60},
	{Label: "Social Media Content Pack (10 posts)", GHSMin: 550, GHSMax: 1200, USDMin: 50, USDMax: 110},
	{Label: "Business Card Design", GHSMin: 200, GHSMax: 400, USDMin: 20, USDMax: 40},
	{Label: "Packaging Design", GHSMin: 700, GHSMax: 2500, USDMin: 65, USDMax: 230},
}

var merchDesignServices = []CatalogEntry{
	{Label: "Apparel Graphic / Clothing Design", GHSMin: 400, GHSMax: 900, USDMin: 40, USDMax: 80},
	{Label: "Full Clothing Line Concept (5–10 pieces)", GHSMin: 2000, GHSMax: 4500, USDMin: 200, USDMax: 450},
	{Label: "Tech Packs (Production Ready)", GHSMin: 700, GHSMax: 2000, USDMin: 65, USDMax: 200},
	{Label: "Brand Campaign Posters", GHSMin: 300, GHSMax: 750, USDMin: 30, USDMax: 80},
}

var catalogs = map[ContractType]ContractCatalog{
	ContractTypeGraphic: {
		Type:     ContractTypeGraphic,
		Label:    "Graphic Design & Branding",
		Services: graphicDesignServices,
	},
	ContractTypeMerch: {
		Type:     ContractTypeMerch,
		Label:    "Clothing & Merch Design",
		Services: merchDesignServices,
	},
}

// CatalogFor returns the rate card for a contract type
func CatalogFor(t ContractType) (ContractCatalog, bool) {
	c, ok := catalogs[t]
	return c, ok
}

// InCatalog reports whether a service label exists on the type's rate card
func InCatalog(t ContractType, label string) bool {
	c, ok := catalogs[t]
	if !ok {
		return false
	}
	for _, s := range c.Services {
		if s.Label == label {
			return true
		}
	}
	return false
}
