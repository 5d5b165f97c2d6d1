package models

// Category represents an area of Australian law a query is asked under
type Category string

const (
	CategoryCriminal      Category = "Criminal Law"
	CategoryCorporate     Category = "Corporate Law"
	CategoryDivorce       Category = "Divorce Law"
	CategoryImmigration   Category = "Immigration Law"
	CategoryProperty      Category = "Property Law"
	CategoryEmployment    Category = "Employment Law"
	CategoryConsumer      Category = "Consumer Law"
	CategoryEnvironmental Category = "Environmental Law"
	CategoryTax           Category = "Tax Law"
	CategoryHealthcare    Category = "Healthcare Law"
)

// Jurisdiction represents the federal, state or territory scope of a query
type Jurisdiction string

const (
	JurisdictionFederal           Jurisdiction = "Federal"
	JurisdictionNSW               Jurisdiction = "New South Wales"
	JurisdictionVictoria          Jurisdiction = "Victoria"
	JurisdictionQueensland        Jurisdiction = "Queensland"
	JurisdictionWA                Jurisdiction = "Western Australia"
	JurisdictionSA                Jurisdiction = "South Australia"
	JurisdictionTasmania          Jurisdiction = "Tasmania"
	JurisdictionACT               Jurisdiction = "Australian Capital Territory"
	JurisdictionNorthernTerritory Jurisdiction = "Northern Territory"
)

// AllCategories returns every category in display order
func AllCategories() []Category {
	return []Category{
		CategoryCriminal,
		CategoryCorporate,
		CategoryDivorce,
		CategoryImmigration,
		CategoryProperty,
		CategoryEmployment,
		CategoryConsumer,
		CategoryEnvironmental,
		CategoryTax,
		CategoryHealthcare,
	}
}

// AllJurisdictions returns every jurisdiction in display order, Federal first
func AllJurisdictions() []Jurisdiction {
	return []Jurisdiction{
		JurisdictionFederal,
		JurisdictionNSW,
		JurisdictionVictoria,
		JurisdictionQueensland,
		JurisdictionWA,
		JurisdictionSA,
		JurisdictionTasmania,
		JurisdictionACT,
		JurisdictionNorthernTerritory,
	}
}

// Valid reports whether c is one of the fixed category labels
func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// Valid reports whether j is one of the fixed jurisdiction labels
func (j Jurisdiction) Valid() bool {
	for _, known := range AllJurisdictions() {
		if j == known {
			return true
		}
	}
	return false
}
