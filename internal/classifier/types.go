package classifier

// Category is the route label produced by intent classification.
type Category string

const (
	// CategoryQuery routes to the database lookup pipeline.
	CategoryQuery Category = "query_related"

	// CategoryMedical routes to the general-advice node.
	CategoryMedical Category = "medical_related"
)

// Categories returns the closed enumeration of route labels. The workflow
// graph validates at construction time that each one has a destination.
func Categories() []Category {
	return []Category{CategoryQuery, CategoryMedical}
}

// ParseCategory maps a normalized label string onto the enumeration.
func ParseCategory(label string) (Category, bool) {
	switch Category(label) {
	case CategoryQuery:
		return CategoryQuery, true
	case CategoryMedical:
		return CategoryMedical, true
	default:
		return "", false
	}
}
