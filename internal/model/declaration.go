package model

// Category is the kind of declaration recognised by the scanner.
type Category string

const (
	// CategoryType covers class, struct, enum, protocol and extension declarations.
	CategoryType Category = "type"
	// CategoryFunction covers func declarations.
	CategoryFunction Category = "function"
	// CategoryProperty covers let and var bindings.
	CategoryProperty Category = "property"
)

// Categories lists every category in scan order.
var Categories = []Category{CategoryType, CategoryFunction, CategoryProperty}

// MissingKey returns the key used for the category in missing_documentation.
func (c Category) MissingKey() string {
	switch c {
	case CategoryType:
		return "classes"
	case CategoryFunction:
		return "methods"
	case CategoryProperty:
		return "properties"
	}

	return string(c)
}

// DeclarationSite is a location in source text that introduces a declaration.
type DeclarationSite struct {
	Category Category
	Name     string
	Offset   int // byte offset of the match start
	Line     int // 1-based
}

// Verdict pairs a declaration site with its documentation status.
type Verdict struct {
	Site       DeclarationSite
	Documented bool
}

// Suggestion is a proposed documentation comment for an undocumented site.
type Suggestion struct {
	Site     DeclarationSite
	Context  string
	Template string
}
