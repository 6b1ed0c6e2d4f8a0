package domain

// ModuleType is the question format category resolved at extraction time.
type ModuleType string

const (
	ModuleMCQ          ModuleType = "MCQ"
	ModuleCodeAnalysis ModuleType = "Code Analysis"
	ModulePythonCoding ModuleType = "Python Coding"
	ModuleWebCoding    ModuleType = "Web Coding"
	ModuleSQLCoding    ModuleType = "SQL Coding"
	ModuleCoding       ModuleType = "Coding"
	ModuleJSCoding     ModuleType = "JS Coding"
	ModuleDSACoding    ModuleType = "DSA Coding"
	ModuleUnknown      ModuleType = "Unknown"
)

// Catalog keys used by the reference taxonomy document.
const (
	CatalogKeyCodeAnalysis = "CODE_ANALYSIS"
	CatalogKeyCoding       = "CODING"
	CatalogKeyHTMLCoding   = "HTML_CODING"
	CatalogKeySQLCoding    = "SQL_CODING"
)

var catalogKeys = map[ModuleType]string{
	ModuleMCQ:          CatalogKeyCodeAnalysis,
	ModuleCodeAnalysis: CatalogKeyCodeAnalysis,
	ModulePythonCoding: CatalogKeyCoding,
	ModuleCoding:       CatalogKeyCoding,
	ModuleJSCoding:     CatalogKeyCoding,
	ModuleDSACoding:    CatalogKeyCoding,
	ModuleWebCoding:    CatalogKeyHTMLCoding,
	ModuleSQLCoding:    CatalogKeySQLCoding,
}

// CatalogKeyFor returns the reference catalog key for a module type.
// The boolean is false for module types the catalog does not cover.
func CatalogKeyFor(m ModuleType) (string, bool) {
	key, ok := catalogKeys[m]
	return key, ok
}

// ParseModuleType maps a display name to a ModuleType, falling back to ModuleUnknown.
func ParseModuleType(name string) ModuleType {
	m := ModuleType(name)
	if _, ok := catalogKeys[m]; ok {
		return m
	}
	return ModuleUnknown
}

// RulePolicy holds the module families that drive the visibility checks.
type RulePolicy struct {
	// PublicModules must carry IS_PUBLIC and never IS_PRIVATE.
	PublicModules map[ModuleType]struct{}
	// CodingModules must carry IS_PRIVATE and never IS_PUBLIC.
	CodingModules map[ModuleType]struct{}
}

// DefaultRulePolicy treats MCQ and Code Analysis as public and every coding
// variant as private.
func DefaultRulePolicy() RulePolicy {
	return NewRulePolicy(
		[]ModuleType{ModuleMCQ, ModuleCodeAnalysis},
		[]ModuleType{ModulePythonCoding, ModuleWebCoding, ModuleSQLCoding, ModuleCoding, ModuleJSCoding, ModuleDSACoding},
	)
}

// NewRulePolicy builds a policy from explicit module lists.
func NewRulePolicy(public, coding []ModuleType) RulePolicy {
	p := RulePolicy{
		PublicModules: make(map[ModuleType]struct{}, len(public)),
		CodingModules: make(map[ModuleType]struct{}, len(coding)),
	}
	for _, m := range public {
		p.PublicModules[m] = struct{}{}
	}
	for _, m := range coding {
		p.CodingModules[m] = struct{}{}
	}
	return p
}

// IsPublic reports whether m belongs to the public family.
func (p RulePolicy) IsPublic(m ModuleType) bool {
	_, ok := p.PublicModules[m]
	return ok
}

// IsCoding reports whether m belongs to the coding family.
func (p RulePolicy) IsCoding(m ModuleType) bool {
	_, ok := p.CodingModules[m]
	return ok
}

// RulePolicyFromNames builds a policy from configured module type names.
func RulePolicyFromNames(public, coding []string) RulePolicy {
	toTypes := func(names []string) []ModuleType {
		out := make([]ModuleType, 0, len(names))
		for _, n := range names {
			out = append(out, ModuleType(n))
		}
		return out
	}
	return NewRulePolicy(toTypes(public), toTypes(coding))
}
