package models

// Blog category codes. The set is closed: a post either carries one of these
// or no category at all.
const (
	CategoryGestion       = "GESTION"
	CategoryFinanzas      = "FINANZAS"
	CategoryRecetas       = "RECETAS"
	CategoryMarketing     = "MARKETING"
	CategoryProductividad = "PRODUCTIVIDAD"
	CategoryTendencias    = "TENDENCIAS"
	CategoryCasosEstudio  = "CASOS_ESTUDIO"
)

// Category is one entry of the static registry. Label and description are the
// Spanish strings rendered on the landing site; Slug is the URL segment of the
// category page.
type Category struct {
	Code        string `json:"code"`
	Label       string `json:"label"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

// categories is the single source of truth. Every other view (code lookup,
// slug lookup) is derived from it, so adding a category means adding exactly
// one row here.
var categories = []Category{
	{CategoryGestion, "Gestión", "gestion", "Gestión de pedidos, clientes y operaciones diarias"},
	{CategoryFinanzas, "Finanzas", "finanzas", "Control de costes, rentabilidad y precios"},
	{CategoryRecetas, "Recetas", "recetas", "Recetas y técnicas de repostería artesanal"},
	{CategoryMarketing, "Marketing", "marketing", "Estrategias de marketing y captación de clientes"},
	{CategoryProductividad, "Productividad", "productividad", "Organización del obrador y mejora de procesos"},
	{CategoryTendencias, "Tendencias", "tendencias", "Novedades del sector y tendencias del mercado"},
	{CategoryCasosEstudio, "Casos de Estudio", "casos-estudio", "Casos de éxito y testimonios de pastelerías"},
}

var (
	categoryByCode = make(map[string]Category, len(categories))
	categoryBySlug = make(map[string]Category, len(categories))
)

func init() {
	for _, c := range categories {
		categoryByCode[c.Code] = c
		categoryBySlug[c.Slug] = c
	}
}

// AllCategories returns the registry in declaration order.
func AllCategories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ValidCategory reports whether code is one of the registered category codes.
func ValidCategory(code string) bool {
	_, ok := categoryByCode[code]
	return ok
}

// CategoryLabel returns the display label for a code, or "" for unknown codes.
func CategoryLabel(code string) string {
	return categoryByCode[code].Label
}

// CategoryDescription returns the one-line description for a code, or "" for
// unknown codes.
func CategoryDescription(code string) string {
	return categoryByCode[code].Description
}

// CategorySlug returns the URL segment for a code, or "" for unknown codes.
func CategorySlug(code string) string {
	return categoryByCode[code].Slug
}

// CategoryFromSlug resolves a category page slug back to its code. Unknown
// slugs report ok=false so route resolution can fall through to a 404.
func CategoryFromSlug(slug string) (Category, bool) {
	c, ok := categoryBySlug[slug]
	return c, ok
}
