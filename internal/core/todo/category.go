package todo

// CategoryConfig holds static display metadata for one category. The color
// is a semantic token resolved through the active styles palette.
type CategoryConfig struct {
	Label string
	Icon  string
	Color string
}

// Semantic color tokens used by CategoryConfig.
const (
	ColorTokenPrimary   = "primary"
	ColorTokenMuted     = "muted"
	ColorTokenSuccess   = "success"
	ColorTokenSecondary = "secondary"
	ColorTokenError     = "error"
)

// categoryConfigs maps every category to its display metadata. Not
// user-editable.
var categoryConfigs = map[Category]CategoryConfig{
	CategoryContact: {Label: "Contact", Icon: "", Color: ColorTokenPrimary},   // phone
	CategoryRecord:  {Label: "Record", Icon: "", Color: ColorTokenMuted},      // document
	CategoryBilling: {Label: "Billing", Icon: "", Color: ColorTokenSuccess},   // dollar
	CategoryInvoice: {Label: "Invoice", Icon: "", Color: ColorTokenSecondary}, // table
	CategoryCancel:  {Label: "Cancel", Icon: "", Color: ColorTokenError},      // circled x
}

// Config returns the display metadata for c. Unknown categories fall back
// to a muted config with the raw value as its label, so stale data renders
// instead of crashing.
func (c Category) Config() CategoryConfig {
	if cfg, ok := categoryConfigs[c]; ok {
		return cfg
	}
	return CategoryConfig{Label: string(c), Icon: "?", Color: ColorTokenMuted}
}

// Label returns the display label for c.
func (c Category) Label() string {
	return c.Config().Label
}

// ParseCategory maps a user-supplied string to a Category, accepting either
// the enum value or the display label.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s || c.Label() == s {
			return c, true
		}
	}
	return "", false
}
