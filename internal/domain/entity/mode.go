package entity

// ShopMode is the storefront's merchandising persona. It controls catalog
// filtering and the accent color handed to the payment gateway's hosted UI.
type ShopMode string

const (
	ModeMen   ShopMode = "men"
	ModeWomen ShopMode = "women"
	ModeKids  ShopMode = "kids"

	// DefaultShopMode is used when no mode has been persisted yet.
	DefaultShopMode = ModeMen
)

// Valid reports whether the mode is one of the known personas.
func (m ShopMode) Valid() bool {
	switch m {
	case ModeMen, ModeWomen, ModeKids:
		return true
	}

	return false
}

// ThemeColor returns the accent color used for the gateway's hosted payment UI.
func (m ShopMode) ThemeColor() string {
	switch m {
	case ModeWomen:
		return "#ec4899"
	case ModeKids:
		return "#f59e0b"
	default:
		return "#2563eb"
	}
}
