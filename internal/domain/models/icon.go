package models

// Categories and banks store their icon as a string identifier. The set of
// known identifiers is closed; anything else resolves to IconDefault.
const IconDefault = "CircleHelp"

var knownIcons = map[string]bool{
	"Banknote":          true,
	"BookCopy":          true,
	"Car":               true,
	"CircleHelp":        true,
	"CreditCard":        true,
	"Gift":              true,
	"GraduationCap":     true,
	"HeartPulse":        true,
	"Home":              true,
	"Landmark":          true,
	"PiggyBank":         true,
	"Plane":             true,
	"ShoppingCart":      true,
	"Shirt":             true,
	"Smartphone":        true,
	"TrendingUp":        true,
	"Utensils":          true,
	"Wallet":            true,
	"Wrench":            true,
	"PawPrint":          true,
	"Baby":              true,
	"Gamepad2":          true,
	"Fuel":              true,
	"Receipt":           true,
	"HandCoins":         true,
	"BriefcaseBusiness": true,
}

// ResolveIcon maps a stored icon identifier to a known one, falling back to
// IconDefault on miss.
func ResolveIcon(name string) string {
	if knownIcons[name] {
		return name
	}
	return IconDefault
}
