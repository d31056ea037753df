// Package assets exposes the string identifiers of the LogbookOne asset
// catalog. Downstream code references colors through these names instead of
// repeating string literals, so the values here must match the catalog's
// color-set entries exactly.
package assets

// BundleID is the resource bundle identifier.
const BundleID = "com.logbookone.LogbookOne"

// Color resource names, one per color set in the catalog.
const (
	ColorNameAppAccent      = "appAccent"      // brand accent
	ColorNameAppBackground  = "appBackground"  // app-level background
	ColorNameCardBackground = "cardBackground" // elevated card surfaces
	ColorNameDanger         = "danger"         // destructive actions, errors
	ColorNameNoteColor      = "noteColor"      // note entries
	ColorNamePaymentColor   = "paymentColor"   // payment entries
	ColorNamePrimaryText    = "primaryText"    // primary body text
	ColorNameSecondaryText  = "secondaryText"  // captions, helper text
	ColorNameSuccess        = "success"        // confirmations, positive status
	ColorNameTaskColor      = "taskColor"      // task entries
	ColorNameWarning        = "warning"        // cautionary status
)

var colorNames = [...]string{
	ColorNameAppAccent,
	ColorNameAppBackground,
	ColorNameCardBackground,
	ColorNameDanger,
	ColorNameNoteColor,
	ColorNamePaymentColor,
	ColorNamePrimaryText,
	ColorNameSecondaryText,
	ColorNameSuccess,
	ColorNameTaskColor,
	ColorNameWarning,
}

// ColorNames returns every catalog color name in declaration order. The
// returned slice is a copy.
func ColorNames() []string {
	names := make([]string, len(colorNames))
	copy(names, colorNames[:])
	return names
}
