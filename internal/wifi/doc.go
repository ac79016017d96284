// Package wifi holds the WiFi card settings model and the logic derived from it.
//
// The package is deliberately free of any terminal, file or rendering code. It
// provides the pieces the presentation layers build on:
//   - Settings: the record of everything the user entered for the card
//   - Encode: the pure Settings → QR payload transform
//   - Validate: the gate run before printing
//   - Editor: the single owner of Settings and FieldErrors, mutated one field
//     at a time
//   - Parse: the scanner-side reading of a payload, used for round trips
//
// # Payload Format
//
// The payload follows the WiFi network QR convention understood by mobile
// camera apps:
//
//	WIFI:S:<ssid>;T:<WPA|WEP|nopass>;P:<password>;H:true;;
//
// Values are escaped by prefixing each of \ ; : , " with a backslash. For
// WPA2-Enterprise networks two extension fields follow the SSID:
//
//	WIFI:S:Corp;E:PWD;I:alice;T:WPA;P:secret;;
//
// Most scanners ignore E and I, so an enterprise card will usually only
// pre-fill the network name on the phone.
//
// # Usage Example
//
//	editor := wifi.NewEditor(wifi.DefaultSettings())
//	editor.SetSSID("Home;Net")
//	editor.SetPassword("p@ss:1,2")
//	editor.SetHiddenSSID(true)
//
//	fmt.Println(editor.Payload())
//	// WIFI:S:Home\;Net;T:WPA;P:p@ss\:1\,2;H:true;;
//
//	job, ok := editor.Print()
//	if !ok {
//	    // editor.Errors() now carries the field-scoped message keys
//	}
//
// # Validation
//
// Validation only runs at print time. The live payload is always computed
// from whatever the user typed, valid or not. Validate stops at the first
// failing rule, so at most one field carries an error after a print attempt.
// Errors hold message keys; turning a key into text is left to a Localizer.
package wifi
