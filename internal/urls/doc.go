// Package urls holds the external links shown to users, so they can be
// updated in one place.
//
// Usage:
//
//	import "github.com/jackie264/wificard/internal/urls"
//
//	fmt.Printf("Payload format: %s\n", urls.PayloadFormat)
package urls
