// Package card draws the WiFi credential card as styled terminal text.
//
// A card shows the QR code next to the network name, the EAP method and
// identity for enterprise networks, and the password unless it is hidden or
// the network is open. Portrait cards stack the code above the fields;
// right-to-left languages mirror the layout. RenderSheet repeats the card
// once per printed copy.
package card
