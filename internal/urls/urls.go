package urls

// Source is the project home linked from the app header and help text.
const Source = "https://github.com/Jackie264/wificard-docker"

// PayloadFormat documents the WIFI: payload understood by phone scanners.
const PayloadFormat = "https://github.com/zxing/zxing/wiki/Barcode-Contents#wi-fi-network-config-android-ios-11"
