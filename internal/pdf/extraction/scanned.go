package extraction

import "regexp"

// ScannedMarkerThreshold is the marker count below which a document is
// treated as image-only.
const ScannedMarkerThreshold = 10

// textMarker matches the text object and text showing operators.
var textMarker = regexp.MustCompile(`\b(?:BT|Tj|TJ)\b`)

// CountTextMarkers counts text-drawing operators in the raw document bytes
// and in every decompressed stream body.
func CountTextMarkers(data []byte) int {
	count := len(textMarker.FindAllIndex(data, -1))
	for _, m := range streamBlock.FindAllSubmatch(data, -1) {
		if isMostlyText(m[1]) {
			// Already counted in the raw pass.
			continue
		}
		if inflated, err := inflate(m[1]); err == nil {
			count += len(textMarker.FindAllIndex(inflated, -1))
		}
	}
	return count
}

// DetectScanned reports whether data looks like a document without a text layer.
func DetectScanned(data []byte) bool {
	return CountTextMarkers(data) < ScannedMarkerThreshold
}
