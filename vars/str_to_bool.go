package vars

import "strings"

var boolWords = map[string]bool{
	"true": true,
	"t":    true,
	"yes":  true,
	"y":    true,
}

// StrToBool reads command-line style boolean words. Anything not in
// boolWords, including explicit negatives, reads as false.
func StrToBool(str string) bool {
	return boolWords[strings.ToLower(str)]
}
