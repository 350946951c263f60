package utils

import "regexp"

var rutPattern = regexp.MustCompile(`^\d{1,3}(\.?\d{3})*-?[\dkK]$`)
