package utils

// Contains returns true if the value is present in the collection.
func Contains[T comparable](collection []T, value T) bool {
	for _, v := range collection {
		if v == value {
			return true
		}
	}
	return false
}

// OnOff returns the "On" or "Off" label of a boolean flag.
func OnOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
