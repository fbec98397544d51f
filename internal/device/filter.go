package device

// Filter narrows a device set by exact name and/or class. The zero value
// matches every device.
type Filter struct {
	Name  string
	Class Class
}

// Matches reports whether the device passes the filter.
func (f Filter) Matches(d Device) bool {
	if f.Name != "" && f.Name != d.Name {
		return false
	}
	if f.Class != "" && f.Class != d.Class {
		return false
	}
	return true
}

// Apply returns the subset of devices matching the filter, preserving order.
func (f Filter) Apply(devices []Device) []Device {
	matched := make([]Device, 0, len(devices))
	for _, d := range devices {
		if f.Matches(d) {
			matched = append(matched, d)
		}
	}
	return matched
}
