package ingest

// Icon is a known icon tag. Unknown names render as IconMapPin.
type Icon string

const IconMapPin Icon = "MapPin"

var knownIcons = map[Icon]struct{}{}

func init() {
	for _, name := range []Icon{
		"Car", "Utensils", IconMapPin, "BedDouble", "Footprints", "Waves",
		"Mountain", "Clock", "Coffee", "Droplets", "Shirt", "CloudRain",
		"BatteryCharging", "Sandwich", "Briefcase", "Ticket", "CreditCard",
		"Umbrella", "Smartphone", "Star", "Camera", "Info", "Tent",
		"TreePine", "Beer", "Music",
	} {
		knownIcons[name] = struct{}{}
	}
}

// IconFor resolves an icon name from the sheet.
func IconFor(name string) Icon {
	if _, ok := knownIcons[Icon(name)]; ok {
		return Icon(name)
	}
	return IconMapPin
}
