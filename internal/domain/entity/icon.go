package entity

import "strings"

// Icon is the pictogram category shown next to a reading.
type Icon string

const (
	IconSunny        Icon = "sunny"
	IconCloud        Icon = "cloud"
	IconRain         Icon = "rain"
	IconSnow         Icon = "snow"
	IconFog          Icon = "fog"
	IconThunderstorm Icon = "thunderstorm"
)

var iconsByDescription = map[string]Icon{
	"clear sky":        IconSunny,
	"few clouds":       IconCloud,
	"scattered clouds": IconCloud,
	"broken clouds":    IconCloud,
	"overcast clouds":  IconCloud,
	"shower rain":      IconRain,
	"rain":             IconRain,
	"light rain":       IconRain,
	"snow":             IconSnow,
	"mist":             IconFog,
	"fog":              IconFog,
	"thunderstorm":     IconThunderstorm,
}

// IconFor maps a condition description to its icon. Matching ignores case;
// unknown descriptions map to IconSunny.
func IconFor(description string) Icon {
	if icon, ok := iconsByDescription[strings.ToLower(description)]; ok {
		return icon
	}
	return IconSunny
}
