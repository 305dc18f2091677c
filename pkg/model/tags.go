package model

// FoodTag is a food-pairing category as used by Systembolaget.
type FoodTag string

const (
	TagBeef       FoodTag = "Nöt"
	TagPork       FoodTag = "Fläsk"
	TagPoultry    FoodTag = "Fågel"
	TagFish       FoodTag = "Fisk"
	TagShellfish  FoodTag = "Skaldjur"
	TagVegetarian FoodTag = "Vegetariskt"
	TagAperitif   FoodTag = "Sällskapsdryck"
	TagLamb       FoodTag = "Lamm"
	TagGame       FoodTag = "Vilt"
	TagLightMeat  FoodTag = "Ljust kött"
)

var FoodTags = []FoodTag{
	TagBeef, TagPork, TagPoultry, TagFish, TagShellfish,
	TagVegetarian, TagAperitif, TagLamb, TagGame, TagLightMeat,
}

func IsFoodTag(tag string) bool {
	for _, known := range FoodTags {
		if string(known) == tag {
			return true
		}
	}

	return false
}

// FilterFoodTags keeps the known tags in their original order, dropping duplicates.
func FilterFoodTags(tags []string) []string {
	filtered := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))

	for _, tag := range tags {
		if IsFoodTag(tag) && !seen[tag] {
			seen[tag] = true
			filtered = append(filtered, tag)
		}
	}

	return filtered
}

func FoodTagNames() []string {
	names := make([]string, 0, len(FoodTags))
	for _, tag := range FoodTags {
		names = append(names, string(tag))
	}

	return names
}
