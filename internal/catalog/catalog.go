package catalog

import (
	"fmt"

	"aquarium-service/internal/models"
)

// RarityWeights maps each rarity to its relative draw weight. Weights are
// relative, not percentages; selection is per-item (see gacha.Picker), so a
// rarity with more member fish is proportionally more likely in aggregate.
var RarityWeights = map[models.Rarity]int{
	models.RarityCommon:    50,
	models.RarityRare:      30,
	models.RarityEpic:      15,
	models.RarityLegendary: 4,
	models.RarityMythical:  1,
}

var fishData = []models.Fish{
	{ID: "1", Name: "Clownfish", Species: "Amphiprioninae", Rarity: models.RarityCommon, Description: "Bright orange fish with white bands, famous for living among sea anemones.", Habitat: "Pacific coral reefs", Diet: "Algae, plankton, small crustaceans", Points: 10, Color: "#FF8C42"},
	{ID: "2", Name: "Blue Tang", Species: "Paracanthurus hepatus", Rarity: models.RarityCommon, Description: "Blue fish with a black pattern and yellow tail. Active and sociable.", Habitat: "Indo-Pacific region", Diet: "Plankton and algae", Points: 10, Color: "#4A90E2"},
	{ID: "3", Name: "Yellow Tang", Species: "Zebrasoma flavescens", Rarity: models.RarityCommon, Description: "Bright yellow fish with a flat body. A staple of home aquariums.", Habitat: "Hawaiian Islands", Diet: "Algae", Points: 10, Color: "#FFD700"},
	{ID: "4", Name: "Royal Gramma", Species: "Gramma loreto", Rarity: models.RarityCommon, Description: "Purple and yellow fish that prefers to hide in caves.", Habitat: "Caribbean Sea", Diet: "Small crustaceans and plankton", Points: 10, Color: "#9B59B6"},
	{ID: "5", Name: "Mandarinfish", Species: "Synchiropus splendidus", Rarity: models.RarityRare, Description: "One of the most colorful fish, with a psychedelic pattern of blue, orange and green.", Habitat: "Pacific coral reefs", Diet: "Copepods and small invertebrates", Points: 25, Color: "#00CED1"},
	{ID: "6", Name: "Flame Angelfish", Species: "Centropyge loricula", Rarity: models.RarityRare, Description: "Bright red with black vertical bars. A territorial fish.", Habitat: "Hawaii and the Marshall Islands", Diet: "Algae and detritus", Points: 25, Color: "#E74C3C"},
	{ID: "7", Name: "Neon Tetra", Species: "Paracheirodon innesi", Rarity: models.RarityRare, Description: "Small fish with a neon blue stripe along its body.", Habitat: "Amazon rivers", Diet: "Small insects and plankton", Points: 25, Color: "#00BFFF"},
	{ID: "8", Name: "Discus", Species: "Symphysodon", Rarity: models.RarityRare, Description: "Round, flat fish with vivid patterns. Known as the king of the aquarium.", Habitat: "Amazon basin", Diet: "Worms, crustaceans, plants", Points: 25, Color: "#FF6B9D"},
	{ID: "9", Name: "Emperor Angelfish", Species: "Pomacanthus imperator", Rarity: models.RarityEpic, Description: "Majestic fish with horizontal blue and yellow stripes.", Habitat: "Indo-Pacific reefs", Diet: "Sponges, tunicates, algae", Points: 50, Color: "#3498DB"},
	{ID: "10", Name: "Moorish Idol", Species: "Zanclus cornutus", Rarity: models.RarityEpic, Description: "Elegant fish with a long dorsal fin and black, yellow and white bands.", Habitat: "Indo-Pacific region", Diet: "Sponges and small invertebrates", Points: 50, Color: "#F4D03F"},
	{ID: "11", Name: "Flame Hawkfish", Species: "Neocirrhites armatus", Rarity: models.RarityEpic, Description: "Deep red-orange coloring with black markings.", Habitat: "Hawaiian and Mariana Islands", Diet: "Algae and detritus", Points: 50, Color: "#FF4500"},
	{ID: "12", Name: "Foxface Rabbitfish", Species: "Siganus vulpinus", Rarity: models.RarityEpic, Description: "Yellow fish with an unusual elongated snout.", Habitat: "Western Pacific", Diet: "Algae", Points: 50, Color: "#FFD700"},
	{ID: "13", Name: "Napoleon Wrasse", Species: "Cheilinus undulatus", Rarity: models.RarityLegendary, Description: "Massive fish with a prominent forehead hump. Can live up to 30 years.", Habitat: "Indo-Pacific coral reefs", Diet: "Mollusks, fish, sea urchins", Points: 100, Color: "#2ECC71"},
	{ID: "14", Name: "Unicornfish", Species: "Naso unicornis", Rarity: models.RarityLegendary, Description: "Large fish with a distinctive horn on its forehead.", Habitat: "Indo-Pacific waters", Diet: "Brown algae", Points: 100, Color: "#5DADE2"},
	{ID: "15", Name: "Spotted Eagle Ray", Species: "Aetobatus narinari", Rarity: models.RarityLegendary, Description: "Graceful ray with a spotted pattern, flying underwater.", Habitat: "Tropical waters worldwide", Diet: "Mollusks and crustaceans", Points: 100, Color: "#8E44AD"},
	{ID: "16", Name: "Stonefish", Species: "Synanceia verrucosa", Rarity: models.RarityMythical, Description: "The most venomous fish in the world. A master of camouflage.", Habitat: "Indo-Pacific coral reefs", Diet: "Small fish and crustaceans", Points: 250, Color: "#7D3C98"},
	{ID: "17", Name: "Dragon Moray", Species: "Enchelycore pardalis", Rarity: models.RarityMythical, Description: "Rare moray eel with a unique spotted pattern and elongated jaws.", Habitat: "Deep Pacific reefs", Diet: "Fish and octopus", Points: 250, Color: "#C0392B"},
	{ID: "18", Name: "Opah", Species: "Lampris guttatus", Rarity: models.RarityMythical, Description: "Warm-blooded round fish with iridescent coloring. Extremely rare.", Habitat: "Open ocean, deep water", Diet: "Squid and small fish", Points: 250, Color: "#E74C3C"},
}

// All returns the full catalog. The backing data is package-level and never
// mutated after init; callers must not modify the returned slice.
func All() []models.Fish {
	return fishData
}

// ByID looks a fish up by its stable id.
func ByID(id string) (models.Fish, bool) {
	for _, f := range fishData {
		if f.ID == id {
			return f, true
		}
	}
	return models.Fish{}, false
}

// Weight returns the draw weight for a fish's rarity.
func Weight(r models.Rarity) int {
	return RarityWeights[r]
}

func init() {
	// Every rarity in the catalog must carry a weight, otherwise the picker
	// would silently skew the distribution.
	for _, f := range fishData {
		if _, ok := RarityWeights[f.Rarity]; !ok {
			panic(fmt.Sprintf("catalog: fish %s has rarity %q with no weight", f.ID, f.Rarity))
		}
	}
}
