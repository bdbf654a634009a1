package domain

// Equipment slots a character can imbue.
var EquipmentSlots = []string{"head", "armor", "weapon", "shield", "legs"}

// Vocations selectable for a character.
var Vocations = []string{"Druid", "Elder Druid"}

// EquipmentTags label the loadout a hunt was done with.
var EquipmentTags = []string{
	"Normal",
	"Erdresi",
	"Feuerresi",
	"Eisresi",
	"Energiresi",
	"Todesresi",
	"Physresi",
}

// SlotAllowedCategories maps an equipment slot to the item categories that
// fit it.
var SlotAllowedCategories = map[string][]string{
	"head":   {"HELMET"},
	"armor":  {"ARMOR"},
	"legs":   {"LEGS"},
	"shield": {"SHIELD"},
	"weapon": {"WEAPON_1H", "WEAPON_2H"},
}

// EquipmentItem is an imbuable piece of equipment from the static dataset.
type EquipmentItem struct {
	Name       string
	Slot       string
	ImbueSlots int
	Category   string
}

// Stats holds a character's trainable values. Zero is a valid value for all
// of them, so missing fields simply stay zero on load.
type Stats struct {
	MagicLevel int `json:"magic_level"`
	MLPercent  int `json:"ml_percent"`
	ManaLevel  int `json:"mana_level"`
	HP         int `json:"hp"`
	Mana       int `json:"mana"`
	Capacity   int `json:"capacity"`
	Speed      int `json:"speed"`
	SoulPoints int `json:"soul_points"`
	Stamina    int `json:"stamina"`
	Shielding  int `json:"shielding"`
	Sword      int `json:"sword"`
	Axe        int `json:"axe"`
	Club       int `json:"club"`
	Distance   int `json:"distance"`
}

// SlotAssignment is the item and imbuement keys placed on one equipment slot.
type SlotAssignment struct {
	Item   string   `json:"item,omitempty"`
	Imbues []string `json:"imbues"`
}

// Character is a planned character with its equipment loadout.
type Character struct {
	Name      string                    `json:"name"`
	Vocation  string                    `json:"vocation"`
	Level     int                       `json:"level"`
	Stats     Stats                     `json:"stats"`
	Equipment map[string]SlotAssignment `json:"equipment"`
}

// DefaultCharacter returns the character created when the store is empty.
func DefaultCharacter() Character {
	c := Character{
		Name:      "Default",
		Vocation:  "Druid",
		Level:     1,
		Equipment: make(map[string]SlotAssignment),
	}
	for _, slot := range EquipmentSlots {
		c.Equipment[slot] = SlotAssignment{Imbues: []string{}}
	}
	return c
}
