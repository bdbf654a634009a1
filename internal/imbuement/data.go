package imbuement

import "github.com/avelar/tibiasearch/internal/domain"

// Static imbuement reference data. Edit here to track game updates.

type tierSpec struct {
	name    string
	effect  string
	sources []domain.Material
}

type typeSpec struct {
	kind     string
	category string
	tiers    []tierSpec
}

var resource = []typeSpec{
	{
		kind:     "Scorch",
		category: "Attack / Fire Damage",
		tiers: []tierSpec{
			{"Basic Scorch", "10% converted", []domain.Material{{Qty: 25, Name: "Fiery Heart"}}},
			{"Intricate Scorch", "25% converted", []domain.Material{{Qty: 25, Name: "Fiery Heart"}, {Qty: 5, Name: "Green Dragon Scale"}}},
			{"Powerful Scorch", "50% converted", []domain.Material{{Qty: 25, Name: "Fiery Heart"}, {Qty: 5, Name: "Green Dragon Scale"}, {Qty: 5, Name: "Demon Horn"}}},
		},
	},
	{
		kind:     "Venom",
		category: "Attack / Earth Damage",
		tiers: []tierSpec{
			{"Basic Venom", "10% converted", []domain.Material{{Qty: 25, Name: "Swamp Grass"}}},
			{"Intricate Venom", "25% converted", []domain.Material{{Qty: 25, Name: "Swamp Grass"}, {Qty: 20, Name: "Poisonous Slime"}}},
			{"Powerful Venom", "50% converted", []domain.Material{{Qty: 25, Name: "Swamp Grass"}, {Qty: 20, Name: "Poisonous Slime"}, {Qty: 2, Name: "Slime Heart"}}},
		},
	},
	{
		kind:     "Frost",
		category: "Attack / Ice Damage",
		tiers: []tierSpec{
			{"Basic Frost", "10% converted", []domain.Material{{Qty: 25, Name: "Frosty Heart"}}},
			{"Intricate Frost", "25% converted", []domain.Material{{Qty: 25, Name: "Frosty Heart"}, {Qty: 10, Name: "Seacrest Hair"}}},
			{"Powerful Frost", "50% converted", []domain.Material{{Qty: 25, Name: "Frosty Heart"}, {Qty: 10, Name: "Seacrest Hair"}, {Qty: 5, Name: "Polar Bear Paw"}}},
		},
	},
	{
		kind:     "Electrify",
		category: "Attack / Energy Damage",
		tiers: []tierSpec{
			{"Basic Electrify", "10% converted", []domain.Material{{Qty: 25, Name: "Rorc Feather"}}},
			{"Intricate Electrify", "25% converted", []domain.Material{{Qty: 25, Name: "Rorc Feather"}, {Qty: 5, Name: "Peacock Feather Fan"}}},
			{"Powerful Electrify", "50% converted", []domain.Material{{Qty: 25, Name: "Rorc Feather"}, {Qty: 5, Name: "Peacock Feather Fan"}, {Qty: 1, Name: "Energy Vein"}}},
		},
	},
	{
		kind:     "Reap",
		category: "Attack / Death Damage",
		tiers: []tierSpec{
			{"Basic Reap", "10% converted", []domain.Material{{Qty: 25, Name: "Pile of Grave Earth"}}},
			{"Intricate Reap", "25% converted", []domain.Material{{Qty: 25, Name: "Pile of Grave Earth"}, {Qty: 20, Name: "Demonic Skeletal Hand"}}},
			{"Powerful Reap", "50% converted", []domain.Material{{Qty: 25, Name: "Pile of Grave Earth"}, {Qty: 20, Name: "Demonic Skeletal Hand"}, {Qty: 5, Name: "Petrified Scream"}}},
		},
	},
	{
		kind:     "Vampirism",
		category: "Attack / Life Leech",
		tiers: []tierSpec{
			{"Basic Vampirism", "5% leeched", []domain.Material{{Qty: 25, Name: "Vampire Teeth"}}},
			{"Intricate Vampirism", "10% leeched", []domain.Material{{Qty: 25, Name: "Vampire Teeth"}, {Qty: 15, Name: "Bloody Pincers"}}},
			{"Powerful Vampirism", "25% leeched", []domain.Material{{Qty: 25, Name: "Vampire Teeth"}, {Qty: 15, Name: "Bloody Pincers"}, {Qty: 5, Name: "Piece of Dead Brain"}}},
		},
	},
	{
		kind:     "Void",
		category: "Attack / Mana Leech",
		tiers: []tierSpec{
			{"Basic Void", "3% leeched", []domain.Material{{Qty: 25, Name: "Rope Belt"}}},
			{"Intricate Void", "5% leeched", []domain.Material{{Qty: 25, Name: "Rope Belt"}, {Qty: 25, Name: "Silencer Claw"}}},
			{"Powerful Void", "8% leeched", []domain.Material{{Qty: 25, Name: "Rope Belt"}, {Qty: 25, Name: "Silencer Claw"}, {Qty: 5, Name: "Some Grimeleech Wings"}}},
		},
	},
	{
		kind:     "Strike",
		category: "Attack / Critical Hit",
		tiers: []tierSpec{
			{"Basic Strike", "5% chance / +5% crit dmg", []domain.Material{{Qty: 20, Name: "Protective Charm"}}},
			{"Intricate Strike", "5% chance / +15% crit dmg", []domain.Material{{Qty: 20, Name: "Protective Charm"}, {Qty: 25, Name: "Sabretooth"}}},
			{"Powerful Strike", "5% chance / +40% crit dmg", []domain.Material{{Qty: 20, Name: "Protective Charm"}, {Qty: 25, Name: "Sabretooth"}, {Qty: 5, Name: "Vexclaw Talon"}}},
		},
	},
	{
		kind:     "Lich Shroud",
		category: "Protective / Death Protection",
		tiers: []tierSpec{
			{"Basic Lich Shroud", "2% protection", []domain.Material{{Qty: 25, Name: "Flask of Embalming Fluid"}}},
			{"Intricate Lich Shroud", "5% protection", []domain.Material{{Qty: 25, Name: "Flask of Embalming Fluid"}, {Qty: 20, Name: "Gloom Wolf Fur"}}},
			{"Powerful Lich Shroud", "10% protection", []domain.Material{{Qty: 25, Name: "Flask of Embalming Fluid"}, {Qty: 20, Name: "Gloom Wolf Fur"}, {Qty: 5, Name: "Mystical Hourglass"}}},
		},
	},
	{
		kind:     "Snake Skin",
		category: "Protective / Earth Protection",
		tiers: []tierSpec{
			{"Basic Snake Skin", "3% protection", []domain.Material{{Qty: 25, Name: "Piece of Swampling Wood"}}},
			{"Intricate Snake Skin", "8% protection", []domain.Material{{Qty: 25, Name: "Piece of Swampling Wood"}, {Qty: 20, Name: "Snake Skin"}}},
			{"Powerful Snake Skin", "15% protection", []domain.Material{{Qty: 25, Name: "Piece of Swampling Wood"}, {Qty: 20, Name: "Snake Skin"}, {Qty: 10, Name: "Brimstone Fang"}}},
		},
	},
	{
		kind:     "Dragon Hide",
		category: "Protective / Fire Protection",
		tiers: []tierSpec{
			{"Basic Dragon Hide", "3% protection", []domain.Material{{Qty: 20, Name: "Green Dragon Leather"}}},
			{"Intricate Dragon Hide", "8% protection", []domain.Material{{Qty: 20, Name: "Green Dragon Leather"}, {Qty: 10, Name: "Blazing Bone"}}},
			{"Powerful Dragon Hide", "15% protection", []domain.Material{{Qty: 20, Name: "Green Dragon Leather"}, {Qty: 10, Name: "Blazing Bone"}, {Qty: 5, Name: "Draken Sulphur"}}},
		},
	},
	{
		kind:     "Quara Scale",
		category: "Protective / Ice Protection",
		tiers: []tierSpec{
			{"Basic Quara Scale", "3% protection", []domain.Material{{Qty: 25, Name: "Winter Wolf Fur"}}},
			{"Intricate Quara Scale", "8% protection", []domain.Material{{Qty: 25, Name: "Winter Wolf Fur"}, {Qty: 15, Name: "Thick Fur"}}},
			{"Powerful Quara Scale", "15% protection", []domain.Material{{Qty: 25, Name: "Winter Wolf Fur"}, {Qty: 15, Name: "Thick Fur"}, {Qty: 10, Name: "Deepling Warts"}}},
		},
	},
	{
		kind:     "Cloud Fabric",
		category: "Protective / Energy Protection",
		tiers: []tierSpec{
			{"Basic Cloud Fabric", "3% protection", []domain.Material{{Qty: 20, Name: "Wyvern Talisman"}}},
			{"Intricate Cloud Fabric", "8% protection", []domain.Material{{Qty: 20, Name: "Wyvern Talisman"}, {Qty: 15, Name: "Crawler Head Plating"}}},
			{"Powerful Cloud Fabric", "15% protection", []domain.Material{{Qty: 20, Name: "Wyvern Talisman"}, {Qty: 15, Name: "Crawler Head Plating"}, {Qty: 10, Name: "Wyrm Scale"}}},
		},
	},
	{
		kind:     "Demon Presence",
		category: "Protective / Holy Protection",
		tiers: []tierSpec{
			{"Basic Demon Presence", "3% protection", []domain.Material{{Qty: 25, Name: "Cultish Robe"}}},
			{"Intricate Demon Presence", "8% protection", []domain.Material{{Qty: 25, Name: "Cultish Robe"}, {Qty: 25, Name: "Cultish Mask"}}},
			{"Powerful Demon Presence", "15% protection", []domain.Material{{Qty: 25, Name: "Cultish Robe"}, {Qty: 25, Name: "Cultish Mask"}, {Qty: 20, Name: "Hellspawn Tail"}}},
		},
	},
	{
		kind:     "Vibrancy",
		category: "Protective / Paralysis Deflection",
		tiers: []tierSpec{
			{"Basic Vibrancy", "15% chance", []domain.Material{{Qty: 20, Name: "Wereboar Hooves"}}},
			{"Intricate Vibrancy", "25% chance", []domain.Material{{Qty: 20, Name: "Wereboar Hooves"}, {Qty: 15, Name: "Crystallized Anger"}}},
			{"Powerful Vibrancy", "50% chance", []domain.Material{{Qty: 20, Name: "Wereboar Hooves"}, {Qty: 15, Name: "Crystallized Anger"}, {Qty: 5, Name: "Quill"}}},
		},
	},
	{
		kind:     "Swiftness",
		category: "Support / Walking Speed",
		tiers: []tierSpec{
			{"Basic Swiftness", "+10 speed", []domain.Material{{Qty: 15, Name: "Damselfly Wing"}}},
			{"Intricate Swiftness", "+15 speed", []domain.Material{{Qty: 15, Name: "Damselfly Wing"}, {Qty: 25, Name: "Compass"}}},
			{"Powerful Swiftness", "+30 speed", []domain.Material{{Qty: 15, Name: "Damselfly Wing"}, {Qty: 25, Name: "Compass"}, {Qty: 20, Name: "Waspoid Wing"}}},
		},
	},
	{
		kind:     "Featherweight",
		category: "Support / Capacity",
		tiers: []tierSpec{
			{"Basic Featherweight", "+3% cap", []domain.Material{{Qty: 20, Name: "Fairy Wing"}}},
			{"Intricate Featherweight", "+8% cap", []domain.Material{{Qty: 20, Name: "Fairy Wing"}, {Qty: 10, Name: "Little Bowl of Myrrh"}}},
			{"Powerful Featherweight", "+15% cap", []domain.Material{{Qty: 20, Name: "Fairy Wing"}, {Qty: 10, Name: "Little Bowl of Myrrh"}, {Qty: 5, Name: "Goosebump Leather"}}},
		},
	},
	{
		kind:     "Epiphany",
		category: "Skill Improving / Magic Level",
		tiers: []tierSpec{
			{"Basic Epiphany", "+1 ML", []domain.Material{{Qty: 25, Name: "Elvish Talisman"}}},
			{"Intricate Epiphany", "+2 ML", []domain.Material{{Qty: 25, Name: "Elvish Talisman"}, {Qty: 15, Name: "Broken Shamanic Staff"}}},
			{"Powerful Epiphany", "+4 ML", []domain.Material{{Qty: 25, Name: "Elvish Talisman"}, {Qty: 15, Name: "Broken Shamanic Staff"}, {Qty: 15, Name: "Strand of Medusa Hair"}}},
		},
	},
	{
		kind:     "Punch",
		category: "Skill Improving / Fist Fighting",
		tiers: []tierSpec{
			{"Basic Punch", "+1", []domain.Material{{Qty: 25, Name: "Tarantula Egg"}}},
			{"Intricate Punch", "+2", []domain.Material{{Qty: 25, Name: "Tarantula Egg"}, {Qty: 20, Name: "Mantassin Tail"}}},
			{"Powerful Punch", "+4", []domain.Material{{Qty: 25, Name: "Tarantula Egg"}, {Qty: 20, Name: "Mantassin Tail"}, {Qty: 15, Name: "Gold-Brocaded Cloth"}}},
		},
	},
	{
		kind:     "Bash",
		category: "Skill Improving / Club Fighting",
		tiers: []tierSpec{
			{"Basic Bash", "+1", []domain.Material{{Qty: 20, Name: "Cyclops Toe"}}},
			{"Intricate Bash", "+2", []domain.Material{{Qty: 20, Name: "Cyclops Toe"}, {Qty: 15, Name: "Ogre Nose Ring"}}},
			{"Powerful Bash", "+4", []domain.Material{{Qty: 20, Name: "Cyclops Toe"}, {Qty: 15, Name: "Ogre Nose Ring"}, {Qty: 10, Name: "Warmaster's Wristguards"}}},
		},
	},
	{
		kind:     "Slash",
		category: "Skill Improving / Sword Fighting",
		tiers: []tierSpec{
			{"Basic Slash", "+1", []domain.Material{{Qty: 25, Name: "Lion's Mane"}}},
			{"Intricate Slash", "+2", []domain.Material{{Qty: 25, Name: "Lion's Mane"}, {Qty: 25, Name: "Mooh'tah Shell"}}},
			{"Powerful Slash", "+4", []domain.Material{{Qty: 25, Name: "Lion's Mane"}, {Qty: 25, Name: "Mooh'tah Shell"}, {Qty: 5, Name: "War Crystal"}}},
		},
	},
	{
		kind:     "Chop",
		category: "Skill Improving / Axe Fighting",
		tiers: []tierSpec{
			{"Basic Chop", "+1", []domain.Material{{Qty: 20, Name: "Orc Tooth"}}},
			{"Intricate Chop", "+2", []domain.Material{{Qty: 20, Name: "Orc Tooth"}, {Qty: 25, Name: "Battle Stone"}}},
			{"Powerful Chop", "+4", []domain.Material{{Qty: 20, Name: "Orc Tooth"}, {Qty: 25, Name: "Battle Stone"}, {Qty: 20, Name: "Moohtant Horn"}}},
		},
	},
	{
		kind:     "Precision",
		category: "Skill Improving / Distance Fighting",
		tiers: []tierSpec{
			{"Basic Precision", "+1", []domain.Material{{Qty: 25, Name: "Elven Scouting Glass"}}},
			{"Intricate Precision", "+2", []domain.Material{{Qty: 25, Name: "Elven Scouting Glass"}, {Qty: 20, Name: "Elven Hoof"}}},
			{"Powerful Precision", "+4", []domain.Material{{Qty: 25, Name: "Elven Scouting Glass"}, {Qty: 20, Name: "Elven Hoof"}, {Qty: 10, Name: "Metal Spike"}}},
		},
	},
	{
		kind:     "Blockade",
		category: "Skill Improving / Shielding",
		tiers: []tierSpec{
			{"Basic Blockade", "+1", []domain.Material{{Qty: 20, Name: "Piece of Scarab Shell"}}},
			{"Intricate Blockade", "+2", []domain.Material{{Qty: 20, Name: "Piece of Scarab Shell"}, {Qty: 25, Name: "Brimstone Shell"}}},
			{"Powerful Blockade", "+4", []domain.Material{{Qty: 20, Name: "Piece of Scarab Shell"}, {Qty: 25, Name: "Brimstone Shell"}, {Qty: 25, Name: "Frazzle Skin"}}},
		},
	},
}
