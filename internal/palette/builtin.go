package palette

// builtin is the reference palette in declaration order. Some hex values
// appear under more than one name; lookups return the first declared entry.
var builtin = []Color{
	// A
	{Hex: "#5D8AA8", Name: "Air Force Blue"},
	{Hex: "#F0F8FF", Name: "Alice Blue"},

	// B
	{Hex: "#89CFF0", Name: "Baby Blue"},
	{Hex: "#F5F5DC", Name: "Beige"},
	{Hex: "#000000", Name: "Black"},
	{Hex: "#318CE7", Name: "Bleu de France"},
	{Hex: "#FFEBCD", Name: "Blanched Almond"},
	{Hex: "#0000FF", Name: "Blue"},
	{Hex: "#7393B3", Name: "Blue Gray"},
	{Hex: "#8A2BE2", Name: "Blue Violet"},
	{Hex: "#A52A2A", Name: "Brown"},
	{Hex: "#964B00", Name: "Brownie"},
	{Hex: "#DEB887", Name: "Burly Wood"},

	// C
	{Hex: "#5F9EA0", Name: "Cadet Blue"},
	{Hex: "#006B3C", Name: "Cadmium Green"},
	{Hex: "#D27D46", Name: "Camel"},
	{Hex: "#7CFC00", Name: "Chartreuse"},
	{Hex: "#6F4E37", Name: "Coffee"},
	{Hex: "#FF7F50", Name: "Coral"},
	{Hex: "#6495ED", Name: "Cornflower Blue"},
	{Hex: "#FFF8DC", Name: "Cornsilk"},
	{Hex: "#DC143C", Name: "Crimson"},
	{Hex: "#990000", Name: "Crimson Red"},

	// D
	{Hex: "#00008B", Name: "Dark Blue"},
	{Hex: "#008B8B", Name: "Dark Cyan"},
	{Hex: "#B8860B", Name: "Dark Goldenrod"},
	{Hex: "#A9A9A9", Name: "Dark Grey"},
	{Hex: "#006400", Name: "Dark Green"},
	{Hex: "#BDB76B", Name: "Dark Khaki"},
	{Hex: "#8B008B", Name: "Dark Magenta"},
	{Hex: "#556B2F", Name: "Dark Olive Green"},
	{Hex: "#9932CC", Name: "Dark Orchid"},
	{Hex: "#8B0000", Name: "Dark Red"},
	{Hex: "#E9967A", Name: "Dark Salmon"},
	{Hex: "#8FBC8F", Name: "Dark Sea Green"},
	{Hex: "#483D8B", Name: "Dark Slate Blue"},
	{Hex: "#2F4F4F", Name: "Dark Slate Gray"},
	{Hex: "#9400D3", Name: "Dark Violet"},
	{Hex: "#FF1493", Name: "Deep Pink"},
	{Hex: "#00BFFF", Name: "Deep Sky Blue"},
	{Hex: "#0E4D92", Name: "Denim"},
	{Hex: "#1E90FF", Name: "Dodger Blue"},
	{Hex: "#D70A53", Name: "Dogwood Rose"},
	{Hex: "#F5F5F5", Name: "Dust Storm"},

	// E
	{Hex: "#1C1C1C", Name: "Eerie Black"},
	{Hex: "#7DF9FF", Name: "Electric Blue"},
	{Hex: "#BF00FF", Name: "Electric Indigo"},
	{Hex: "#CCFF00", Name: "Electric Lime"},
	{Hex: "#F4BBFF", Name: "Electric Purple"},
	{Hex: "#FFFF33", Name: "Electric Yellow"},
	{Hex: "#50C878", Name: "Emerald"},

	// F
	{Hex: "#228B22", Name: "Forest Green"},
	{Hex: "#B22222", Name: "Fire Brick"},
	{Hex: "#FFFAF0", Name: "Floral White"},
	{Hex: "#C19A6B", Name: "Fallow"},
	{Hex: "#B53389", Name: "Fandango"},

	// G
	{Hex: "#DCDCDC", Name: "Gainsboro"},
	{Hex: "#F8F8FF", Name: "Ghost White"},
	{Hex: "#FFD700", Name: "Gold"},
	{Hex: "#DAA520", Name: "Goldenrod"},
	{Hex: "#996515", Name: "Golden Brown"},
	{Hex: "#808080", Name: "Gray"},
	{Hex: "#008000", Name: "Green"},
	{Hex: "#ADFF2F", Name: "Green Yellow"},

	// H
	{Hex: "#F0FFF0", Name: "Honeydew"},
	{Hex: "#FF69B4", Name: "Hot Pink"},
	{Hex: "#355E3B", Name: "Hunter Green"},

	// I
	{Hex: "#72A0C1", Name: "Iceberg"},
	{Hex: "#CD5C5C", Name: "Indian Red"},
	{Hex: "#4B0082", Name: "Indigo"},
	{Hex: "#FFFFF0", Name: "Ivory"},

	// J
	{Hex: "#29AB87", Name: "Jade"},
	{Hex: "#F8DE7E", Name: "Jasmine"},
	{Hex: "#F4CA16", Name: "Jonquil"},
	{Hex: "#D73B3E", Name: "Jordy Blue"},
	{Hex: "#A50B5E", Name: "Jazzberry Jam"},
	{Hex: "#F2F3F4", Name: "Jungle Mist"},
	{Hex: "#343434", Name: "Jet Black"},

	// K
	{Hex: "#F0E68C", Name: "Khaki"},
	{Hex: "#C3B091", Name: "Khaki Gray"},
	{Hex: "#8E7618", Name: "Kobe"},
	{Hex: "#E79FC4", Name: "Kobi"},
	{Hex: "#3D2B1F", Name: "Kona Coffee"},
	{Hex: "#E6F2EA", Name: "Kokoda"},
	{Hex: "#FAD6A5", Name: "Koromiko"},

	// L
	{Hex: "#E6E6FA", Name: "Lavender"},
	{Hex: "#FFF0F5", Name: "Lavender Blush"},
	{Hex: "#FFFACD", Name: "Lemon Chiffon"},
	{Hex: "#FAFAD2", Name: "Light Goldenrod Yellow"},
	{Hex: "#D3D3D3", Name: "Light Grey"},
	{Hex: "#FFB347", Name: "Light Orange"},
	{Hex: "#FAF0BE", Name: "Laser Lemon"},
	{Hex: "#FFF700", Name: "Lemon"},
	{Hex: "#C8A2C8", Name: "Lilac"},
	{Hex: "#BFFF00", Name: "Lime"},
	{Hex: "#32CD99", Name: "Lime Green (Web)"},
	{Hex: "#E3F988", Name: "Light Lime"},
	{Hex: "#B5651D", Name: "Light Brown"},
	{Hex: "#6D9BC3", Name: "Light Cornflower Blue"},
	{Hex: "#E0FFFF", Name: "Light Cyan (Web)"},
	{Hex: "#F08080", Name: "Light Coral (Web)"},
	{Hex: "#93CCEA", Name: "Light Sky Blue"},
	{Hex: "#FFA07A", Name: "Light Salmon (Web)"},
	{Hex: "#20B2AA", Name: "Light Sea Green (Web)"},
	{Hex: "#D3D3D3", Name: "Light Gray (Web)"},
	{Hex: "#90EE90", Name: "Light Green (Web)"},
	{Hex: "#FFB6C1", Name: "Light Pink (Web)"},
	{Hex: "#FFFFE0", Name: "Light Yellow (Web)"},
	{Hex: "#ADD8E6", Name: "Light Blue (Web)"},
	{Hex: "#FDF5E6", Name: "Linen"},

	// M
	{Hex: "#800000", Name: "Maroon"},
	{Hex: "#FF00FF", Name: "Magenta"},
	{Hex: "#66CDAA", Name: "Medium Aquamarine"},
	{Hex: "#0000CD", Name: "Medium Blue"},
	{Hex: "#BA55D3", Name: "Medium Orchid"},
	{Hex: "#9370DB", Name: "Medium Purple"},
	{Hex: "#3CB371", Name: "Medium Sea Green"},
	{Hex: "#7B68EE", Name: "Medium Slate Blue"},
	{Hex: "#00FA9A", Name: "Medium Spring Green"},
	{Hex: "#48D1CC", Name: "Medium Turquoise"},
	{Hex: "#C71585", Name: "Medium Violet Red"},
	{Hex: "#191970", Name: "Midnight Blue"},
	{Hex: "#F5FFFA", Name: "Mint Cream"},
	{Hex: "#FFE4E1", Name: "Misty Rose"},
	{Hex: "#FFE4B5", Name: "Moccasin"},

	// N
	{Hex: "#000080", Name: "Navy Blue"},

	// O
	{Hex: "#FFD700", Name: "Old Gold"},
	{Hex: "#DAA520", Name: "Old Lace"},
	{Hex: "#808000", Name: "Olive"},
	{Hex: "#6B8E23", Name: "Olive Drab"},
	{Hex: "#FFA500", Name: "Orange"},
	{Hex: "#FF4500", Name: "Orange Red"},
	{Hex: "#DA70D6", Name: "Orchid"},

	// P
	{Hex: "#AFEEEE", Name: "Pale Turquoise"},
	{Hex: "#DB7093", Name: "Pale Violet Red"},
	{Hex: "#FFEFD5", Name: "Papaya Whip"},
	{Hex: "#FFDAB9", Name: "Peach Puff"},
	{Hex: "#CD853F", Name: "Peru"},
	{Hex: "#FFC0CB", Name: "Pink"},
	{Hex: "#DDA0DD", Name: "Plum"},
	{Hex: "#B0E0E6", Name: "Powder Blue"},
	{Hex: "#800080", Name: "Purple"},
	{Hex: "#A020F0", Name: "Purple (Web)"},
	{Hex: "#716B56", Name: "Peat"},

	// Q
	{Hex: "#8A496B", Name: "Quinacridone Magenta"},
	{Hex: "#3C3B6E", Name: "Queen Blue"},
	{Hex: "#E8CCD7", Name: "Quill Gray"},
	{Hex: "#A57C00", Name: "Quinoline Yellow"},
	{Hex: "#86608E", Name: "Quinacridone Violet"},
	{Hex: "#5B92E5", Name: "Queen Pink"},
	{Hex: "#D6CADD", Name: "Quartz Gray"},
	{Hex: "#E3E4FA", Name: "Quartz"},
	{Hex: "#6C6961", Name: "Quill Gray"},

	// R
	{Hex: "#FF00FF", Name: "Red"},
	{Hex: "#BC8F8F", Name: "Rosy Brown"},
	{Hex: "#4169E1", Name: "Royal Blue"},
	{Hex: "#80461B", Name: "Russet"},
	{Hex: "#B7410E", Name: "Rust"},
	{Hex: "#FF0000", Name: "Red (Web)"},
	{Hex: "#E30B17", Name: "Red Devil"},
	{Hex: "#C72C48", Name: "Raspberry"},
	{Hex: "#E0115F", Name: "Ruby"},
	{Hex: "#9B111E", Name: "Ruby Red"},
	{Hex: "#A52A2A", Name: "Red Brown"},

	// S
	{Hex: "#8B4513", Name: "Saddle Brown"},
	{Hex: "#FA8072", Name: "Salmon"},
	{Hex: "#F4A460", Name: "Sandy Brown"},
	{Hex: "#2E8B57", Name: "Sea Green"},
	{Hex: "#FFF5EE", Name: "Seashell"},
	{Hex: "#A0522D", Name: "Sienna"},
	{Hex: "#C0C0C0", Name: "Silver"},
	{Hex: "#87CEEB", Name: "Sky Blue"},
	{Hex: "#6A5ACD", Name: "Slate Blue"},
	{Hex: "#708090", Name: "Slate Gray"},
	{Hex: "#4DD21D", Name: "Sport Green"},
	{Hex: "#00FF7F", Name: "Spring Green"},
	{Hex: "#4682B4", Name: "Steel Blue"},
	{Hex: "#E4D96F", Name: "Straw"},

	// T
	{Hex: "#D2B48C", Name: "Tan"},
	{Hex: "#008080", Name: "Teal"},
	{Hex: "#FF6347", Name: "Tomato"},
	{Hex: "#40E0D0", Name: "Turquoise"},

	// U
	{Hex: "#3F00FF", Name: "Ultramarine"},

	// V
	{Hex: "#EE82EE", Name: "Violet"},
	{Hex: "#00FA9A", Name: "Viridian"},

	// W
	{Hex: "#F5DEB3", Name: "Wheat"},
	{Hex: "#FFFFFF", Name: "White"},
	{Hex: "#F5F5F5", Name: "White Smoke"},
	{Hex: "#722F37", Name: "Wine"},

	// X
	{Hex: "#1E272C", Name: "Xiketic"},
	{Hex: "#4B0082", Name: "Xanadu"},

	// Y
	{Hex: "#0F4D92", Name: "Yale Blue"},
	{Hex: "#FFFF00", Name: "Yellow"},
	{Hex: "#9ACD32", Name: "Yellow Green"},

	// Z
	{Hex: "#EAE0C8", Name: "Zinc"},
}
