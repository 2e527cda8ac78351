package domain

import "math"

// categoryTable is the full unit registry. Factors express how many of
// the unit equal one base-unit quantity; the base unit of every linear
// category carries a factor of exactly 1. Temperature, fuel economy and
// currency carry no factors: their strategies do not use a factor table.
var categoryTable = []Category{
	{
		Name:     "Length",
		Strategy: StrategyLinearFactor,
		Units: []Unit{
			{Name: "Meters", Factor: 1},
			{Name: "Kilometers", Factor: 0.001},
			{Name: "Centimeters", Factor: 100},
			{Name: "Millimeters", Factor: 1000},
			{Name: "Micrometers", Factor: 1e6},
			{Name: "Nanometers", Factor: 1e9},
			{Name: "Miles", Factor: 0.000621371},
			{Name: "Yards", Factor: 1.09361},
			{Name: "Feet", Factor: 3.28084},
			{Name: "Inches", Factor: 39.3701},
		},
	},
	{
		Name:     "Mass",
		Strategy: StrategyLinearFactor,
		Units: []Unit{
			{Name: "Kilograms", Factor: 1},
			{Name: "Grams", Factor: 1000},
			{Name: "Milligrams", Factor: 1e6},
			{Name: "Pounds", Factor: 2.20462},
			{Name: "Ounces", Factor: 35.274},
		},
	},
	{
		Name:     "Time",
		Strategy: StrategyLinearFactor,
		Units: []Unit{
			{Name: "Hours", Factor: 1},
			{Name: "Minutes", Factor: 60},
			{Name: "Seconds", Factor: 3600},
		},
	},
	{
		Name:     "Area",
		Strategy: StrategyLinearFactor,
		Units: []Unit{
			{Name: "Square Meters", Factor: 1},
			{Name: "Square Kilometers", Factor: 1e-6},
			{Name: "Square Centimeters", Factor: 10000},
			{Name: "Square Millimeters", Factor: 1e6},
			{Name: "Square Miles", Factor: 3.861e-7},
			{Name: "Square Yards", Factor: 1.19599},
			{Name: "Square Feet", Factor: 10.7639},
			{Name: "Square Inches", Factor: 1550.0031},
			{Name: "Hectares", Factor: 0.0001},
			{Name: "Acres", Factor: 0.000247105},
		},
	},
	{
		Name:     "Volume",
		Strategy: StrategyLinearFactor,
		Units: []Unit{
			{Name: "Cubic Meters", Factor: 1},
			{Name: "Liters", Factor: 1000},
			{Name: "Milliliters", Factor: 1e6},
			{Name: "Cubic Centimeters", Factor: 1e6},
			{Name: "Cubic Inches", Factor: 61023.7441},
			{Name: "Cubic Feet", Factor: 35.3147},
			{Name: "Gallons", Factor: 264.172},
			{Name: "Quarts", Factor: 1056.69},
			{Name: "Pints", Factor: 2113.38},
		},
	},
	{
		Name:     "Digital Storage",
		Strategy: StrategyLinearFactor,
		Units: []Unit{
			{Name: "Bytes", Factor: 1},
			{Name: "Kilobytes", Factor: 1.0 / 1024},
			{Name: "Megabytes", Factor: 1.0 / (1024 * 1024)},
			{Name: "Gigabytes", Factor: 1.0 / (1024 * 1024 * 1024)},
			{Name: "Terabytes", Factor: 1.0 / (1024 * 1024 * 1024 * 1024)},
			{Name: "Petabytes", Factor: 1.0 / (1024 * 1024 * 1024 * 1024 * 1024)},
			{Name: "Bits", Factor: 8},
		},
	},
	{
		Name:     "Energy",
		Strategy: StrategyLinearFactor,
		Units: []Unit{
			{Name: "Joules", Factor: 1},
			{Name: "Kilojoules", Factor: 0.001},
			{Name: "Calories", Factor: 1 / 4.184},
			{Name: "Kilocalories", Factor: 1.0 / 4184},
			{Name: "Watt-hours", Factor: 1.0 / 3600},
			{Name: "BTU", Factor: 1 / 1055.06},
		},
	},
	{
		Name:     "Frequency",
		Strategy: StrategyLinearFactor,
		Units: []Unit{
			{Name: "Hertz", Factor: 1},
			{Name: "Kilohertz", Factor: 1e-3},
			{Name: "Megahertz", Factor: 1e-6},
			{Name: "Gigahertz", Factor: 1e-9},
			{Name: "Revolutions per minute", Factor: 60},
		},
	},
	{
		Name:     "Fuel Economy",
		Strategy: StrategyFuelEconomy,
		Units: []Unit{
			{Name: "Miles per Gallon (US)"},
			{Name: "Miles per Gallon (UK)"},
			{Name: "Kilometers per Liter"},
			{Name: "Liters per 100 Kilometers"},
		},
	},
	{
		Name:     "Data Transfer Rate",
		Strategy: StrategyLinearFactor,
		Units: []Unit{
			{Name: "Bits per Second", Factor: 1},
			{Name: "Kilobits per Second", Factor: 1e-3},
			{Name: "Megabits per Second", Factor: 1e-6},
			{Name: "Gigabits per Second", Factor: 1e-9},
			{Name: "Bytes per Second", Factor: 1.0 / 8},
			{Name: "Kilobytes per Second", Factor: 1.0 / 8e3},
			{Name: "Megabytes per Second", Factor: 1.0 / 8e6},
			{Name: "Gigabytes per Second", Factor: 1.0 / 8e9},
		},
	},
	{
		Name:     "Plane Angle",
		Strategy: StrategyLinearFactor,
		Units: []Unit{
			{Name: "Radians", Factor: 1},
			{Name: "Degrees", Factor: 180 / math.Pi},
			{Name: "Gradians", Factor: 200 / math.Pi},
			{Name: "Turns", Factor: 1 / (2 * math.Pi)},
			{Name: "Arcminutes", Factor: 10800 / math.Pi},
			{Name: "Arcseconds", Factor: 648000 / math.Pi},
		},
	},
	{
		Name:     "Pressure",
		Strategy: StrategyLinearFactor,
		Units: []Unit{
			{Name: "Pascals", Factor: 1},
			{Name: "Kilopascals", Factor: 1e-3},
			{Name: "Bars", Factor: 1e-5},
			{Name: "Atmospheres", Factor: 1.0 / 101325},
			{Name: "Torr", Factor: 1 / 133.322},
			{Name: "PSI", Factor: 1 / 6894.76},
		},
	},
	{
		Name:     "Speed",
		Strategy: StrategyLinearFactor,
		Units: []Unit{
			{Name: "Meters per Second", Factor: 1},
			{Name: "Kilometers per Hour", Factor: 3.6},
			{Name: "Miles per Hour", Factor: 2.23694},
			{Name: "Feet per Second", Factor: 3.28084},
			{Name: "Knots", Factor: 1.94384},
		},
	},
	{
		Name:     "Temperature",
		Strategy: StrategyTemperature,
		Units: []Unit{
			{Name: "Celsius"},
			{Name: "Fahrenheit"},
			{Name: "Kelvin"},
		},
	},
	{
		Name:     "Currency",
		Strategy: StrategyCurrency,
	},
}

// aliasTable maps lowercase surface forms (words, abbreviations,
// symbols, plurals) to canonical unit names. Lookup of word tokens is
// case-normalized against this table.
var aliasTable = map[string]string{
	// Meters
	"meter":  "Meters",
	"meters": "Meters",
	"metre":  "Meters",
	"metres": "Meters",
	"m":      "Meters",

	// Kilometers
	"kilometer":  "Kilometers",
	"kilometers": "Kilometers",
	"kilometre":  "Kilometers",
	"kilometres": "Kilometers",
	"km":         "Kilometers",

	// Centimeters
	"cm":          "Centimeters",
	"centimeter":  "Centimeters",
	"centimeters": "Centimeters",

	// Millimeters
	"mm":          "Millimeters",
	"millimeter":  "Millimeters",
	"millimeters": "Millimeters",

	// Micrometers
	"micrometer":  "Micrometers",
	"micrometers": "Micrometers",
	"µm":          "Micrometers",
	"um":          "Micrometers",

	// Nanometers
	"nanometer":  "Nanometers",
	"nanometers": "Nanometers",
	"nm":         "Nanometers",

	// Miles
	"mile":  "Miles",
	"miles": "Miles",

	// Yards
	"yard":  "Yards",
	"yards": "Yards",

	// Feet
	"feet": "Feet",
	"foot": "Feet",

	// Inches
	"inch":   "Inches",
	"inches": "Inches",

	// Kilograms
	"kg":        "Kilograms",
	"kilogram":  "Kilograms",
	"kilograms": "Kilograms",

	// Grams
	"gram":  "Grams",
	"grams": "Grams",
	"gm":    "Grams",

	// Milligrams
	"mg":         "Milligrams",
	"milligram":  "Milligrams",
	"milligrams": "Milligrams",

	// Pounds and Ounces
	"pound":  "Pounds",
	"pounds": "Pounds",
	"ounce":  "Ounces",
	"ounces": "Ounces",

	// Temperature
	"celsius":    "Celsius",
	"fahrenheit": "Fahrenheit",
	"kelvin":     "Kelvin",

	// Hours
	"hour":  "Hours",
	"hr":    "Hours",
	"hours": "Hours",

	// Minutes
	"minute":  "Minutes",
	"minutes": "Minutes",
	"min":     "Minutes",

	// Seconds
	"second":  "Seconds",
	"seconds": "Seconds",
	"s":       "Seconds",

	// Square Meters
	"square meter":  "Square Meters",
	"square meters": "Square Meters",
	"sqm":           "Square Meters",
	"m2":            "Square Meters",

	// Square Kilometers
	"square kilometer":  "Square Kilometers",
	"square kilometers": "Square Kilometers",
	"sqkm":              "Square Kilometers",
	"km2":               "Square Kilometers",

	// Square Centimeters
	"square centimeter":  "Square Centimeters",
	"square centimeters": "Square Centimeters",
	"sqcm":               "Square Centimeters",
	"cm2":                "Square Centimeters",

	// Square Millimeters
	"square millimeter":  "Square Millimeters",
	"square millimeters": "Square Millimeters",
	"sqmm":               "Square Millimeters",
	"mm2":                "Square Millimeters",

	// Square Miles
	"square mile":  "Square Miles",
	"square miles": "Square Miles",
	"sqmi":         "Square Miles",
	"mi2":          "Square Miles",

	// Square Yards
	"square yard":  "Square Yards",
	"square yards": "Square Yards",
	"sqyd":         "Square Yards",
	"yd2":          "Square Yards",

	// Square Feet
	"square foot": "Square Feet",
	"square feet": "Square Feet",
	"sqft":        "Square Feet",
	"ft2":         "Square Feet",

	// Square Inches
	"square inch":   "Square Inches",
	"square inches": "Square Inches",
	"sqin":          "Square Inches",
	"in2":           "Square Inches",

	// Hectares
	"hectare":  "Hectares",
	"hectares": "Hectares",
	"ha":       "Hectares",

	// Acres
	"acre":  "Acres",
	"acres": "Acres",

	// Cubic Meters
	"cubic meter":  "Cubic Meters",
	"cubic meters": "Cubic Meters",
	"m3":           "Cubic Meters",
	"cu m":         "Cubic Meters",
	"cubic metre":  "Cubic Meters",
	"cubic metres": "Cubic Meters",

	// Liters
	"liter":  "Liters",
	"liters": "Liters",
	"l":      "Liters",
	"ltr":    "Liters",

	// Milliliters
	"milliliter":  "Milliliters",
	"milliliters": "Milliliters",
	"ml":          "Milliliters",
	"millilitre":  "Milliliters",
	"millilitres": "Milliliters",

	// Cubic Centimeters
	"cubic centimeter":  "Cubic Centimeters",
	"cubic centimeters": "Cubic Centimeters",
	"cc":                "Cubic Centimeters",
	"cm3":               "Cubic Centimeters",

	// Cubic Inches
	"cubic inch":   "Cubic Inches",
	"cubic inches": "Cubic Inches",
	"in3":          "Cubic Inches",

	// Cubic Feet
	"cubic foot": "Cubic Feet",
	"cubic feet": "Cubic Feet",
	"ft3":        "Cubic Feet",

	// Gallons
	"gallon":  "Gallons",
	"gallons": "Gallons",
	"gal":     "Gallons",

	// Quarts
	"quart":  "Quarts",
	"quarts": "Quarts",
	"qt":     "Quarts",

	// Pints
	"pint":  "Pints",
	"pints": "Pints",
	"pt":    "Pints",

	// Bytes and Bits. The one-letter symbols are case-sensitive (see
	// exactAliasTable); the lowercase entries keep the word forms and
	// the historical lowercase symbol behavior.
	"byte":  "Bytes",
	"bytes": "Bytes",
	"bit":   "Bits",
	"bits":  "Bits",
	"b":     "Bits",

	// Kilobytes
	"kilobyte":  "Kilobytes",
	"kilobytes": "Kilobytes",
	"kb":        "Kilobytes",

	// Megabytes
	"megabyte":  "Megabytes",
	"megabytes": "Megabytes",
	"mb":        "Megabytes",

	// Gigabytes
	"gigabyte":  "Gigabytes",
	"gigabytes": "Gigabytes",
	"gb":        "Gigabytes",

	// Terabytes
	"terabyte":  "Terabytes",
	"terabytes": "Terabytes",
	"tb":        "Terabytes",

	// Petabytes
	"petabyte":  "Petabytes",
	"petabytes": "Petabytes",
	"pb":        "Petabytes",

	// Joules
	"joule":  "Joules",
	"joules": "Joules",
	"j":      "Joules",

	// Kilojoules
	"kilojoule":  "Kilojoules",
	"kilojoules": "Kilojoules",
	"kj":         "Kilojoules",

	// Calories
	"calorie":  "Calories",
	"calories": "Calories",
	"cal":      "Calories",

	// Kilocalories
	"kilocalorie":  "Kilocalories",
	"kilocalories": "Kilocalories",
	"kcal":         "Kilocalories",

	// Watt-hours
	"watt hour":  "Watt-hours",
	"watt hours": "Watt-hours",
	"wh":         "Watt-hours",

	// BTU
	"btu":                   "BTU",
	"british thermal unit":  "BTU",
	"british thermal units": "BTU",

	// Hertz
	"hertz": "Hertz",
	"hz":    "Hertz",

	// Kilohertz
	"kilohertz": "Kilohertz",
	"khz":       "Kilohertz",

	// Megahertz
	"megahertz": "Megahertz",
	"mhz":       "Megahertz",

	// Gigahertz
	"gigahertz": "Gigahertz",
	"ghz":       "Gigahertz",

	// Revolutions per minute
	"revolutions per minute": "Revolutions per minute",
	"rpm":                    "Revolutions per minute",
	"revs per minute":        "Revolutions per minute",
	"r.p.m":                  "Revolutions per minute",

	// Miles per Gallon (US)
	"mpg":              "Miles per Gallon (US)",
	"miles per gallon": "Miles per Gallon (US)",
	"us mpg":           "Miles per Gallon (US)",

	// Miles per Gallon (UK)
	"mpg (uk)":              "Miles per Gallon (UK)",
	"uk mpg":                "Miles per Gallon (UK)",
	"miles per gallon (uk)": "Miles per Gallon (UK)",

	// Kilometers per Liter
	"km/l":                 "Kilometers per Liter",
	"kilometers per liter": "Kilometers per Liter",
	"kilometres per litre": "Kilometers per Liter",

	// Liters per 100 Kilometers
	"l/100km":                   "Liters per 100 Kilometers",
	"l/100 km":                  "Liters per 100 Kilometers",
	"liters per 100 kilometers": "Liters per 100 Kilometers",
	"litres per 100 kilometres": "Liters per 100 Kilometers",
	"liters per 100 km":         "Liters per 100 Kilometers",
	"litres per 100 km":         "Liters per 100 Kilometers",

	// Bits per Second. "bps" is case-sensitive against "Bps"; the
	// lowercase entry keeps case-normalized word lookups working.
	"bps":             "Bits per Second",
	"bit per second":  "Bits per Second",
	"bits per second": "Bits per Second",

	// Kilobits per Second
	"kbps":                "Kilobits per Second",
	"kilobit per second":  "Kilobits per Second",
	"kilobits per second": "Kilobits per Second",

	// Megabits per Second
	"mbps":                "Megabits per Second",
	"megabit per second":  "Megabits per Second",
	"megabits per second": "Megabits per Second",

	// Gigabits per Second
	"gbps":                "Gigabits per Second",
	"gigabit per second":  "Gigabits per Second",
	"gigabits per second": "Gigabits per Second",

	// Bytes per Second and friends (word forms)
	"byte per second":      "Bytes per Second",
	"bytes per second":     "Bytes per Second",
	"kilobyte per second":  "Kilobytes per Second",
	"kilobytes per second": "Kilobytes per Second",
	"megabyte per second":  "Megabytes per Second",
	"megabytes per second": "Megabytes per Second",
	"gigabyte per second":  "Gigabytes per Second",
	"gigabytes per second": "Gigabytes per Second",

	// Radians
	"radian":  "Radians",
	"radians": "Radians",
	"rad":     "Radians",

	// Degrees
	"degree":  "Degrees",
	"degrees": "Degrees",
	"°":       "Degrees",

	// Gradians (also called gons)
	"gradian":  "Gradians",
	"gradians": "Gradians",
	"grad":     "Gradians",
	"gons":     "Gradians",
	"gon":      "Gradians",

	// Turns
	"turn":  "Turns",
	"turns": "Turns",

	// Arcminutes
	"arcminute":  "Arcminutes",
	"arcminutes": "Arcminutes",

	// Arcseconds
	"arcsecond":  "Arcseconds",
	"arcseconds": "Arcseconds",

	// Pascals
	"pascal":  "Pascals",
	"pascals": "Pascals",
	"pa":      "Pascals",

	// Kilopascals
	"kilopascal":  "Kilopascals",
	"kilopascals": "Kilopascals",
	"kpa":         "Kilopascals",

	// Bars
	"bar":  "Bars",
	"bars": "Bars",

	// Atmospheres
	"atmosphere":  "Atmospheres",
	"atmospheres": "Atmospheres",
	"atm":         "Atmospheres",

	// Torr
	"torr": "Torr",
	"mmhg": "Torr",

	// PSI
	"psi": "PSI",

	// Meters per Second
	"m/s":               "Meters per Second",
	"meters per second": "Meters per Second",
	"meter per second":  "Meters per Second",

	// Kilometers per Hour
	"km/h":                "Kilometers per Hour",
	"kilometers per hour": "Kilometers per Hour",
	"kilometres per hour": "Kilometers per Hour",
	"kph":                 "Kilometers per Hour",

	// Miles per Hour
	"mph":            "Miles per Hour",
	"miles per hour": "Miles per Hour",

	// Feet per Second
	"ft/s":            "Feet per Second",
	"feet per second": "Feet per Second",

	// Knots
	"knots": "Knots",
	"knot":  "Knots",
}

// exactAliasTable holds symbol aliases whose case is semantically
// distinct and which are therefore compared case-sensitively before
// any normalization. "b" vs "B" (Bits/Bytes) and "bps" vs "Bps" are
// the entries where case changes the meaning; the remaining mixed-case
// byte-prefix symbols are listed in their conventional casing.
var exactAliasTable = map[string]string{
	"b":    "Bits",
	"B":    "Bytes",
	"kB":   "Kilobytes",
	"MB":   "Megabytes",
	"GB":   "Gigabytes",
	"TB":   "Terabytes",
	"PB":   "Petabytes",
	"bps":  "Bits per Second",
	"Bps":  "Bytes per Second",
	"KBps": "Kilobytes per Second",
	"MBps": "Megabytes per Second",
	"GBps": "Gigabytes per Second",
}
