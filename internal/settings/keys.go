package settings

// Key names a persisted operator setting.
type Key string

const (
	ShowShiftAnim       Key = "ShowShiftAnim"
	ShowEventAnim       Key = "ShowEventAnim"
	LcdColor            Key = "LcdColor"
	ShowTimeInRun       Key = "ShowTimeInRun"
	ShowTimeInPreseason Key = "ShowTimeInPreseason"
	ShowTimeInOffseason Key = "ShowTimeInOffseason"
	TimeFormat          Key = "TimeFormat"
	DateFormat          Key = "DateFormat"
	PointsCrashes       Key = "PointsCrashes"
)

// Values. Some are shared between keys (Always/Never).
const (
	Always       = "Always"
	OnlyInSeason = "OnlyInSeason"
	Never        = "Never"

	CurrentShift = "CurrentShift"
	DawnGuard    = "DawnGuard"
	AlphaFlight  = "AlphaFlight"
	NightWatch   = "NightWatch"
	ZetaShift    = "ZetaShift"
	OmegaShift   = "OmegaShift"

	Yes = "Yes"
	No  = "No"

	Hour12 = "12Hour"
	Hour24 = "24Hour"

	YYYYMMDD = "YYYYMMDD"
	DDMMYYYY = "DDMMYYYY"
	MMDDYYYY = "MMDDYYYY"

	Separate = "Separate"
	PTCR     = "PTCR"
)

// Definition is the closed set of values a key accepts. The first option is
// not necessarily the default.
type Definition struct {
	Key     Key
	Options []string
	Default string
}

// Definitions lists every key in a stable order.
var Definitions = []Definition{
	{Key: ShowShiftAnim, Options: []string{Always, OnlyInSeason, Never}, Default: Always},
	{Key: ShowEventAnim, Options: []string{Always, Never}, Default: Always},
	{Key: LcdColor, Options: []string{CurrentShift, DawnGuard, AlphaFlight, NightWatch, ZetaShift, OmegaShift}, Default: CurrentShift},
	{Key: ShowTimeInRun, Options: []string{Yes, No}, Default: No},
	{Key: ShowTimeInPreseason, Options: []string{Yes, No}, Default: No},
	{Key: ShowTimeInOffseason, Options: []string{Yes, No}, Default: No},
	{Key: TimeFormat, Options: []string{Hour12, Hour24}, Default: Hour12},
	{Key: DateFormat, Options: []string{YYYYMMDD, DDMMYYYY, MMDDYYYY}, Default: YYYYMMDD},
	{Key: PointsCrashes, Options: []string{Separate, PTCR}, Default: Separate},
}

// Lookup finds the definition of key.
func Lookup(key Key) (Definition, bool) {
	for _, d := range Definitions {
		if d.Key == key {
			return d, true
		}
	}
	return Definition{}, false
}

// Valid reports whether value is one of d's options.
func (d Definition) Valid(value string) bool {
	for _, o := range d.Options {
		if o == value {
			return true
		}
	}
	return false
}

// Defaults returns a fresh map of every key to its default.
func Defaults() map[string]string {
	m := make(map[string]string, len(Definitions))
	for _, d := range Definitions {
		m[string(d.Key)] = d.Default
	}
	return m
}
