package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

const DefaultStatsBaseURL = "https://vst.ninja/"

type Config struct {
	Stats    Stats    `envPrefix:"STATS_"`
	Loop     Loop     `envPrefix:"LOOP_"`
	Settings Settings `envPrefix:"SETTINGS_"`
	Database Database `envPrefix:"DATABASE_"`
	Redis    Redis    `envPrefix:"REDIS_"`
	Pins     Pins     `envPrefix:"PIN_"`
	Status   Status   `envPrefix:"STATUS_"`

	// Timezone the shift schedule runs on. Desert Bus broadcasts from Victoria, BC.
	Timezone string `env:"TIMEZONE" envDefault:"America/Los_Angeles"`
	LogFile  string `env:"LOG_FILE"`
}

type Stats struct {
	BaseURL      string        `env:"BASE_URL" envDefault:"https://vst.ninja/"`
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"30s"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"20s"`
	StaleAfter   time.Duration `env:"STALE_AFTER" envDefault:"3m"`
}

type Loop struct {
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"35ms"`
}

type Settings struct {
	Backend string `env:"BACKEND" envDefault:"file"`
	// empty means ~/.config/dbpibus/dbpibus.json
	File string `env:"FILE"`
	// empty means ~/.config/dbpibus/dbpibus.db
	SQLitePath string `env:"SQLITE_PATH"`
}

// Status is the optional read-only HTTP endpoint. Empty Addr disables it.
type Status struct {
	Addr            string        `env:"ADDR"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

type Database struct {
	URL string `env:"URL"`
}

type Redis struct {
	URL string `env:"URL"`
	Key string `env:"KEY" envDefault:"dbpibus:settings"`
}

// Pins are periph.io pin names. Defaults match the reference Pi HAT wiring.
type Pins struct {
	LCDRS  string `env:"LCD_RS" envDefault:"GPIO22"`
	LCDE   string `env:"LCD_E" envDefault:"GPIO17"`
	LCDD4  string `env:"LCD_D4" envDefault:"GPIO25"`
	LCDD5  string `env:"LCD_D5" envDefault:"GPIO24"`
	LCDD6  string `env:"LCD_D6" envDefault:"GPIO23"`
	LCDD7  string `env:"LCD_D7" envDefault:"GPIO27"`
	Red    string `env:"RED" envDefault:"GPIO21"`
	Green  string `env:"GREEN" envDefault:"GPIO12"`
	Blue   string `env:"BLUE" envDefault:"GPIO18"`
	Back   string `env:"BACK" envDefault:"GPIO26"`
	Minus  string `env:"MINUS" envDefault:"GPIO6"`
	Plus   string `env:"PLUS" envDefault:"GPIO5"`
	Select string `env:"SELECT" envDefault:"GPIO16"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}

func (c Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}
