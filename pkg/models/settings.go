package models

// Settings represents the application configuration
type Settings struct {
	Store  StoreSettings  `yaml:"store" json:"store"`
	UI     UISettings     `yaml:"ui" json:"ui"`
	Export ExportSettings `yaml:"export" json:"export"`
	Log    LogSettings    `yaml:"log" json:"log"`
}

// StoreSettings selects where wallet records live
type StoreSettings struct {
	Backend    string       `yaml:"backend" json:"backend"`         // "sqlite", "rest" or "memory"
	SQLitePath string       `yaml:"sqlite_path" json:"sqlite_path"` // relative to the config dir
	REST       RESTSettings `yaml:"rest" json:"rest"`
}

// RESTSettings points at a PostgREST-compatible endpoint
type RESTSettings struct {
	URL            string `yaml:"url" json:"url"`
	APIKey         string `yaml:"api_key" json:"api_key"`
	Table          string `yaml:"table" json:"table"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
}

// UISettings controls UI preferences
type UISettings struct {
	Dual               bool `yaml:"dual" json:"dual"`
	NoticeMillis       int  `yaml:"notice_ms" json:"notice_ms"`
	ShowRecords        bool `yaml:"show_records" json:"show_records"`
	HideSecurityBanner bool `yaml:"hide_security_banner" json:"hide_security_banner"`
}

// ExportSettings controls QR code export
type ExportSettings struct {
	Dir   string `yaml:"dir" json:"dir"`
	Size  int    `yaml:"size" json:"size"`
	Level string `yaml:"level" json:"level"`
}

// LogSettings controls the log file
type LogSettings struct {
	Level string `yaml:"level" json:"level"`
	Dir   string `yaml:"dir" json:"dir"` // relative to the config dir
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Store: StoreSettings{
			Backend:    "sqlite",
			SQLitePath: "seedpad.db",
			REST: RESTSettings{
				Table:          "wallets",
				TimeoutSeconds: 15,
			},
		},
		UI: UISettings{
			Dual:         false,
			NoticeMillis: 2500,
			ShowRecords:  true,
		},
		Export: ExportSettings{
			Dir:   "./",
			Size:  320,
			Level: "M",
		},
		Log: LogSettings{
			Level: "info",
			Dir:   "logs",
		},
	}
}
