package config

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Settings are the runtime knobs. AIRPLUS_* environment variables override
// config.yaml, which overrides the defaults.
type Settings struct {
	SiteDir    string `mapstructure:"siteDir"`
	Manifest   string `mapstructure:"manifest"`
	ContentDir string `mapstructure:"contentDir"`
	PagesDir   string `mapstructure:"pagesDir"`
	StaticDir  string `mapstructure:"staticDir"`
	OutputDir  string `mapstructure:"outputDir"`
	Origin     string `mapstructure:"origin"`
	Port       string `mapstructure:"port"`
	Dev        bool   `mapstructure:"dev"`
}

func Defaults() Settings {
	return Settings{
		SiteDir:    ".",
		Manifest:   "manifest.yaml",
		ContentDir: "information",
		PagesDir:   "pages",
		StaticDir:  "static",
		OutputDir:  "public",
		Port:       "9010",
	}
}

// Path joins elem onto the site directory unless it is already absolute.
func (s Settings) Path(elem string) string {
	if filepath.IsAbs(elem) {
		return elem
	}
	return filepath.Join(s.SiteDir, elem)
}

// LoadSettings reads cfgFile, or ./config.yaml when cfgFile is empty. A
// missing default file is not an error.
func LoadSettings(cfgFile string) (Settings, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("siteDir", d.SiteDir)
	v.SetDefault("manifest", d.Manifest)
	v.SetDefault("contentDir", d.ContentDir)
	v.SetDefault("pagesDir", d.PagesDir)
	v.SetDefault("staticDir", d.StaticDir)
	v.SetDefault("outputDir", d.OutputDir)
	v.SetDefault("origin", "")
	v.SetDefault("port", d.Port)
	v.SetDefault("dev", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("AIRPLUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return Settings{}, errors.Wrap(err, "failed to read config file")
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, errors.Wrap(err, "decode settings")
	}
	return s, nil
}
