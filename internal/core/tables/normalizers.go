package tables

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/CHAUHANRUDRA24/UIDAI-Data-Analysis-Hackathon-2026/internal/core"
)

// StateAliases maps historical names, abbreviations and common misspellings
// of Indian states and union territories to their current names.
// Keys are lowercase.
var StateAliases = map[string]string{
	"orissa":              "Odisha",
	"odisa":               "Odisha",
	"pondicherry":         "Puducherry",
	"pondichery":          "Puducherry",
	"uttaranchal":         "Uttarakhand",
	"uttrakhand":          "Uttarakhand",
	"nct of delhi":        "Delhi",
	"new delhi":           "Delhi",
	"delhi ncr":           "Delhi",
	"jammu & kashmir":     "Jammu and Kashmir",
	"jammu and kasmir":    "Jammu and Kashmir",
	"j&k":                 "Jammu and Kashmir",
	"west bangal":         "West Bengal",
	"westbengal":          "West Bengal",
	"west bengli":         "West Bengal",
	"chhatisgarh":         "Chhattisgarh",
	"chattisgarh":         "Chhattisgarh",
	"tamilnadu":           "Tamil Nadu",
	"telengana":           "Telangana",
	"maharastra":          "Maharashtra",
	"andaman & nicobar":   "Andaman and Nicobar Islands",
	"andaman and nicobar": "Andaman and Nicobar Islands",

	"andaman & nicobar islands": "Andaman and Nicobar Islands",

	"dadra & nagar haveli":                        "Dadra and Nagar Haveli and Daman and Diu",
	"dadra and nagar haveli":                      "Dadra and Nagar Haveli and Daman and Diu",
	"daman & diu":                                 "Dadra and Nagar Haveli and Daman and Diu",
	"daman and diu":                               "Dadra and Nagar Haveli and Daman and Diu",
	"the dadra and nagar haveli and daman and diu": "Dadra and Nagar Haveli and Daman and Diu",
}

// aliasFile is the YAML layout of an alias overlay:
//
//	aliases:
//	  orrisa: Odisha
//	  bombay state: Maharashtra
type aliasFile struct {
	Aliases map[string]string `yaml:"aliases"`
}

// LoadAliasFile reads an alias overlay from a YAML file.
func LoadAliasFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read alias file: %w", err)
	}

	var f aliasFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse alias file %s: %w", path, err)
	}

	for alias, canonical := range f.Aliases {
		if strings.TrimSpace(alias) == "" || strings.TrimSpace(canonical) == "" {
			return nil, fmt.Errorf("alias file %s: empty alias or canonical name", path)
		}
	}
	return f.Aliases, nil
}

// NewNormalizer builds a location normalizer from the built-in alias table,
// overlaid with the aliases in overlayPath when it is set. Overlay entries
// replace built-in ones.
func NewNormalizer(overlayPath string) (*core.LocationNormalizer, error) {
	aliases := make(map[string]string, len(StateAliases))
	for k, v := range StateAliases {
		aliases[k] = v
	}

	if overlayPath != "" {
		overlay, err := LoadAliasFile(overlayPath)
		if err != nil {
			return nil, err
		}
		for k, v := range overlay {
			aliases[strings.ToLower(strings.TrimSpace(k))] = v
		}
	}

	return core.NewLocationNormalizer(aliases), nil
}
