package types

import "encoding/json"

type (
	// Configuration is the document rendered by the popup: environments in display order.
	Configuration struct {
		Environments []Environment `json:"environments"`
	}

	Environment struct {
		Name  string     `json:"name"`
		Class string     `json:"class"`
		URLs  []URLEntry `json:"urls"`
	}

	URLEntry struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}

	// StoreState is what the key-value store holds about the user override.
	StoreState struct {
		UseCustomConfig bool
		CustomConfig    *Configuration
	}

	Origin string

	Status struct {
		Origin           Origin `json:"origin"`
		Source           string `json:"source"`
		StorageAvailable bool   `json:"storage_available"`
		Environments     int    `json:"environments"`
		URLs             int    `json:"urls"`
	}
)

const (
	OriginCustom  Origin = "custom"
	OriginDefault Origin = "default"
	OriginEmpty   Origin = "empty"
)

func EmptyConfiguration() Configuration {
	return Configuration{Environments: []Environment{}}
}

// Normalize guarantees Environments is never nil.
func (c Configuration) Normalize() Configuration {
	if c.Environments == nil {
		c.Environments = []Environment{}
	}
	return c
}

func (c Configuration) MarshalJSON() ([]byte, error) {
	type plain Configuration
	return json.Marshal(plain(c.Normalize()))
}

func (o Origin) String() string {
	return string(o)
}
